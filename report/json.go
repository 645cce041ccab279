package report

import (
	"os"
	"time"

	json "github.com/goccy/go-json"

	"github.com/hicpstats/inflation-report/analysis"
	"github.com/hicpstats/inflation-report/forecast"
)

type jsonRegion struct {
	Code     string            `json:"code"`
	Name     string            `json:"name"`
	Stats    analysis.Summary  `json:"stats"`
	Extremes analysis.Extremes `json:"extremes"`
	Forecast *forecast.Result  `json:"forecast,omitempty"`
}

type jsonReport struct {
	GeneratedAt time.Time           `json:"generated_at"`
	StatsSince  string              `json:"stats_since"`
	Regions     []jsonRegion        `json:"regions"`
	Comparison  analysis.Comparison `json:"comparison"`
}

// WriteJSON writes a machine readable snapshot of the report data.
func WriteJSON(path string, data *Data) error {
	if len(data.Regions) == 0 {
		return ErrNoRegions
	}

	out := jsonReport{
		GeneratedAt: data.GeneratedAt,
		StatsSince:  data.StatsSince.String(),
		Comparison:  data.Comparison,
	}
	for _, r := range data.Regions {
		out.Regions = append(out.Regions, jsonRegion{
			Code:     r.Code,
			Name:     r.Name,
			Stats:    r.Stats,
			Extremes: r.Extremes,
			Forecast: r.Forecast,
		})
	}

	buf, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0o644)
}
