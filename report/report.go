// Package report writes the text, HTML, and JSON artifacts of an analysis
// run.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/hicpstats/inflation-report/analysis"
	"github.com/hicpstats/inflation-report/forecast"
	"github.com/hicpstats/inflation-report/timeseries"
)

var ErrNoRegions = errors.New("report needs at least one region")

// Region bundles everything the report shows about one region.
type Region struct {
	Code     string
	Name     string
	Series   *timeseries.Series
	Stats    analysis.Summary
	Extremes analysis.Extremes
	Forecast *forecast.Result // nil when forecasting was skipped for the region
}

// Data is the assembled input for every report writer.
type Data struct {
	GeneratedAt time.Time
	StatsSince  timeseries.Period
	Regions     []Region // benchmark last
	Comparison  analysis.Comparison
	Difference  *timeseries.Series // first region minus benchmark
}

var germanMonths = map[time.Month]string{
	time.January:   "Jänner",
	time.February:  "Februar",
	time.March:     "März",
	time.April:     "April",
	time.May:       "Mai",
	time.June:      "Juni",
	time.July:      "Juli",
	time.August:    "August",
	time.September: "September",
	time.October:   "Oktober",
	time.November:  "November",
	time.December:  "Dezember",
}

func periodName(p timeseries.Period) string {
	return fmt.Sprintf("%s %d", germanMonths[p.Month], p.Year)
}

func modelName(m forecast.Model) string {
	switch m {
	case forecast.ModelPrimary:
		return "gedämpfter Trend (exponentielle Glättung)"
	case forecast.ModelFallback:
		return "lineare Regression"
	}
	return string(m)
}

const rule = "--------------------------------------------------------------------------------"
const doubleRule = "================================================================================"

// WriteText renders the full text report to the given path.
func WriteText(path string, data *Data) error {
	if len(data.Regions) == 0 {
		return ErrNoRegions
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return renderText(file, data)
}

func renderText(w io.Writer, data *Data) error {
	var b strings.Builder

	b.WriteString(doubleRule + "\n")
	b.WriteString("INFLATIONSBERICHT: ÖSTERREICH IM EUROPÄISCHEN VERGLEICH\n")
	b.WriteString(doubleRule + "\n")
	fmt.Fprintf(&b, "Erstellt am: %s\n\n", data.GeneratedAt.Format("2006-01-02 15:04:05"))

	b.WriteString("ZUSAMMENFASSUNG\n")
	b.WriteString(rule + "\n")
	first := data.Regions[0].Series.First()
	last := data.Regions[0].Series.Last()
	fmt.Fprintf(&b, "Analysezeitraum: %d - %d\n\n", first.Year, last.Year)
	for _, r := range data.Regions {
		fmt.Fprintf(&b, "%s - Aktuelle Inflationsrate (%s): %.2f%%\n",
			r.Name, periodName(r.Stats.LatestPeriod), r.Stats.Latest)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "STATISTISCHE KENNZAHLEN (SEIT %s)\n", strings.ToUpper(periodName(data.StatsSince)))
	b.WriteString(rule + "\n")
	for _, r := range data.Regions {
		fmt.Fprintf(&b, "\n%s:\n", r.Name)
		fmt.Fprintf(&b, "  Durchschnittliche Inflation: %.2f%%\n", r.Stats.Mean)
		fmt.Fprintf(&b, "  Median der Inflation:      %.2f%%\n", r.Stats.Median)
		fmt.Fprintf(&b, "  Minimale Inflation:        %.2f%%\n", r.Stats.Min)
		fmt.Fprintf(&b, "  Maximale Inflation:        %.2f%%\n", r.Stats.Max)
		fmt.Fprintf(&b, "  Standardabweichung:        %.2f\n", r.Stats.StdDev)
	}
	b.WriteString("\n")

	b.WriteString("TRENDS UND EXTREMWERTE\n")
	b.WriteString(rule + "\n")
	for _, r := range data.Regions {
		fmt.Fprintf(&b, "\n%s:\n", r.Name)
		fmt.Fprintf(&b, "  Höchste Inflation: %.2f%% im %s\n", r.Extremes.Highest, periodName(r.Extremes.HighestPeriod))
		fmt.Fprintf(&b, "  Niedrigste Inflation: %.2f%% im %s\n", r.Extremes.Lowest, periodName(r.Extremes.LowestPeriod))
	}
	b.WriteString("\n")

	b.WriteString("MONATLICHER VERGLEICH\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "%-10s", "Monat")
	for _, r := range data.Regions {
		fmt.Fprintf(&b, " %14s", r.Name)
	}
	fmt.Fprintf(&b, " %20s\n", "Differenz (AT-EA)")
	b.WriteString(rule + "\n")
	writeComparisonRows(&b, data)
	b.WriteString("\n")

	b.WriteString("PROGNOSE\n")
	b.WriteString(rule + "\n")
	for _, r := range data.Regions {
		if r.Forecast == nil {
			continue
		}
		fmt.Fprintf(&b, "\n%s (Methode: %s, %d Monate):\n", r.Name, modelName(r.Forecast.Model), r.Forecast.Horizon)
		for _, p := range r.Forecast.Points {
			fmt.Fprintf(&b, "  %s  %6.2f%%  [%6.2f%%, %6.2f%%]\n", p.Period, p.Forecast, p.Lower, p.Upper)
		}
	}
	b.WriteString("\n")

	b.WriteString("ANALYSE-ZUSAMMENFASSUNG\n")
	b.WriteString(rule + "\n")
	writeComparisonSummary(&b, data)

	b.WriteString("\n")
	b.WriteString(doubleRule + "\n")
	b.WriteString("ENDE DES BERICHTS\n")
	b.WriteString(doubleRule + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// writeComparisonRows prints the last twelve months of the comparison table.
func writeComparisonRows(b *strings.Builder, data *Data) {
	diff := data.Difference
	if diff == nil {
		return
	}
	start := diff.Len() - 12
	if start < 0 {
		start = 0
	}
	for i := start; i < diff.Len(); i++ {
		p, d := diff.At(i)
		fmt.Fprintf(b, "%-10s", p.String())
		for _, r := range data.Regions {
			if v, ok := r.Series.Value(p); ok {
				fmt.Fprintf(b, " %13.2f%%", v)
			} else {
				fmt.Fprintf(b, " %14s", "-")
			}
		}
		fmt.Fprintf(b, " %17.2f PP\n", d)
	}
}

func writeComparisonSummary(b *strings.Builder, data *Data) {
	cmp := data.Comparison
	if cmp.Months == 0 {
		return
	}
	share := float64(cmp.MonthsHigher) / float64(cmp.Months) * 100.0
	fmt.Fprintf(b, "Durchschnittliche Differenz (Österreich - Eurozone): %.2f Prozentpunkte.\n", cmp.AvgDifference)
	fmt.Fprintf(b, "Österreich hatte in %d von %d Monaten (%.1f%%) eine höhere Inflation als die Eurozone.\n",
		cmp.MonthsHigher, cmp.Months, share)

	switch {
	case cmp.AvgDifference > 0.1:
		b.WriteString("Im Durchschnitt war die Inflation in Österreich tendenziell höher als im Euroraum.\n")
	case cmp.AvgDifference < -0.1:
		b.WriteString("Im Durchschnitt war die Inflation in Österreich tendenziell niedriger als im Euroraum.\n")
	default:
		b.WriteString("Im Durchschnitt entsprach die Inflation in Österreich weitgehend der des Euroraums.\n")
	}
}

// Summary prints the short console summary shown at the end of a run.
func Summary(w io.Writer, data *Data) {
	for _, r := range data.Regions {
		fmt.Fprintf(w, "%s: aktuell %.2f%% (%s), Spitze %.2f%% im %s\n",
			r.Name, r.Stats.Latest, periodName(r.Stats.LatestPeriod),
			r.Extremes.Highest, periodName(r.Extremes.HighestPeriod))
		if r.Forecast != nil && len(r.Forecast.Points) > 0 {
			lastPoint := r.Forecast.Points[len(r.Forecast.Points)-1]
			fmt.Fprintf(w, "  Prognose %s: %.2f%% [%s]\n",
				periodName(lastPoint.Period), lastPoint.Forecast, modelName(r.Forecast.Model))
		}
	}
}
