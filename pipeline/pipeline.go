// Package pipeline runs one full report generation pass: fetch, forecast,
// analyze, chart, report.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/rs/zerolog"

	"github.com/hicpstats/inflation-report/analysis"
	"github.com/hicpstats/inflation-report/config"
	"github.com/hicpstats/inflation-report/eurostat"
	"github.com/hicpstats/inflation-report/forecast"
	"github.com/hicpstats/inflation-report/render"
	"github.com/hicpstats/inflation-report/report"
	"github.com/hicpstats/inflation-report/timeseries"
)

var (
	ErrMissingBenchmark = errors.New("benchmark series missing from fetched data")
	ErrMissingRegion    = errors.New("region series missing from fetched data")
)

// Fetcher retrieves the input series. *eurostat.Client satisfies it.
type Fetcher interface {
	FetchHICP(ctx context.Context, regions []string, since timeseries.Period) (map[string]*timeseries.Series, error)
	FetchInterestRates(ctx context.Context, since timeseries.Period) (map[string]*timeseries.Series, error)
}

// Pipeline wires the fetch, forecast, analysis, and output stages together.
type Pipeline struct {
	cfg     *config.Config
	fetcher Fetcher
	engine  *forecast.Engine
	log     zerolog.Logger
}

func New(cfg *config.Config, fetcher Fetcher, log zerolog.Logger) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	engine, err := forecast.New(cfg.Forecast.EngineOptions())
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		cfg:     cfg,
		fetcher: fetcher,
		engine:  engine,
		log:     log,
	}, nil
}

// Run executes the full pipeline and writes all artifacts to the configured
// output directory.
func (p *Pipeline) Run(ctx context.Context) error {
	start := time.Now()
	if err := os.MkdirAll(p.cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory, %w", err)
	}

	since, err := timeseries.ParsePeriod(p.cfg.Data.HistoricalStart)
	if err != nil {
		return err
	}
	statsSince, err := timeseries.ParsePeriod(p.cfg.Data.StatsStart)
	if err != nil {
		return err
	}

	hicp, rates := p.fetchInputs(ctx, since)

	benchmark, ok := hicp[p.cfg.Data.Benchmark]
	if !ok {
		return fmt.Errorf("%s, %w", p.cfg.Data.Benchmark, ErrMissingBenchmark)
	}

	forecasts := p.runForecasts(hicp)

	data, err := p.assemble(hicp, forecasts, benchmark, statsSince)
	if err != nil {
		return err
	}

	if err := p.renderCharts(hicp, forecasts, data); err != nil {
		return err
	}
	if err := p.writeReports(data); err != nil {
		return err
	}
	p.renderRates(rates)
	p.renderHeatmap(ctx)

	report.Summary(os.Stdout, data)
	p.log.Info().
		Dur("elapsed", time.Since(start)).
		Str("dir", p.cfg.Output.Dir).
		Msg("report generation finished")
	return nil
}

// fetchInputs pulls HICP and policy rate series, falling back to bundled
// sample data when Eurostat is unreachable.
func (p *Pipeline) fetchInputs(ctx context.Context, since timeseries.Period) (map[string]*timeseries.Series, map[string]*timeseries.Series) {
	regions := p.cfg.AllRegions()

	p.log.Info().Strs("regions", regions).Stringer("since", since).Msg("fetching HICP data")
	hicp, err := p.fetcher.FetchHICP(ctx, regions, since)
	if err != nil {
		p.log.Warn().Err(err).Msg("HICP fetch failed, using sample data")
		hicp = eurostat.SampleHICP(regions)
	}

	p.log.Info().Msg("fetching ECB policy rates")
	// rate history reaches further back than the HICP window
	ratesSince := timeseries.Period{Year: 2000, Month: time.January}
	rates, err := p.fetcher.FetchInterestRates(ctx, ratesSince)
	if err != nil {
		p.log.Warn().Err(err).Msg("rate fetch failed, using sample data")
		rates = eurostat.SampleInterestRates()
	}
	return hicp, rates
}

// runForecasts produces a forecast per configured region concurrently. The
// benchmark is analyzed but not forecast. Failed forecasts are logged and
// omitted.
func (p *Pipeline) runForecasts(hicp map[string]*timeseries.Series) map[string]*forecast.Result {
	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		forecasts = make(map[string]*forecast.Result, len(p.cfg.Data.Regions))
	)
	for _, region := range p.cfg.Data.Regions {
		series, ok := hicp[region]
		if !ok {
			p.log.Warn().Str("region", region).Msg("no data for region, skipping forecast")
			continue
		}

		wg.Add(1)
		go func(region string, series *timeseries.Series) {
			defer wg.Done()
			res, err := p.engine.Forecast(series, p.cfg.Forecast.Horizon)
			if err != nil {
				p.log.Warn().Err(err).Str("region", region).Msg("forecast failed")
				return
			}
			p.log.Info().
				Str("region", region).
				Str("model", string(res.Model)).
				Int("horizon", res.Horizon).
				Msg("forecast complete")

			mu.Lock()
			forecasts[region] = res
			mu.Unlock()
		}(region, series)
	}
	wg.Wait()
	return forecasts
}

func (p *Pipeline) assemble(hicp map[string]*timeseries.Series, forecasts map[string]*forecast.Result, benchmark *timeseries.Series, statsSince timeseries.Period) (*report.Data, error) {
	data := &report.Data{
		GeneratedAt: time.Now(),
		StatsSince:  statsSince,
	}

	for _, code := range p.cfg.AllRegions() {
		series, ok := hicp[code]
		if !ok {
			return nil, fmt.Errorf("%s, %w", code, ErrMissingRegion)
		}
		stats, err := analysis.Statistics(series, statsSince)
		if err != nil {
			return nil, fmt.Errorf("statistics for %s, %w", code, err)
		}
		data.Regions = append(data.Regions, report.Region{
			Code:     code,
			Name:     eurostat.RegionName(code),
			Series:   series,
			Stats:    stats,
			Extremes: analysis.Trends(series),
			Forecast: forecasts[code],
		})
	}

	primary := hicp[p.cfg.Data.Regions[0]]
	cmp, diff, err := analysis.Compare(primary, benchmark)
	if err != nil {
		return nil, fmt.Errorf("comparing %s against %s, %w", p.cfg.Data.Regions[0], p.cfg.Data.Benchmark, err)
	}
	data.Comparison = cmp
	data.Difference = diff
	return data, nil
}

func (p *Pipeline) renderCharts(hicp map[string]*timeseries.Series, forecasts map[string]*forecast.Result, data *report.Data) error {
	labeled := make([]render.Labeled, 0, len(data.Regions))
	for _, r := range data.Regions {
		labeled = append(labeled, render.Labeled{Name: r.Name, Series: r.Series})
	}

	names := make([]string, 0, len(data.Regions))
	means := make([]float64, 0, len(data.Regions))
	for _, r := range data.Regions {
		names = append(names, r.Name)
		means = append(means, r.Stats.Mean)
	}

	chartPath := filepath.Join(p.cfg.Output.Dir, "inflation_charts.html")
	page := []components.Charter{
		render.LineSeries("Inflation im Vergleich", labeled),
		render.LineHistory("Langfristige Inflationsentwicklung", labeled, crisisEvents),
		render.BarDifference("Differenz Österreich - Eurozone", data.Difference),
		render.BarSummary(fmt.Sprintf("Durchschnittliche Inflation seit %s", data.StatsSince), names, means),
	}
	for _, region := range p.cfg.Data.Regions {
		res, ok := forecasts[region]
		if !ok {
			continue
		}
		title := fmt.Sprintf("Prognose %s", eurostat.RegionName(region))
		page = append(page, render.LineForecast(title, hicp[region], res))
	}

	if err := render.WritePage(chartPath, page...); err != nil {
		return fmt.Errorf("writing charts, %w", err)
	}
	p.log.Info().Str("path", chartPath).Msg("charts written")
	return nil
}

// crisisEvents marks the shocks annotated on the long run comparison chart.
var crisisEvents = []render.Event{
	{Name: "Finanzkrise", Period: timeseries.Period{Year: 2008, Month: time.September}},
	{Name: "COVID-19", Period: timeseries.Period{Year: 2020, Month: time.March}},
	{Name: "Ukraine-Krieg", Period: timeseries.Period{Year: 2022, Month: time.February}},
}

// heatmapTopCountries caps the heatmap rows to keep it readable.
const heatmapTopCountries = 15

// renderHeatmap fetches EU-wide rates since 2020 and writes the quarterly
// heatmap. Failures are logged only, the heatmap is supplementary.
func (p *Pipeline) renderHeatmap(ctx context.Context) {
	since := timeseries.Period{Year: 2020, Month: time.January}
	hicp, err := p.fetcher.FetchHICP(ctx, eurostat.EUCountries, since)
	if err != nil {
		p.log.Warn().Err(err).Msg("EU-wide fetch failed, skipping heatmap")
		return
	}

	// countries with the most complete data first
	codes := make([]string, 0, len(hicp))
	for code := range hicp {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		if a, b := hicp[codes[i]].Len(), hicp[codes[j]].Len(); a != b {
			return a > b
		}
		return codes[i] < codes[j]
	})
	if len(codes) > heatmapTopCountries {
		codes = codes[:heatmapTopCountries]
	}

	labeled := make([]render.Labeled, 0, len(codes))
	for _, code := range codes {
		labeled = append(labeled, render.Labeled{Name: eurostat.RegionName(code), Series: hicp[code]})
	}

	path := filepath.Join(p.cfg.Output.Dir, "eu_inflation_heatmap.html")
	hm := render.HeatmapQuarterly("Inflationsrate EU-Länder im Vergleich (Quartalsdurchschnitt seit 2020)", labeled)
	if err := render.WritePage(path, hm); err != nil {
		p.log.Warn().Err(err).Msg("writing heatmap failed")
		return
	}
	p.log.Info().Str("path", path).Int("countries", len(labeled)).Msg("heatmap written")
}

// renderRates writes the ECB policy rate chart. Failures are logged only,
// the rate chart is supplementary.
func (p *Pipeline) renderRates(rates map[string]*timeseries.Series) {
	labeled := make([]render.Labeled, 0, len(rates))
	for _, key := range []string{eurostat.RateMainRefinancing, eurostat.RateDepositFacility} {
		if s, ok := rates[key]; ok {
			labeled = append(labeled, render.Labeled{Name: key, Series: s})
		}
	}
	if len(labeled) == 0 {
		return
	}

	path := filepath.Join(p.cfg.Output.Dir, "ecb_rates.html")
	if err := render.WritePage(path, render.LineSeries("EZB-Leitzinsen", labeled)); err != nil {
		p.log.Warn().Err(err).Msg("writing rate chart failed")
		return
	}
	p.log.Info().Str("path", path).Msg("rate chart written")
}

func (p *Pipeline) writeReports(data *report.Data) error {
	textPath := filepath.Join(p.cfg.Output.Dir, "inflationsbericht.txt")
	if err := report.WriteText(textPath, data); err != nil {
		return fmt.Errorf("writing text report, %w", err)
	}
	htmlPath := filepath.Join(p.cfg.Output.Dir, "inflationsbericht.html")
	if err := report.WriteHTML(htmlPath, data); err != nil {
		return fmt.Errorf("writing html report, %w", err)
	}
	jsonPath := filepath.Join(p.cfg.Output.Dir, "inflationsbericht.json")
	if err := report.WriteJSON(jsonPath, data); err != nil {
		return fmt.Errorf("writing json report, %w", err)
	}
	p.log.Info().Str("dir", p.cfg.Output.Dir).Msg("reports written")
	return nil
}
