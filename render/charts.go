// Package render builds the report charts with Apache Echarts and writes
// them to HTML pages.
package render

import (
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/hicpstats/inflation-report/forecast"
	"github.com/hicpstats/inflation-report/timeseries"
)

// gap marks a missing x axis position in an echarts series.
const gap = "-"

// Labeled pairs a display name with its series for multi-series charts.
type Labeled struct {
	Name   string
	Series *timeseries.Series
}

// LineSeries generates a multi-line chart of the given series over the union
// of their periods. Regions with no observation for a period show a gap.
func LineSeries(title string, series []Labeled) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	axis := unionPeriods(series)
	labels := make([]string, len(axis))
	for i, p := range axis {
		labels[i] = p.String()
	}

	line = line.SetXAxis(labels)
	for _, entry := range series {
		data := make([]opts.LineData, 0, len(axis))
		for _, p := range axis {
			if v, ok := entry.Series.Value(p); ok {
				data = append(data, opts.LineData{Value: v})
			} else {
				data = append(data, opts.LineData{Value: gap})
			}
		}
		line = line.AddSeries(entry.Name, data)
	}
	return line
}

// LineForecast generates a line chart of the historical series extended by a
// forecast with its upper and lower bounds.
func LineForecast(title string, history *timeseries.Series, res *forecast.Result) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	n := history.Len()
	h := len(res.Points)
	labels := make([]string, 0, n+h)
	actual := make([]opts.LineData, 0, n+h)
	forecastData := make([]opts.LineData, 0, n+h)
	upper := make([]opts.LineData, 0, n+h)
	lower := make([]opts.LineData, 0, n+h)

	for i := 0; i < n; i++ {
		p, v := history.At(i)
		labels = append(labels, p.String())
		actual = append(actual, opts.LineData{Value: v})
		forecastData = append(forecastData, opts.LineData{Value: gap})
		upper = append(upper, opts.LineData{Value: gap})
		lower = append(lower, opts.LineData{Value: gap})
	}
	for _, pt := range res.Points {
		labels = append(labels, pt.Period.String())
		actual = append(actual, opts.LineData{Value: gap})
		forecastData = append(forecastData, opts.LineData{Value: pt.Forecast})
		upper = append(upper, opts.LineData{Value: pt.Upper})
		lower = append(lower, opts.LineData{Value: pt.Lower})
	}

	line.SetXAxis(labels).
		AddSeries("Actual", actual).
		AddSeries("Forecast", forecastData).
		AddSeries("Upper", upper).
		AddSeries("Lower", lower)
	return line
}

// Event marks a notable date on a historical chart.
type Event struct {
	Name   string
	Period timeseries.Period
}

// LineHistory generates the long run comparison line chart with vertical
// markers at notable events, e.g. the 2008 financial crisis.
func LineHistory(title string, series []Labeled, events []Event) *charts.Line {
	line := LineSeries(title, series)
	if len(events) == 0 || len(line.MultiSeries) == 0 {
		return line
	}

	items := make([]opts.MarkLineNameXAxisItem, 0, len(events))
	for _, ev := range events {
		items = append(items, opts.MarkLineNameXAxisItem{
			Name:  ev.Name,
			XAxis: ev.Period.String(),
		})
	}
	// markers belong to the chart, not each region; pin them to one series
	withMarks := charts.WithMarkLineNameXAxisItemOpts(items...)
	withMarks(&line.MultiSeries[0])
	return line
}

// HeatmapQuarterly generates a heatmap of quarterly mean rates, one row per
// series ordered by average rate. Cells without observations stay empty.
func HeatmapQuarterly(title string, series []Labeled) *charts.HeatMap {
	quarters, rows := quarterlyMeans(series)

	lo, hi := math.Inf(1), math.Inf(-1)
	data := make([]opts.HeatMapData, 0, len(rows)*len(quarters))
	names := make([]string, 0, len(rows))
	for yi, row := range rows {
		names = append(names, row.name)
		for xi, q := range quarters {
			mean, ok := row.means[q]
			if !ok {
				continue
			}
			lo = math.Min(lo, mean)
			hi = math.Max(hi, mean)
			data = append(data, opts.HeatMapData{
				Value: [3]interface{}{xi, yi, math.Round(mean*10) / 10},
			})
		}
	}
	if len(data) == 0 {
		lo, hi = 0, 0
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
		charts.WithXAxisOpts(opts.XAxis{Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: names}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Min: float32(lo),
			Max: float32(hi),
			InRange: &opts.VisualMapInRange{
				Color: []string{"#3498db", "#f1c40f", "#e74c3c"},
			},
		}),
	)
	hm.SetXAxis(quarters).AddSeries("Inflation (%)", data)
	return hm
}

type heatmapRow struct {
	name  string
	means map[string]float64
	avg   float64
}

// quarterlyMeans reduces each series to mean values per quarter and returns
// the sorted quarter axis with one row per series, ordered by ascending
// average rate.
func quarterlyMeans(series []Labeled) ([]string, []heatmapRow) {
	seen := make(map[string]struct{})
	var quarters []string
	rows := make([]heatmapRow, 0, len(series))

	for _, entry := range series {
		sums := make(map[string]float64)
		counts := make(map[string]int)
		total := 0.0
		for i := 0; i < entry.Series.Len(); i++ {
			p, v := entry.Series.At(i)
			q := quarterLabel(p)
			sums[q] += v
			counts[q]++
			total += v
			if _, ok := seen[q]; !ok {
				seen[q] = struct{}{}
				quarters = append(quarters, q)
			}
		}
		means := make(map[string]float64, len(sums))
		for q, sum := range sums {
			means[q] = sum / float64(counts[q])
		}
		avg := 0.0
		if entry.Series.Len() > 0 {
			avg = total / float64(entry.Series.Len())
		}
		rows = append(rows, heatmapRow{name: entry.Name, means: means, avg: avg})
	}

	sort.Strings(quarters)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].avg < rows[j].avg
	})
	return quarters, rows
}

func quarterLabel(p timeseries.Period) string {
	return fmt.Sprintf("%04d-Q%d", p.Year, (int(p.Month)+2)/3)
}

// BarDifference generates a bar chart for a difference series, e.g. a region
// minus its benchmark in percentage points.
func BarDifference(title string, diff *timeseries.Series) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	labels := make([]string, 0, diff.Len())
	data := make([]opts.BarData, 0, diff.Len())
	for i := 0; i < diff.Len(); i++ {
		p, v := diff.At(i)
		labels = append(labels, p.String())
		data = append(data, opts.BarData{Value: v})
	}

	bar.SetXAxis(labels).AddSeries("Differenz", data)
	return bar
}

// BarSummary generates a grouped bar chart over one numeric summary figure
// per label, e.g. mean inflation by region.
func BarSummary(title string, labels []string, values []float64) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	data := make([]opts.BarData, 0, len(values))
	for _, v := range values {
		data = append(data, opts.BarData{Value: v})
	}
	bar.SetXAxis(labels).AddSeries(title, data)
	return bar
}

// WritePage assembles the charts into a single echarts page rendered to the
// given HTML file.
func WritePage(path string, chartList ...components.Charter) error {
	page := components.NewPage()
	page.AddCharts(chartList...)

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return page.Render(file)
}

func unionPeriods(series []Labeled) []timeseries.Period {
	seen := make(map[timeseries.Period]struct{})
	var axis []timeseries.Period
	for _, entry := range series {
		for _, p := range entry.Series.Periods() {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			axis = append(axis, p)
		}
	}
	sort.Slice(axis, func(i, j int) bool {
		return axis[i].Before(axis[j])
	})
	return axis
}
