package report

import (
	"fmt"
	"html/template"
	"os"

	"github.com/hicpstats/inflation-report/timeseries"
)

const htmlReport = `<!DOCTYPE html>
<html lang="de">
<head>
<meta charset="utf-8">
<title>Inflationsbericht: Österreich im europäischen Vergleich</title>
<style>
body { font-family: sans-serif; margin: 2em auto; max-width: 60em; color: #222; }
h1 { border-bottom: 3px solid #c8102e; padding-bottom: 0.3em; }
h2 { margin-top: 1.6em; }
table { border-collapse: collapse; margin: 1em 0; }
th, td { border: 1px solid #bbb; padding: 0.35em 0.8em; text-align: right; }
th { background: #f2f2f2; }
td:first-child, th:first-child { text-align: left; }
.meta { color: #666; font-size: 0.9em; }
.method { font-style: italic; color: #444; }
</style>
</head>
<body>
<h1>Inflationsbericht: Österreich im europäischen Vergleich</h1>
<p class="meta">Erstellt am {{.GeneratedAt.Format "2006-01-02 15:04"}} | HVPI, Veränderung gegenüber Vorjahresmonat</p>

<h2>Aktuelle Werte</h2>
<table>
<tr><th>Region</th><th>Monat</th><th>Inflation</th></tr>
{{range .Regions}}<tr><td>{{.Name}}</td><td>{{.Stats.LatestPeriod}}</td><td>{{printf "%.2f" .Stats.Latest}}%</td></tr>
{{end}}</table>

<h2>Statistische Kennzahlen seit {{.StatsSince}}</h2>
<table>
<tr><th>Region</th><th>Mittelwert</th><th>Median</th><th>Min</th><th>Max</th><th>Std.-Abw.</th></tr>
{{range .Regions}}<tr><td>{{.Name}}</td><td>{{printf "%.2f" .Stats.Mean}}%</td><td>{{printf "%.2f" .Stats.Median}}%</td><td>{{printf "%.2f" .Stats.Min}}%</td><td>{{printf "%.2f" .Stats.Max}}%</td><td>{{printf "%.2f" .Stats.StdDev}}</td></tr>
{{end}}</table>

<h2>Monatlicher Vergleich (letzte 12 Monate)</h2>
<table>
<tr><th>Monat</th>{{range .Regions}}<th>{{.Name}}</th>{{end}}<th>Differenz</th></tr>
{{range .ComparisonRows}}<tr><td>{{.Period}}</td>{{range .Values}}<td>{{.}}</td>{{end}}<td>{{.Difference}}</td></tr>
{{end}}</table>

<h2>Prognose</h2>
{{range .Regions}}{{if .Forecast}}
<h3>{{.Name}}</h3>
<p class="method">Methode: {{.Forecast.Model | modelName}}, Horizont {{.Forecast.Horizon}} Monate,
95%-Konfidenzintervall auf Basis der Residuen.</p>
<table>
<tr><th>Monat</th><th>Prognose</th><th>Untergrenze</th><th>Obergrenze</th></tr>
{{range .Forecast.Points}}<tr><td>{{.Period}}</td><td>{{printf "%.2f" .Forecast}}%</td><td>{{printf "%.2f" .Lower}}%</td><td>{{printf "%.2f" .Upper}}%</td></tr>
{{end}}</table>
{{end}}{{end}}

<p><a href="inflation_charts.html">Diagramme</a> | <a href="eu_inflation_heatmap.html">EU-Heatmap</a> | <a href="ecb_rates.html">EZB-Leitzinsen</a></p>
<p class="meta">Datenquelle: Eurostat (prc_hicp_manr). Prognosen sind modellbasierte Schätzungen.</p>
</body>
</html>
`

type comparisonRow struct {
	Period     timeseries.Period
	Values     []string
	Difference string
}

type htmlData struct {
	*Data
	ComparisonRows []comparisonRow
}

var htmlTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"modelName": modelName,
}).Parse(htmlReport))

// WriteHTML renders the HTML report to the given path.
func WriteHTML(path string, data *Data) error {
	if len(data.Regions) == 0 {
		return ErrNoRegions
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return htmlTmpl.Execute(file, &htmlData{Data: data, ComparisonRows: comparisonRows(data)})
}

func comparisonRows(data *Data) []comparisonRow {
	diff := data.Difference
	if diff == nil {
		return nil
	}
	start := diff.Len() - 12
	if start < 0 {
		start = 0
	}
	rows := make([]comparisonRow, 0, diff.Len()-start)
	for i := start; i < diff.Len(); i++ {
		p, d := diff.At(i)
		row := comparisonRow{Period: p, Difference: formatPct(d, " PP")}
		for _, r := range data.Regions {
			if v, ok := r.Series.Value(p); ok {
				row.Values = append(row.Values, formatPct(v, "%"))
			} else {
				row.Values = append(row.Values, "-")
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func formatPct(v float64, suffix string) string {
	return fmt.Sprintf("%.2f%s", v, suffix)
}
