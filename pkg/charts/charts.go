// Package charts renders bar, line and pie charts as a standalone HTML page
// using go-echarts.
package charts

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Point is one labelled value. Labels may repeat.
type Point struct {
	Label string
	Value float64
}

func labels(pts []Point) []string {
	out := make([]string, len(pts))
	for i, p := range pts {
		out[i] = p.Label
	}
	return out
}

func Bar(title, series string, pts []Point) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: 100}),
	)
	items := make([]opts.BarData, len(pts))
	for i, p := range pts {
		items[i] = opts.BarData{Value: p.Value}
	}
	bar.SetXAxis(labels(pts)).AddSeries(series, items)
	return bar
}

func Line(title, series string, pts []Point) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: 100}),
	)
	items := make([]opts.LineData, len(pts))
	for i, p := range pts {
		items[i] = opts.LineData{Value: p.Value}
	}
	line.SetXAxis(labels(pts)).AddSeries(series, items)
	return line
}

func Pie(title, series string, pts []Point) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: title}))
	items := make([]opts.PieData, len(pts))
	for i, p := range pts {
		items[i] = opts.PieData{Name: p.Label, Value: p.Value}
	}
	pie.AddSeries(series, items)
	return pie
}

// RenderPage writes cs as one HTML document.
func RenderPage(w io.Writer, pageTitle string, cs ...components.Charter) error {
	page := components.NewPage()
	page.PageTitle = pageTitle
	page.AddCharts(cs...)
	return page.Render(w)
}
