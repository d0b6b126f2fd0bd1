// Package export writes stored run series out as charts and data files.
package export

import (
	"os"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Curve is one named line on a chart.
type Curve struct {
	Name  string
	Xs    []float64
	Ys    []float64
	Color drawing.Color
}

// Chart colors for the standard observable curves.
var (
	ColorEnergy         = chart.ColorRed
	ColorMagnetization  = chart.ColorBlue
	ColorSpecificHeat   = drawing.Color{R: 255, G: 165, B: 0, A: 255}
	ColorSusceptibility = chart.ColorGreen
)

// WriteChartPNG renders the curves into a single PNG.
func WriteChartPNG(path, title, xLabel, yLabel string, curves ...Curve) error {
	series := make([]chart.Series, 0, len(curves))
	for _, c := range curves {
		series = append(series, chart.ContinuousSeries{
			Name:    c.Name,
			XValues: c.Xs,
			YValues: c.Ys,
			Style:   chart.Style{StrokeColor: c.Color, StrokeWidth: 2.0},
		})
	}

	graph := chart.Chart{
		Title:  title,
		Width:  1280,
		Height: 720,
		XAxis: chart.XAxis{
			Name:  xLabel,
			Style: chart.Style{FontSize: 10.0},
		},
		YAxis: chart.YAxis{
			Name:  yLabel,
			Style: chart.Style{FontSize: 10.0},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return graph.Render(chart.PNG, f)
}
