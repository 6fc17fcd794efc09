// Package chart draws PNG line charts of price series and equity curves.
package chart

import (
	"fmt"
	"strings"

	"github.com/etnz/marketrisk"
	"github.com/vicanso/go-charts/v2"
)

// EquityPNG renders the equity curve of symbol as a PNG line chart.
func EquityPNG(symbol string, curve []marketrisk.EquityPoint) ([]byte, error) {
	x := make([]string, len(curve))
	y := make([]float64, len(curve))
	for i, p := range curve {
		x[i], y[i] = p.Date.String(), p.Value
	}
	return lineChart(strings.ToUpper(symbol)+" • equity", x, y)
}

// PricePNG renders the closes of s as a PNG line chart.
func PricePNG(s marketrisk.PriceSeries) ([]byte, error) {
	x := make([]string, s.Len())
	y := make([]float64, s.Len())
	for i, p := range s.Points() {
		x[i], y[i] = p.Date.String(), p.Close
	}
	return lineChart(s.Symbol()+" • close", x, y)
}

func lineChart(title string, x []string, y []float64) ([]byte, error) {
	if len(y) < 2 {
		return nil, fmt.Errorf("chart %q needs at least 2 points, got %d: %w", title, len(y), marketrisk.ErrInsufficientData)
	}
	yMin, yMax := y[0], y[0]
	for _, v := range y[1:] {
		yMin, yMax = min(yMin, v), max(yMax, v)
	}
	pad := (yMax - yMin) * 0.05
	if pad < yMax*0.002 {
		pad = yMax * 0.002
	}
	yMin = max(0, yMin-pad)
	yMax += pad
	if yMax <= yMin {
		// all zeros
		yMax = yMin + 1
	}

	painter, err := charts.LineRender([][]float64{y},
		charts.TitleTextOptionFunc(title),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: x, BoundaryGap: charts.FalseFlag(), SplitNumber: min(12, len(x))}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot render chart %q: %w", title, err)
	}
	return painter.Bytes()
}
