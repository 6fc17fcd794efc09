package renderer

import (
	"strconv"

	"github.com/etnz/marketrisk"
)

// Risk is the view of the risk metrics of a symbol.
type Risk struct {
	Symbol       string      `json:"symbol"`
	From         string      `json:"from"`
	To           string      `json:"to"`
	Points       int         `json:"points"`
	Volatility   string      `json:"volatility"`
	MaxDrawdown  string      `json:"maxDrawdown"`
	Confidence   string      `json:"confidence"`
	ValueAtRisk  string      `json:"valueAtRisk"`
	StartValue   string      `json:"startValue"`
	EndValue     string      `json:"endValue"`
	EquityReturn string      `json:"equityReturn"`
	Curve        []EquityRow `json:"curve"`
}

// EquityRow is a single day of the equity curve.
type EquityRow struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

// amount formats a plain number with two decimals.
func amount(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

// NewRisk creates the Risk view of m.
func NewRisk(m marketrisk.RiskMetrics) *Risk {
	r := &Risk{
		Symbol:      m.Symbol,
		Points:      len(m.EquityCurve),
		Volatility:  marketrisk.Ratio(m.VolatilityAnnual).String(),
		MaxDrawdown: marketrisk.Ratio(m.MaxDrawdown).String(),
		Confidence:  marketrisk.Ratio(m.Confidence).String(),
		ValueAtRisk: marketrisk.Ratio(m.ValueAtRisk).String(),
		Curve:       make([]EquityRow, 0, len(m.EquityCurve)),
	}
	for _, p := range m.EquityCurve {
		r.Curve = append(r.Curve, EquityRow{Date: p.Date.String(), Value: amount(p.Value)})
	}
	if n := len(m.EquityCurve); n > 0 {
		first, last := m.EquityCurve[0], m.EquityCurve[n-1]
		r.From, r.To = first.Date.String(), last.Date.String()
		r.StartValue, r.EndValue = amount(first.Value), amount(last.Value)
		r.EquityReturn = marketrisk.Ratio(last.Value/first.Value - 1).SignedString()
	}
	return r
}
