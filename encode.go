package marketrisk

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/etnz/marketrisk/date"
	"github.com/shopspring/decimal"
)

// This file contains the JSON form of the analytics results: snake_case keys in
// a stable order, dates as YYYY-MM-DD, and only finite numbers.

// number returns a decimal as a raw JSON number.
func number(d decimal.Decimal) json.Number { return json.Number(d.String()) }

func (p PricePoint) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", p.Date)
	w.Optional("symbol", p.Symbol)
	w.Float("close", p.Close)
	return w.MarshalJSON()
}

// MarshalJSON encodes the series as its list of dated closes.
func (s PriceSeries) MarshalJSON() ([]byte, error) {
	type jpoint struct {
		Date  date.Date `json:"date"`
		Close float64   `json:"close"`
	}
	list := make([]jpoint, len(s.points))
	for i, p := range s.points {
		list[i] = jpoint{p.Date, p.Close}
	}
	return json.Marshal(list)
}

func (e EquityPoint) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", e.Date)
	w.Float("value", e.Value)
	return w.MarshalJSON()
}

// varKey returns the JSON key of the value-at-risk for a confidence level, "var_95" for 0.95.
func varKey(confidence float64) string {
	level := math.Round(confidence*1000) / 10
	return "var_" + strconv.FormatFloat(level, 'f', -1, 64)
}

func (m RiskMetrics) MarshalJSON() ([]byte, error) {
	curve := m.EquityCurve
	if curve == nil {
		curve = []EquityPoint{}
	}
	var w jsonObjectWriter
	w.Optional("symbol", m.Symbol)
	w.Float("volatility_annual", m.VolatilityAnnual)
	w.Float("max_drawdown", m.MaxDrawdown)
	w.Float(varKey(m.Confidence), m.ValueAtRisk)
	w.Append("equity_curve", curve)
	return w.MarshalJSON()
}

func (s PortfolioSummary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", s.CurrentValue.Currency())
	w.Append("total_invested", number(s.TotalInvested.rounded()))
	w.Append("current_value", number(s.CurrentValue.rounded()))
	w.Append("profit_loss", number(s.ProfitLoss.rounded()))
	w.Float("profit_loss_pct", float64(s.ProfitLossPct))
	return w.MarshalJSON()
}

func (s MarketSnapshot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", s.Symbol)
	w.Append("date", s.Date)
	w.Float("close", s.Close)
	w.Float("change", s.Change)
	w.Float("change_pct", float64(s.ChangePct))
	return w.MarshalJSON()
}

func (h Holding) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", h.ID)
	w.Append("symbol", h.Symbol)
	w.Append("quantity", number(h.Quantity.value))
	w.Append("buy_price", number(h.BuyPrice.value))
	return w.MarshalJSON()
}

func (h *Holding) UnmarshalJSON(data []byte) error {
	// jholding accepts numbers both as JSON numbers and as strings.
	var jholding struct {
		ID       int             `json:"id"`
		Symbol   string          `json:"symbol"`
		Quantity decimal.Decimal `json:"quantity"`
		BuyPrice decimal.Decimal `json:"buy_price"`
	}
	if err := json.Unmarshal(data, &jholding); err != nil {
		return fmt.Errorf("invalid holding: %w", err)
	}
	*h = Holding{
		ID:       jholding.ID,
		Symbol:   normalizeSymbol(jholding.Symbol),
		Quantity: Q(jholding.Quantity),
		BuyPrice: M(jholding.BuyPrice, ""),
	}
	return nil
}
