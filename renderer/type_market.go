package renderer

import (
	"fmt"

	"github.com/etnz/marketrisk"
)

// Market is the view of the latest closes of a set of symbols.
type Market struct {
	Snapshots []Snapshot `json:"snapshots"`
}

// Snapshot is a single line of the market view.
type Snapshot struct {
	Symbol    string `json:"symbol"`
	Date      string `json:"date"`
	Close     string `json:"close"`
	Change    string `json:"change"`
	ChangePct string `json:"changePct"`
}

// signed formats a plain number with a sign and two decimals, 0 is "-".
func signed(v float64) string {
	s := fmt.Sprintf("%+.2f", v)
	if s == "+0.00" || s == "-0.00" {
		return "-"
	}
	return s
}

// NewMarket creates the Market view of snapshots.
func NewMarket(snapshots ...marketrisk.MarketSnapshot) *Market {
	m := &Market{Snapshots: make([]Snapshot, 0, len(snapshots))}
	for _, s := range snapshots {
		m.Snapshots = append(m.Snapshots, Snapshot{
			Symbol:    s.Symbol,
			Date:      s.Date.String(),
			Close:     amount(s.Close),
			Change:    signed(s.Change),
			ChangePct: s.ChangePct.SignedString(),
		})
	}
	return m
}

// History is the view of the closes of a symbol.
type History struct {
	Symbol string     `json:"symbol"`
	Prices []PriceRow `json:"prices"`
}

// PriceRow is a single day of the history.
type PriceRow struct {
	Date   string `json:"date"`
	Close  string `json:"close"`
	Change string `json:"change"`
}

// NewHistory creates the History view of s. The change of a day is relative
// to the previous close, and left empty when it is undefined.
func NewHistory(s marketrisk.PriceSeries) *History {
	h := &History{Symbol: s.Symbol(), Prices: make([]PriceRow, 0, s.Len())}
	for i, p := range s.Points() {
		row := PriceRow{Date: p.Date.String(), Close: amount(p.Close)}
		if i > 0 {
			if prev := s.At(i - 1).Close; prev != 0 {
				row.Change = marketrisk.Ratio(p.Close/prev - 1).SignedString()
			}
		}
		h.Prices = append(h.Prices, row)
	}
	return h
}
