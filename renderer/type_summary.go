package renderer

import (
	"github.com/etnz/marketrisk"
)

// Summary is the view of a portfolio valuation.
type Summary struct {
	Currency      string       `json:"currency"`
	Pricing       string       `json:"pricing"`
	TotalInvested string       `json:"totalInvested"`
	CurrentValue  string       `json:"currentValue"`
	ProfitLoss    string       `json:"profitLoss"`
	ProfitLossPct string       `json:"profitLossPct"`
	Holdings      []HoldingRow `json:"holdings"`
}

// Holdings is the view of the list of holdings.
type Holdings struct {
	Currency      string       `json:"currency"`
	TotalInvested string       `json:"totalInvested"`
	Holdings      []HoldingRow `json:"holdings"`
}

// HoldingRow is a single line of the holdings table.
type HoldingRow struct {
	ID       int    `json:"id"`
	Symbol   string `json:"symbol"`
	Quantity string `json:"quantity"`
	BuyPrice string `json:"buyPrice"`
	Invested string `json:"invested"`
}

// newHoldingRows formats holdings, their prices expressed in currency.
func newHoldingRows(currency string, holdings []marketrisk.Holding) ([]HoldingRow, marketrisk.Money) {
	rows := make([]HoldingRow, 0, len(holdings))
	total := marketrisk.M(0, currency)
	for _, h := range holdings {
		price := marketrisk.M(h.BuyPrice.Decimal(), currency)
		invested := price.Mul(h.Quantity)
		total = total.Add(invested)
		rows = append(rows, HoldingRow{
			ID:       h.ID,
			Symbol:   h.Symbol,
			Quantity: h.Quantity.String(),
			BuyPrice: price.String(),
			Invested: invested.String(),
		})
	}
	return rows, total
}

// NewHoldings creates the Holdings view, with prices expressed in currency.
func NewHoldings(currency string, holdings []marketrisk.Holding) *Holdings {
	rows, total := newHoldingRows(currency, holdings)
	return &Holdings{
		Currency:      currency,
		TotalInvested: total.String(),
		Holdings:      rows,
	}
}

// NewSummary creates the Summary view of s. pricing describes how the current
// value was obtained.
func NewSummary(s marketrisk.PortfolioSummary, pricing string, holdings []marketrisk.Holding) *Summary {
	currency := s.CurrentValue.Currency()
	rows, _ := newHoldingRows(currency, holdings)
	return &Summary{
		Currency:      currency,
		Pricing:       pricing,
		TotalInvested: s.TotalInvested.String(),
		CurrentValue:  s.CurrentValue.String(),
		ProfitLoss:    s.ProfitLoss.SignedString(),
		ProfitLossPct: s.ProfitLossPct.SignedString(),
		Holdings:      rows,
	}
}
