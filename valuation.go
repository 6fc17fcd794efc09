package marketrisk

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PortfolioSummary is the valuation of a set of holdings.
type PortfolioSummary struct {
	TotalInvested Money
	CurrentValue  Money
	ProfitLoss    Money
	ProfitLossPct Percent // 0 when nothing is invested
}

// PriceLookup gives the latest close of a symbol.
type PriceLookup interface {
	LatestClose(symbol string) (float64, bool)
}

// Valuate values every holding at the same current price.
//
// The price is applied uniformly whatever the holding's symbol, which is only
// meaningful for a portfolio made of a single instrument. Use ValuateBySymbol
// to value each holding at its own symbol's price.
func Valuate(holdings []Holding, price Money) (PortfolioSummary, error) {
	if price.IsNegative() {
		return PortfolioSummary{}, fmt.Errorf("current price %v is negative: %w", price.Decimal(), ErrInvalidInput)
	}
	return valuate(holdings, price.Currency(), func(Holding) (Money, error) { return price, nil })
}

// ValuateBySymbol values each holding at the latest close of its symbol.
//
// It fails if a holding's symbol has no known price.
func ValuateBySymbol(holdings []Holding, prices PriceLookup, currency string) (PortfolioSummary, error) {
	return valuate(holdings, currency, func(h Holding) (Money, error) {
		last, ok := prices.LatestClose(h.Symbol)
		if !ok {
			return Money{}, fmt.Errorf("no price for holding #%d %s: %w", h.ID, h.Symbol, ErrInsufficientData)
		}
		return NewMoney(last, currency)
	})
}

func valuate(holdings []Holding, currency string, priceOf func(Holding) (Money, error)) (PortfolioSummary, error) {
	invested, current := M(0, currency), M(0, currency)
	for _, h := range holdings {
		if err := h.validate(); err != nil {
			return PortfolioSummary{}, err
		}
		if c := h.BuyPrice.Currency(); c != "" && invested.Currency() != "" && c != invested.Currency() {
			return PortfolioSummary{}, fmt.Errorf("holding #%d %s is bought in %s, not in %s: %w", h.ID, h.Symbol, c, invested.Currency(), ErrInvalidInput)
		}
		price, err := priceOf(h)
		if err != nil {
			return PortfolioSummary{}, err
		}
		if price.IsNegative() {
			return PortfolioSummary{}, fmt.Errorf("price of %s is negative: %w", h.Symbol, ErrInvalidInput)
		}
		invested = invested.Add(h.BuyPrice.Mul(h.Quantity))
		current = current.Add(price.Mul(h.Quantity))
	}
	s := PortfolioSummary{
		TotalInvested: invested,
		CurrentValue:  current,
		ProfitLoss:    current.Sub(invested),
	}
	if !invested.IsZero() {
		pct := s.ProfitLoss.value.Div(invested.value).Mul(decimal.NewFromInt(100))
		s.ProfitLossPct = Percent(pct.InexactFloat64())
	}
	return s, nil
}
