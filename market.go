package marketrisk

import (
	"fmt"
	"slices"
)

// Market holds the price series of a set of symbols.
type Market struct {
	symbols []string
	index   map[string]PriceSeries
}

// NewMarket returns a market made of series, one per symbol.
func NewMarket(series ...PriceSeries) (*Market, error) {
	m := &Market{
		symbols: make([]string, 0, len(series)),
		index:   make(map[string]PriceSeries, len(series)),
	}
	for _, s := range series {
		if m.Has(s.Symbol()) {
			return nil, fmt.Errorf("symbol %q is defined twice: %w", s.Symbol(), ErrInvalidInput)
		}
		m.symbols = append(m.symbols, s.Symbol())
		m.index[s.Symbol()] = s
	}
	slices.Sort(m.symbols)
	return m, nil
}

// Has reports whether the market has a series for symbol.
func (m *Market) Has(symbol string) bool {
	_, ok := m.index[normalizeSymbol(symbol)]
	return ok
}

// Get returns the series of symbol.
func (m *Market) Get(symbol string) (PriceSeries, bool) {
	s, ok := m.index[normalizeSymbol(symbol)]
	return s, ok
}

// Symbols returns the sorted list of symbols.
func (m *Market) Symbols() []string { return slices.Clone(m.symbols) }

// Series returns the series of symbol, or the only series of the market if
// symbol is empty.
func (m *Market) Series(symbol string) (PriceSeries, error) {
	if symbol == "" {
		switch len(m.symbols) {
		case 0:
			return PriceSeries{}, fmt.Errorf("market is empty: %w", ErrInsufficientData)
		case 1:
			return m.index[m.symbols[0]], nil
		default:
			return PriceSeries{}, fmt.Errorf("market has %d symbols %v, pick one", len(m.symbols), m.symbols)
		}
	}
	s, ok := m.Get(symbol)
	if !ok {
		return PriceSeries{}, fmt.Errorf("unknown symbol %q: %w", symbol, ErrInsufficientData)
	}
	return s, nil
}

// LatestClose implements PriceLookup.
func (m *Market) LatestClose(symbol string) (float64, bool) {
	s, ok := m.Get(symbol)
	if !ok {
		return 0, false
	}
	p, ok := s.Latest()
	return p.Close, ok
}

var _ PriceLookup = (*Market)(nil)
