package marketrisk

import (
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/marketrisk/date"
)

// PricePoint is the close of a symbol on a given day.
type PricePoint struct {
	Date   date.Date
	Symbol string
	Close  float64
}

// PriceSeries is a chronological sequence of closes for a single symbol.
//
// A PriceSeries is immutable: its dates are strictly increasing, and its closes
// are finite and non-negative. It is safe for concurrent use.
type PriceSeries struct {
	symbol string
	points []PricePoint
}

// normalizeSymbol returns the canonical form of a ticker symbol.
func normalizeSymbol(s string) string { return strings.ToUpper(strings.TrimSpace(s)) }

// NewPriceSeries returns a series for symbol made of points.
//
// Points must already be sorted by strictly increasing dates: the series is never
// re-sorted. A point with an empty symbol adopts the series' symbol.
func NewPriceSeries(symbol string, points ...PricePoint) (PriceSeries, error) {
	symbol = normalizeSymbol(symbol)
	if symbol == "" {
		return PriceSeries{}, fmt.Errorf("price series has no symbol: %w", ErrInvalidInput)
	}
	s := PriceSeries{symbol: symbol, points: make([]PricePoint, len(points))}
	for i, p := range points {
		if p.Date.IsZero() {
			return PriceSeries{}, fmt.Errorf("%s: point #%d has no date: %w", symbol, i, ErrInvalidInput)
		}
		switch sym := normalizeSymbol(p.Symbol); sym {
		case "", symbol:
			p.Symbol = symbol
		default:
			return PriceSeries{}, fmt.Errorf("%s: point on %v belongs to %q: %w", symbol, p.Date, sym, ErrInvalidInput)
		}
		if !finite(p.Close) || p.Close < 0 {
			return PriceSeries{}, fmt.Errorf("%s: close on %v is %v, want a finite non-negative number: %w", symbol, p.Date, p.Close, ErrInvalidInput)
		}
		if i > 0 && !p.Date.After(points[i-1].Date) {
			return PriceSeries{}, fmt.Errorf("%s: date %v does not follow %v: %w", symbol, p.Date, points[i-1].Date, ErrInvalidInput)
		}
		s.points[i] = p
	}
	return s, nil
}

// Symbol returns the symbol of the series.
func (s PriceSeries) Symbol() string { return s.symbol }

// Len returns the number of points in the series.
func (s PriceSeries) Len() int { return len(s.points) }

// At returns the i-th point of the series.
func (s PriceSeries) At(i int) PricePoint { return s.points[i] }

// Points returns a copy of all the points in chronological order.
func (s PriceSeries) Points() []PricePoint { return slices.Clone(s.points) }

// Closes returns the close prices in chronological order.
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.points))
	for i, p := range s.points {
		closes[i] = p.Close
	}
	return closes
}

// Latest returns the last point of the series, false if the series is empty.
func (s PriceSeries) Latest() (PricePoint, bool) {
	if len(s.points) == 0 {
		return PricePoint{}, false
	}
	return s.points[len(s.points)-1], true
}

// ReturnSeries is a sequence of simple period-over-period returns.
type ReturnSeries []float64

// Returns derives the simple returns between consecutive closes.
//
// A period whose previous close is zero has no defined return: it is dropped,
// so the result may be shorter than Len()-1. Series shorter than 2 points
// yield an empty ReturnSeries.
func (s PriceSeries) Returns() ReturnSeries {
	if len(s.points) < 2 {
		return ReturnSeries{}
	}
	returns := make(ReturnSeries, 0, len(s.points)-1)
	for i := 1; i < len(s.points); i++ {
		prev := s.points[i-1].Close
		if prev == 0 {
			continue
		}
		returns = append(returns, (s.points[i].Close-prev)/prev)
	}
	return returns
}
