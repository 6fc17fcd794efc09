package marketrisk

import (
	"fmt"

	"github.com/etnz/marketrisk/date"
)

// EquityPoint is the value of the simulated notional on a given day.
type EquityPoint struct {
	Date  date.Date
	Value float64
}

// EquityCurve compounds a starting notional with the daily returns of s.
//
// The curve has one point per date of s and starts exactly at start. A period
// whose previous close is zero has no defined return and leaves the equity
// unchanged.
func EquityCurve(s PriceSeries, start float64) ([]EquityPoint, error) {
	if !finite(start) || start <= 0 {
		return nil, fmt.Errorf("starting notional %v must be a positive number: %w", start, ErrInvalidInput)
	}
	curve := make([]EquityPoint, s.Len())
	growth := 1.0
	for i, p := range s.points {
		if i > 0 {
			if prev := s.points[i-1].Close; prev != 0 {
				growth *= 1 + (p.Close-prev)/prev
			}
		}
		value := start * growth
		if !finite(value) {
			return nil, fmt.Errorf("equity of %s on %v: %w", s.Symbol(), p.Date, ErrNonFinite)
		}
		curve[i] = EquityPoint{Date: p.Date, Value: value}
	}
	return curve, nil
}
