package marketrisk

import (
	"fmt"

	"github.com/etnz/marketrisk/date"
)

// MarketSnapshot compares the latest close of a series with the previous one.
type MarketSnapshot struct {
	Symbol    string
	Date      date.Date
	Close     float64
	Change    float64
	ChangePct Percent
}

// NewMarketSnapshot returns the snapshot of the latest point of s.
//
// A single point is compared to itself, and a zero previous close gives a zero
// change percentage.
func NewMarketSnapshot(s PriceSeries) (MarketSnapshot, error) {
	latest, ok := s.Latest()
	if !ok {
		return MarketSnapshot{}, fmt.Errorf("market snapshot of %q: empty series: %w", s.Symbol(), ErrInsufficientData)
	}
	prev := latest
	if n := s.Len(); n > 1 {
		prev = s.At(n - 2)
	}
	snap := MarketSnapshot{
		Symbol: s.Symbol(),
		Date:   latest.Date,
		Close:  latest.Close,
		Change: latest.Close - prev.Close,
	}
	if prev.Close != 0 {
		snap.ChangePct = Ratio(snap.Change / prev.Close)
	}
	return snap, nil
}
