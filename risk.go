package marketrisk

import (
	"fmt"
	"math"
	"slices"
)

// TradingDaysPerYear is the number of trading periods used to annualize daily statistics.
const TradingDaysPerYear = 252

// Volatility returns the annualized population standard deviation of returns.
//
// An empty series, or a series of identical returns, has a volatility of
// exactly 0.
func Volatility(returns ReturnSeries) float64 {
	n := len(returns)
	if n == 0 {
		return 0
	}
	flat := true
	var sum float64
	for _, r := range returns {
		sum += r
		flat = flat && r == returns[0]
	}
	if flat {
		return 0
	}
	mean := sum / float64(n)
	var squares float64
	for _, r := range returns {
		squares += (r - mean) * (r - mean)
	}
	return math.Sqrt(squares/float64(n)) * math.Sqrt(TradingDaysPerYear)
}

// MaxDrawdown returns the worst decline of a close from its running peak, as a
// fraction of that peak.
//
// The result is always <= 0, and exactly 0 for a non-decreasing series. Points
// before the first positive close have no peak and are ignored.
func MaxDrawdown(s PriceSeries) (float64, error) {
	if s.Len() == 0 {
		return 0, fmt.Errorf("max drawdown of %q: empty series: %w", s.Symbol(), ErrInsufficientData)
	}
	var peak, worst float64
	for _, p := range s.points {
		peak = max(peak, p.Close)
		if peak == 0 {
			continue
		}
		worst = min(worst, (p.Close-peak)/peak)
	}
	return worst, nil
}

// ValueAtRisk returns the historical value-at-risk of returns at the given
// confidence level: the (1-confidence) empirical percentile of the returns.
//
// The value is reported as is, a negative value is a loss. Percentiles
// falling between two observations are linearly interpolated.
func ValueAtRisk(returns ReturnSeries, confidence float64) (float64, error) {
	if !finite(confidence) || confidence < 0 || confidence >= 1 {
		return 0, fmt.Errorf("confidence %v is out of [0, 1): %w", confidence, ErrInvalidInput)
	}
	if len(returns) == 0 {
		return 0, fmt.Errorf("value-at-risk needs at least one return: %w", ErrInsufficientData)
	}
	for _, r := range returns {
		if !finite(r) {
			return 0, fmt.Errorf("value-at-risk of a series containing %v: %w", r, ErrInvalidInput)
		}
	}
	return percentile(returns, (1-confidence)*100), nil
}

// percentile returns the p-th percentile (0 <= p <= 100) of a non-empty sample,
// interpolating linearly between the closest ranks.
func percentile(sample []float64, p float64) float64 {
	sorted := slices.Clone(sample)
	slices.Sort(sorted)

	rank := p / 100 * float64(len(sorted)-1)
	lo, hi := int(math.Floor(rank)), int(math.Ceil(rank))
	hi = min(hi, len(sorted)-1)
	if lo >= hi {
		return sorted[hi]
	}
	return sorted[lo] + (sorted[hi]-sorted[lo])*(rank-float64(lo))
}
