package marketrisk

import (
	"testing"

	"github.com/etnz/marketrisk/date"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// approx compares floats with a tolerance suited to a handful of chained operations.
var approx = cmpopts.EquateApprox(0, 1e-9)

// day returns the i-th day of the fixture calendar, starting on 2025-01-01.
func day(i int) date.Date { return date.New(2025, 1, 1).Add(i) }

// series is a helper for test to create a TEST series of daily closes from const.
func series(t *testing.T, closes ...float64) PriceSeries {
	t.Helper()
	points := make([]PricePoint, len(closes))
	for i, c := range closes {
		points[i] = PricePoint{Date: day(i), Close: c}
	}
	s, err := NewPriceSeries("TEST", points...)
	if err != nil {
		t.Fatalf("NewPriceSeries() error = %v", err)
	}
	return s
}

// INR is a helper for test to create rupee money from const
func INR(v float64) Money { return M(v, "INR") }

// diff returns a readable diff of two float slices compared approximately.
func diff(want, got any) string { return cmp.Diff(want, got, approx) }
