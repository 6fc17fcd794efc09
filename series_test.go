package marketrisk

import (
	"errors"
	"math"
	"testing"

	"github.com/etnz/marketrisk/date"
)

func TestNewPriceSeries_Invalid(t *testing.T) {
	d1, d2 := date.New(2025, 1, 1), date.New(2025, 1, 2)
	testCases := []struct {
		name   string
		symbol string
		points []PricePoint
	}{
		{"no symbol", " ", []PricePoint{{Date: d1, Close: 1}}},
		{"no date", "A", []PricePoint{{Close: 1}}},
		{"unsorted", "A", []PricePoint{{Date: d2, Close: 1}, {Date: d1, Close: 1}}},
		{"duplicate date", "A", []PricePoint{{Date: d1, Close: 1}, {Date: d1, Close: 2}}},
		{"negative close", "A", []PricePoint{{Date: d1, Close: -1}}},
		{"NaN close", "A", []PricePoint{{Date: d1, Close: math.NaN()}}},
		{"infinite close", "A", []PricePoint{{Date: d1, Close: math.Inf(1)}}},
		{"mixed symbols", "A", []PricePoint{{Date: d1, Symbol: "B", Close: 1}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPriceSeries(tc.symbol, tc.points...)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("NewPriceSeries() error = %v, want %v", err, ErrInvalidInput)
			}
		})
	}
}

func TestNewPriceSeries_NormalizesSymbol(t *testing.T) {
	s, err := NewPriceSeries(" nifty ", PricePoint{Date: day(0), Symbol: "Nifty", Close: 1}, PricePoint{Date: day(1), Close: 2})
	if err != nil {
		t.Fatalf("NewPriceSeries() error = %v", err)
	}
	if s.Symbol() != "NIFTY" {
		t.Errorf("Symbol() = %q, want %q", s.Symbol(), "NIFTY")
	}
	for _, p := range s.Points() {
		if p.Symbol != "NIFTY" {
			t.Errorf("point on %v has symbol %q, want %q", p.Date, p.Symbol, "NIFTY")
		}
	}
}

func TestPriceSeries_IsImmutable(t *testing.T) {
	s := series(t, 1, 2, 3)
	points := s.Points()
	points[0].Close = 100
	if got := s.At(0).Close; got != 1 {
		t.Errorf("At(0).Close = %v after mutating Points(), want 1", got)
	}
}

func TestReturns(t *testing.T) {
	testCases := []struct {
		name   string
		closes []float64
		want   ReturnSeries
	}{
		{"example", []float64{100, 110, 99, 121}, ReturnSeries{0.10, -0.10, 22.0 / 99}},
		{"empty", nil, ReturnSeries{}},
		{"single", []float64{100}, ReturnSeries{}},
		{"flat", []float64{5, 5, 5}, ReturnSeries{0, 0}},
		{"zero close is dropped", []float64{100, 0, 50}, ReturnSeries{-1}},
		{"leading zeros", []float64{0, 0, 10, 20}, ReturnSeries{1}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := series(t, tc.closes...).Returns()
			if d := diff(tc.want, got); d != "" {
				t.Errorf("Returns() mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestLatest(t *testing.T) {
	if _, ok := series(t).Latest(); ok {
		t.Errorf("Latest() on an empty series returned ok")
	}
	p, ok := series(t, 1, 2, 3).Latest()
	if !ok || p.Close != 3 || p.Date != day(2) {
		t.Errorf("Latest() = %v, %v want 3 on %v", p, ok, day(2))
	}
}
