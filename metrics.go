package marketrisk

import (
	"fmt"
)

const (
	// DefaultConfidence is the confidence level of the value-at-risk.
	DefaultConfidence = 0.95
	// DefaultStartValue is the starting notional of the equity curve.
	DefaultStartValue = 100000.0
)

// Options configures the risk analysis.
type Options struct {
	Confidence float64 // value-at-risk confidence level in [0, 1)
	StartValue float64 // equity curve starting notional, > 0
}

// DefaultOptions returns the default analysis options.
func DefaultOptions() Options {
	return Options{Confidence: DefaultConfidence, StartValue: DefaultStartValue}
}

// Validate returns an ErrInvalidInput error if any option is out of its range.
func (o Options) Validate() error {
	if !finite(o.Confidence) || o.Confidence < 0 || o.Confidence >= 1 {
		return fmt.Errorf("confidence %v is out of [0, 1): %w", o.Confidence, ErrInvalidInput)
	}
	if !finite(o.StartValue) || o.StartValue <= 0 {
		return fmt.Errorf("start value %v must be a positive number: %w", o.StartValue, ErrInvalidInput)
	}
	return nil
}

// RiskMetrics holds the risk statistics of a price series.
type RiskMetrics struct {
	Symbol           string
	VolatilityAnnual float64 // annualized volatility, as a fraction
	MaxDrawdown      float64 // worst peak-to-trough decline, as a negative fraction
	Confidence       float64 // confidence level of ValueAtRisk
	ValueAtRisk      float64 // one-day historical value-at-risk, as a fraction
	EquityCurve      []EquityPoint
}

// Analyze computes the risk metrics of s.
//
// It returns ErrInsufficientData if s does not provide any return, and
// ErrInvalidInput if opts are invalid.
func Analyze(s PriceSeries, opts Options) (RiskMetrics, error) {
	if err := opts.Validate(); err != nil {
		return RiskMetrics{}, err
	}
	returns := s.Returns()
	if len(returns) == 0 {
		return RiskMetrics{}, fmt.Errorf("risk metrics of %q: %d prices provide no return: %w", s.Symbol(), s.Len(), ErrInsufficientData)
	}

	mdd, err := MaxDrawdown(s)
	if err != nil {
		return RiskMetrics{}, err
	}
	vatr, err := ValueAtRisk(returns, opts.Confidence)
	if err != nil {
		return RiskMetrics{}, err
	}
	curve, err := EquityCurve(s, opts.StartValue)
	if err != nil {
		return RiskMetrics{}, err
	}
	m := RiskMetrics{
		Symbol:           s.Symbol(),
		VolatilityAnnual: Volatility(returns),
		MaxDrawdown:      mdd,
		Confidence:       opts.Confidence,
		ValueAtRisk:      vatr,
		EquityCurve:      curve,
	}
	if !finite(m.VolatilityAnnual) {
		return RiskMetrics{}, fmt.Errorf("volatility of %q: %w", s.Symbol(), ErrNonFinite)
	}
	return m, nil
}
