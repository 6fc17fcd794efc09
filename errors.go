package marketrisk

import (
	"errors"
	"math"
)

var (
	// ErrInsufficientData is returned when a series is too short for the requested statistic.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrInvalidInput is returned for malformed inputs: a non-finite or negative
	// price or quantity, unsorted dates, or an option out of its range.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNonFinite is returned when a computed value is NaN or infinite.
	ErrNonFinite = errors.New("non-finite value")
)

// finite reports whether v is neither NaN nor infinite.
func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
