package domain

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by validation and the calculation engine.
var (
	// ErrInvalidParameter is returned before any computation when an input is
	// out of its allowed range.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrResultUnavailable is returned when a computation produced a NaN or
	// infinite value that must not be displayed.
	ErrResultUnavailable = errors.New("computed result unavailable")
)

// InvalidParameterf wraps ErrInvalidParameter with a formatted description.
func InvalidParameterf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}

// CheckFinite returns ErrResultUnavailable when v is NaN or infinite.
func CheckFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s is not finite (%v)", ErrResultUnavailable, name, v)
	}
	return nil
}
