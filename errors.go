package mutpoint

import (
	"errors"
	"fmt"
)

// Sentinel errors for chart construction.
var (
	// ErrEmptySeries is returned when a scale is requested for a series with
	// no defined coordinate on the scaled axis.
	ErrEmptySeries = errors.New("mutpoint: empty series")

	// ErrInvalidViewport is matched by every *ViewportError.
	ErrInvalidViewport = errors.New("mutpoint: invalid viewport")
)

// ViewportError describes which viewport dimension failed validation.
type ViewportError struct {
	Field string
	Value float64
	Limit float64
}

func (e *ViewportError) Error() string {
	return fmt.Sprintf("mutpoint: invalid viewport: %s = %g (limit %g)", e.Field, e.Value, e.Limit)
}

// Is reports whether target is ErrInvalidViewport.
func (e *ViewportError) Is(target error) bool {
	return target == ErrInvalidViewport
}
