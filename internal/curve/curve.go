// Package curve holds the interpolators that turn a run of device-space
// points into path segments.
//
// Each interpolator is a small state machine fed one point at a time
// between LineStart and LineEnd. It writes move, line and cubic segments to
// a Sink. The set of interpolators is fixed; New looks them up by Kind.
package curve

// Sink receives path segments.
type Sink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	Close()
}

// Interpolator consumes the points of one continuous run.
type Interpolator interface {
	// LineStart begins a new run.
	LineStart()
	// Point adds the next point of the run.
	Point(x, y float64)
	// LineEnd finishes the run and flushes buffered segments.
	LineEnd()
}

// Kind identifies an interpolator.
type Kind int

// Interpolator kinds.
const (
	Linear Kind = iota
	Basis
	Natural
	Step
	numKinds
)

var table = [numKinds]func(Sink) Interpolator{
	Linear:  newLinear,
	Basis:   newBasis,
	Natural: newNatural,
	Step:    newStep,
}

// Valid reports whether k names a known interpolator.
func (k Kind) Valid() bool {
	return k >= 0 && k < numKinds
}

// New returns the interpolator of kind k writing to s.
// Unknown kinds fall back to Linear.
func New(k Kind, s Sink) Interpolator {
	if !k.Valid() {
		k = Linear
	}
	return table[k](s)
}
