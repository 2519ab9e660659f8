package mutpoint

import "fmt"

// Scale is a linear map from a data domain onto a pixel range.
//
// Scale is a comparable value: two scales built from the same input are
// equal with ==.
type Scale struct {
	d0, d1 float64
	r0, r1 float64
}

// NewScale creates a linear scale mapping [d0, d1] onto [r0, r1].
func NewScale(d0, d1, r0, r1 float64) Scale {
	return Scale{d0: d0, d1: d1, r0: r0, r1: r1}
}

// Apply maps a domain value to the range. Values outside the domain are
// extrapolated. A degenerate domain maps every value to the middle of the
// range.
func (s Scale) Apply(v float64) float64 {
	return interpolate(s.r0, s.r1, normalize(s.d0, s.d1, v))
}

// Invert maps a range value back to the domain.
func (s Scale) Invert(px float64) float64 {
	return interpolate(s.d0, s.d1, normalize(s.r0, s.r1, px))
}

// Domain returns the domain bounds in the order they were given.
func (s Scale) Domain() (d0, d1 float64) {
	return s.d0, s.d1
}

// Range returns the range bounds in the order they were given.
func (s Scale) Range() (r0, r1 float64) {
	return s.r0, s.r1
}

// Nice returns a copy of the scale whose domain is extended to round
// values, so that it starts and ends on a tick of about count intervals.
func (s Scale) Nice(count int) Scale {
	s.d0, s.d1 = niceDomain(s.d0, s.d1, count)
	return s
}

// Ticks returns about count round values inside the domain.
func (s Scale) Ticks(count int) []float64 {
	return ticks(s.d0, s.d1, count)
}

// TickStep returns the distance between the values returned by Ticks.
func (s Scale) TickStep(count int) float64 {
	return tickStep(s.d0, s.d1, count)
}

// String returns a compact description, e.g. "[0,100] -> [0,500]".
func (s Scale) String() string {
	return fmt.Sprintf("[%g,%g] -> [%g,%g]", s.d0, s.d1, s.r0, s.r1)
}

func normalize(a, b, v float64) float64 {
	if b -= a; b == 0 {
		return 0.5
	}
	return (v - a) / b
}

func interpolate(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// DomainFloor selects the lower domain bound of a built scale.
type DomainFloor int

const (
	// FloorZero fixes the lower bound at zero.
	FloorZero DomainFloor = iota

	// FloorObserved uses the smaller of zero and the observed minimum, so
	// negative values stay inside the plotting area.
	FloorObserved
)

// String returns "zero" or "observed".
func (f DomainFloor) String() string {
	switch f {
	case FloorZero:
		return "zero"
	case FloorObserved:
		return "observed"
	default:
		return fmt.Sprintf("DomainFloor(%d)", int(f))
	}
}

// ScaleOption configures BuildScale.
type ScaleOption func(*scaleOptions)

type scaleOptions struct {
	floor DomainFloor
	count int
}

func defaultScaleOptions() scaleOptions {
	return scaleOptions{
		floor: FloorZero,
		count: DefaultTickCount,
	}
}

// WithFloor sets how the lower domain bound is chosen.
func WithFloor(f DomainFloor) ScaleOption {
	return func(o *scaleOptions) {
		o.floor = f
	}
}

// WithNiceCount sets the tick count the domain is rounded for.
// Non-positive counts leave the domain as observed.
func WithNiceCount(n int) ScaleOption {
	return func(o *scaleOptions) {
		o.count = n
	}
}

// BuildScale derives the scale for one axis of points drawn into vp.
//
// The domain runs from the floor (zero by default) to the largest defined
// coordinate, rounded outward to nice values. The x range is
// [left, width-right]; the y range is [height-bottom, top] so that larger
// values are drawn higher.
//
// BuildScale returns ErrEmptySeries when points has no finite coordinate on
// axis, and a *ViewportError when vp is invalid.
func BuildScale(points Series, vp Viewport, axis Axis, opts ...ScaleOption) (Scale, error) {
	o := defaultScaleOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := vp.Validate(); err != nil {
		return Scale{}, err
	}
	hi, ok := points.Max(axis)
	if !ok {
		return Scale{}, fmt.Errorf("%w: no defined %s values", ErrEmptySeries, axis)
	}
	lo := 0.0
	if o.floor == FloorObserved {
		if m, _ := points.Min(axis); m < 0 {
			lo = m
		}
	}

	r0, r1 := vp.AxisRange(axis)
	return NewScale(lo, hi, r0, r1).Nice(o.count), nil
}

// BuildScales derives the x and y scales of points drawn into vp.
func BuildScales(points Series, vp Viewport, opts ...ScaleOption) (x, y Scale, err error) {
	if x, err = BuildScale(points, vp, AxisX, opts...); err != nil {
		return Scale{}, Scale{}, err
	}
	if y, err = BuildScale(points, vp, AxisY, opts...); err != nil {
		return Scale{}, Scale{}, err
	}
	return x, y, nil
}
