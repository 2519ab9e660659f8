package mutpoint

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Layout is the geometry shared by every renderer of a chart.
type Layout struct {
	Viewport
}

// Points is the data shared by every renderer of a chart: the primary
// series, the scales built from it, and the secondary series published by
// the diff controller.
type Points struct {
	Series    Series
	X, Y      Scale
	Secondary Series
}

// Frame is the state a chart hands to its renderers for one render pass.
// The chart builds a new frame whenever its inputs change; renderers read it
// and must not modify what it returns.
//
// A nil *Frame is valid: it reports the default viewport and no points.
type Frame struct {
	layout  Layout
	points  Points
	floor   DomainFloor
	diff    *DiffConfig
	printer *message.Printer
}

// NewFrame builds the layout and scales for points drawn into vp.
// It fails like BuildScales.
func NewFrame(vp Viewport, points Series, opts ...ScaleOption) (*Frame, error) {
	o := defaultScaleOptions()
	for _, opt := range opts {
		opt(&o)
	}
	x, y, err := BuildScales(points, vp, opts...)
	if err != nil {
		return nil, err
	}
	return &Frame{
		layout: Layout{Viewport: vp},
		points: Points{Series: points, X: x, Y: y},
		floor:  o.floor,
	}, nil
}

// Layout returns the chart geometry, or the default viewport for a nil
// frame.
func (f *Frame) Layout() Layout {
	if f == nil {
		return Layout{Viewport: DefaultViewport()}
	}
	return f.layout
}

// Points returns the chart data. A nil frame has no points.
func (f *Frame) Points() Points {
	if f == nil {
		return Points{}
	}
	return f.points
}

// HasPoints reports whether the frame carries a series with scales.
func (f *Frame) HasPoints() bool {
	return f != nil && len(f.points.Series) > 0
}

// Diff returns the diff configuration, or nil when the overlay is disabled.
func (f *Frame) Diff() *DiffConfig {
	if f == nil {
		return nil
	}
	return f.diff
}

// Scales builds x and y scales for points within the frame's layout, using
// the same domain floor as the frame's own scales.
func (f *Frame) Scales(points Series) (x, y Scale, err error) {
	floor := FloorZero
	if f != nil {
		floor = f.floor
	}
	return BuildScales(points, f.Layout().Viewport, WithFloor(floor))
}

// FormatTick formats a tick value for a scale whose ticks are step apart,
// with enough fraction digits to tell neighbors apart and the digit
// grouping of the chart's locale.
func (f *Frame) FormatTick(v, step float64) string {
	prec := tickPrecision(step)
	return f.tickPrinter().Sprint(number.Decimal(v,
		number.MinFractionDigits(prec),
		number.MaxFractionDigits(prec),
	))
}

var defaultPrinter = message.NewPrinter(language.English)

func (f *Frame) tickPrinter() *message.Printer {
	if f == nil || f.printer == nil {
		return defaultPrinter
	}
	return f.printer
}

// with returns a shallow copy of f carrying the chart-level settings that do
// not affect the scales.
func (f *Frame) with(secondary Series, diff *DiffConfig, printer *message.Printer) *Frame {
	out := *f
	out.points.Secondary = secondary
	out.diff = diff
	out.printer = printer
	return &out
}
