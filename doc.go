// Package mutpoint draws line charts as vector paths.
//
// # Overview
//
// mutpoint maps an ordered series of 2D data points into a line path. Linear
// scales convert domain coordinates into device pixels, a curve interpolator
// turns the scaled points into path data, and a small tree of renderers
// (lines, axes, grid, diff overlay) draws onto a [Surface].
//
// # Quick Start
//
//	import (
//		"github.com/nonnontrivial/mutpoint"
//		"github.com/nonnontrivial/mutpoint/surface"
//	)
//
//	chart := mutpoint.NewChart(mutpoint.Series{{X: 0, Y: 1}, {X: 1, Y: 4}, {X: 2, Y: 2}},
//		mutpoint.WithSize(500, 300),
//		mutpoint.WithMargin(mutpoint.Margin{Left: 40, Bottom: 30}),
//	)
//
//	s := surface.NewSVGSurface(os.Stdout)
//	err := chart.Render(s,
//		mutpoint.XAxis{},
//		mutpoint.YAxis{},
//		mutpoint.Line{Curve: mutpoint.CurveNatural},
//	)
//
// # Frames
//
// The chart computes a [Frame] once per input change: the viewport, the
// scales derived from the series, and the secondary series published by the
// diff controller. Every renderer receives that frame explicitly. A renderer
// handed a nil frame falls back to [DefaultViewport] and draws nothing it
// cannot derive.
//
// # Coordinate System
//
// Uses SVG device coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down, so the y scale range is inverted
//
// # Scales
//
// Both domains start at zero and end at the largest coordinate of the
// series, rounded outward to a 1, 2 or 5 multiple of a power of ten. Use
// [WithDomainFloor] with [FloorObserved] to let negative values extend the
// lower bound.
package mutpoint

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"
)
