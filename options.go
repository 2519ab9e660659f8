package mutpoint

import (
	"maps"
	"time"

	"golang.org/x/text/language"
)

// ChartOption configures a Chart during creation.
// Use functional options to customize the chart.
//
// Example:
//
//	// 500x300 chart with room for axes
//	chart := mutpoint.NewChart(points,
//		mutpoint.WithMargin(mutpoint.Margin{Left: 40, Bottom: 30}),
//	)
//
//	// Show the diff overlay once values leave ±3
//	chart := mutpoint.NewChart(points, mutpoint.WithDiff(&mutpoint.DiffConfig{Threshold: 3}))
type ChartOption func(*chartOptions)

// chartOptions holds optional configuration for Chart creation.
type chartOptions struct {
	viewport   Viewport
	floor      DomainFloor
	class      string
	style      map[string]string
	background string
	diff       *DiffConfig
	secondary  Series
	locale     language.Tag
	ttl        time.Duration
}

// defaultChartOptions returns the default chart options.
func defaultChartOptions() chartOptions {
	return chartOptions{
		viewport: DefaultViewport(),
		floor:    FloorZero,
		locale:   language.English,
	}
}

// WithSize sets the chart width and height in pixels.
func WithSize(width, height float64) ChartOption {
	return func(o *chartOptions) {
		o.viewport.Width = width
		o.viewport.Height = height
	}
}

// WithMargin sets the space around the plotting area.
func WithMargin(m Margin) ChartOption {
	return func(o *chartOptions) {
		o.viewport.Margin = m
	}
}

// WithViewport sets size and margins at once.
func WithViewport(vp Viewport) ChartOption {
	return func(o *chartOptions) {
		o.viewport = vp
	}
}

// WithDomainFloor sets how the lower bound of both scales is chosen.
func WithDomainFloor(f DomainFloor) ChartOption {
	return func(o *chartOptions) {
		o.floor = f
	}
}

// WithClassName sets the class of the chart container.
func WithClassName(class string) ChartOption {
	return func(o *chartOptions) {
		o.class = class
	}
}

// WithStyle sets inline CSS properties of the chart container.
func WithStyle(style map[string]string) ChartOption {
	return func(o *chartOptions) {
		o.style = maps.Clone(style)
	}
}

// WithBackground fills the chart container with the given color.
func WithBackground(color string) ChartOption {
	return func(o *chartOptions) {
		o.background = color
	}
}

// WithDiff enables the diff controller and overlay.
func WithDiff(cfg *DiffConfig) ChartOption {
	return func(o *chartOptions) {
		o.diff = cfg
	}
}

// WithSecondary publishes an initial secondary series.
func WithSecondary(s Series) ChartOption {
	return func(o *chartOptions) {
		o.secondary = s.Clone()
	}
}

// WithLocale sets the locale used to format tick labels.
func WithLocale(tag language.Tag) ChartOption {
	return func(o *chartOptions) {
		o.locale = tag
	}
}

// WithCacheTTL sets how long unused frames stay cached.
func WithCacheTTL(ttl time.Duration) ChartOption {
	return func(o *chartOptions) {
		o.ttl = ttl
	}
}
