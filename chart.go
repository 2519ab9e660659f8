package mutpoint

import (
	"errors"
	"fmt"

	"golang.org/x/text/message"

	"github.com/nonnontrivial/mutpoint/internal/memo"
)

// Chart is the root of a chart: it owns the primary series, derives the
// frame its renderers share, and runs the diff controller.
//
// The frame is rebuilt only when the series, the viewport or the domain
// floor change; the frame of the previous inputs is dropped then. A Chart
// is not safe for concurrent use.
type Chart struct {
	opts    chartOptions
	points  Series
	diff    *DiffController
	frames  *memo.Cache[*Frame]
	key     memo.Key // key of the cached frame, valid when keyed
	keyed   bool
	printer *message.Printer
}

// NewChart creates a chart for points.
//
// Example:
//
//	chart := mutpoint.NewChart(points, mutpoint.WithSize(800, 400))
//	err := chart.Render(s, mutpoint.XAxis{}, mutpoint.YAxis{}, mutpoint.Line{})
func NewChart(points Series, opts ...ChartOption) *Chart {
	o := defaultChartOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Chart{
		opts:    o,
		points:  points.Clone(),
		diff:    NewDiffController(o.diff, o.secondary),
		frames:  memo.New[*Frame](o.ttl),
		printer: message.NewPrinter(o.locale),
	}
	c.diff.Observe(c.points)
	return c
}

// Update replaces the primary series. It reports whether the series
// changed; an unchanged series leaves the frame and the diff state alone.
func (c *Chart) Update(points Series) bool {
	if c.points.Equal(points) {
		return false
	}
	c.points = points.Clone()
	c.diff.Observe(c.points)
	return true
}

// Resize changes the viewport size, keeping the margins.
func (c *Chart) Resize(width, height float64) {
	c.opts.viewport.Width = width
	c.opts.viewport.Height = height
}

// Points returns a copy of the primary series.
func (c *Chart) Points() Series {
	return c.points.Clone()
}

// Viewport returns the chart viewport.
func (c *Chart) Viewport() Viewport {
	return c.opts.viewport
}

// Diff returns the chart's diff controller.
func (c *Chart) Diff() *DiffController {
	return c.diff
}

// Frame returns the frame for the current inputs. It fails with
// ErrEmptySeries or a *ViewportError when the inputs cannot be scaled.
func (c *Chart) Frame() (*Frame, error) {
	key := c.frameKey()
	if c.keyed && key != c.key {
		c.frames.Delete(c.key)
	}
	c.key, c.keyed = key, true
	f, hit, err := c.frames.GetOrCompute(key, func() (*Frame, error) {
		return NewFrame(c.opts.viewport, c.points, WithFloor(c.opts.floor))
	})
	if err != nil {
		return nil, fmt.Errorf("mutpoint: build frame: %w", err)
	}
	if !hit {
		Logger().Debug("frame rebuilt", "key", key, "points", len(c.points))
	}
	return f.with(c.diff.Secondary(), c.diff.Config(), c.printer), nil
}

// frameKey hashes everything the frame's scales depend on.
func (c *Chart) frameKey() memo.Key {
	vp := c.opts.viewport
	h := memo.NewHasher().
		Float(vp.Width).Float(vp.Height).
		Float(vp.Margin.Left).Float(vp.Margin.Right).
		Float(vp.Margin.Top).Float(vp.Margin.Bottom).
		Int(int(c.opts.floor)).
		Int(len(c.points))
	for _, p := range c.points {
		h.Float(p.X).Float(p.Y)
	}
	return h.Sum()
}

// Document returns the container the chart renders into.
func (c *Chart) Document() Document {
	return Document{
		Width:      c.opts.viewport.Width,
		Height:     c.opts.viewport.Height,
		Class:      c.opts.class,
		Style:      c.opts.style,
		Background: c.opts.background,
	}
}

// Render draws children onto s in order, inside the chart container.
// children are flattened with RenderInOrder. Rendering stops at the first
// renderer error; the surface is always ended once it has begun.
func (c *Chart) Render(s Surface, children ...any) error {
	f, err := c.Frame()
	if err != nil {
		return err
	}
	if err := s.Begin(c.Document()); err != nil {
		return fmt.Errorf("mutpoint: begin document: %w", err)
	}
	var renderErr error
	for _, r := range RenderInOrder(children...) {
		if renderErr = r.Render(s, f); renderErr != nil {
			break
		}
	}
	return errors.Join(renderErr, s.End())
}
