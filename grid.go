package mutpoint

// GridAxes selects which rules a Grid draws.
type GridAxes int

// Grid rule sets. The zero value draws both.
const (
	GridX GridAxes = 1 << iota // vertical rules at x ticks
	GridY                      // horizontal rules at y ticks
)

// Grid draws rules across the plotting area at the tick positions.
type Grid struct {
	Axes GridAxes

	// Ticks is the approximate tick count. Zero means DefaultTickCount.
	Ticks int

	// Stroke styles the rules. The zero Stroke means GridStroke().
	Stroke Stroke
}

// Render implements Renderer.
func (g Grid) Render(s Surface, f *Frame) error {
	if !f.HasPoints() {
		return nil
	}
	axes := g.Axes
	if axes == 0 {
		axes = GridX | GridY
	}
	n := g.Ticks
	if n == 0 {
		n = DefaultTickCount
	}

	inner := f.Layout().Inner()
	pts := f.Points()
	b := BuildPath()
	if axes&GridX != 0 {
		for _, v := range pts.X.Ticks(n) {
			b.VLine(pts.X.Apply(v), inner.Min.Y, inner.Max.Y)
		}
	}
	if axes&GridY != 0 {
		for _, v := range pts.Y.Ticks(n) {
			b.HLine(inner.Min.X, inner.Max.X, pts.Y.Apply(v))
		}
	}
	p := b.Build()
	if p.Empty() {
		return nil
	}
	s.DrawPath(p, PathStyle{
		Stroke: g.Stroke.orDefault(GridStroke()),
		Fill:   "none",
		Class:  "grid",
	}, Identity())
	return nil
}
