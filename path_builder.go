package mutpoint

// PathBuilder provides a fluent interface for path construction.
// Axes and grids use it to assemble their rules and tick marks.
type PathBuilder struct {
	path *Path
}

// BuildPath starts a new path builder.
func BuildPath() *PathBuilder {
	return &PathBuilder{path: NewPath()}
}

// MoveTo moves to a point.
func (b *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	b.path.MoveTo(x, y)
	return b
}

// LineTo draws a line to a point.
func (b *PathBuilder) LineTo(x, y float64) *PathBuilder {
	b.path.LineTo(x, y)
	return b
}

// QuadTo draws a quadratic curve.
func (b *PathBuilder) QuadTo(cx, cy, x, y float64) *PathBuilder {
	b.path.QuadraticTo(cx, cy, x, y)
	return b
}

// CubicTo draws a cubic curve.
func (b *PathBuilder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *PathBuilder {
	b.path.CubicTo(c1x, c1y, c2x, c2y, x, y)
	return b
}

// Close closes the current subpath.
func (b *PathBuilder) Close() *PathBuilder {
	b.path.Close()
	return b
}

// Rect adds a rectangle to the path.
func (b *PathBuilder) Rect(x, y, w, h float64) *PathBuilder {
	b.path.Rectangle(x, y, w, h)
	return b
}

// HLine adds a horizontal segment from (x0, y) to (x1, y).
func (b *PathBuilder) HLine(x0, x1, y float64) *PathBuilder {
	b.path.MoveTo(x0, y)
	b.path.LineTo(x1, y)
	return b
}

// VLine adds a vertical segment from (x, y0) to (x, y1).
func (b *PathBuilder) VLine(x, y0, y1 float64) *PathBuilder {
	b.path.MoveTo(x, y0)
	b.path.LineTo(x, y1)
	return b
}

// Build returns the constructed path.
func (b *PathBuilder) Build() *Path {
	return b.path
}
