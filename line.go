package mutpoint

// Line draws a series as a stroked path.
//
// By default a Line draws the frame's series with the frame's scales. When
// Points is set, the line draws those points instead, with scales built
// from them within the frame's layout.
type Line struct {
	// Points overrides the frame's series.
	Points Series

	// Curve selects the interpolation. The zero value is CurveLinear.
	Curve CurveKind

	// Stroke is the line style. The zero Stroke means LineStroke().
	Stroke Stroke

	// Fill is an SVG paint value. Empty means "none".
	Fill string

	// Class and Style are passed through to SVG output.
	Class string
	Style map[string]string
}

// Render implements Renderer.
func (l Line) Render(s Surface, f *Frame) error {
	p, err := l.Path(f)
	if err != nil {
		return err
	}
	if p.Empty() {
		return nil
	}
	s.DrawPath(p, l.pathStyle(), Identity())
	return nil
}

// Path returns the path the line draws for f. It is empty when there is
// nothing to draw, for example when the frame is nil and Points is unset.
func (l Line) Path(f *Frame) (*Path, error) {
	if l.Points != nil {
		if l.Points.Defined() < 2 {
			return NewPath(), nil
		}
		x, y, err := f.Scales(l.Points)
		if err != nil {
			return nil, err
		}
		return LinePath(l.Points, x, y, l.Curve), nil
	}
	if !f.HasPoints() {
		if f == nil {
			Logger().Warn("line rendered without a frame or points")
		}
		return NewPath(), nil
	}
	pts := f.Points()
	return LinePath(pts.Series, pts.X, pts.Y, l.Curve), nil
}

func (l Line) pathStyle() PathStyle {
	fill := l.Fill
	if fill == "" {
		fill = "none"
	}
	return PathStyle{
		Stroke: l.Stroke.orDefault(LineStroke()),
		Fill:   fill,
		Class:  l.Class,
		Style:  l.Style,
	}
}
