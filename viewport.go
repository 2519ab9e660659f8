package mutpoint

// Margin is the space reserved around the plotting area, in pixels.
type Margin struct {
	Left, Right, Top, Bottom float64
}

// Viewport is the pixel area a chart is drawn into.
type Viewport struct {
	Width  float64
	Height float64
	Margin Margin
}

// Default viewport dimensions, used whenever a renderer has no frame.
const (
	DefaultWidth  = 500
	DefaultHeight = 300
)

// DefaultViewport returns a 500x300 viewport with zero margins.
func DefaultViewport() Viewport {
	return Viewport{Width: DefaultWidth, Height: DefaultHeight}
}

// Validate checks that the viewport has a positive size and that the
// margins leave a non-empty plotting area.
func (v Viewport) Validate() error {
	switch {
	case !(v.Width > 0) || !finite(v.Width):
		return &ViewportError{Field: "width", Value: v.Width}
	case !(v.Height > 0) || !finite(v.Height):
		return &ViewportError{Field: "height", Value: v.Height}
	}
	for _, m := range []struct {
		name  string
		value float64
	}{
		{"margin.left", v.Margin.Left},
		{"margin.right", v.Margin.Right},
		{"margin.top", v.Margin.Top},
		{"margin.bottom", v.Margin.Bottom},
	} {
		if !(m.value >= 0) || !finite(m.value) {
			return &ViewportError{Field: m.name, Value: m.value}
		}
	}
	if h := v.Margin.Left + v.Margin.Right; h >= v.Width {
		return &ViewportError{Field: "margin.left+margin.right", Value: h, Limit: v.Width}
	}
	if vert := v.Margin.Top + v.Margin.Bottom; vert >= v.Height {
		return &ViewportError{Field: "margin.top+margin.bottom", Value: vert, Limit: v.Height}
	}
	return nil
}

// AxisRange returns the pixel range a scale on axis maps onto.
// The y range runs from bottom to top because device y grows downward.
func (v Viewport) AxisRange(axis Axis) (r0, r1 float64) {
	if axis == AxisY {
		return v.Height - v.Margin.Bottom, v.Margin.Top
	}
	return v.Margin.Left, v.Width - v.Margin.Right
}

// Inner returns the plotting area inside the margins.
func (v Viewport) Inner() Rect {
	return Rect{
		Min: Pt(v.Margin.Left, v.Margin.Top),
		Max: Pt(v.Width-v.Margin.Right, v.Height-v.Margin.Bottom),
	}
}

// Bounds returns the whole viewport area.
func (v Viewport) Bounds() Rect {
	return Rect{Max: Pt(v.Width, v.Height)}
}
