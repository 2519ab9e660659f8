package mutpoint

// Default axis geometry, in pixels.
const (
	DefaultTickSize    = 6
	DefaultTickPadding = 3
)

// axisStyle holds the settings shared by XAxis and YAxis.
type axisStyle struct {
	// Ticks is the approximate tick count. Zero means DefaultTickCount;
	// a negative count draws no ticks.
	Ticks int

	// TickSize is the tick length. Zero means DefaultTickSize.
	TickSize float64

	// Stroke styles the domain rule and the ticks. The zero Stroke means
	// DefaultStroke().
	Stroke Stroke

	// FontSize and Color style the labels.
	FontSize float64
	Color    string

	// Format overrides the tick label text.
	Format func(v float64) string
}

func (a axisStyle) tickSize() float64 {
	if a.TickSize > 0 {
		return a.TickSize
	}
	return DefaultTickSize
}

func (a axisStyle) tickCount() int {
	if a.Ticks == 0 {
		return DefaultTickCount
	}
	return a.Ticks
}

func (a axisStyle) label(f *Frame, sc Scale, v float64) string {
	if a.Format != nil {
		return a.Format(v)
	}
	return f.FormatTick(v, sc.TickStep(a.tickCount()))
}

func (a axisStyle) ticks(sc Scale) []float64 {
	if a.tickCount() < 0 {
		return nil
	}
	return sc.Ticks(a.tickCount())
}

// XAxis draws the x scale along the bottom of the plotting area.
type XAxis axisStyle

// Render implements Renderer.
func (a XAxis) Render(s Surface, f *Frame) error {
	if !f.HasPoints() {
		return nil
	}
	st := axisStyle(a)
	layout := f.Layout()
	sc := f.Points().X
	m := Translate(0, layout.Height-layout.Margin.Bottom)
	size := st.tickSize()
	r0, r1 := sc.Range()

	b := BuildPath().
		MoveTo(r0, size).
		LineTo(r0, 0).
		LineTo(r1, 0).
		LineTo(r1, size)
	vals := st.ticks(sc)
	for _, v := range vals {
		b.VLine(sc.Apply(v), 0, size)
	}
	s.DrawPath(b.Build(), axisPathStyle(st), m)

	for _, v := range vals {
		s.DrawText(Text{
			Value:    st.label(f, sc, v),
			X:        sc.Apply(v),
			Y:        size + DefaultTickPadding,
			Anchor:   AnchorMiddle,
			Baseline: BaselineHanging,
			Size:     st.FontSize,
			Color:    st.Color,
		}, m)
	}
	return nil
}

// YAxis draws the y scale along the left of the plotting area.
type YAxis axisStyle

// Render implements Renderer.
func (a YAxis) Render(s Surface, f *Frame) error {
	if !f.HasPoints() {
		return nil
	}
	st := axisStyle(a)
	layout := f.Layout()
	sc := f.Points().Y
	m := Translate(layout.Margin.Left, 0)
	size := st.tickSize()
	r0, r1 := sc.Range()

	b := BuildPath().
		MoveTo(-size, r0).
		LineTo(0, r0).
		LineTo(0, r1).
		LineTo(-size, r1)
	vals := st.ticks(sc)
	for _, v := range vals {
		b.HLine(-size, 0, sc.Apply(v))
	}
	s.DrawPath(b.Build(), axisPathStyle(st), m)

	for _, v := range vals {
		s.DrawText(Text{
			Value:    st.label(f, sc, v),
			X:        -(size + DefaultTickPadding),
			Y:        sc.Apply(v),
			Anchor:   AnchorEnd,
			Baseline: BaselineMiddle,
			Size:     st.FontSize,
			Color:    st.Color,
		}, m)
	}
	return nil
}

func axisPathStyle(st axisStyle) PathStyle {
	return PathStyle{
		Stroke: st.Stroke.orDefault(DefaultStroke()),
		Fill:   "none",
		Class:  "domain",
	}
}
