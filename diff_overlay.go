package mutpoint

// Default diff fragment colors.
const (
	DiffPositiveColor = "#2ca02c"
	DiffNegativeColor = "#d62728"
)

// DiffOverlay draws the secondary series published by the chart's diff
// controller. The configured Positive renderer is clipped to the region
// above the +threshold line and the Negative renderer to the region below
// the -threshold line. Both see a frame whose series is the secondary
// series, drawn with the primary scales.
//
// Nothing is drawn when the frame has no diff configuration or no
// secondary series.
type DiffOverlay struct {
	// Curve is used by the default fragments.
	Curve CurveKind
}

// Render implements Renderer.
func (d DiffOverlay) Render(s Surface, f *Frame) error {
	cfg := f.Diff()
	pts := f.Points()
	if cfg == nil || len(pts.Secondary) == 0 {
		return nil
	}

	sf := *f
	sf.points.Series = pts.Secondary

	bounds := f.Layout().Bounds()
	positive, negative := cfg.Positive, cfg.Negative
	if positive == nil {
		positive = Line{Curve: d.Curve, Stroke: LineStroke().WithColor(DiffPositiveColor), Class: "diff-positive"}
	}
	if negative == nil {
		negative = Line{Curve: d.Curve, Stroke: LineStroke().WithColor(DiffNegativeColor), Class: "diff-negative"}
	}

	t := cfg.Threshold
	if t < 0 {
		t = -t
	}
	above := Rect{Min: bounds.Min, Max: Pt(bounds.Max.X, pts.Y.Apply(t))}
	below := Rect{Min: Pt(bounds.Min.X, pts.Y.Apply(-t)), Max: bounds.Max}

	for _, part := range []struct {
		clip Rect
		r    Renderer
	}{
		{above, positive},
		{below, negative},
	} {
		clip := NewRect(part.clip.Min, part.clip.Max).Intersect(bounds)
		if clip.Empty() {
			continue
		}
		s.PushClip(clip)
		err := part.r.Render(s, &sf)
		s.PopClip()
		if err != nil {
			return err
		}
	}
	return nil
}
