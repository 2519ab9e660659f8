package mutpoint

// LinePath maps points through the x and y scales and interpolates the
// result with the given curve.
//
// A point whose coordinates are not finite, before or after scaling, ends
// the current run; the next defined point starts a new subpath. When fewer
// than two points are defined in total the returned path is empty, so a
// single point never draws.
func LinePath(points Series, x, y Scale, kind CurveKind) *Path {
	p := NewPath()
	if points.Defined() < 2 {
		return p
	}

	c := kind.interpolator(p)
	inRun := false
	for _, pt := range points {
		px, py := x.Apply(pt.X), y.Apply(pt.Y)
		defined := pt.Defined() && finite(px) && finite(py)
		if defined != inRun {
			if defined {
				c.LineStart()
			} else {
				c.LineEnd()
			}
			inRun = defined
		}
		if defined {
			c.Point(px, py)
		}
	}
	if inRun {
		c.LineEnd()
	}
	return p
}
