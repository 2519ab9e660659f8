package curve

// step alternates horizontal and vertical segments, changing y halfway
// between consecutive x values.
type step struct {
	sink  Sink
	point int
	x, y  float64
}

func newStep(s Sink) Interpolator {
	return &step{sink: s}
}

func (c *step) LineStart() {
	c.point = 0
}

func (c *step) Point(x, y float64) {
	if c.point == 0 {
		c.point = 1
		c.sink.MoveTo(x, y)
	} else {
		c.point = 2
		mid := (c.x + x) / 2
		c.sink.LineTo(mid, c.y)
		c.sink.LineTo(mid, y)
	}
	c.x, c.y = x, y
}

func (c *step) LineEnd() {
	switch c.point {
	case 2:
		c.sink.LineTo(c.x, c.y)
	case 1:
		c.sink.Close()
	}
}
