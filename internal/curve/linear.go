package curve

// linear joins consecutive points with straight segments.
type linear struct {
	sink  Sink
	point int
}

func newLinear(s Sink) Interpolator {
	return &linear{sink: s}
}

func (c *linear) LineStart() {
	c.point = 0
}

func (c *linear) Point(x, y float64) {
	if c.point == 0 {
		c.point = 1
		c.sink.MoveTo(x, y)
		return
	}
	c.point = 2
	c.sink.LineTo(x, y)
}

func (c *linear) LineEnd() {
	if c.point == 1 {
		c.sink.Close()
	}
}
