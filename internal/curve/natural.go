package curve

// natural draws a natural cubic spline: the curve passes through every
// point and its second derivative is zero at both ends.
type natural struct {
	sink Sink
	xs   []float64
	ys   []float64
}

func newNatural(s Sink) Interpolator {
	return &natural{sink: s}
}

func (c *natural) LineStart() {
	c.xs = c.xs[:0]
	c.ys = c.ys[:0]
}

func (c *natural) Point(x, y float64) {
	c.xs = append(c.xs, x)
	c.ys = append(c.ys, y)
}

func (c *natural) LineEnd() {
	n := len(c.xs)
	switch {
	case n == 0:
		return
	case n == 1:
		c.sink.MoveTo(c.xs[0], c.ys[0])
		c.sink.Close()
		return
	}

	c.sink.MoveTo(c.xs[0], c.ys[0])
	if n == 2 {
		c.sink.LineTo(c.xs[1], c.ys[1])
		return
	}
	px1, px2 := controlPoints(c.xs)
	py1, py2 := controlPoints(c.ys)
	for i := 1; i < n; i++ {
		c.sink.CubicTo(px1[i-1], py1[i-1], px2[i-1], py2[i-1], c.xs[i], c.ys[i])
	}
}

// controlPoints solves the tridiagonal system for the Bezier control
// points of one coordinate. x must hold at least three values. The first
// and second control points of segment i are c1[i] and c2[i].
func controlPoints(x []float64) (c1, c2 []float64) {
	n := len(x) - 1
	a := make([]float64, n)
	b := make([]float64, n)
	r := make([]float64, n)

	a[0], b[0], r[0] = 0, 2, x[0]+2*x[1]
	for i := 1; i < n-1; i++ {
		a[i], b[i], r[i] = 1, 4, 4*x[i]+2*x[i+1]
	}
	a[n-1], b[n-1], r[n-1] = 2, 7, 8*x[n-1]+x[n]

	for i := 1; i < n; i++ {
		m := a[i] / b[i-1]
		b[i] -= m
		r[i] -= m * r[i-1]
	}

	a[n-1] = r[n-1] / b[n-1]
	for i := n - 2; i >= 0; i-- {
		a[i] = (r[i] - a[i+1]) / b[i]
	}
	b[n-1] = (x[n] + a[n-1]) / 2
	for i := 0; i < n-1; i++ {
		b[i] = 2*x[i+1] - a[i+1]
	}
	return a, b
}
