package mutpoint

import "math"

// FlattenTolerance is the default maximum distance between a curve and
// its flattened polyline.
const FlattenTolerance = 0.1

// maxFlattenDepth bounds curve subdivision to 2^16 segments per curve.
const maxFlattenDepth = 16

// Flatten converts the path into polylines, one per subpath, with every
// curve replaced by line segments no farther than tolerance from it.
// A non-positive tolerance means FlattenTolerance. Closed subpaths end
// with their starting point.
func (p *Path) Flatten(tolerance float64) [][]Point {
	if tolerance <= 0 {
		tolerance = FlattenTolerance
	}

	var (
		lines   [][]Point
		line    []Point
		current Point
	)
	flush := func() {
		if len(line) > 0 {
			lines = append(lines, line)
		}
		line = nil
	}

	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			current = e.Point
			line = append(line, current)

		case LineTo:
			current = e.Point
			line = append(line, current)

		case QuadTo:
			flattenQuadratic(current, e.Control, e.Point, tolerance, 0, &line)
			current = e.Point

		case CubicTo:
			flattenCubic(current, e.Control1, e.Control2, e.Point, tolerance, 0, &line)
			current = e.Point

		case Close:
			if len(line) > 0 {
				current = line[0]
				line = append(line, current)
			}
			flush()
		}
	}
	flush()

	return lines
}

func flattenQuadratic(p0, p1, p2 Point, tolerance float64, depth int, points *[]Point) {
	if depth >= maxFlattenDepth || distanceToSegment(p1, p0, p2) < tolerance {
		*points = append(*points, p2)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)

	flattenQuadratic(p0, q0, q2, tolerance, depth+1, points)
	flattenQuadratic(q2, q1, p2, tolerance, depth+1, points)
}

// flattenCubic subdivides with de Casteljau until both control points lie
// within tolerance of the chord.
func flattenCubic(p0, p1, p2, p3 Point, tolerance float64, depth int, points *[]Point) {
	dist := math.Max(distanceToSegment(p1, p0, p3), distanceToSegment(p2, p0, p3))
	if depth >= maxFlattenDepth || dist < tolerance {
		*points = append(*points, p3)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	flattenCubic(p0, q0, r0, s, tolerance, depth+1, points)
	flattenCubic(s, r1, q2, p3, tolerance, depth+1, points)
}

// distanceToSegment returns the distance from p to the segment a-b.
func distanceToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLen := ab.Length()
	if abLen < 1e-10 {
		return p.Distance(a)
	}

	t := p.Sub(a).Dot(ab) / (abLen * abLen)
	switch {
	case t < 0:
		return p.Distance(a)
	case t > 1:
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}
