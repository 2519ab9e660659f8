package mutpoint

import (
	"math"
	"slices"
)

// Point is a single data point or a device-space position.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Defined reports whether both coordinates are finite.
// Undefined points break a line into separate subpaths.
func (p Point) Defined() bool {
	return finite(p.X) && finite(p.Y)
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, values in between interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// coord returns the coordinate of p on the given axis.
func (p Point) coord(axis Axis) float64 {
	if axis == AxisY {
		return p.Y
	}
	return p.X
}

// Axis selects one coordinate of a Point.
type Axis int

const (
	// AxisX is the horizontal axis.
	AxisX Axis = iota
	// AxisY is the vertical axis.
	AxisY
)

// String returns "x" or "y".
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "Axis(?)"
	}
}

// Series is an ordered sequence of points. Order is meaningful: it is the
// order in which a line visits the points.
type Series []Point

// Max returns the largest finite coordinate on axis.
// ok is false when the series has no finite coordinate on that axis.
func (s Series) Max(axis Axis) (v float64, ok bool) {
	for _, p := range s {
		c := p.coord(axis)
		if !finite(c) {
			continue
		}
		if !ok || c > v {
			v, ok = c, true
		}
	}
	return v, ok
}

// Min returns the smallest finite coordinate on axis.
// ok is false when the series has no finite coordinate on that axis.
func (s Series) Min(axis Axis) (v float64, ok bool) {
	for _, p := range s {
		c := p.coord(axis)
		if !finite(c) {
			continue
		}
		if !ok || c < v {
			v, ok = c, true
		}
	}
	return v, ok
}

// Defined returns the number of points with both coordinates finite.
func (s Series) Defined() int {
	n := 0
	for _, p := range s {
		if p.Defined() {
			n++
		}
	}
	return n
}

// Clone returns a copy of the series. A nil series stays nil.
func (s Series) Clone() Series {
	return slices.Clone(s)
}

// Equal reports whether two series hold the same points in the same order.
// NaN coordinates compare equal to each other.
func (s Series) Equal(other Series) bool {
	return slices.EqualFunc(s, other, func(a, b Point) bool {
		return sameFloat(a.X, b.X) && sameFloat(a.Y, b.Y)
	})
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func sameFloat(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}
