package curve

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder writes segments in a compact text form for comparison.
type recorder struct {
	b strings.Builder
}

func (r *recorder) MoveTo(x, y float64) { fmt.Fprintf(&r.b, "M%g,%g", x, y) }
func (r *recorder) LineTo(x, y float64) { fmt.Fprintf(&r.b, "L%g,%g", x, y) }
func (r *recorder) Close()              { r.b.WriteString("Z") }
func (r *recorder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	fmt.Fprintf(&r.b, "C%g,%g,%g,%g,%g,%g", c1x, c1y, c2x, c2y, x, y)
}

func run(k Kind, pts ...[2]float64) string {
	r := &recorder{}
	c := New(k, r)
	c.LineStart()
	for _, p := range pts {
		c.Point(p[0], p[1])
	}
	c.LineEnd()
	return r.b.String()
}

func TestLinear(t *testing.T) {
	assert.Equal(t, "M0,0L1,2L3,4", run(Linear, [2]float64{0, 0}, [2]float64{1, 2}, [2]float64{3, 4}))
	assert.Equal(t, "M5,5Z", run(Linear, [2]float64{5, 5}))
	assert.Equal(t, "", run(Linear))
}

func TestBasis(t *testing.T) {
	tests := []struct {
		name string
		pts  [][2]float64
		want string
	}{
		{"one", [][2]float64{{1, 1}}, "M1,1Z"},
		{"two", [][2]float64{{0, 0}, {6, 6}}, "M0,0L6,6"},
		{"three", [][2]float64{{0, 0}, {6, 0}, {12, 6}},
			"M0,0L1,0C2,0,4,0,6,1C8,2,10,4,11,5L12,6"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(Basis, tt.pts...))
		})
	}
}

func TestNatural(t *testing.T) {
	assert.Equal(t, "M0,0L10,10", run(Natural, [2]float64{0, 0}, [2]float64{10, 10}))
	assert.Equal(t, "M3,4Z", run(Natural, [2]float64{3, 4}))

	// Collinear, evenly spaced points stay on the line.
	got := run(Natural, [2]float64{0, 0}, [2]float64{3, 3}, [2]float64{6, 6})
	assert.Equal(t, "M0,0C1,1,2,2,3,3C4,4,5,5,6,6", got)
}

func TestNaturalReusesBuffers(t *testing.T) {
	r := &recorder{}
	c := New(Natural, r)
	c.LineStart()
	c.Point(0, 0)
	c.Point(1, 1)
	c.LineEnd()
	c.LineStart()
	c.Point(5, 5)
	c.LineEnd()
	assert.Equal(t, "M0,0L1,1M5,5Z", r.b.String())
}

func TestStep(t *testing.T) {
	got := run(Step, [2]float64{0, 0}, [2]float64{2, 4}, [2]float64{4, 2})
	assert.Equal(t, "M0,0L1,0L1,4L3,4L3,2L4,2", got)
	assert.Equal(t, "M1,1Z", run(Step, [2]float64{1, 1}))
}

func TestControlPoints(t *testing.T) {
	c1, c2 := controlPoints([]float64{0, 1, 2, 3})
	require.Len(t, c1, 3)
	require.Len(t, c2, 3)
	for i := range c1 {
		assert.InDelta(t, float64(i)+1.0/3, c1[i], 1e-12)
		assert.InDelta(t, float64(i)+2.0/3, c2[i], 1e-12)
	}
}

func TestNewUnknownKindFallsBackToLinear(t *testing.T) {
	assert.False(t, Kind(99).Valid())
	assert.Equal(t, "M0,0L1,1", run(Kind(99), [2]float64{0, 0}, [2]float64{1, 1}))
}
