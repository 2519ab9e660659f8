package mutpoint

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func TestScale_Apply(t *testing.T) {
	tests := []struct {
		name string
		s    Scale
		in   float64
		want float64
	}{
		{"start", NewScale(0, 10, 0, 500), 0, 0},
		{"end", NewScale(0, 10, 0, 500), 10, 500},
		{"middle", NewScale(0, 10, 0, 500), 5, 250},
		{"extrapolate", NewScale(0, 10, 0, 500), 20, 1000},
		{"inverted range", NewScale(0, 5, 300, 0), 5, 0},
		{"inverted range start", NewScale(0, 5, 300, 0), 0, 300},
		{"degenerate domain", NewScale(0, 0, 0, 500), 0, 250},
		{"degenerate domain other value", NewScale(3, 3, 300, 0), 42, 150},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Apply(tt.in); got != tt.want {
				t.Errorf("Apply(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestScale_Invert(t *testing.T) {
	s := NewScale(0, 100, 300, 0)
	for _, v := range []float64{0, 12.5, 50, 100} {
		if got := s.Invert(s.Apply(v)); math.Abs(got-v) > 1e-9 {
			t.Errorf("Invert(Apply(%v)) = %v", v, got)
		}
	}
}

func TestScale_Nice(t *testing.T) {
	tests := []struct {
		name   string
		d0, d1 float64
		w0, w1 float64
	}{
		{"round up to 100", 0, 97, 0, 100},
		{"already nice", 0, 5, 0, 5},
		{"fraction", 0, 0.97, 0, 1},
		{"integer steps", 0, 12, 0, 12},
		{"two rounds", 0, 1234, 0, 1300},
		{"negative lower bound", -3, 7, -3, 7},
		{"negative extends down", -97, 0, -100, 0},
		{"reversed", 97, 0, 100, 0},
		{"degenerate zero", 0, 0, 0, 0},
		{"degenerate nonzero", 4, 4, 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d0, d1 := NewScale(tt.d0, tt.d1, 0, 1).Nice(DefaultTickCount).Domain()
			if d0 != tt.w0 || d1 != tt.w1 {
				t.Errorf("Nice([%v, %v]) = [%v, %v], want [%v, %v]", tt.d0, tt.d1, d0, d1, tt.w0, tt.w1)
			}
		})
	}
}

func TestScale_NiceNonPositiveCount(t *testing.T) {
	d0, d1 := NewScale(0, 97, 0, 1).Nice(0).Domain()
	if d0 != 0 || d1 != 97 {
		t.Errorf("Nice(0) = [%v, %v], want domain unchanged", d0, d1)
	}
}

func TestBuildScale(t *testing.T) {
	points := Series{{X: 0, Y: 0}, {X: 1, Y: 5}}
	x, err := BuildScale(points, DefaultViewport(), AxisX)
	if err != nil {
		t.Fatalf("BuildScale(x) error = %v", err)
	}
	y, err := BuildScale(points, DefaultViewport(), AxisY)
	if err != nil {
		t.Fatalf("BuildScale(y) error = %v", err)
	}

	if d0, d1 := x.Domain(); d0 != 0 || d1 != 1 {
		t.Errorf("x.Domain() = [%v, %v], want [0, 1]", d0, d1)
	}
	if r0, r1 := x.Range(); r0 != 0 || r1 != 500 {
		t.Errorf("x.Range() = [%v, %v], want [0, 500]", r0, r1)
	}
	if d0, d1 := y.Domain(); d0 != 0 || d1 != 5 {
		t.Errorf("y.Domain() = [%v, %v], want [0, 5]", d0, d1)
	}
	if r0, r1 := y.Range(); r0 != 300 || r1 != 0 {
		t.Errorf("y.Range() = [%v, %v], want [300, 0]", r0, r1)
	}
}

func TestBuildScale_Margins(t *testing.T) {
	vp := Viewport{Width: 500, Height: 300, Margin: Margin{Left: 40, Right: 10, Top: 20, Bottom: 30}}
	x, y, err := BuildScales(Series{{X: 0, Y: 0}, {X: 10, Y: 10}}, vp)
	if err != nil {
		t.Fatalf("BuildScales() error = %v", err)
	}
	if r0, r1 := x.Range(); r0 != 40 || r1 != 490 {
		t.Errorf("x.Range() = [%v, %v], want [40, 490]", r0, r1)
	}
	if r0, r1 := y.Range(); r0 != 270 || r1 != 20 {
		t.Errorf("y.Range() = [%v, %v], want [270, 20]", r0, r1)
	}
}

func TestBuildScale_Floor(t *testing.T) {
	points := Series{{X: 1, Y: -3}, {X: 2, Y: 7}}

	zero, err := BuildScale(points, DefaultViewport(), AxisY)
	if err != nil {
		t.Fatal(err)
	}
	if d0, _ := zero.Domain(); d0 != 0 {
		t.Errorf("FloorZero lower bound = %v, want 0", d0)
	}

	observed, err := BuildScale(points, DefaultViewport(), AxisY, WithFloor(FloorObserved))
	if err != nil {
		t.Fatal(err)
	}
	if d0, d1 := observed.Domain(); d0 != -3 || d1 != 7 {
		t.Errorf("FloorObserved domain = [%v, %v], want [-3, 7]", d0, d1)
	}

	// Observed minimum above zero still floors at zero.
	x, err := BuildScale(points, DefaultViewport(), AxisX, WithFloor(FloorObserved))
	if err != nil {
		t.Fatal(err)
	}
	if d0, _ := x.Domain(); d0 != 0 {
		t.Errorf("FloorObserved x lower bound = %v, want 0", d0)
	}
}

func TestBuildScale_Errors(t *testing.T) {
	tests := []struct {
		name   string
		points Series
		vp     Viewport
		want   error
	}{
		{"empty series", Series{}, DefaultViewport(), ErrEmptySeries},
		{"nil series", nil, DefaultViewport(), ErrEmptySeries},
		{"no defined values", Series{{X: math.NaN(), Y: math.Inf(1)}}, DefaultViewport(), ErrEmptySeries},
		{"zero width", Series{{X: 1, Y: 1}}, Viewport{Height: 300}, ErrInvalidViewport},
		{"margins too wide", Series{{X: 1, Y: 1}}, Viewport{Width: 100, Height: 100, Margin: Margin{Left: 60, Right: 40}}, ErrInvalidViewport},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildScale(tt.points, tt.vp, AxisX)
			if !errors.Is(err, tt.want) {
				t.Errorf("BuildScale() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBuildScale_ViewportErrorDetail(t *testing.T) {
	_, err := BuildScale(Series{{X: 1, Y: 1}}, Viewport{Width: 100, Height: -1}, AxisY)
	var ve *ViewportError
	if !errors.As(err, &ve) {
		t.Fatalf("BuildScale() error = %v, want *ViewportError", err)
	}
	if ve.Field != "height" {
		t.Errorf("ViewportError.Field = %q, want height", ve.Field)
	}
}

func TestBuildScale_AllZero(t *testing.T) {
	points := Series{{X: 0, Y: 0}, {X: 0, Y: 0}}
	x, y, err := BuildScales(points, DefaultViewport())
	if err != nil {
		t.Fatalf("BuildScales() error = %v", err)
	}
	_, d1 := y.Domain()
	if d1 < 0 || math.IsNaN(d1) {
		t.Errorf("y upper bound = %v, want >= 0 and not NaN", d1)
	}
	if got := y.Apply(0); math.IsNaN(got) || got != 150 {
		t.Errorf("y.Apply(0) = %v, want 150", got)
	}
	if got := x.Apply(0); math.IsNaN(got) || got != 250 {
		t.Errorf("x.Apply(0) = %v, want 250", got)
	}
}

func TestBuildScale_Idempotent(t *testing.T) {
	points := Series{{X: 0, Y: 3}, {X: 4, Y: 9.5}, {X: 7, Y: 1}}
	vp := Viewport{Width: 640, Height: 480, Margin: Margin{Left: 30, Bottom: 20}}
	a, err := BuildScale(points, vp, AxisY)
	if err != nil {
		t.Fatal(err)
	}
	b, err := BuildScale(points, vp, AxisY)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("BuildScale() not idempotent: %v != %v", a, b)
	}
}

func TestBuildScale_Monotonic(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := range 50 {
		n := 2 + rng.IntN(20)
		points := make(Series, n)
		for j := range points {
			points[j] = Pt(rng.Float64()*1000, rng.Float64()*50)
		}
		x, y, err := BuildScales(points, DefaultViewport())
		if err != nil {
			t.Fatalf("case %d: BuildScales() error = %v", i, err)
		}
		for k := range 20 {
			a := float64(k) * 50
			b := a + 25
			if x.Apply(a) > x.Apply(b) {
				t.Errorf("case %d: x not non-decreasing at %v", i, a)
			}
			if y.Apply(a/20) < y.Apply(b/20) {
				t.Errorf("case %d: y not non-increasing at %v", i, a/20)
			}
		}
	}
}
