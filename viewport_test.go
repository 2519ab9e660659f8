package mutpoint

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultViewport(t *testing.T) {
	vp := DefaultViewport()
	if vp.Width != 500 || vp.Height != 300 || vp.Margin != (Margin{}) {
		t.Errorf("DefaultViewport() = %+v, want 500x300 without margins", vp)
	}
	if err := vp.Validate(); err != nil {
		t.Errorf("DefaultViewport().Validate() = %v", err)
	}
}

func TestViewport_Validate(t *testing.T) {
	tests := []struct {
		name  string
		vp    Viewport
		field string
	}{
		{"zero width", Viewport{Height: 10}, "width"},
		{"NaN height", Viewport{Width: 10, Height: math.NaN()}, "height"},
		{"infinite width", Viewport{Width: math.Inf(1), Height: 10}, "width"},
		{"negative margin", Viewport{Width: 10, Height: 10, Margin: Margin{Top: -1}}, "margin.top"},
		{"horizontal margins", Viewport{Width: 10, Height: 10, Margin: Margin{Left: 5, Right: 5}}, "margin.left+margin.right"},
		{"vertical margins", Viewport{Width: 10, Height: 10, Margin: Margin{Top: 8, Bottom: 3}}, "margin.top+margin.bottom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.vp.Validate()
			if !errors.Is(err, ErrInvalidViewport) {
				t.Fatalf("Validate() = %v, want ErrInvalidViewport", err)
			}
			var ve *ViewportError
			if !errors.As(err, &ve) || ve.Field != tt.field {
				t.Errorf("Validate() field = %v, want %q", err, tt.field)
			}
		})
	}
}

func TestViewport_Inner(t *testing.T) {
	vp := Viewport{Width: 500, Height: 300, Margin: Margin{Left: 40, Right: 10, Top: 20, Bottom: 30}}
	want := Rect{Min: Pt(40, 20), Max: Pt(490, 270)}
	if got := vp.Inner(); got != want {
		t.Errorf("Inner() = %v, want %v", got, want)
	}
	if got := vp.Bounds(); got != (Rect{Max: Pt(500, 300)}) {
		t.Errorf("Bounds() = %v", got)
	}
}

func TestRect_Intersect(t *testing.T) {
	a := Rect{Min: Pt(0, 0), Max: Pt(10, 10)}
	b := Rect{Min: Pt(5, -5), Max: Pt(20, 5)}
	if got, want := a.Intersect(b), (Rect{Min: Pt(5, 0), Max: Pt(10, 5)}); got != want {
		t.Errorf("Intersect() = %v, want %v", got, want)
	}
	c := Rect{Min: Pt(11, 11), Max: Pt(12, 12)}
	if got := a.Intersect(c); !got.Empty() {
		t.Errorf("Intersect() of disjoint rects = %v, want empty", got)
	}
}
