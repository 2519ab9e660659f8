package mutpoint

import (
	"testing"
)

func TestIsTranslation(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want bool
	}{
		{"identity", Identity(), true},
		{"pure translation", Translate(10, 20), true},
		{"zero translation", Translate(0, 0), true},
		{"negative translation", Translate(-5, -3), true},
		{"scale", Matrix{A: 2, E: 2}, false},
		{"zero matrix", Matrix{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.IsTranslation()
			if got != tt.want {
				t.Errorf("Matrix%+v.IsTranslation() = %v, want %v", tt.m, got, tt.want)
			}
		})
	}
}

func TestMatrixMultiplyTranslations(t *testing.T) {
	m := Translate(10, 20).Multiply(Translate(1, 2))
	if got, want := m.TransformPoint(Pt(0, 0)), Pt(11, 22); got != want {
		t.Errorf("TransformPoint() = %v, want %v", got, want)
	}
	if inv := m.Invert().TransformPoint(Pt(11, 22)); inv != Pt(0, 0) {
		t.Errorf("Invert().TransformPoint() = %v, want origin", inv)
	}
}

func TestMatrixString(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want string
	}{
		{"identity", Identity(), ""},
		{"translate", Translate(40, 270), "translate(40,270)"},
		{"fractional", Translate(0.5, -1.25), "translate(0.5,-1.25)"},
		{"scale", Matrix{A: 2, E: 3, C: 1}, "matrix(2,0,0,3,1,0)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMatrixTransformRect(t *testing.T) {
	r := Rect{Min: Pt(0, 0), Max: Pt(10, 5)}
	got := Translate(3, 4).TransformRect(r)
	want := Rect{Min: Pt(3, 4), Max: Pt(13, 9)}
	if got != want {
		t.Errorf("TransformRect() = %v, want %v", got, want)
	}
}
