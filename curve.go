package mutpoint

import (
	"fmt"
	"strings"

	"github.com/nonnontrivial/mutpoint/internal/curve"
)

// CurveKind selects how a line interpolates between its points.
// The zero value is CurveLinear.
type CurveKind int

const (
	// CurveLinear joins points with straight segments.
	CurveLinear CurveKind = iota

	// CurveBasis draws a cubic B-spline using the points as control points.
	// The curve passes through the first and last point only.
	CurveBasis

	// CurveNatural draws a natural cubic spline through every point.
	CurveNatural

	// CurveStep draws horizontal and vertical segments, stepping halfway
	// between points.
	CurveStep
)

var curveNames = [...]string{
	CurveLinear:  "linear",
	CurveBasis:   "basis",
	CurveNatural: "natural",
	CurveStep:    "step",
}

var curveKinds = [...]curve.Kind{
	CurveLinear:  curve.Linear,
	CurveBasis:   curve.Basis,
	CurveNatural: curve.Natural,
	CurveStep:    curve.Step,
}

// String returns the lower-case name of the curve kind.
func (k CurveKind) String() string {
	if k >= 0 && int(k) < len(curveNames) {
		return curveNames[k]
	}
	return fmt.Sprintf("CurveKind(%d)", int(k))
}

// ParseCurveKind returns the curve kind with the given name.
// Matching is case-insensitive; the empty string is CurveLinear.
func ParseCurveKind(name string) (CurveKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return CurveLinear, nil
	}
	for k, n := range curveNames {
		if n == name {
			return CurveKind(k), nil
		}
	}
	return CurveLinear, fmt.Errorf("mutpoint: unknown curve %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (k CurveKind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(curveNames) {
		return nil, fmt.Errorf("mutpoint: invalid curve kind %d", int(k))
	}
	return []byte(curveNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *CurveKind) UnmarshalText(text []byte) error {
	parsed, err := ParseCurveKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// interpolator returns the interpolator for k writing to p.
// Unknown kinds interpolate linearly.
func (k CurveKind) interpolator(p *Path) curve.Interpolator {
	ck := curve.Linear
	if k >= 0 && int(k) < len(curveKinds) {
		ck = curveKinds[k]
	}
	return curve.New(ck, p)
}
