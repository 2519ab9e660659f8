package mutpoint

import "slices"

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// String returns the SVG stroke-linecap keyword.
func (c LineCap) String() string {
	switch c {
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return "butt"
	}
}

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// String returns the SVG stroke-linejoin keyword.
func (j LineJoin) String() string {
	switch j {
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	default:
		return "miter"
	}
}

// Stroke defines the style for stroking paths.
type Stroke struct {
	// Color is an SVG paint value ("#000", "steelblue", "none").
	Color string

	// Width is the line width in pixels. Default: 1.0
	Width float64

	// Cap is the shape of line endpoints. Default: LineCapButt
	Cap LineCap

	// Join is the shape of line joins. Default: LineJoinMiter
	Join LineJoin

	// Dash is the dash pattern for the stroke.
	// nil means a solid line (no dashing).
	Dash []float64
}

// DefaultStroke returns a Stroke with default settings.
// This creates a solid 1-pixel black line with butt caps and miter joins.
func DefaultStroke() Stroke {
	return Stroke{
		Color: "#000",
		Width: 1.0,
		Cap:   LineCapButt,
		Join:  LineJoinMiter,
		Dash:  nil,
	}
}

// LineStroke returns the stroke a Line draws with when none is given:
// 2 pixels, black, with round caps and joins.
func LineStroke() Stroke {
	return DefaultStroke().WithWidth(2).WithCap(LineCapRound).WithJoin(LineJoinRound)
}

// GridStroke returns the light hairline used for grid rules.
func GridStroke() Stroke {
	return DefaultStroke().WithColor("#e0e0e0")
}

// WithColor returns a copy of the Stroke with the given color.
func (s Stroke) WithColor(c string) Stroke {
	s.Color = c
	return s
}

// WithWidth returns a copy of the Stroke with the given width.
func (s Stroke) WithWidth(w float64) Stroke {
	s.Width = w
	return s
}

// WithCap returns a copy of the Stroke with the given line cap.
func (s Stroke) WithCap(lineCap LineCap) Stroke {
	s.Cap = lineCap
	return s
}

// WithJoin returns a copy of the Stroke with the given line join.
func (s Stroke) WithJoin(join LineJoin) Stroke {
	s.Join = join
	return s
}

// WithDashPattern returns a copy of the Stroke with the given dash pattern.
// Call with no arguments for a solid line.
func (s Stroke) WithDashPattern(lengths ...float64) Stroke {
	if len(lengths) == 0 {
		s.Dash = nil
		return s
	}
	s.Dash = slices.Clone(lengths)
	return s
}

// IsDashed returns true if this stroke has a dash pattern.
func (s Stroke) IsDashed() bool {
	return len(s.Dash) > 0
}

// IsZero reports whether s is the zero Stroke, which renderers replace with
// their own default.
func (s Stroke) IsZero() bool {
	return s.Color == "" && s.Width == 0 && s.Cap == 0 && s.Join == 0 && s.Dash == nil
}

// Clone creates a deep copy of the Stroke.
func (s Stroke) Clone() Stroke {
	s.Dash = slices.Clone(s.Dash)
	return s
}

// orDefault returns s, or def when s is the zero Stroke.
func (s Stroke) orDefault(def Stroke) Stroke {
	if s.IsZero() {
		return def
	}
	return s
}
