package mutpoint

// Surface receives the drawing operations of one render pass.
//
// A pass is Begin, any number of draw and clip calls, then End. Clips nest:
// every PushClip is matched by a PopClip, and drawing is restricted to the
// intersection of all pushed rectangles. Implementations live in the
// surface package (SVG, PNG, terminal).
//
// Surfaces are not safe for concurrent use.
type Surface interface {
	// Begin starts a document of the given size.
	Begin(doc Document) error

	// DrawPath strokes and fills p, transformed by m.
	DrawPath(p *Path, style PathStyle, m Matrix)

	// DrawText draws a text label at its position transformed by m.
	DrawText(t Text, m Matrix)

	// PushClip restricts drawing to r, given in document coordinates.
	PushClip(r Rect)

	// PopClip removes the most recent clip.
	PopClip()

	// End finishes the document and flushes it to its destination.
	End() error
}

// Document describes the chart container.
type Document struct {
	Width  float64
	Height float64

	// Class is the container class name; SVG output only.
	Class string

	// Style holds inline CSS properties for the container; SVG output only.
	Style map[string]string

	// Background fills the whole document when set.
	Background string
}

// PathStyle is the paint applied to a drawn path.
type PathStyle struct {
	Stroke Stroke

	// Fill is an SVG paint value. Empty and "none" leave the path unfilled.
	Fill string

	// Class and Style are passed through to SVG output.
	Class string
	Style map[string]string
}

// TextAnchor is the horizontal alignment of a label relative to its
// position.
type TextAnchor int

const (
	// AnchorStart aligns the label's start with its position.
	AnchorStart TextAnchor = iota
	// AnchorMiddle centers the label on its position.
	AnchorMiddle
	// AnchorEnd aligns the label's end with its position.
	AnchorEnd
)

// String returns the SVG text-anchor keyword.
func (a TextAnchor) String() string {
	switch a {
	case AnchorMiddle:
		return "middle"
	case AnchorEnd:
		return "end"
	default:
		return "start"
	}
}

// Fraction returns how far along the label's width its position sits:
// 0 for start, 0.5 for middle, 1 for end.
func (a TextAnchor) Fraction() float64 {
	switch a {
	case AnchorMiddle:
		return 0.5
	case AnchorEnd:
		return 1
	default:
		return 0
	}
}

// TextBaseline is the vertical alignment of a label relative to its
// position.
type TextBaseline int

const (
	// BaselineAuto puts the alphabetic baseline at the position.
	BaselineAuto TextBaseline = iota
	// BaselineMiddle centers the label vertically on the position.
	BaselineMiddle
	// BaselineHanging hangs the label below the position.
	BaselineHanging
)

// String returns the SVG dominant-baseline keyword.
func (b TextBaseline) String() string {
	switch b {
	case BaselineMiddle:
		return "middle"
	case BaselineHanging:
		return "hanging"
	default:
		return "auto"
	}
}

// Fraction returns how far below the position the baseline sits, as a
// fraction of the line height.
func (b TextBaseline) Fraction() float64 {
	switch b {
	case BaselineMiddle:
		return 0.5
	case BaselineHanging:
		return 1
	default:
		return 0
	}
}

// DefaultFontSize is the label size in pixels when Text.Size is zero.
const DefaultFontSize = 10

// Text is a positioned label.
type Text struct {
	Value    string
	X, Y     float64
	Anchor   TextAnchor
	Baseline TextBaseline

	// Size is the font size in pixels. Zero means DefaultFontSize.
	Size float64

	// Color is an SVG paint value. Empty means black.
	Color string
}

// FontSize returns t.Size, or DefaultFontSize when unset.
func (t Text) FontSize() float64 {
	if t.Size > 0 {
		return t.Size
	}
	return DefaultFontSize
}
