package surface

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nonnontrivial/mutpoint"
)

// DefaultColumns is the terminal canvas width when neither the columns nor
// the rows are given.
const DefaultColumns = 80

// TermSurface renders a chart as braille characters for a terminal.
//
// Each cell holds 2x4 dots. Paths are flattened and drawn as outlines;
// fills are not rasterized. Labels overwrite the cells they cover. With
// color enabled, each cell takes the color of its last mark; black is
// left to the terminal's default foreground.
type TermSurface struct {
	w          io.Writer
	cols, rows int
	color      bool
	buf        *brailleBuf
	sx, sy     float64 // dots per document unit
	clips      []mutpoint.Rect
	lines      []string
	styles     map[string]lipgloss.Style
}

// NewTermSurface creates a terminal surface of cols x rows cells writing
// to w. Zero sizes are derived from the document aspect ratio, assuming
// cells twice as tall as wide. w may be nil; the output is then only
// available through Lines and String.
func NewTermSurface(w io.Writer, cols, rows int) *TermSurface {
	return &TermSurface{
		w:      w,
		cols:   max(cols, 0),
		rows:   max(rows, 0),
		styles: make(map[string]lipgloss.Style),
	}
}

// SetColor enables or disables ANSI colors in the output.
func (s *TermSurface) SetColor(enabled bool) {
	s.color = enabled
}

// Resize changes the canvas size used by the next Begin.
func (s *TermSurface) Resize(cols, rows int) {
	s.cols, s.rows = max(cols, 0), max(rows, 0)
}

// Begin allocates the cell canvas for doc.
func (s *TermSurface) Begin(doc mutpoint.Document) error {
	if doc.Width <= 0 || doc.Height <= 0 {
		return fmt.Errorf("%w: %vx%v", ErrInvalidSize, doc.Width, doc.Height)
	}
	cols, rows := s.cols, s.rows
	switch {
	case cols == 0 && rows == 0:
		cols = DefaultColumns
		fallthrough
	case rows == 0:
		rows = max(1, int(math.Round(float64(cols)*doc.Height/(2*doc.Width))))
	case cols == 0:
		cols = max(1, int(math.Round(float64(rows)*2*doc.Width/doc.Height)))
	}

	s.buf = newBrailleBuf(cols, rows)
	s.sx = float64(cols*2) / doc.Width
	s.sy = float64(rows*4) / doc.Height
	s.clips = append(s.clips[:0], mutpoint.Rect{Max: mutpoint.Pt(doc.Width, doc.Height)})
	return nil
}

// DrawPath draws the outline of p under m, in the stroke color or, for
// unstroked paths, the fill color.
func (s *TermSurface) DrawPath(p *mutpoint.Path, style mutpoint.PathStyle, m mutpoint.Matrix) {
	if s.buf == nil || p.Empty() {
		return
	}
	c, ok := mutpoint.ParseColor(style.Stroke.Color)
	if !ok || style.Stroke.Width <= 0 {
		if c, ok = mutpoint.ParseColor(style.Fill); !ok {
			return
		}
	}
	color := s.colorKey(c)

	clip := s.clip()
	if clip.Empty() {
		return
	}
	keep := func(mx, my int) bool {
		return clip.Contains(mutpoint.Pt((float64(mx)+0.5)/s.sx, (float64(my)+0.5)/s.sy))
	}

	tolerance := 0.5 / math.Max(s.sx, s.sy)
	for _, line := range p.Transform(m).Flatten(tolerance) {
		x0, y0 := s.dot(line[0])
		if len(line) == 1 {
			if keep(x0, y0) {
				s.buf.setDot(x0, y0, color)
			}
			continue
		}
		for _, pt := range line[1:] {
			x1, y1 := s.dot(pt)
			s.buf.line(x0, y0, x1, y1, color, keep)
			x0, y0 = x1, y1
		}
	}
}

// DrawText writes a label into the cells around its transformed position.
func (s *TermSurface) DrawText(t mutpoint.Text, m mutpoint.Matrix) {
	if s.buf == nil || t.Value == "" {
		return
	}
	clip := s.clip()
	if clip.Empty() {
		return
	}
	var color string
	if c, ok := mutpoint.ParseColor(t.Color); ok {
		color = s.colorKey(c)
	}

	pos := m.TransformPoint(mutpoint.Pt(t.X, t.Y))
	col := pos.X * s.sx / 2
	row := pos.Y * s.sy / 4

	n := float64(len([]rune(t.Value)))
	cx := int(math.Round(col - n*t.Anchor.Fraction()))
	var cy int
	if t.Baseline == mutpoint.BaselineAuto {
		cy = int(math.Ceil(row)) - 1
	} else {
		cy = int(math.Floor(row))
	}
	cy = min(cy, s.buf.h-1)

	s.buf.text(cx, cy, t.Value, color, func(x, y int) bool {
		return clip.Contains(mutpoint.Pt((float64(x)+0.5)*2/s.sx, (float64(y)+0.5)*4/s.sy))
	})
}

// PushClip intersects the clip with r.
func (s *TermSurface) PushClip(r mutpoint.Rect) {
	if s.buf == nil {
		return
	}
	s.clips = append(s.clips, s.clip().Intersect(r))
}

// PopClip restores the clip in effect before the matching PushClip.
func (s *TermSurface) PopClip() {
	if len(s.clips) > 1 {
		s.clips = s.clips[:len(s.clips)-1]
	}
}

// End renders the canvas to lines and writes them, newline-terminated.
func (s *TermSurface) End() error {
	if s.buf == nil {
		return ErrNotBegun
	}
	s.lines = s.render()
	s.buf = nil
	s.clips = s.clips[:0]

	if s.w == nil {
		return nil
	}
	if _, err := io.WriteString(s.w, s.String()+"\n"); err != nil {
		return fmt.Errorf("surface: write terminal: %w", err)
	}
	return nil
}

// Lines returns the rows of the last finished canvas.
func (s *TermSurface) Lines() []string {
	return s.lines
}

// String returns the last finished canvas with rows joined by newlines.
func (s *TermSurface) String() string {
	return strings.Join(s.lines, "\n")
}

func (s *TermSurface) render() []string {
	out := make([]string, s.buf.h)
	var row, run strings.Builder
	for y := range s.buf.h {
		row.Reset()
		run.Reset()
		runColor := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if s.color && runColor != "" {
				row.WriteString(s.style(runColor).Render(run.String()))
			} else {
				row.WriteString(run.String())
			}
			run.Reset()
		}
		for x := range s.buf.w {
			r, c := s.buf.cell(x, y)
			if r == ' ' {
				c = runColor // blanks never split a run
			}
			if c != runColor {
				flush()
				runColor = c
			}
			run.WriteRune(r)
		}
		flush()
		out[y] = row.String()
	}
	return out
}

func (s *TermSurface) style(color string) lipgloss.Style {
	st, ok := s.styles[color]
	if !ok {
		st = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
		s.styles[color] = st
	}
	return st
}

// colorKey returns the hex color used for c, or "" for black.
func (s *TermSurface) colorKey(c mutpoint.RGBA) string {
	hex := c.Hex()
	if hex == mutpoint.Black.Hex() {
		return ""
	}
	return hex
}

func (s *TermSurface) clip() mutpoint.Rect {
	return s.clips[len(s.clips)-1]
}

// dot maps a document point to dot coordinates, clamping the far edges
// onto the last dot.
func (s *TermSurface) dot(p mutpoint.Point) (int, int) {
	mx := int(math.Floor(p.X * s.sx))
	my := int(math.Floor(p.Y * s.sy))
	return min(mx, s.buf.w*2-1), min(my, s.buf.h*4-1)
}
