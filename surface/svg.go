package surface

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/nonnontrivial/mutpoint"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// SVGSurface writes a chart as SVG markup.
//
// Clips become <clipPath> elements referenced by nested <g> groups.
// The document is buffered and written to the writer on End.
type SVGSurface struct {
	w     io.Writer
	buf   bytes.Buffer
	out   []byte
	begun bool
	clips int // clip ids issued in this document
	open  int // open clip groups
}

// NewSVGSurface creates an SVG surface writing to w. w may be nil; the
// markup is then only available through Bytes.
func NewSVGSurface(w io.Writer) *SVGSurface {
	return &SVGSurface{w: w}
}

// Begin starts a new document, discarding any unfinished one.
func (s *SVGSurface) Begin(doc mutpoint.Document) error {
	if doc.Width <= 0 || doc.Height <= 0 {
		return fmt.Errorf("%w: %vx%v", ErrInvalidSize, doc.Width, doc.Height)
	}
	s.buf.Reset()
	s.clips, s.open = 0, 0
	s.begun = true

	w, h := formatNumber(doc.Width), formatNumber(doc.Height)
	fmt.Fprintf(&s.buf, `<svg xmlns="%s" version="1.1" width="%s" height="%s" viewBox="0 0 %s %s"`,
		svgNamespace, w, h, w, h)
	writeAttr(&s.buf, "class", doc.Class)
	writeAttr(&s.buf, "style", styleAttr(doc.Style))
	s.buf.WriteString(">\n")

	if doc.Background != "" {
		fmt.Fprintf(&s.buf, `<rect width="%s" height="%s"`, w, h)
		writeAttr(&s.buf, "fill", doc.Background)
		s.buf.WriteString("/>\n")
	}
	return nil
}

// DrawPath writes a <path> element. Empty paths are skipped.
func (s *SVGSurface) DrawPath(p *mutpoint.Path, style mutpoint.PathStyle, m mutpoint.Matrix) {
	if !s.begun || p.Empty() {
		return
	}
	fmt.Fprintf(&s.buf, `<path d="%s"`, p.String())
	writeAttr(&s.buf, "transform", m.String())
	writeAttr(&s.buf, "fill", style.Fill)
	writeStroke(&s.buf, style.Stroke)
	writeAttr(&s.buf, "class", style.Class)
	writeAttr(&s.buf, "style", styleAttr(style.Style))
	s.buf.WriteString("/>\n")
}

// DrawText writes a <text> element at the transformed position.
func (s *SVGSurface) DrawText(t mutpoint.Text, m mutpoint.Matrix) {
	if !s.begun {
		return
	}
	pos := m.TransformPoint(mutpoint.Pt(t.X, t.Y))
	fmt.Fprintf(&s.buf, `<text x="%s" y="%s"`, formatNumber(pos.X), formatNumber(pos.Y))
	if t.Anchor != mutpoint.AnchorStart {
		writeAttr(&s.buf, "text-anchor", t.Anchor.String())
	}
	if t.Baseline != mutpoint.BaselineAuto {
		writeAttr(&s.buf, "dominant-baseline", t.Baseline.String())
	}
	writeAttr(&s.buf, "font-size", formatNumber(t.FontSize()))
	writeAttr(&s.buf, "fill", t.Color)
	s.buf.WriteByte('>')
	s.buf.WriteString(html.EscapeString(t.Value))
	s.buf.WriteString("</text>\n")
}

// PushClip defines a clip rectangle and opens a group that uses it.
func (s *SVGSurface) PushClip(r mutpoint.Rect) {
	if !s.begun {
		return
	}
	s.clips++
	id := "clip" + strconv.Itoa(s.clips)
	fmt.Fprintf(&s.buf, `<clipPath id="%s"><rect x="%s" y="%s" width="%s" height="%s"/></clipPath>`+"\n",
		id, formatNumber(r.Min.X), formatNumber(r.Min.Y),
		formatNumber(r.Width()), formatNumber(r.Height()))
	fmt.Fprintf(&s.buf, `<g clip-path="url(#%s)">`+"\n", id)
	s.open++
}

// PopClip closes the innermost clip group.
func (s *SVGSurface) PopClip() {
	if !s.begun || s.open == 0 {
		return
	}
	s.buf.WriteString("</g>\n")
	s.open--
}

// End closes open groups and the document, then writes it out.
func (s *SVGSurface) End() error {
	if !s.begun {
		return ErrNotBegun
	}
	for ; s.open > 0; s.open-- {
		s.buf.WriteString("</g>\n")
	}
	s.buf.WriteString("</svg>\n")
	s.begun = false
	s.out = bytes.Clone(s.buf.Bytes())

	if s.w == nil {
		return nil
	}
	if _, err := s.w.Write(s.out); err != nil {
		return fmt.Errorf("surface: write svg: %w", err)
	}
	return nil
}

// Bytes returns the last finished document, or nil before the first End.
func (s *SVGSurface) Bytes() []byte {
	return s.out
}

// String returns the last finished document.
func (s *SVGSurface) String() string {
	return string(s.out)
}

func writeStroke(b *bytes.Buffer, st mutpoint.Stroke) {
	if st.Color == "" {
		return
	}
	writeAttr(b, "stroke", st.Color)
	if st.Width != 1 {
		writeAttr(b, "stroke-width", formatNumber(st.Width))
	}
	if st.Cap != mutpoint.LineCapButt {
		writeAttr(b, "stroke-linecap", st.Cap.String())
	}
	if st.Join != mutpoint.LineJoinMiter {
		writeAttr(b, "stroke-linejoin", st.Join.String())
	}
	if st.IsDashed() {
		parts := make([]string, len(st.Dash))
		for i, d := range st.Dash {
			parts[i] = formatNumber(d)
		}
		writeAttr(b, "stroke-dasharray", strings.Join(parts, ","))
	}
}

// writeAttr writes ` name="value"`, escaped. Empty values are omitted.
func writeAttr(b *bytes.Buffer, name, value string) {
	if value == "" {
		return
	}
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(html.EscapeString(value))
	b.WriteByte('"')
}

// styleAttr renders CSS properties sorted by name.
func styleAttr(style map[string]string) string {
	if len(style) == 0 {
		return ""
	}
	keys := slices.Sorted(maps.Keys(style))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+":"+style[k])
	}
	return strings.Join(parts, ";")
}

func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
