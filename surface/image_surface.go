// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/nonnontrivial/mutpoint"
)

// ImageSurface renders a chart to a raster image using gg and encodes it
// as PNG on End.
//
// Labels use the Go Regular font. Text positions follow the transform;
// glyphs are drawn upright at the font size times the surface scale.
type ImageSurface struct {
	w     io.Writer
	scale float64

	dc    *gg.Context
	img   image.Image
	font  *text.FontSource
	faces map[float64]text.Face
	err   error
}

// NewImageSurface creates a raster surface writing PNG data to w.
// scale multiplies the document size; zero or negative means 1.
// w may be nil; the image is then only available through Image.
func NewImageSurface(w io.Writer, scale float64) *ImageSurface {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1
	}
	return &ImageSurface{w: w, scale: scale}
}

// Begin allocates the canvas and paints the background, white unless the
// document names another color.
func (s *ImageSurface) Begin(doc mutpoint.Document) error {
	if doc.Width <= 0 || doc.Height <= 0 {
		return fmt.Errorf("%w: %vx%v", ErrInvalidSize, doc.Width, doc.Height)
	}
	s.release()
	s.err = nil

	width := int(math.Ceil(doc.Width * s.scale))
	height := int(math.Ceil(doc.Height * s.scale))
	s.dc = gg.NewContext(width, height)

	bg := mutpoint.White
	if c, ok := mutpoint.ParseColor(doc.Background); ok {
		bg = c
	}
	s.dc.SetColor(bg.Color())
	s.dc.DrawRectangle(0, 0, float64(width), float64(height))
	s.record(s.dc.Fill())

	s.dc.Scale(s.scale, s.scale)
	return nil
}

// DrawPath fills then strokes p under m. Paint values that do not parse
// as colors are not drawn.
func (s *ImageSurface) DrawPath(p *mutpoint.Path, style mutpoint.PathStyle, m mutpoint.Matrix) {
	if s.dc == nil || p.Empty() {
		return
	}
	fill, hasFill := mutpoint.ParseColor(style.Fill)
	stroke, hasStroke := mutpoint.ParseColor(style.Stroke.Color)
	hasStroke = hasStroke && style.Stroke.Width > 0
	if !hasFill && !hasStroke {
		return
	}

	s.dc.Push()
	defer s.dc.Pop()

	s.dc.Transform(toGG(m))
	s.replay(p)

	if hasFill {
		s.dc.SetColor(fill.Color())
		if hasStroke {
			s.record(s.dc.FillPreserve())
		} else {
			s.record(s.dc.Fill())
		}
	}
	if hasStroke {
		s.dc.SetColor(stroke.Color())
		s.dc.SetLineWidth(style.Stroke.Width)
		s.dc.SetLineCap(ggCap(style.Stroke.Cap))
		s.dc.SetLineJoin(ggJoin(style.Stroke.Join))
		s.dc.SetDash(style.Stroke.Dash...)
		s.record(s.dc.Stroke())
	}
	s.dc.ClearPath()
}

// DrawText draws a label. gg places text in device space, so the position
// is transformed here.
func (s *ImageSurface) DrawText(t mutpoint.Text, m mutpoint.Matrix) {
	if s.dc == nil || t.Value == "" {
		return
	}
	face, err := s.face(t.FontSize() * s.scale)
	if err != nil {
		mutpoint.Logger().Warn("label font unavailable", "err", err)
		return
	}
	c := mutpoint.Black
	if parsed, ok := mutpoint.ParseColor(t.Color); ok {
		c = parsed
	}

	pos := m.TransformPoint(mutpoint.Pt(t.X, t.Y)).Mul(s.scale)
	s.dc.SetFont(face)
	s.dc.SetColor(c.Color())
	s.dc.DrawStringAnchored(t.Value, pos.X, pos.Y, t.Anchor.Fraction(), baselineShift(t.Baseline))
}

// PushClip intersects the clip with r.
func (s *ImageSurface) PushClip(r mutpoint.Rect) {
	if s.dc == nil {
		return
	}
	s.dc.Push()
	s.dc.ClipRect(r.Min.X, r.Min.Y, r.Width(), r.Height())
}

// PopClip restores the clip in effect before the matching PushClip.
func (s *ImageSurface) PopClip() {
	if s.dc == nil {
		return
	}
	s.dc.Pop()
}

// End encodes the image to the writer and releases the canvas.
// It returns the first drawing error of the pass, if any.
func (s *ImageSurface) End() error {
	if s.dc == nil {
		return ErrNotBegun
	}
	s.img = s.dc.Image()

	var err error
	if s.w != nil {
		if encErr := s.dc.EncodePNG(s.w); encErr != nil {
			err = fmt.Errorf("surface: encode png: %w", encErr)
		}
	}
	err = errors.Join(s.err, err, s.release())
	s.err = nil
	return err
}

// Image returns the last finished image, or nil before the first End.
func (s *ImageSurface) Image() image.Image {
	return s.img
}

func (s *ImageSurface) replay(p *mutpoint.Path) {
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case mutpoint.MoveTo:
			s.dc.MoveTo(e.Point.X, e.Point.Y)
		case mutpoint.LineTo:
			s.dc.LineTo(e.Point.X, e.Point.Y)
		case mutpoint.QuadTo:
			s.dc.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case mutpoint.CubicTo:
			s.dc.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case mutpoint.Close:
			s.dc.ClosePath()
		}
	}
}

func (s *ImageSurface) face(size float64) (text.Face, error) {
	if f, ok := s.faces[size]; ok {
		return f, nil
	}
	if s.font == nil {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			return nil, err
		}
		s.font = src
		s.faces = make(map[float64]text.Face)
	}
	f := s.font.Face(size)
	s.faces[size] = f
	return f, nil
}

func (s *ImageSurface) record(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}

func (s *ImageSurface) release() error {
	if s.dc == nil {
		return nil
	}
	err := s.dc.Close()
	s.dc = nil
	return err
}

// baselineShift converts a baseline to gg's anchor fraction, which moves
// the baseline down by a fraction of the line height.
func baselineShift(b mutpoint.TextBaseline) float64 {
	switch b {
	case mutpoint.BaselineMiddle:
		return 0.35
	case mutpoint.BaselineHanging:
		return 0.8
	default:
		return 0
	}
}

func toGG(m mutpoint.Matrix) gg.Matrix {
	return gg.Matrix{A: m.A, B: m.B, C: m.C, D: m.D, E: m.E, F: m.F}
}

func ggCap(c mutpoint.LineCap) gg.LineCap {
	switch c {
	case mutpoint.LineCapRound:
		return gg.LineCapRound
	case mutpoint.LineCapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}

func ggJoin(j mutpoint.LineJoin) gg.LineJoin {
	switch j {
	case mutpoint.LineJoinRound:
		return gg.LineJoinRound
	case mutpoint.LineJoinBevel:
		return gg.LineJoinBevel
	default:
		return gg.LineJoinMiter
	}
}
