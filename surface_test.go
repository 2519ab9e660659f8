package mutpoint

import "errors"

// recordingSurface is a test surface that records every call.
type recordingSurface struct {
	doc      Document
	begun    bool
	ended    bool
	paths    []recordedPath
	texts    []recordedText
	clips    []Rect // clip active at each recorded path, Rect{} if none
	stack    []Rect
	beginErr error
	endErr   error
}

type recordedPath struct {
	data  string
	style PathStyle
	m     Matrix
	clip  Rect
}

type recordedText struct {
	text Text
	m    Matrix
}

func (r *recordingSurface) Begin(doc Document) error {
	if r.beginErr != nil {
		return r.beginErr
	}
	r.doc = doc
	r.begun = true
	return nil
}

func (r *recordingSurface) DrawPath(p *Path, style PathStyle, m Matrix) {
	var clip Rect
	if n := len(r.stack); n > 0 {
		clip = r.stack[n-1]
	}
	r.paths = append(r.paths, recordedPath{data: p.String(), style: style, m: m, clip: clip})
}

func (r *recordingSurface) DrawText(t Text, m Matrix) {
	r.texts = append(r.texts, recordedText{text: t, m: m})
}

func (r *recordingSurface) PushClip(rect Rect) {
	r.stack = append(r.stack, rect)
	r.clips = append(r.clips, rect)
}

func (r *recordingSurface) PopClip() {
	if len(r.stack) == 0 {
		panic("PopClip without PushClip")
	}
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *recordingSurface) End() error {
	r.ended = true
	return r.endErr
}

var errTestRender = errors.New("test render failure")

var _ Surface = (*recordingSurface)(nil)
