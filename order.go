package mutpoint

import "reflect"

// Renderer draws one part of a chart onto a surface.
//
// f may be nil when a renderer is used outside a chart; renderers then
// draw against the default viewport.
type Renderer interface {
	Render(s Surface, f *Frame) error
}

// RenderFunc adapts a function to the Renderer interface.
type RenderFunc func(s Surface, f *Frame) error

// Render calls fn(s, f).
func (fn RenderFunc) Render(s Surface, f *Frame) error {
	return fn(s, f)
}

// Group renders its children in order and stops at the first error.
type Group []Renderer

// Render implements Renderer.
func (g Group) Render(s Surface, f *Frame) error {
	for _, r := range g {
		if err := r.Render(s, f); err != nil {
			return err
		}
	}
	return nil
}

// RenderInOrder flattens children into the list of renderers to draw, in
// the order given. Nested []Renderer, []any and Group values are expanded
// in place. nil values, typed nil renderers and values that are not
// renderers are dropped.
func RenderInOrder(children ...any) []Renderer {
	out := make([]Renderer, 0, len(children))
	return appendRenderers(out, children)
}

func appendRenderers(out []Renderer, children []any) []Renderer {
	for _, c := range children {
		switch v := c.(type) {
		case nil:
		case Group:
			out = appendRenderers(out, toAny(v))
		case []Renderer:
			out = appendRenderers(out, toAny(v))
		case []any:
			out = appendRenderers(out, v)
		case Renderer:
			if !isNilRenderer(v) {
				out = append(out, v)
			}
		}
	}
	return out
}

func toAny(rs []Renderer) []any {
	out := make([]any, len(rs))
	for i, r := range rs {
		out[i] = r
	}
	return out
}

// isNilRenderer reports whether r holds a nil pointer, func, map or slice.
func isNilRenderer(r Renderer) bool {
	v := reflect.ValueOf(r)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}
