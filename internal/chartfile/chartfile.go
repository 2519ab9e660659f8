// Package chartfile reads chart descriptions from YAML files and point
// series from CSV files.
//
// A YAML chart file looks like:
//
//	width: 640
//	height: 320
//	margin: {left: 40, right: 10, top: 10, bottom: 30}
//	curve: natural
//	stroke: {color: steelblue, width: 2}
//	axes: true
//	grid: true
//	diff: {threshold: 3}
//	points:
//	  - [0, 1]
//	  - {x: 1, y: "2.5"}
//	  - [2, null]
//
// Point values may be numbers or numeric strings. A null or empty value
// makes the point undefined, which breaks the line.
package chartfile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/nonnontrivial/mutpoint"
)

// ErrUnknownFormat is returned by Load for files that are neither YAML nor
// CSV.
var ErrUnknownFormat = errors.New("chartfile: unknown file format")

// Chart is a decoded chart description.
type Chart struct {
	Width, Height float64
	Margin        mutpoint.Margin
	Curve         mutpoint.CurveKind
	Stroke        mutpoint.Stroke
	Floor         mutpoint.DomainFloor
	Locale        language.Tag
	Class         string
	Background    string

	Axes bool
	Grid bool

	// Diff is nil when the file has no diff section.
	Diff *mutpoint.DiffConfig

	Points mutpoint.Series
}

// Default returns the description used for fields a file leaves out.
func Default() *Chart {
	vp := mutpoint.DefaultViewport()
	return &Chart{
		Width:  vp.Width,
		Height: vp.Height,
		Locale: language.English,
		Axes:   true,
	}
}

// Options returns the chart options the description asks for.
func (c *Chart) Options() []mutpoint.ChartOption {
	opts := []mutpoint.ChartOption{
		mutpoint.WithSize(c.Width, c.Height),
		mutpoint.WithMargin(c.Margin),
		mutpoint.WithDomainFloor(c.Floor),
		mutpoint.WithLocale(c.Locale),
	}
	if c.Class != "" {
		opts = append(opts, mutpoint.WithClassName(c.Class))
	}
	if c.Background != "" {
		opts = append(opts, mutpoint.WithBackground(c.Background))
	}
	if c.Diff != nil {
		opts = append(opts, mutpoint.WithDiff(c.Diff))
	}
	return opts
}

// NewChart builds a chart from the description.
func (c *Chart) NewChart() *mutpoint.Chart {
	return mutpoint.NewChart(c.Points, c.Options()...)
}

// Renderers returns the chart's children in drawing order: grid, line,
// diff overlay, axes.
func (c *Chart) Renderers() []mutpoint.Renderer {
	return mutpoint.RenderInOrder(
		when(c.Grid, mutpoint.Grid{}),
		mutpoint.Line{Curve: c.Curve, Stroke: c.Stroke},
		when(c.Diff != nil, mutpoint.DiffOverlay{Curve: c.Curve}),
		when(c.Axes, []mutpoint.Renderer{mutpoint.XAxis{}, mutpoint.YAxis{}}),
	)
}

func when(ok bool, v any) any {
	if !ok {
		return nil
	}
	return v
}

// Load reads a chart description from path. Files ending in .csv hold
// points only and get Default settings.
func Load(path string) (*Chart, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return Decode(f)
	case ".csv":
		points, err := ReadCSV(f)
		if err != nil {
			return nil, err
		}
		c := Default()
		c.Points = points
		return c, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

type rawStroke struct {
	Color string    `yaml:"color"`
	Width float64   `yaml:"width"`
	Cap   string    `yaml:"cap"`
	Join  string    `yaml:"join"`
	Dash  []float64 `yaml:"dash"`
}

type rawDiff struct {
	Threshold float64 `yaml:"threshold"`
}

type rawChart struct {
	Width      *float64         `yaml:"width"`
	Height     *float64         `yaml:"height"`
	Margin     *mutpoint.Margin `yaml:"margin"`
	Curve      yaml.Node        `yaml:"curve"`
	Stroke     *rawStroke       `yaml:"stroke"`
	Floor      yaml.Node        `yaml:"floor"`
	Locale     yaml.Node        `yaml:"locale"`
	Class      string           `yaml:"class"`
	Background string           `yaml:"background"`
	Axes       *bool            `yaml:"axes"`
	Grid       bool             `yaml:"grid"`
	Diff       *rawDiff         `yaml:"diff"`
	Points     pointList        `yaml:"points"`
}

// Decode reads a YAML chart description from r.
func Decode(r io.Reader) (*Chart, error) {
	var raw rawChart
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("chartfile: decode yaml: %w", err)
	}

	c := Default()
	if raw.Width != nil {
		c.Width = *raw.Width
	}
	if raw.Height != nil {
		c.Height = *raw.Height
	}
	if raw.Margin != nil {
		c.Margin = *raw.Margin
	}
	if raw.Axes != nil {
		c.Axes = *raw.Axes
	}
	c.Grid = raw.Grid
	c.Class = raw.Class
	c.Background = raw.Background
	c.Points = mutpoint.Series(raw.Points)

	if v := scalar(raw.Curve); v != "" {
		kind, err := mutpoint.ParseCurveKind(v)
		if err != nil {
			return nil, &ParseError{Line: raw.Curve.Line, Field: "curve", Err: err}
		}
		c.Curve = kind
	}

	switch v := strings.ToLower(scalar(raw.Floor)); v {
	case "", "zero":
		c.Floor = mutpoint.FloorZero
	case "observed":
		c.Floor = mutpoint.FloorObserved
	default:
		return nil, &ParseError{Line: raw.Floor.Line, Field: "floor", Err: fmt.Errorf("unknown floor %q", v)}
	}

	if v := scalar(raw.Locale); v != "" {
		tag, err := language.Parse(v)
		if err != nil {
			return nil, &ParseError{Line: raw.Locale.Line, Field: "locale", Err: err}
		}
		c.Locale = tag
	}

	if raw.Stroke != nil {
		st, err := raw.Stroke.stroke()
		if err != nil {
			return nil, err
		}
		c.Stroke = st
	}

	if raw.Diff != nil {
		c.Diff = &mutpoint.DiffConfig{Threshold: raw.Diff.Threshold}
	}

	if err := c.viewport().Validate(); err != nil {
		return nil, fmt.Errorf("chartfile: %w", err)
	}
	return c, nil
}

func (c *Chart) viewport() mutpoint.Viewport {
	return mutpoint.Viewport{Width: c.Width, Height: c.Height, Margin: c.Margin}
}

func (s *rawStroke) stroke() (mutpoint.Stroke, error) {
	st := mutpoint.LineStroke().WithDashPattern(s.Dash...)
	if s.Color != "" {
		if _, ok := mutpoint.ParseColor(s.Color); !ok {
			return st, &ParseError{Field: "stroke.color", Err: fmt.Errorf("unknown color %q", s.Color)}
		}
		st = st.WithColor(s.Color)
	}
	if s.Width != 0 {
		if s.Width < 0 {
			return st, &ParseError{Field: "stroke.width", Err: fmt.Errorf("negative width %v", s.Width)}
		}
		st = st.WithWidth(s.Width)
	}
	switch strings.ToLower(s.Cap) {
	case "":
	case "butt":
		st = st.WithCap(mutpoint.LineCapButt)
	case "round":
		st = st.WithCap(mutpoint.LineCapRound)
	case "square":
		st = st.WithCap(mutpoint.LineCapSquare)
	default:
		return st, &ParseError{Field: "stroke.cap", Err: fmt.Errorf("unknown cap %q", s.Cap)}
	}
	switch strings.ToLower(s.Join) {
	case "":
	case "miter":
		st = st.WithJoin(mutpoint.LineJoinMiter)
	case "round":
		st = st.WithJoin(mutpoint.LineJoinRound)
	case "bevel":
		st = st.WithJoin(mutpoint.LineJoinBevel)
	default:
		return st, &ParseError{Field: "stroke.join", Err: fmt.Errorf("unknown join %q", s.Join)}
	}
	return st, nil
}

func scalar(n yaml.Node) string {
	if n.Kind != yaml.ScalarNode || n.Tag == "!!null" {
		return ""
	}
	return strings.TrimSpace(n.Value)
}

// pointList decodes a YAML sequence of points, each either [x, y] or
// {x: .., y: ..}.
type pointList mutpoint.Series

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *pointList) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.SequenceNode {
		return &ParseError{Line: n.Line, Field: "points", Err: errors.New("expected a list")}
	}
	out := make(pointList, 0, len(n.Content))
	for i, item := range n.Content {
		field := fmt.Sprintf("points[%d]", i)
		var xn, yn *yaml.Node
		switch item.Kind {
		case yaml.SequenceNode:
			if len(item.Content) != 2 {
				return &ParseError{Line: item.Line, Field: field, Err: fmt.Errorf("want 2 values, got %d", len(item.Content))}
			}
			xn, yn = item.Content[0], item.Content[1]
		case yaml.MappingNode:
			for j := 0; j+1 < len(item.Content); j += 2 {
				switch strings.ToLower(item.Content[j].Value) {
				case "x":
					xn = item.Content[j+1]
				case "y":
					yn = item.Content[j+1]
				}
			}
			if xn == nil || yn == nil {
				return &ParseError{Line: item.Line, Field: field, Err: errors.New("want keys x and y")}
			}
		default:
			return &ParseError{Line: item.Line, Field: field, Err: errors.New("want [x, y] or {x, y}")}
		}

		x, err := nodeValue(xn)
		if err != nil {
			return &ParseError{Line: xn.Line, Field: field + ".x", Err: err}
		}
		y, err := nodeValue(yn)
		if err != nil {
			return &ParseError{Line: yn.Line, Field: field + ".y", Err: err}
		}
		out = append(out, mutpoint.Pt(x, y))
	}
	*l = out
	return nil
}

func nodeValue(n *yaml.Node) (float64, error) {
	if n.Kind != yaml.ScalarNode {
		return 0, errors.New("want a number")
	}
	if n.Tag == "!!null" {
		return math.NaN(), nil
	}
	return parseValue(n.Value)
}

// parseValue converts a loosely typed value. Empty strings and "NaN"
// are undefined.
func parseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") {
		return math.NaN(), nil
	}
	v, err := cast.ToFloat64E(s)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return v, nil
}
