// Package termview is an interactive terminal preview of a chart file.
package termview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nonnontrivial/mutpoint"
	"github.com/nonnontrivial/mutpoint/internal/chartfile"
	"github.com/nonnontrivial/mutpoint/surface"
)

// Space taken by everything but the canvas: the box border and padding
// horizontally; title, status, help and the border vertically.
const (
	chromeWidth  = 4
	chromeHeight = 5
)

var curves = []mutpoint.CurveKind{
	mutpoint.CurveLinear,
	mutpoint.CurveBasis,
	mutpoint.CurveNatural,
	mutpoint.CurveStep,
}

// Model is the bubbletea model of the preview.
type Model struct {
	title string
	spec  *chartfile.Chart
	chart *mutpoint.Chart
	surf  *surface.TermSurface
	help  help.Model

	width  int
	height int

	curve    int // index into curves
	showGrid bool
	showAxes bool
	showDiff bool
	color    bool

	status string
}

// New creates a preview of c. title is shown above the canvas.
func New(title string, c *chartfile.Chart) Model {
	m := Model{
		title:    title,
		spec:     c,
		chart:    c.NewChart(),
		surf:     surface.NewTermSurface(nil, 0, 0),
		help:     help.New(),
		showGrid: c.Grid,
		showAxes: c.Axes,
		showDiff: c.Diff != nil,
		color:    true,
		status:   fmt.Sprintf("%d points", len(c.Points)),
	}
	for i, k := range curves {
		if k == c.Curve {
			m.curve = i
		}
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Curve):
			m.curve = (m.curve + 1) % len(curves)
			m.status = "curve: " + curves[m.curve].String()
		case key.Matches(msg, keys.Grid):
			m.showGrid = !m.showGrid
			m.status = "grid: " + onOff(m.showGrid)
		case key.Matches(msg, keys.Axes):
			m.showAxes = !m.showAxes
			m.status = "axes: " + onOff(m.showAxes)
		case key.Matches(msg, keys.Diff):
			if m.spec.Diff == nil {
				m.status = "diff: no threshold in chart file"
				break
			}
			m.showDiff = !m.showDiff
			m.status = "diff: " + onOff(m.showDiff)
		case key.Matches(msg, keys.Color):
			m.color = !m.color
			m.status = "color: " + onOff(m.color)
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}
	cols := max(m.width-chromeWidth, 1)
	rows := max(m.height-chromeHeight, 1)

	canvas, err := m.render(cols, rows)
	body := canvas
	status := dimStyle.Render(m.status)
	if err != nil {
		body = errStyle.Render(err.Error())
		status = errStyle.Render("render failed")
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.title),
		boxStyle.Render(body),
		status,
		m.help.View(keys),
	))
}

// Curve returns the curve kind currently drawn.
func (m Model) Curve() mutpoint.CurveKind {
	return curves[m.curve]
}

func (m Model) render(cols, rows int) (string, error) {
	m.surf.Resize(cols, rows)
	m.surf.SetColor(m.color)
	if err := m.chart.Render(m.surf, m.renderers()); err != nil {
		return "", err
	}
	return m.surf.String(), nil
}

func (m Model) renderers() []mutpoint.Renderer {
	kind := curves[m.curve]
	var rs []mutpoint.Renderer
	if m.showGrid {
		rs = append(rs, mutpoint.Grid{})
	}
	rs = append(rs, mutpoint.Line{Curve: kind, Stroke: m.spec.Stroke})
	if m.showDiff {
		rs = append(rs, mutpoint.DiffOverlay{Curve: kind})
	}
	if m.showAxes {
		rs = append(rs, mutpoint.XAxis{}, mutpoint.YAxis{})
	}
	return rs
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
