package termview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nonnontrivial/mutpoint"
	"github.com/nonnontrivial/mutpoint/internal/chartfile"
)

func newTestModel(t *testing.T, yaml string) Model {
	t.Helper()
	c, err := chartfile.Decode(strings.NewReader(yaml))
	require.NoError(t, err)
	return New("test.yaml", c)
}

func press(t *testing.T, m Model, r rune) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return next.(Model)
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, "points: [[0, 0], [1, 5], [2, 3]]\n")
	assert.Equal(t, "loading...", m.View())

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	assert.Nil(t, cmd)
	m = next.(Model)

	view := m.View()
	assert.Contains(t, view, "test.yaml")
	assert.Contains(t, view, "3 points")
	assert.Contains(t, view, "quit")
	assert.True(t, strings.ContainsFunc(view, func(r rune) bool {
		return r > 0x2800 && r <= 0x28ff
	}), "view has no braille cells")
}

func TestModelKeys(t *testing.T) {
	m := newTestModel(t, "curve: natural\ngrid: true\npoints: [[0, 0], [1, 5]]\n")
	assert.Equal(t, mutpoint.CurveNatural, m.Curve())

	m = press(t, m, 'c')
	assert.Equal(t, mutpoint.CurveStep, m.Curve())
	assert.Equal(t, "curve: step", m.status)
	m = press(t, m, 'c')
	assert.Equal(t, mutpoint.CurveLinear, m.Curve())

	assert.True(t, m.showGrid)
	m = press(t, m, 'g')
	assert.False(t, m.showGrid)
	assert.Equal(t, "grid: off", m.status)

	m = press(t, m, 'a')
	assert.False(t, m.showAxes)

	m = press(t, m, 'd')
	assert.False(t, m.showDiff)
	assert.Equal(t, "diff: no threshold in chart file", m.status)

	m = press(t, m, '?')
	assert.True(t, m.help.ShowAll)
}

func TestModelDiffToggle(t *testing.T) {
	m := newTestModel(t, "diff: {threshold: 3}\npoints: [[0, 0], [1, 5]]\n")
	require.True(t, m.showDiff)
	assert.Len(t, m.renderers(), 4) // line, overlay, x axis, y axis

	m = press(t, m, 'd')
	assert.False(t, m.showDiff)
	assert.Len(t, m.renderers(), 3)
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, "points: [[0, 0], [1, 5]]\n")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModelRenderError(t *testing.T) {
	m := newTestModel(t, "points: []\n")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	view := next.(Model).View()
	assert.Contains(t, view, "render failed")
}
