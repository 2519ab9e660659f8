package termview

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Curve key.Binding
	Grid  key.Binding
	Axes  key.Binding
	Diff  key.Binding
	Color key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Curve, k.Grid, k.Diff, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Curve, k.Grid, k.Axes, k.Diff},
		{k.Color, k.Help, k.Quit},
	}
}

var keys = keyMap{
	Curve: key.NewBinding(
		key.WithKeys("c", "tab"),
		key.WithHelp("c/tab", "curve"),
	),
	Grid: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "grid"),
	),
	Axes: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "axes"),
	),
	Diff: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "diff"),
	),
	Color: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "color"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q/ctrl+c", "quit"),
	),
}
