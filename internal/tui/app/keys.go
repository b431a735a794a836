package app

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Relief     key.Binding
	Refresh    key.Binding
	Stop       key.Binding
	Theme      key.Binding
	Focus      key.Binding
	Activate   key.Binding
	StartFresh key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Relief: key.NewBinding(
			key.WithKeys("s", "S"),
			key.WithHelp("s", "I'm stressed"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("q", "Q"),
			key.WithHelp("q", "new quote"),
		),
		Stop: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "stop breathing"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle theme"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "next control"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "press control"),
		),
		StartFresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "start fresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Relief, k.Refresh, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Relief, k.Refresh, k.Stop, k.Theme},
		{k.Focus, k.Activate, k.StartFresh},
		{k.Help, k.Quit},
	}
}
