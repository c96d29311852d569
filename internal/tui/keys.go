package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Start    key.Binding
	Submit   key.Binding
	Navigate key.Binding
	Remove   key.Binding
	Generate key.Binding
	Reset    key.Binding
	Quit     key.Binding
	QuitHard key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Start:    key.NewBinding(key.WithKeys("enter", " ", "s"), key.WithHelp("enter", "start")),
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add name")),
		Navigate: key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "select")),
		Remove:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "remove")),
		Generate: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "generate")),
		Reset:    key.NewBinding(key.WithKeys("r", "enter"), key.WithHelp("r", "reset draw")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		QuitHard: key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("ctrl+c", "quit")),
	}
}

// bindingsFor returns the footer shortcuts for a screen, in display order.
// The text input owns plain letters on the collect screen, so every action
// there rides on a control key or arrow.
func (k keyMap) bindingsFor(s screen) []key.Binding {
	switch s {
	case screenWelcome:
		return []key.Binding{k.Start, k.Quit}
	case screenResults:
		return []key.Binding{k.Reset, k.Quit}
	default:
		return []key.Binding{k.Submit, k.Navigate, k.Remove, k.Generate, k.QuitHard}
	}
}
