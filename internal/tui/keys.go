package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines keyboard bindings per screen.
type KeyMap struct {
	Quit key.Binding

	Up    key.Binding
	Down  key.Binding
	Start key.Binding
	Exit  key.Binding

	Cancel    key.Binding
	Backspace key.Binding
	Newline   key.Binding

	Retry key.Binding
	New   key.Binding
	Back  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Exit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
			key.WithHelp("backspace", "delete"),
		),
		Newline: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "newline"),
		),
		Retry: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("enter/r", "retry"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new snippet"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc", "menu"),
		),
	}
}

func (k KeyMap) menuHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Start, k.Exit}
}

func (k KeyMap) typingHelp() []key.Binding {
	return []key.Binding{k.Cancel, k.Backspace}
}

func (k KeyMap) resultsHelp() []key.Binding {
	return []key.Binding{k.Retry, k.New, k.Back}
}
