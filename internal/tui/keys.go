package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Compile key.Binding
	Clear   key.Binding
	Quit    key.Binding
}

// newKeyMap returns the editor keybindings. Cursor movement, insertion and deletion
// are handled by the text input itself.
func newKeyMap() keyMap {
	return keyMap{
		Compile: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "compile"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Compile, k.Clear, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
