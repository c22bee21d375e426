package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KromDaniel/regexer/pkg/regexer"
)

const (
	title       = "regexer"
	placeholder = "letters(upcase=True) | glob(rest=True) | whitespace | numbers"
)

// Model is the bubbletea model of the pattern editor.
type Model struct {
	input textinput.Model
	keys  keyMap
	help  help.Model

	// last submitted description and what it compiled to
	submitted string
	pattern   string
	err       error
}

// NewModel returns an editor model with value as the initial description.
func NewModel(value string) Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Prompt = "> "
	input.SetValue(value)
	input.Focus()

	return Model{
		input: input,
		keys:  newKeyMap(),
		help:  help.New(),
	}
}

// Pattern returns the regex produced by the last successful submit.
func (m Model) Pattern() string {
	return m.pattern
}

// Err returns the error produced by the last submit, if any.
func (m Model) Err() error {
	return m.err
}

// Value returns the description currently in the editor.
func (m Model) Value() string {
	return m.input.Value()
}

// Init implements bubbletea.Model.Init
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements bubbletea.Model.Update
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.input.Width = msg.Width - len(m.input.Prompt) - 1

		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Compile):
			return m.submit(), nil

		case key.Matches(msg, m.keys.Clear):
			m.input.Reset()
			m.submitted, m.pattern, m.err = "", "", nil

			return m, nil
		}
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

// submit compiles the current description. A failed compile keeps the editor
// running and shows the error instead of a pattern.
func (m Model) submit() Model {
	m.submitted = m.input.Value()
	m.pattern, m.err = regexer.Compile(m.submitted)

	return m
}
