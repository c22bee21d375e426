// Package tui provides an interactive editor that compiles pattern descriptions on submit.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KromDaniel/regexer/internal/errors"
)

// Run starts the editor with value as the initial description and blocks until the
// user quits or ctx is canceled.
func Run(ctx context.Context, value string) error {
	if _, err := tea.NewProgram(NewModel(value), tea.WithContext(ctx)).Run(); err != nil {
		if err := context.Cause(ctx); errors.Is(err, context.Canceled) {
			return nil
		}

		return err
	}

	return nil
}
