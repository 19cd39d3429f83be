// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kako-jun/gitp/internal/ctxlog"
	"github.com/kako-jun/gitp/internal/progress"
)

// ErrTerminal wraps failures to set up or drive the terminal.
var ErrTerminal = errors.New("terminal error")

var _ Presenter = (*TUI)(nil)

// TUI is the interactive presenter.
type TUI struct {
	// Options are appended to the defaults. Tests use them to swap input and output.
	Options []tea.ProgramOption
}

// Present runs the view until every entry is terminal or the user quits.
func (t *TUI) Present(ctx context.Context, table *progress.Table) error {
	model := NewModel(table)
	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, t.Options...)

	ctxlog.Debug(ctx, "starting progress view", "repositories", table.Len())

	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		return fmt.Errorf("%w: %w", ErrTerminal, err)
	}

	if model.Cancelled() {
		return ErrCancelled
	}

	return nil
}
