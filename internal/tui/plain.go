// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kako-jun/gitp/internal/color"
	"github.com/kako-jun/gitp/internal/ctxlog"
	"github.com/kako-jun/gitp/internal/progress"
)

var _ Presenter = (*Plain)(nil)

// Plain prints one line per status change. It needs no terminal.
type Plain struct {
	// Out defaults to os.Stdout.
	Out io.Writer
}

// Present polls table until every entry is terminal or ctx is done.
func (p *Plain) Present(ctx context.Context, table *progress.Table) error {
	out := p.Out
	if out == nil {
		out = os.Stdout
	}

	seen := make(map[string]progress.Status, table.Len())
	ticker := time.NewTicker(Interval)

	defer ticker.Stop()

	for {
		entries := table.Snapshot()

		for _, e := range entries {
			if seen[e.Name] == e.Status {
				continue
			}

			seen[e.Name] = e.Status
			ctxlog.Debug(ctx, "status changed", "repo", e.Name, "status", e.Status.String(), "message", e.Message)
			fmt.Fprintf(out, "%s %s: %s\n", e.Status.Glyph(), color.Colorize(e.Name, plainColour(e.Status)), e.Message) //nolint:errcheck
		}

		if progress.AllDone(entries) {
			fmt.Fprintln(out, progress.FooterLine(progress.Count(entries))) //nolint:errcheck
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func plainColour(s progress.Status) color.Code {
	switch s {
	case progress.Running:
		return color.FgYellow
	case progress.Success:
		return color.FgGreen
	case progress.Failed:
		return color.FgRed
	default:
		return color.FgHiBlack
	}
}
