// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/kako-jun/gitp/internal/color"
	"github.com/kako-jun/gitp/internal/ctxlog"
	"github.com/peterh/liner"
)

// Prompt is printed before every line.
const Prompt = "gitp> "

const historyName = ".gitp_history"

// Completions are offered on tab.
var Completions = []string{
	"clone", "pull", "push", "config", "config user", "serial", "exec", "help", "exit", "quit",
}

// HistoryPath returns the history file location.
var HistoryPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyName
	}

	return filepath.Join(home, historyName)
}

// ExecFunc runs one command line split into tokens.
type ExecFunc func(ctx context.Context, tokens []string) error

// Session dispatches prompt input.
type Session struct {
	Out  io.Writer
	Exec ExecFunc
}

// Dispatch handles one line and reports whether the session should end.
func (s *Session) Dispatch(ctx context.Context, input string) bool {
	line := strings.TrimSpace(input)

	switch line {
	case "":
		return false
	case "exit", "quit":
		fmt.Fprintln(s.Out, "Goodbye!") //nolint:errcheck
		return true
	}

	if err := s.Exec(ctx, strings.Fields(line)); err != nil {
		fmt.Fprintf(s.Out, "%s %s\n", color.Colorize("Error:", color.FgRed), err) //nolint:errcheck
	}

	return false
}

// Complete returns the completions of line.
func Complete(line string) []string {
	var out []string

	for _, c := range Completions {
		if strings.HasPrefix(c, line) {
			out = append(out, c)
		}
	}

	slices.Sort(out)

	return out
}

// Loop reads lines until exit, quit, end of input or cancellation of ctx.
// Ctrl-C abandons the current line only.
func Loop(ctx context.Context, s *Session) error {
	line := liner.NewLiner()
	defer line.Close() //nolint:errcheck

	line.SetCtrlCAborts(true)
	line.SetCompleter(Complete)
	readHistory(ctx, line)

	defer writeHistory(ctx, line)

	fmt.Fprintf(s.Out, "%s - Git Multiple Repository Manager\n", color.Colorize("gitp", color.Bold, color.FgCyan))
	fmt.Fprintf(s.Out, "Type '%s' for available commands, '%s' to quit\n\n",
		color.Colorize("help", color.Bold, color.FgYellow), color.Colorize("exit", color.Bold, color.FgYellow))

	for ctx.Err() == nil {
		input, err := line.Prompt(Prompt)

		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			fmt.Fprintln(s.Out, "^C") //nolint:errcheck
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(s.Out, "Goodbye!") //nolint:errcheck
			return nil
		case err != nil:
			return err
		}

		if strings.TrimSpace(input) != "" {
			line.AppendHistory(strings.TrimSpace(input))
		}

		if s.Dispatch(ctx, input) {
			return nil
		}
	}

	return ctx.Err()
}

func readHistory(ctx context.Context, line *liner.State) {
	f, err := os.Open(HistoryPath())
	if err != nil {
		return
	}

	defer f.Close() //nolint:errcheck

	if _, err := line.ReadHistory(f); err != nil {
		ctxlog.Debug(ctx, "could not read history", "error", err)
	}
}

func writeHistory(ctx context.Context, line *liner.State) {
	f, err := os.Create(HistoryPath())
	if err != nil {
		ctxlog.Debug(ctx, "could not write history", "error", err)
		return
	}

	defer f.Close() //nolint:errcheck

	if _, err := line.WriteHistory(f); err != nil {
		ctxlog.Debug(ctx, "could not write history", "error", err)
	}
}
