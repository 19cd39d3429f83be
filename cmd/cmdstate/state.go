// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmdstate

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/kako-jun/gitp/internal/batch"
	"github.com/kako-jun/gitp/internal/config"
	"github.com/kako-jun/gitp/internal/ctxlog"
	"github.com/kako-jun/gitp/internal/runner"
	"github.com/kako-jun/gitp/internal/tui"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// ErrEnvFile is returned when --env-file cannot be loaded.
var ErrEnvFile = errors.New("failed to load env file")

// Getwd and IsTerminal are swapped in tests.
var (
	Getwd      = os.Getwd
	IsTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
)

// LoadEnv applies --env-file, or a .env in the working directory when present.
func LoadEnv(ctx context.Context, cmd *cli.Command) error {
	if p := cmd.String(EnvFileFlag); p != "" {
		if err := godotenv.Load(p); err != nil {
			return errors.Join(ErrEnvFile, err)
		}

		ctxlog.Debug(ctx, "loaded env file", "path", p)

		return nil
	}

	_ = godotenv.Load()

	return nil
}

// LoadSettings reads the settings selected by --settings.
func LoadSettings(ctx context.Context, cmd *cli.Command) (*config.Settings, error) {
	wd, err := Getwd()
	if err != nil {
		return nil, err
	}

	return config.Load(ctx, wd, cmd.String(SettingsFlag))
}

// Run is a prepared batch invocation.
type Run struct {
	Ctx     context.Context
	Options batch.Options
	logs    *ctxlog.Buffer
	out     io.Writer
}

// Prepare builds batch options from the global flags. With the live view the
// logger is redirected to a buffer that Finish writes out after the view closed.
func Prepare(ctx context.Context, cmd *cli.Command) (*Run, error) {
	policy, err := runner.ParsePolicy(cmd.String(PolicyFlag))
	if err != nil {
		return nil, err
	}

	r := &Run{
		Ctx: ctx,
		out: cmd.Root().ErrWriter,
		Options: batch.Options{
			Serial:      cmd.Bool(SerialFlag),
			Parallelism: cmd.Int(ParallelismFlag),
			Policy:      policy,
			Program:     cmd.String(GitFlag),
			Failures:    cmd.Root().Writer,
		},
	}

	if r.out == nil {
		r.out = os.Stderr
	}

	if cmd.Bool(NoTUIFlag) || !IsTerminal() {
		r.Options.Presenter = &tui.Plain{Out: cmd.Root().Writer}
		r.Options.Summary = cmd.Root().Writer

		return r, nil
	}

	r.logs = &ctxlog.Buffer{}
	r.Ctx = ctxlog.NewForTUI(ctx, r.logs)
	r.Options.Presenter = &tui.TUI{}

	if cmd.Bool(SummaryFlag) {
		r.Options.Summary = cmd.Root().Writer
	}

	return r, nil
}

// Finish flushes logs held back while the live view was shown.
func (r *Run) Finish() {
	if r.logs != nil {
		r.logs.WriteTo(r.out) //nolint:errcheck
	}
}
