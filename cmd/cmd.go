// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"context"
	"os"

	"github.com/kako-jun/gitp/cmd/cmdstate"
	"github.com/kako-jun/gitp/cmd/initcmd"
	"github.com/kako-jun/gitp/cmd/interactive"
	"github.com/kako-jun/gitp/cmd/list"
	"github.com/kako-jun/gitp/cmd/run"
	"github.com/urfave/cli/v3"
)

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Commands: append([]*cli.Command{
		initcmd.InitCmd,
		list.ListCmd,
	}, run.Commands...),
	Flags:     cmdstate.Flags,
	Before:    before,
	Action:    rootAction,
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "gitp",
	Usage:     "Run clone, pull, push or config across many git repositories at once",
	ArgsUsage: "[command [serial]]",
	Description: `gitp manages a fleet of git repositories listed in gitp_setting.yaml.
Every enabled repository is processed in parallel, or one after another with serial,
while a live view shows the progress of each one.

Without arguments gitp starts an interactive prompt.

The settings file may also be HCL (gitp_setting.hcl) or be fetched from a URL using
Hashicorp's go-getter syntax, see https://github.com/hashicorp/go-getter.`,
	Copyright:             "Copyright (c) kako-jun 2025. All rights reserved.",
	EnableShellCompletion: true,
}

func before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if err := cmdstate.LoadEnv(ctx, cmd); err != nil {
		return ctx, cli.Exit(err.Error(), 1)
	}

	return ctx, nil
}

// rootAction treats bare arguments as command tokens, so "gitp ?" and unknown
// commands are reported the same way as in the prompt. No arguments starts the prompt.
func rootAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Present() {
		if err := run.Tokens(ctx, cmd, cmd.Args().Slice()); err != nil {
			return cli.Exit(err.Error(), 1)
		}

		return nil
	}

	return interactive.Loop(ctx, &interactive.Session{
		Out: cmd.Root().Writer,
		Exec: func(ctx context.Context, tokens []string) error {
			return run.Tokens(ctx, cmd, tokens)
		},
	})
}
