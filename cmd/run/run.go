// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package run

import (
	"context"
	"errors"

	"github.com/kako-jun/gitp/cmd/cmdstate"
	"github.com/kako-jun/gitp/internal/batch"
	"github.com/kako-jun/gitp/internal/ctxlog"
	"github.com/kako-jun/gitp/internal/tui"
	"github.com/urfave/cli/v3"
)

// CloneCmd clones every enabled repository.
var CloneCmd = &cli.Command{
	Name:      "clone",
	Aliases:   []string{"clo", "cl"},
	Usage:     "Clone all enabled repositories into <group>/<name>",
	ArgsUsage: "[serial]",
	Action:    tokenAction("clone"),
}

// PullCmd pulls every enabled repository.
var PullCmd = &cli.Command{
	Name:      "pull",
	Aliases:   []string{"pul", "pu"},
	Usage:     "Pull all enabled repositories",
	ArgsUsage: "[serial]",
	Action:    tokenAction("pull"),
}

// PushCmd stages, commits and pushes every enabled repository.
var PushCmd = &cli.Command{
	Name:      "push",
	Aliases:   []string{"pus", "ps"},
	Usage:     "Add, commit and push all enabled repositories",
	ArgsUsage: "[serial]",
	Action:    tokenAction("push"),
}

// ConfigCmd writes git config into every enabled repository.
var ConfigCmd = &cli.Command{
	Name:    "config",
	Aliases: []string{"conf", "cfg"},
	Usage:   "Apply user and config entries, or with user only user.name and user.email",
	Description: `Without a subcommand every entry of the config map is written after the user identity.
"config user" writes user.name and user.email only.`,
	ArgsUsage: "[user|u|usr] [serial]",
	Action:    tokenAction("config"),
}

// ExecCmd runs arbitrary git arguments in every enabled repository.
var ExecCmd = &cli.Command{
	Name:      "exec",
	Aliases:   []string{"x"},
	Usage:     "Run a git command in all enabled repositories",
	ArgsUsage: "[--] <git args...>",
	Action:    tokenAction("exec"),
}

// Commands are the batch commands in help order.
var Commands = []*cli.Command{CloneCmd, PullCmd, PushCmd, ConfigCmd, ExecCmd}

func tokenAction(name string) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		if err := Tokens(ctx, cmd, append([]string{name}, cmd.Args().Slice()...)); err != nil {
			return cli.Exit(err.Error(), 1)
		}

		return nil
	}
}

// Tokens resolves tokens, loads settings and runs the batch.
// Leaving the live view early is not an error.
func Tokens(ctx context.Context, cmd *cli.Command, tokens []string) error {
	c, err := batch.Resolve(tokens)
	if errors.Is(err, batch.ErrHelp) {
		WriteHelp(cmd.Root().Writer)
		return nil
	}

	if err != nil {
		return err
	}

	c.Message = cmd.String(cmdstate.MessageFlag)
	c.Repo = cmd.String(cmdstate.RepoFlag)

	s, err := cmdstate.LoadSettings(ctx, cmd)
	if err != nil {
		return err
	}

	r, err := cmdstate.Prepare(ctx, cmd)
	if err != nil {
		return err
	}

	defer r.Finish()

	err = batch.RunBatch(r.Ctx, s, c, r.Options)
	if errors.Is(err, tui.ErrCancelled) {
		ctxlog.Info(ctx, "view closed by user")
		return nil
	}

	return err
}
