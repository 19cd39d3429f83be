// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package initcmd implements the init command, which writes a starter settings file.
package initcmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/kako-jun/gitp/cmd/cmdstate"
	"github.com/kako-jun/gitp/internal/config"
	"github.com/urfave/cli/v3"
)

const (
	forceFlag = "force"
	pathArg   = "path"
)

// InitCmd writes a commented settings skeleton.
var InitCmd = &cli.Command{
	Name:  "init",
	Usage: "Write a starter " + config.FileNames[0] + " to the working directory",
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name:      pathArg,
			UsageText: "[PATH]",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
	},
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    forceFlag,
			Aliases: []string{"f"},
			Usage:   "Overwrite an existing file",
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		path, err := target(cmd.StringArg(pathArg))
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}

		if err := config.WriteSkeleton(path, cmd.Bool(forceFlag)); err != nil {
			return cli.Exit(err.Error(), 1)
		}

		fmt.Fprintf(cmd.Root().Writer, "Wrote %s\n", path) //nolint:errcheck

		return nil
	},
}

func target(arg string) (string, error) {
	wd, err := cmdstate.Getwd()
	if err != nil {
		return "", err
	}

	if arg == "" {
		return filepath.Join(wd, config.FileNames[0]), nil
	}

	if filepath.IsAbs(arg) {
		return arg, nil
	}

	return filepath.Join(wd, arg), nil
}
