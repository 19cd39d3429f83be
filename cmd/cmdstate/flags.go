// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmdstate

import (
	"strings"

	"github.com/kako-jun/gitp/internal/runner"
	"github.com/urfave/cli/v3"
)

// Flag names.
const (
	SettingsFlag    = "settings"
	SerialFlag      = "serial"
	NoTUIFlag       = "no-tui"
	PolicyFlag      = "policy"
	ParallelismFlag = "parallelism"
	MessageFlag     = "message"
	EnvFileFlag     = "env-file"
	SummaryFlag     = "summary"
	RepoFlag        = "repo"
	GitFlag         = "git"
)

// Environment variables read by the flags.
const (
	SettingsEnv = "GITP_SETTINGS"
	GitEnv      = "GITP_GIT"
)

// Flags are the global flags of the root command.
var Flags = []cli.Flag{
	&cli.StringFlag{
		Name:      SettingsFlag,
		Aliases:   []string{"s"},
		Usage:     "Settings file path or go-getter URL. Defaults to gitp_setting.{yaml,yml,hcl} in the working directory",
		Sources:   cli.EnvVars(SettingsEnv),
		TakesFile: true,
	},
	&cli.BoolFlag{
		Name:  SerialFlag,
		Usage: "Process repositories one at a time, same as the serial token",
	},
	&cli.BoolFlag{
		Name:  NoTUIFlag,
		Usage: "Print plain status lines instead of the live view",
	},
	&cli.StringFlag{
		Name:  PolicyFlag,
		Usage: "How git results are judged: " + strings.Join(runner.PolicyNames(), ", "),
		Value: runner.PolicyOutput.String(),
	},
	&cli.IntFlag{
		Name:    ParallelismFlag,
		Aliases: []string{"p"},
		Usage:   "Maximum number of repositories processed at once. 0 is unlimited",
	},
	&cli.StringFlag{
		Name:    MessageFlag,
		Aliases: []string{"m"},
		Usage:   "Commit message for push. Defaults to the default entry of comments",
	},
	&cli.StringFlag{
		Name:      EnvFileFlag,
		Usage:     "Load environment variables from a dotenv file before reading settings",
		TakesFile: true,
	},
	&cli.BoolFlag{
		Name:  SummaryFlag,
		Usage: "Print a summary table after the batch. Always on without the live view",
	},
	&cli.StringFlag{
		Name:  RepoFlag,
		Usage: "Only process the repository with this name",
	},
	&cli.StringFlag{
		Name:    GitFlag,
		Usage:   "git executable",
		Sources: cli.EnvVars(GitEnv),
		Value:   "git",
	},
}
