// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package batch

import (
	"errors"
	"fmt"
	"slices"

	"github.com/kako-jun/gitp/internal/gitops"
)

// SerialToken switches a command to serial mode.
const SerialToken = "serial"

var (
	// ErrNoCommand is returned for an empty token list.
	ErrNoCommand = errors.New("no command given")
	// ErrUnknownCommand is returned for an unrecognised first token.
	ErrUnknownCommand = errors.New("Unknown command") //nolint:staticcheck
	// ErrUnknownSubcommand is returned for an unrecognised config subcommand.
	ErrUnknownSubcommand = errors.New("Unknown subcommand") //nolint:staticcheck
	// ErrHelp is returned for help and ? so the caller can print usage.
	ErrHelp = errors.New("help requested")
)

// Aliases maps every accepted spelling onto its canonical command.
var Aliases = map[string]string{
	"clone": "clone", "clo": "clone", "cl": "clone",
	"pull": "pull", "pul": "pull", "pu": "pull",
	"push": "push", "pus": "push", "ps": "push",
	"config": "config", "conf": "config", "cfg": "config",
	"exec": "exec", "x": "exec",
	"help": "help", "?": "help",
}

var userAliases = []string{"user", "u", "usr"}

// Command is a resolved batch command.
type Command struct {
	Kind   gitops.Kind
	Serial bool
	// Args are the git arguments of an exec command.
	Args []string
	// Message overrides the push commit message.
	Message string
	// Repo restricts the batch to the repository with this derived name.
	Repo string
}

// Resolve maps tokens such as ["cfg", "u", "serial"] onto a Command.
// Tokens after the mode token are ignored, except for exec which passes them to git.
func Resolve(tokens []string) (Command, error) {
	if len(tokens) == 0 {
		return Command{}, ErrNoCommand
	}

	canonical, ok := Aliases[tokens[0]]
	if !ok {
		return Command{}, fmt.Errorf("%w: %s", ErrUnknownCommand, tokens[0])
	}

	rest := tokens[1:]

	switch canonical {
	case "help":
		return Command{}, ErrHelp
	case "clone":
		return Command{Kind: gitops.KindClone, Serial: isSerial(rest)}, nil
	case "pull":
		return Command{Kind: gitops.KindPull, Serial: isSerial(rest)}, nil
	case "push":
		return Command{Kind: gitops.KindPush, Serial: isSerial(rest)}, nil
	case "exec":
		if len(rest) == 0 {
			return Command{}, gitops.ErrNoArgs
		}

		return Command{Kind: gitops.KindExec, Args: slices.Clone(rest)}, nil
	}

	if len(rest) == 0 {
		return Command{Kind: gitops.KindConfig}, nil
	}

	switch {
	case rest[0] == SerialToken:
		return Command{Kind: gitops.KindConfig, Serial: true}, nil
	case slices.Contains(userAliases, rest[0]):
		return Command{Kind: gitops.KindConfigUser, Serial: isSerial(rest[1:])}, nil
	default:
		return Command{}, fmt.Errorf("%w: config %s", ErrUnknownSubcommand, rest[0])
	}
}

func isSerial(rest []string) bool {
	return len(rest) > 0 && rest[0] == SerialToken
}
