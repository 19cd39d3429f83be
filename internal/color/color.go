// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"

	prefix = "\033["
	suffix = "m"
	reset  = "\033[0m"
)

// Code is an ANSI SGR parameter.
type Code int

// Text attributes.
const (
	Reset Code = 0
	Bold  Code = 1
	Faint Code = 2
)

// Foreground colors.
const (
	FgBlack Code = iota + 30
	FgRed
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
	FgWhite
)

// Hi-intensity foreground colors.
const (
	FgHiBlack Code = iota + 90
	FgHiRed
	FgHiGreen
	FgHiYellow
	FgHiBlue
	FgHiMagenta
	FgHiCyan
	FgHiWhite
)

var enabled = isColorCapable()

// Enabled reports whether Colorize emits escape codes.
func Enabled() bool {
	return enabled
}

// Colorize wraps str in the given codes followed by a reset,
// or returns it untouched when color output is disabled.
func Colorize(str string, codes ...Code) string {
	return Paint(enabled, str, codes...)
}

// Paint is Colorize with an explicit switch, for writers that decide
// on color themselves (for example a log handler writing to a buffer).
func Paint(on bool, str string, codes ...Code) string {
	if !on || len(codes) == 0 {
		return str
	}

	sb := strings.Builder{}
	sb.Grow(len(str) + len(prefix) + len(suffix) + len(reset) + 4*len(codes))
	sb.WriteString(sequence(codes...))
	sb.WriteString(str)
	sb.WriteString(reset)

	return sb.String()
}

func sequence(codes ...Code) string {
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = strconv.Itoa(int(c))
	}

	return prefix + strings.Join(parts, ";") + suffix
}

func isColorCapable() bool {
	if os.Getenv(NoColor) != "" {
		return false
	}

	if os.Getenv(ForceColor) != "" {
		return true
	}

	return term.IsTerminal(int(os.Stdout.Fd()))
}
