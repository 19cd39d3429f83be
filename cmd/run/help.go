// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package run

import (
	"fmt"
	"io"

	"github.com/kako-jun/gitp/internal/color"
)

var helpLines = [][2]string{
	{"clone [serial]", "Clone all enabled repositories"},
	{"pull [serial]", "Pull all enabled repositories"},
	{"push [serial]", "Push all enabled repositories"},
	{"config [serial]", "Apply user and config entries to all repositories"},
	{"config user [serial]", "Set user.name and user.email for all repositories"},
	{"exec <git args...>", "Run a git command in all repositories"},
	{"help, ?", "Show this help message"},
	{"exit, quit", "Leave interactive mode"},
}

var shortcuts = []string{
	"clo, cl   → clone",
	"pul, pu   → pull",
	"pus, ps   → push",
	"conf, cfg → config",
	"u, usr    → user (for config)",
	"x         → exec",
}

// WriteHelp prints the command summary used by help and ?.
func WriteHelp(w io.Writer) {
	heading := func(s string) string { return color.Colorize(s, color.Bold, color.FgCyan) }

	fmt.Fprintf(w, "\n%s - Git Multiple Repository Manager\n\n", heading("gitp"))
	fmt.Fprintln(w, heading("Commands:"))

	for _, l := range helpLines {
		fmt.Fprintf(w, "  %s%*s%s\n", color.Colorize(l[0], color.Bold, color.FgYellow), 24-len(l[0]), "", l[1])
	}

	fmt.Fprintf(w, "\n%s\n  %s%*sExecute sequentially (default: parallel)\n\n",
		heading("Options:"), color.Colorize("serial", color.Bold, color.FgYellow), 18, "")
	fmt.Fprintln(w, heading("Shortcuts:"))

	for _, s := range shortcuts {
		fmt.Fprintf(w, "  %s\n", s)
	}

	fmt.Fprintln(w)
}
