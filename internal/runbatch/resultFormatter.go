// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"fmt"
	"io"
	"strings"

	"github.com/kako-jun/gitp/internal/color"
)

const detailIndent = "     "

// WriteFailures prints every failed repository with the git output that decided it.
func WriteFailures(w io.Writer, results Results) {
	for _, r := range results.Failed() {
		fmt.Fprintf(w, "%s %s\n", color.Colorize("✗", color.FgRed), color.Colorize(r.Name, color.Bold, color.FgRed)) //nolint:errcheck

		if r.Err != nil {
			fmt.Fprintf(w, "  %s %s\n", color.Colorize("➜ Error:", color.FgRed), r.Err) //nolint:errcheck
		}

		for _, o := range r.Outcomes {
			text := strings.TrimRight(o.Combined(), "\n")
			if text == "" {
				continue
			}

			fmt.Fprintf(w, "  %s git %s (exit code: %d)\n", color.Colorize("➜", color.FgHiRed), strings.Join(o.Args, " "), o.ExitCode) //nolint:errcheck,lll
			fmt.Fprint(w, indent(text, detailIndent))                                                                                  //nolint:errcheck
		}
	}
}

func indent(text, prefix string) string {
	sb := strings.Builder{}

	for _, line := range strings.Split(text, "\n") {
		if line != "" {
			sb.WriteString(prefix)
			sb.WriteString(line)
		}

		sb.WriteString("\n")
	}

	return sb.String()
}
