// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
)

// WriteSummary renders a snapshot as a plain text table followed by the totals line.
func WriteSummary(w io.Writer, entries []Entry) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"Repository", "Status", "Message", "Elapsed"})
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)

	for _, e := range entries {
		tw.Append([]string{e.Name, e.Status.String(), e.Message, formatElapsed(e.Elapsed())})
	}

	tw.Render()

	fmt.Fprintln(w, FooterLine(Count(entries))) //nolint:errcheck
}

// FooterLine is the totals line shared by the live view and the summary.
func FooterLine(c Counts) string {
	return fmt.Sprintf("Total: %d | Completed: %d | Success: %d | Failed: %d",
		c.Total, c.Completed, c.Succeeded, c.Failed)
}

func formatElapsed(d time.Duration) string {
	if d <= 0 {
		return "-"
	}

	return d.Round(time.Millisecond).String()
}
