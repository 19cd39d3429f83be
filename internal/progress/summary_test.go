// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWriteSummary(t *testing.T) {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	entries := []Entry{
		{Name: "gitp", Status: Success, Message: "Done", Percent: 100, Started: start, Finished: start.Add(2 * time.Second)},
		{Name: "dotfiles", Status: Failed, Message: "Error: working directory not found", Percent: 100},
	}

	buf := &bytes.Buffer{}
	WriteSummary(buf, entries)
	out := buf.String()

	assert.Contains(t, out, "Repository")
	assert.Contains(t, out, "gitp")
	assert.Contains(t, out, "2s")
	assert.Contains(t, out, "Error: working directory not found")
	assert.True(t, strings.HasSuffix(out, "Total: 2 | Completed: 2 | Success: 1 | Failed: 1\n"), out)
}

func TestFooterLine(t *testing.T) {
	assert.Equal(t, "Total: 3 | Completed: 1 | Success: 0 | Failed: 1",
		FooterLine(Counts{Total: 3, Completed: 1, Failed: 1}))
}
