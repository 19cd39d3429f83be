// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package interactive

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplete(t *testing.T) {
	assert.Equal(t, []string{"config user"}, Complete("config u"))
	assert.Equal(t, []string{"pull", "push"}, Complete("pu"))
	assert.Equal(t, []string{"exec", "exit"}, Complete("ex"))
	assert.Empty(t, Complete("zzz"))
}

func TestSession_Dispatch(t *testing.T) {
	var (
		out  bytes.Buffer
		seen [][]string
	)

	s := &Session{Out: &out, Exec: func(_ context.Context, tokens []string) error {
		seen = append(seen, tokens)
		if tokens[0] == "bad" {
			return errors.New("Unknown command: bad")
		}

		return nil
	}}

	assert.False(t, s.Dispatch(t.Context(), "   "))
	assert.False(t, s.Dispatch(t.Context(), "  pull   serial "))
	assert.False(t, s.Dispatch(t.Context(), "bad"))
	assert.True(t, s.Dispatch(t.Context(), "quit"))
	assert.True(t, s.Dispatch(t.Context(), "exit"))

	assert.Equal(t, [][]string{{"pull", "serial"}, {"bad"}}, seen)
	assert.Contains(t, out.String(), "Unknown command: bad")
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestHistoryPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	assert.Contains(t, HistoryPath(), historyName)
}
