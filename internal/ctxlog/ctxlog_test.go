// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndLogger(t *testing.T) {
	ctx := context.Background()
	assert.Same(t, DefaultLogger, Logger(ctx), "missing logger falls back to the default")
	assert.Same(t, DefaultLogger, Logger(New(ctx, nil)))

	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, custom, Logger(New(ctx, custom)))
}

func TestNewForTUI(t *testing.T) {
	old := LevelVar.Level()
	LevelVar.Set(slog.LevelInfo)
	t.Cleanup(func() { LevelVar.Set(old) })

	buf := &bytes.Buffer{}
	ctx := NewForTUI(context.Background(), buf)

	Info(ctx, "clone started", "repo", "gitp")
	Debug(ctx, "hidden")

	out := buf.String()
	assert.Contains(t, out, "INFO: clone started")
	assert.Contains(t, out, `"repo": "gitp"`)
	assert.NotContains(t, out, "hidden")
	assert.NotContains(t, out, "\033[", "buffered output is never coloured")
}

func TestWith(t *testing.T) {
	old := LevelVar.Level()
	LevelVar.Set(slog.LevelDebug)
	t.Cleanup(func() { LevelVar.Set(old) })

	buf := &bytes.Buffer{}
	ctx := With(NewForTUI(context.Background(), buf), "batch", "b-1")
	Warn(ctx, "slow")
	Error(ctx, "boom")

	require.Contains(t, buf.String(), `"batch": "b-1"`)
	assert.Contains(t, buf.String(), "WARN: slow")
	assert.Contains(t, buf.String(), "ERROR: boom")
}

func TestLevelFromString(t *testing.T) {
	tests := map[string]slog.Level{
		"DEBUG":  slog.LevelDebug,
		"info":   slog.LevelInfo,
		" WARN ": slog.LevelWarn,
		"ERROR":  slog.LevelError,
		"":       slog.LevelWarn,
		"chatty": slog.LevelWarn,
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, levelFromString(in))
		})
	}
}
