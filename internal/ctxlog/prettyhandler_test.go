// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func record(msg string, attrs ...slog.Attr) slog.Record {
	r := slog.NewRecord(time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), slog.LevelInfo, msg, 0)
	r.AddAttrs(attrs...)

	return r
}

func TestPrettyHandler_Handle(t *testing.T) {
	buf := &bytes.Buffer{}
	h := NewPrettyHandler(nil, WithDestinationWriter(buf))

	require.NoError(t, h.Handle(context.Background(), record("pull finished", slog.String("repo", "dotfiles"))))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "[03:04:05.000] INFO: pull finished {"), out)
	assert.Contains(t, out, `"repo": "dotfiles"`)
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestPrettyHandler_EmptyAttrs(t *testing.T) {
	buf := &bytes.Buffer{}
	h := NewPrettyHandler(nil, WithDestinationWriter(buf))
	require.NoError(t, h.Handle(context.Background(), record("quiet")))
	assert.Equal(t, "[03:04:05.000] INFO: quiet \n", buf.String())

	buf.Reset()
	h = NewPrettyHandler(nil, WithDestinationWriter(buf), WithOutputEmptyAttrs())
	require.NoError(t, h.Handle(context.Background(), record("quiet")))
	assert.Contains(t, buf.String(), "{}")
}

func TestPrettyHandler_ReplaceAttrDropsTime(t *testing.T) {
	buf := &bytes.Buffer{}
	h := NewPrettyHandler(&slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}

			return a
		},
	}, WithDestinationWriter(buf))

	require.NoError(t, h.Handle(context.Background(), record("no clock")))
	assert.Equal(t, "INFO: no clock \n", buf.String())
}

func TestPrettyHandler_WithAttrsKeepsOptions(t *testing.T) {
	buf := &bytes.Buffer{}
	h := NewPrettyHandler(nil, WithDestinationWriter(buf), WithColour(), WithOutputEmptyAttrs())

	derived, ok := h.WithAttrs([]slog.Attr{slog.String("batch", "x")}).(*PrettyHandler)
	require.True(t, ok)
	assert.True(t, derived.colour)
	assert.True(t, derived.outputEmptyAttrs)
	assert.Same(t, h.m, derived.m)

	grouped, ok := h.WithGroup("git").(*PrettyHandler)
	require.True(t, ok)
	assert.Same(t, h.writer, grouped.writer)
}

func TestPrettyHandler_Colour(t *testing.T) {
	buf := &bytes.Buffer{}
	h := NewPrettyHandler(nil, WithDestinationWriter(buf), WithColour())
	require.NoError(t, h.Handle(context.Background(), record("painted")))
	assert.Contains(t, buf.String(), "\033[36mINFO:\033[0m")
}

func TestPrettyHandler_WriteError(t *testing.T) {
	h := NewPrettyHandler(nil, WithDestinationWriter(failingWriter{}))
	err := h.Handle(context.Background(), record("lost"))
	assert.ErrorIs(t, err, ErrIoWrite)
}

func TestPrettyHandler_Concurrent(t *testing.T) {
	buf := &lockedBuffer{}
	logger := slog.New(NewPrettyHandler(nil, WithDestinationWriter(buf)))

	var wg sync.WaitGroup

	for i := range 20 {
		wg.Add(1)

		go func() {
			defer wg.Done()
			logger.Info("tick", "n", i)
		}()
	}

	wg.Wait()
	assert.Equal(t, 20, strings.Count(buf.String(), "INFO: tick"))
}

type lockedBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (l *lockedBuffer) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.b.Write(p)
}

func (l *lockedBuffer) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.b.String()
}
