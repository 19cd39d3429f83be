// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kako-jun/gitp/internal/progress"
	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastClock(t *testing.T) {
	t.Helper()

	stubs := gostub.Stub(&Interval, 5*time.Millisecond)
	stubs.Stub(&Hold, 5*time.Millisecond)
	t.Cleanup(stubs.Reset)
}

func headless(in io.Reader) *TUI {
	return &TUI{Options: []tea.ProgramOption{
		tea.WithInput(in),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
	}}
}

func TestTUI_ReturnsWhenAllTerminal(t *testing.T) {
	fastClock(t)

	table := progress.New([]string{"a", "b"})

	go func() {
		time.Sleep(20 * time.Millisecond)
		table.Update("a", progress.Success, "Done", 100)
		table.Update("b", progress.Failed, "Failed", 100)
	}()

	done := make(chan error, 1)
	go func() { done <- headless(strings.NewReader("")).Present(t.Context(), table) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("view did not exit after every repository finished")
	}
}

func TestTUI_QuitKeyReturnsCancelled(t *testing.T) {
	fastClock(t)

	err := headless(strings.NewReader("q")).Present(t.Context(), progress.New([]string{"a"}))
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestTUI_ContextCancelled(t *testing.T) {
	fastClock(t)

	ctx, cancel := context.WithCancel(t.Context())
	time.AfterFunc(20*time.Millisecond, cancel)

	err := headless(strings.NewReader("")).Present(ctx, progress.New([]string{"a"}))
	assert.ErrorIs(t, err, context.Canceled)
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.buf.String()
}

func TestPlain_LogsEachTransitionOnce(t *testing.T) {
	fastClock(t)
	t.Setenv("NO_COLOR", "1")

	table := progress.New([]string{"a", "b"})
	out := &syncBuffer{}

	go func() {
		table.Update("a", progress.Running, "Pulling...", 50)
		time.Sleep(15 * time.Millisecond)
		table.Update("a", progress.Running, "Still pulling...", 60)
		table.Update("a", progress.Success, "Done", 100)
		table.Update("b", progress.Failed, "Failed", 100)
	}()

	require.NoError(t, (&Plain{Out: out}).Present(t.Context(), table))

	text := out.String()
	assert.Equal(t, 1, strings.Count(text, "a: Done"))
	assert.Equal(t, 1, strings.Count(text, "b: Failed"))
	assert.NotContains(t, text, "Waiting...")
	assert.True(t, strings.HasSuffix(text, "Total: 2 | Completed: 2 | Success: 1 | Failed: 1\n"))
}

func TestPlain_ContextCancelled(t *testing.T) {
	fastClock(t)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := (&Plain{Out: io.Discard}).Present(ctx, progress.New([]string{"a"}))
	assert.ErrorIs(t, err, context.Canceled)
}
