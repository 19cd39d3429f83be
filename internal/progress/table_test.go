// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tbl := New([]string{"gitp", "dotfiles", "gitp"})
	snap := tbl.Snapshot()

	require.Len(t, snap, 2, "duplicate names collapse onto one entry")
	assert.Equal(t, "gitp", snap[0].Name)
	assert.Equal(t, "dotfiles", snap[1].Name)

	for _, e := range snap {
		assert.Equal(t, Pending, e.Status)
		assert.Equal(t, WaitingMessage, e.Message)
		assert.Zero(t, e.Percent)
	}
}

func TestTable_UpdateUnknownNameIsNoop(t *testing.T) {
	tbl := New([]string{"gitp"})
	tbl.Update("elsewhere", Failed, "boom", 100)

	snap := tbl.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, Pending, snap[0].Status)
}

func TestTable_SnapshotIsACopy(t *testing.T) {
	tbl := New([]string{"gitp"})
	snap := tbl.Snapshot()
	snap[0].Status = Failed

	assert.Equal(t, Pending, tbl.Snapshot()[0].Status)
}

func TestTable_Timestamps(t *testing.T) {
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tbl := New([]string{"gitp"})
	tbl.now = func() time.Time { return clock }

	tbl.Update("gitp", Running, "Starting...", 10)

	clock = clock.Add(1500 * time.Millisecond)
	tbl.Update("gitp", Running, "Pulling...", 50)
	tbl.Update("gitp", Success, "Done", 100)

	clock = clock.Add(time.Hour)
	tbl.Update("gitp", Success, "Done", 100)

	e := tbl.Snapshot()[0]
	assert.Equal(t, 1500*time.Millisecond, e.Elapsed())
	assert.Zero(t, Entry{}.Elapsed())
}

func TestTable_ConcurrentDistinctUpdatesAllLand(t *testing.T) {
	const n = 64

	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("repo-%02d", i)
	}

	tbl := New(names)

	var wg sync.WaitGroup

	for i, name := range names {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for p := 10; p <= 100; p += 10 {
				tbl.Update(name, Running, "step", p)
			}

			tbl.Update(name, Success, fmt.Sprintf("done %d", i), 100)
		}()
	}

	// Readers race with writers; every snapshot must be internally consistent.
	stop := make(chan struct{})
	readerDone := make(chan struct{})

	go func() {
		defer close(readerDone)

		for {
			select {
			case <-stop:
				return
			default:
				for _, e := range tbl.Snapshot() {
					if e.Status == Success {
						assert.Equal(t, 100, e.Percent)
					}
				}
			}
		}
	}()

	wg.Wait()
	close(stop)
	<-readerDone

	snap := tbl.Snapshot()
	require.Len(t, snap, n)

	for i, e := range snap {
		assert.Equal(t, Success, e.Status, e.Name)
		assert.Equal(t, fmt.Sprintf("done %d", i), e.Message)
	}

	assert.True(t, AllDone(snap))
}

func TestTable_SameNameNeverTears(t *testing.T) {
	tbl := New([]string{"gitp"})

	var wg sync.WaitGroup

	for i := range 50 {
		wg.Add(1)

		go func() {
			defer wg.Done()
			tbl.Update("gitp", Running, fmt.Sprintf("m%d", i), i)
		}()
	}

	wg.Wait()

	e := tbl.Snapshot()[0]
	assert.Equal(t, fmt.Sprintf("m%d", e.Percent), e.Message, "message and percent come from the same write")
}

func TestCountAndAllDone(t *testing.T) {
	entries := []Entry{
		{Name: "a", Status: Success},
		{Name: "b", Status: Failed},
		{Name: "c", Status: Running},
		{Name: "d", Status: Pending},
	}

	assert.Equal(t, Counts{Total: 4, Completed: 2, Succeeded: 1, Failed: 1}, Count(entries))
	assert.False(t, AllDone(entries))
	assert.True(t, AllDone(entries[:2]))
	assert.True(t, AllDone(nil))
}

func TestStatus(t *testing.T) {
	tests := []struct {
		status   Status
		str      string
		glyph    string
		terminal bool
	}{
		{Pending, "pending", "⏳", false},
		{Running, "running", "⚡", false},
		{Success, "success", "✅", true},
		{Failed, "failed", "❌", true},
		{Status(42), "unknown", "⏳", false},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			assert.Equal(t, tt.str, tt.status.String())
			assert.Equal(t, tt.glyph, tt.status.Glyph())
			assert.Equal(t, tt.terminal, tt.status.Terminal())
		})
	}
}

func TestDiscard(t *testing.T) {
	var r Reporter = Discard{}
	r.Update("anything", Failed, "ignored", 100)
}
