// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"sync"
	"time"
)

// WaitingMessage is the message of a freshly created entry.
const WaitingMessage = "Waiting..."

// Reporter receives status transitions for a named repository.
type Reporter interface {
	Update(name string, status Status, message string, percent int)
}

var (
	_ Reporter = (*Table)(nil)
	_ Reporter = Discard{}
)

// Discard is a Reporter that drops every update.
type Discard struct{}

// Update does nothing.
func (Discard) Update(string, Status, string, int) {}

// Entry is one row of a Table.
type Entry struct {
	Name    string
	Status  Status
	Message string
	Percent int
	// Started is set on the first Running update, Finished on the first terminal one.
	Started  time.Time
	Finished time.Time
}

// Elapsed is the time between Started and Finished, or zero if either is unset.
func (e Entry) Elapsed() time.Duration {
	if e.Started.IsZero() || e.Finished.IsZero() {
		return 0
	}

	return e.Finished.Sub(e.Started)
}

// Table is an ordered, mutex-guarded set of entries keyed by name.
type Table struct {
	mu      sync.Mutex
	entries []Entry
	index   map[string]int
	now     func() time.Time
}

// New returns a table with one Pending entry per name, in the given order.
// A repeated name keeps its first position.
func New(names []string) *Table {
	t := &Table{
		entries: make([]Entry, 0, len(names)),
		index:   make(map[string]int, len(names)),
		now:     time.Now,
	}

	for _, n := range names {
		if _, ok := t.index[n]; ok {
			continue
		}

		t.index[n] = len(t.entries)
		t.entries = append(t.entries, Entry{Name: n, Status: Pending, Message: WaitingMessage})
	}

	return t
}

// Update overwrites status, message and percent of the named entry in one step.
// Unknown names are ignored.
func (t *Table) Update(name string, status Status, message string, percent int) {
	now := t.now()

	t.mu.Lock()
	defer t.mu.Unlock()

	i, ok := t.index[name]
	if !ok {
		return
	}

	e := &t.entries[i]
	e.Status = status
	e.Message = message
	e.Percent = percent

	if status != Pending && e.Started.IsZero() {
		e.Started = now
	}

	if status.Terminal() && e.Finished.IsZero() {
		e.Finished = now
	}
}

// Snapshot returns a copy of every entry taken at one instant.
func (t *Table) Snapshot() []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Entry, len(t.entries))
	copy(out, t.entries)

	return out
}

// Len is the number of entries.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.entries)
}

// Counts are the footer totals of a snapshot.
type Counts struct {
	Total     int
	Completed int
	Succeeded int
	Failed    int
}

// Count totals a snapshot.
func Count(entries []Entry) Counts {
	c := Counts{Total: len(entries)}

	for _, e := range entries {
		switch e.Status {
		case Success:
			c.Succeeded++
			c.Completed++
		case Failed:
			c.Failed++
			c.Completed++
		}
	}

	return c
}

// AllDone reports whether every entry is terminal.
// An empty snapshot is done.
func AllDone(entries []Entry) bool {
	for _, e := range entries {
		if !e.Status.Terminal() {
			return false
		}
	}

	return true
}
