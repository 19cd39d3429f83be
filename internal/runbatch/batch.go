// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"context"
	"slices"
	"sync"

	"github.com/kako-jun/gitp/internal/ctxlog"
	"github.com/kako-jun/gitp/internal/progress"
	"github.com/kako-jun/gitp/internal/runner"
)

// Options select the scheduling policy.
type Options struct {
	// Serial runs tasks one at a time in order.
	Serial bool
	// Limit caps the number of parallel tasks. Zero or less is unbounded.
	Limit int
	// Policy classifies the decisive outcomes of every task.
	Policy runner.Policy
}

// Batch is a running set of tasks.
type Batch struct {
	done    chan struct{}
	mu      sync.Mutex
	results Results
}

// Start launches tasks and returns immediately.
func Start(ctx context.Context, rep progress.Reporter, tasks []Task, opts Options) *Batch {
	b := &Batch{
		done:    make(chan struct{}),
		results: make(Results, len(tasks)),
	}

	tasks = slices.Clone(tasks)
	mode := "parallel"

	if opts.Serial {
		mode = "serial"
	}

	ctxlog.Debug(ctx, "starting batch", "tasks", len(tasks), "mode", mode, "limit", opts.Limit, "policy", opts.Policy.String())

	go func() {
		defer close(b.done)

		if opts.Serial {
			runSerial(ctx, rep, tasks, opts, b.record)
			return
		}

		runParallel(ctx, rep, tasks, opts, b.record)
	}()

	return b
}

// Done is closed once every task has returned.
func (b *Batch) Done() <-chan struct{} {
	return b.done
}

// Wait blocks until Done and returns the results in task order.
func (b *Batch) Wait() Results {
	<-b.done

	b.mu.Lock()
	defer b.mu.Unlock()

	return slices.Clone(b.results)
}

func (b *Batch) record(i int, r Result) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.results[i] = r
}
