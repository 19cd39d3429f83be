// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package runnertest provides a recording Runner for tests.
package runnertest

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/kako-jun/gitp/internal/runner"
)

var _ runner.Runner = (*Fake)(nil)

// Call is one recorded invocation.
type Call struct {
	Dir     string
	Program string
	Args    []string
	Start   time.Time
	End     time.Time
}

// Line is the command line without the program, for easy comparison.
func (c Call) Line() string {
	return strings.Join(c.Args, " ")
}

// Fake records every call and answers with Respond, or a clean exit when Respond is nil.
type Fake struct {
	// Respond builds the outcome for a call. Dir and Args are filled in by Fake.
	Respond func(c Call) runner.Outcome
	// Delay is slept inside every call, after Start is recorded.
	Delay time.Duration

	mu    sync.Mutex
	calls []Call
}

// Run records the call and returns the configured outcome.
func (f *Fake) Run(ctx context.Context, dir, program string, args ...string) runner.Outcome {
	c := Call{Dir: dir, Program: program, Args: slices.Clone(args), Start: time.Now()}

	if f.Delay > 0 {
		select {
		case <-time.After(f.Delay):
		case <-ctx.Done():
		}
	}

	var out runner.Outcome
	if f.Respond != nil {
		out = f.Respond(c)
	}

	c.End = time.Now()
	out.Dir = dir
	out.Args = c.Args

	f.mu.Lock()
	f.calls = append(f.calls, c)
	f.mu.Unlock()

	return out
}

// Calls returns a copy of the recorded calls in completion order.
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()

	return slices.Clone(f.calls)
}

// CallsIn returns the recorded calls whose directory is dir.
func (f *Fake) CallsIn(dir string) []Call {
	var out []Call

	for _, c := range f.Calls() {
		if c.Dir == dir {
			out = append(out, c)
		}
	}

	return out
}

// Lines returns Line for each recorded call.
func (f *Fake) Lines() []string {
	calls := f.Calls()
	out := make([]string, len(calls))

	for i, c := range calls {
		out[i] = c.Line()
	}

	return out
}

// FailWhen answers calls matching pred with stderr text and exit code 128.
func FailWhen(pred func(c Call) bool, stderr string) func(c Call) runner.Outcome {
	return func(c Call) runner.Outcome {
		if pred(c) {
			return runner.Outcome{Stderr: stderr, ExitCode: 128}
		}

		return runner.Outcome{}
	}
}

// ArgsStartWith matches calls whose arguments begin with prefix.
func ArgsStartWith(prefix ...string) func(c Call) bool {
	return func(c Call) bool {
		return len(c.Args) >= len(prefix) && slices.Equal(c.Args[:len(prefix)], prefix)
	}
}
