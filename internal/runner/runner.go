// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrCommandNotFound is returned when the program is not on PATH.
	ErrCommandNotFound = errors.New("command not found")
	// ErrDirectoryNotFound is returned when the working directory does not exist.
	ErrDirectoryNotFound = errors.New("working directory not found")
	// ErrCouldNotStartProcess is returned when the operating system refuses to spawn the process.
	ErrCouldNotStartProcess = errors.New("could not start process")
	// ErrFailedToCreatePipe is returned when an output pipe cannot be created.
	ErrFailedToCreatePipe = errors.New("failed to create pipe")
	// ErrFailedToReadBuffer is returned when reading a pipe fails.
	ErrFailedToReadBuffer = errors.New("failed to read buffer")
	// ErrProcessKilled is returned when the context ended while the process was running.
	ErrProcessKilled = errors.New("process killed")
)

// Runner runs program with args in dir.
// Implementations must not change the process working directory.
type Runner interface {
	Run(ctx context.Context, dir, program string, args ...string) Outcome
}

// Func adapts a function to the Runner interface.
type Func func(ctx context.Context, dir, program string, args ...string) Outcome

var _ Runner = Func(nil)

// Run calls f.
func (f Func) Run(ctx context.Context, dir, program string, args ...string) Outcome {
	return f(ctx, dir, program, args...)
}

// Outcome is the result of one invocation.
type Outcome struct {
	Dir      string
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
	// Err is set when the process could not be launched or its output could not be read.
	// It is nil for a process that ran and exited non-zero.
	Err error
}

// Combined returns stdout followed by stderr.
func (o Outcome) Combined() string {
	return o.Stdout + o.Stderr
}

// Summary returns the last non-empty output line, or the error text.
func (o Outcome) Summary() string {
	if o.Err != nil {
		return o.Err.Error()
	}

	lines := strings.Split(strings.TrimSpace(o.Combined()), "\n")

	return strings.TrimSpace(lines[len(lines)-1])
}
