// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"context"
	"fmt"

	"github.com/kako-jun/gitp/internal/ctxlog"
	"github.com/kako-jun/gitp/internal/gitops"
	"github.com/kako-jun/gitp/internal/progress"
	"github.com/kako-jun/gitp/internal/runner"
)

// Messages written by every task.
const (
	MessageStarting = "Starting..."
	MessageFailed   = "Failed"
	StartPercent    = 10
	DonePercent     = 100
)

// Task is the work for one repository.
type Task struct {
	Name string
	Run  func(ctx context.Context, step gitops.Step) (gitops.Report, error)
}

// Result is the final state of one task.
type Result struct {
	Name     string
	Status   progress.Status
	Message  string
	Err      error
	Outcomes []runner.Outcome
}

// Results is the outcome of a batch in task order.
type Results []Result

// HasError reports whether any task failed.
func (r Results) HasError() bool {
	for _, res := range r {
		if res.Status != progress.Success {
			return true
		}
	}

	return false
}

// Failed returns the results that did not succeed.
func (r Results) Failed() Results {
	var out Results

	for _, res := range r {
		if res.Status != progress.Success {
			out = append(out, res)
		}
	}

	return out
}

// execute runs one task to a terminal state. It never panics and never returns early
// without a final update.
func execute(ctx context.Context, rep progress.Reporter, t Task, policy runner.Policy) (res Result) {
	res = Result{Name: t.Name}
	logger := ctxlog.Logger(ctx).With("repo", t.Name)

	defer func() {
		if p := recover(); p != nil {
			res.Status = progress.Failed
			res.Err = fmt.Errorf("panic: %v", p)
			res.Message = "Error: " + res.Err.Error()
		}

		rep.Update(t.Name, res.Status, res.Message, DonePercent)
		logger.Info("repository finished", "status", res.Status.String(), "message", res.Message)
	}()

	if err := ctx.Err(); err != nil {
		res.Status = progress.Failed
		res.Err = err
		res.Message = "Error: " + err.Error()

		return res
	}

	rep.Update(t.Name, progress.Running, MessageStarting, StartPercent)

	report, err := t.Run(ctx, func(message string, percent int) {
		rep.Update(t.Name, progress.Running, message, percent)
	})

	res.Outcomes = report.Decisive

	switch {
	case err != nil:
		res.Status = progress.Failed
		res.Err = err
		res.Message = "Error: " + err.Error()
	case policy.Failed(report.Decisive...):
		res.Status = progress.Failed
		res.Message = MessageFailed
	default:
		res.Status = progress.Success
		res.Message = report.SuccessMessage

		if res.Message == "" {
			res.Message = gitops.MessageDone
		}
	}

	return res
}
