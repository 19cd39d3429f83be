// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

// Status is the lifecycle state of one repository in a batch.
type Status int

const (
	// Pending means the task has not started yet.
	Pending Status = iota
	// Running means the task is executing git commands.
	Running
	// Success is terminal.
	Success
	// Failed is terminal.
	Failed
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Running:
		return "running"
	case Success:
		return "success"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further updates are expected.
func (s Status) Terminal() bool {
	return s == Success || s == Failed
}

// Glyph is the single character shown in front of a repository name.
func (s Status) Glyph() string {
	switch s {
	case Running:
		return "⚡"
	case Success:
		return "✅"
	case Failed:
		return "❌"
	default:
		return "⏳"
	}
}
