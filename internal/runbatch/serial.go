// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"context"

	"github.com/kako-jun/gitp/internal/progress"
)

// runSerial runs tasks in order, each to completion before the next starts.
func runSerial(ctx context.Context, rep progress.Reporter, tasks []Task, opts Options, record func(int, Result)) {
	for i, t := range tasks {
		record(i, execute(ctx, rep, t, opts.Policy))
	}
}
