// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"context"

	"github.com/kako-jun/gitp/internal/progress"
	"golang.org/x/sync/errgroup"
)

// runParallel gives every task its own goroutine. Tasks always report nil to the
// group so that one failure never cancels the others.
func runParallel(ctx context.Context, rep progress.Reporter, tasks []Task, opts Options, record func(int, Result)) {
	var g errgroup.Group

	if opts.Limit > 0 {
		g.SetLimit(opts.Limit)
	}

	for i, t := range tasks {
		g.Go(func() error {
			record(i, execute(ctx, rep, t, opts.Policy))
			return nil
		})
	}

	_ = g.Wait()
}
