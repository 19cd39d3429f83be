// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/kako-jun/gitp/internal/ctxlog"
)

// Watch reads sigCh until ctx is done or sigCh is closed.
// The second signal of any one kind calls cancel and returns.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-sigCh:
			if !ok {
				return
			}

			if _, again := seen[sig]; again {
				ctxlog.Warn(ctx, "second signal received, aborting running git commands", "signal", sig.String())
				Stop(sigCh)
				cancel()

				return
			}

			ctxlog.Warn(ctx, "signal received, send it again to abort", "signal", sig.String())

			seen[sig] = struct{}{}
		}
	}
}
