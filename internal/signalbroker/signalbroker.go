// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kako-jun/gitp/internal/ctxlog"
)

var termSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGQUIT,
}

// New registers for sigs (or the default termination signals) and returns the channel.
// Call Stop with the same channel to unregister.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	ch := make(chan os.Signal, 1)

	if len(sigs) == 0 {
		sigs = termSignals
	}

	ctxlog.Debug(ctx, "signal broker registered", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch
}

// Stop unregisters ch. It is safe to call more than once.
func Stop(ch chan os.Signal) {
	signal.Stop(ch)
}
