// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the entry point for the gitp command-line application.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kako-jun/gitp/cmd"
	"github.com/kako-jun/gitp/internal/ctxlog"
	"github.com/kako-jun/gitp/internal/signalbroker"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	cmd.RootCmd.Version = fmt.Sprintf("%s (commit: %s)", Version, Commit)

	err := cmd.RootCmd.Run(ctx, os.Args) // ExitCoder errors are handled by the cli framework

	if ctx.Err() != nil {
		ctxlog.Error(ctx, "command terminated due to cancellation", "error", ctx.Err())
		cancel()
		os.Exit(1)
	}

	cancel()

	if err != nil {
		ctxlog.Error(ctx, "command execution failed", "error", err)
		os.Exit(1)
	}
}
