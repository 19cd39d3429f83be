// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a *slog.Logger in a context.Context.
//
// The level is read once from GITP_LOG_LEVEL (DEBUG, INFO, WARN or ERROR, default WARN).
// The default handler is PrettyHandler, which prints a timestamp, the level, the message
// and the record attributes as indented JSON.
//
// While the progress view owns the terminal, log output goes to a buffer instead
// (see NewForTUI and Buffer) and is written out after the view closes.
package ctxlog
