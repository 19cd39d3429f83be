// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"context"
	"errors"
	"time"

	"github.com/kako-jun/gitp/internal/progress"
)

// ErrCancelled is returned when the user leaves the view before every repository finished.
var ErrCancelled = errors.New("cancelled by user")

// Interval is the refresh cadence of both presenters.
var Interval = 100 * time.Millisecond

// Hold is how long the final frame stays on screen.
var Hold = time.Second

// Presenter observes a table until every entry is terminal.
type Presenter interface {
	Present(ctx context.Context, table *progress.Table) error
}
