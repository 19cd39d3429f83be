// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tui presents a progress.Table while a batch runs.
//
// The TUI presenter is a bubbletea program on the alternate screen. It snapshots the
// table every Interval, independently of the workers, and renders one block per
// repository with a progress bar. Pressing q stops the view at once but leaves the
// workers running. Once every entry is terminal the final frame is held for Hold and
// the program exits.
//
// The Plain presenter is for headless use. It polls the same table and logs every
// status change.
package tui
