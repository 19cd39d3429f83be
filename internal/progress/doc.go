// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package progress holds the per-repository state of one batch.
//
// A Table is created with one Pending entry per repository before any worker
// starts. Workers write through Update and the view reads through Snapshot.
// Both take the same mutex for the length of one entry write or one copy of
// the table, and nothing else runs under it.
package progress
