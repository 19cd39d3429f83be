// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package batch turns a command line into a running batch.
//
// Resolve maps command tokens, including their abbreviations, onto a Command.
// RunBatch selects the enabled repositories, builds one task per repository,
// starts the worker pool and hands the shared progress table to a presenter.
package batch
