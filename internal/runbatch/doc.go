// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package runbatch is the worker pool. It runs one Task per repository, in
// parallel or one at a time, and writes each task's progress to a progress.Reporter.
//
// A task marks itself Running at 10%, forwards its checkpoints, and ends Success
// or Failed at 100%. Tasks never affect each other: an error in one repository is
// recorded against that repository only.
//
// Start returns at once. The caller observes progress through the reporter and
// learns that every task has returned through Batch.Done.
package runbatch
