// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package runner executes one external program and reports what happened.
//
// Every call names its working directory explicitly. The process-wide current
// directory is never read or changed, so any number of goroutines may run
// commands in different checkouts at the same time.
//
// Output is decoded with the host text encoding: Shift-JIS on Windows and UTF-8
// everywhere else. Decoding is lossy and never fails.
//
// Whether an Outcome counts as a failure is decided by a Policy. The default,
// PolicyOutput, looks for "fatal" or "error" in the output, which is how gitp has
// always behaved. PolicyExitCode trusts the exit status and PolicyStrict needs both
// to agree that the command succeeded.
package runner
