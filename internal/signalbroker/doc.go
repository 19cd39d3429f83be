// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker turns OS termination signals into context cancellation.
//
// The first signal of a kind only logs a warning so a batch of git commands is not
// torn down by a stray keypress. The second signal of the same kind cancels the root
// context, which kills every running git child process.
package signalbroker
