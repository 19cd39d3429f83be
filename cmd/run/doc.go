// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package run contains the batch commands: clone, pull, push, config and exec.
// Each of them, the root command and the interactive prompt end up in Tokens.
package run
