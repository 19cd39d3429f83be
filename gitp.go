// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package main

var (
	// Version is set during the build process.
	Version = "dev"
	// Commit is set during the build process.
	Commit = "unknown"
)
