// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmdstate holds the global flags shared by every gitp command and turns
// them into loaded settings and batch options.
package cmdstate
