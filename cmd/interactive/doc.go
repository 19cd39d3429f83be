// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package interactive is the prompt gitp shows when started without arguments.
// It keeps a history file in the home directory and completes command names.
package interactive
