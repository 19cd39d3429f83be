// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color decorates terminal text with ANSI SGR codes.
//
// Output is coloured when stdout is a terminal, unless NO_COLOR is set.
// FORCE_COLOR turns colour on for non-terminal output, for example when gitp
// is piped through a pager that understands escape codes.
package color
