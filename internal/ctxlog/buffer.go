// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"io"
	"sync"
)

var _ io.WriterTo = (*Buffer)(nil)

// Buffer holds log records while a full screen view owns the terminal.
// Workers may still be logging while it is flushed.
type Buffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Write appends p.
func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

// WriteTo moves everything buffered so far to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.WriteTo(w)
}

// String returns the unflushed records.
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}
