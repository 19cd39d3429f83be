// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"testing"

	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

func TestEncodingFor(t *testing.T) {
	assert.Equal(t, japanese.ShiftJIS, EncodingFor("windows"))
	assert.Equal(t, unicode.UTF8, EncodingFor("linux"))
	assert.Equal(t, unicode.UTF8, EncodingFor("darwin"))
}

func TestDecode(t *testing.T) {
	// "日本" in Shift-JIS.
	sjis := []byte{0x93, 0xfa, 0x96, 0x7b}

	assert.Equal(t, "日本", Decode(japanese.ShiftJIS, sjis))
	assert.Equal(t, "日本", Decode(unicode.UTF8, []byte("日本")))
	assert.Equal(t, "", Decode(unicode.UTF8, nil))

	got := Decode(unicode.UTF8, []byte{'o', 'k', 0xff})
	assert.Equal(t, "ok�", got, "invalid bytes are replaced, not rejected")
}

func TestDecode_NilUsesHostEncoding(t *testing.T) {
	stubs := gostub.Stub(&HostEncoding, japanese.ShiftJIS)
	defer stubs.Reset()

	assert.Equal(t, "日本", Decode(nil, []byte{0x93, 0xfa, 0x96, 0x7b}))
}
