// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"runtime"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

// HostEncoding is the encoding git output is assumed to use on this machine.
var HostEncoding = EncodingFor(runtime.GOOS)

// EncodingFor returns the console encoding used on goos.
func EncodingFor(goos string) encoding.Encoding {
	if goos == "windows" {
		return japanese.ShiftJIS
	}

	return unicode.UTF8
}

// Decode converts b to a string. Invalid sequences become U+FFFD.
func Decode(enc encoding.Encoding, b []byte) string {
	if len(b) == 0 {
		return ""
	}

	if enc == nil {
		enc = HostEncoding
	}

	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), string(utf8.RuneError))
	}

	return string(out)
}
