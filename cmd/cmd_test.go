// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCmd_Copyright(t *testing.T) {
	assert.Equal(t, "Copyright (c) kako-jun 2025. All rights reserved.", RootCmd.Copyright)
}
