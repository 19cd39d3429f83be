// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package gitops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	root := t.TempDir()

	repoDir := filepath.Join(root, "gitp")
	_, err := git.PlainInit(repoDir, false)
	require.NoError(t, err)

	co, err := Inspect(repoDir)
	require.NoError(t, err)
	assert.Equal(t, repoDir, co.Path)
	assert.Equal(t, "master", co.Head, "an unborn branch still reports its name")

	plain := filepath.Join(root, "plain")
	require.NoError(t, os.Mkdir(plain, 0o755))

	_, err = Inspect(plain)
	assert.ErrorIs(t, err, ErrResolveDirectory)

	_, err = Inspect(filepath.Join(root, "missing"))
	assert.ErrorIs(t, err, ErrResolveDirectory)

	file := filepath.Join(root, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err = Inspect(file)
	assert.ErrorIs(t, err, ErrResolveDirectory)
}

func TestKind(t *testing.T) {
	assert.False(t, KindClone.NeedsCheckout())

	for _, k := range []Kind{KindPull, KindPush, KindConfig, KindConfigUser, KindExec} {
		assert.True(t, k.NeedsCheckout(), k.String())
	}

	assert.Equal(t, "config user", KindConfigUser.String())
}
