// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func skipOnWindows(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("uses /bin/sh")
	}
}

func TestOS_Run_CapturesBothStreams(t *testing.T) {
	skipOnWindows(t)
	defer goleak.VerifyNone(t)

	r := &OS{}
	out := r.Run(context.Background(), t.TempDir(), "sh", "-c", "echo out; echo err 1>&2; exit 3")

	require.NoError(t, out.Err)
	assert.Equal(t, "out\n", out.Stdout)
	assert.Equal(t, "err\n", out.Stderr)
	assert.Equal(t, "out\nerr\n", out.Combined())
	assert.Equal(t, 3, out.ExitCode)
	assert.Equal(t, []string{"-c", "echo out; echo err 1>&2; exit 3"}, out.Args)
}

func TestOS_Run_UsesExplicitDir(t *testing.T) {
	skipOnWindows(t)
	defer goleak.VerifyNone(t)

	r := &OS{}
	dirs := make([]string, 8)

	for i := range dirs {
		dirs[i] = t.TempDir()
	}

	var wg sync.WaitGroup

	got := make([]string, len(dirs))

	for i, d := range dirs {
		wg.Add(1)

		go func() {
			defer wg.Done()

			got[i] = strings.TrimSpace(r.Run(context.Background(), d, "pwd").Stdout)
		}()
	}

	wg.Wait()

	for i, d := range dirs {
		want, err := filepath.EvalSymlinks(d)
		require.NoError(t, err)

		have, err := filepath.EvalSymlinks(got[i])
		require.NoError(t, err)
		assert.Equal(t, want, have, "call %d ran in the wrong directory", i)
	}
}

func TestOS_Run_Env(t *testing.T) {
	skipOnWindows(t)

	r := &OS{Env: map[string]string{"GITP_PROBE": "from-runner"}}
	out := r.Run(context.Background(), t.TempDir(), "sh", "-c", `printf %s "$GITP_PROBE"`)

	require.NoError(t, out.Err)
	assert.Equal(t, "from-runner", out.Stdout)
}

func TestOS_Run_LaunchErrors(t *testing.T) {
	r := &OS{}

	out := r.Run(context.Background(), filepath.Join(t.TempDir(), "missing"), "git", "status")
	assert.ErrorIs(t, out.Err, ErrDirectoryNotFound)
	assert.Equal(t, -1, out.ExitCode)

	out = r.Run(context.Background(), t.TempDir(), "gitp-no-such-program-"+fmt.Sprint(time.Now().UnixNano()))
	assert.ErrorIs(t, out.Err, ErrCommandNotFound)
}

func TestOS_Run_Overflow(t *testing.T) {
	skipOnWindows(t)

	r := &OS{MaxOutput: 10}
	out := r.Run(context.Background(), t.TempDir(), "sh", "-c", "printf 0123456789abcdef")

	assert.ErrorIs(t, out.Err, ErrBufferOverflow)
	assert.Equal(t, "0123456789", out.Stdout)
	assert.Equal(t, 0, out.ExitCode)
}

func TestOS_Run_ContextCancelKills(t *testing.T) {
	skipOnWindows(t)
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	out := (&OS{}).Run(ctx, t.TempDir(), "sleep", "10")

	assert.Less(t, time.Since(start), 5*time.Second)
	assert.ErrorIs(t, out.Err, ErrProcessKilled)
	assert.ErrorIs(t, out.Err, context.DeadlineExceeded)
}
