// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/kako-jun/gitp/internal/ctxlog"
	"golang.org/x/text/encoding"
)

// DefaultMaxOutput bounds each captured stream.
const DefaultMaxOutput = 8 * 1024 * 1024

// ErrBufferOverflow is returned when a stream exceeds the output limit.
var ErrBufferOverflow = fmt.Errorf("output exceeds max size of %d bytes", DefaultMaxOutput)

var _ Runner = (*OS)(nil)

// OS runs real processes.
type OS struct {
	// Env is added to the inherited environment.
	Env map[string]string
	// Encoding decodes both streams. Nil means HostEncoding.
	Encoding encoding.Encoding
	// MaxOutput bounds each stream. Zero means DefaultMaxOutput.
	MaxOutput int64
}

// Run starts program in dir and blocks until it exits and both streams are drained.
// Cancelling ctx kills the process.
func (r *OS) Run(ctx context.Context, dir, program string, args ...string) Outcome {
	logger := ctxlog.Logger(ctx).With("program", program, "dir", dir)
	out := Outcome{Dir: dir, Args: slices.Clone(args), ExitCode: -1}

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		out.Err = fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		return out
	}

	path, err := LookPath(program)
	if err != nil {
		out.Err = err
		return out
	}

	rOut, wOut, err := os.Pipe()
	if err != nil {
		out.Err = errors.Join(ErrFailedToCreatePipe, err)
		return out
	}

	rErr, wErr, err := os.Pipe()
	if err != nil {
		closeAll(rOut, wOut)
		out.Err = errors.Join(ErrFailedToCreatePipe, err)

		return out
	}

	stdin, err := os.Open(os.DevNull)
	if err != nil {
		closeAll(rOut, wOut, rErr, wErr)
		out.Err = errors.Join(ErrCouldNotStartProcess, err)

		return out
	}

	logger.Debug("starting process", "args", args)

	ps, err := os.StartProcess(path, slices.Concat([]string{filepath.Base(path)}, args), &os.ProcAttr{
		Dir:   dir,
		Env:   r.environ(),
		Files: []*os.File{stdin, wOut, wErr},
	})

	// The child holds its own copies; closing ours lets the readers see EOF.
	closeAll(stdin, wOut, wErr)

	if err != nil {
		closeAll(rOut, rErr)
		out.Err = errors.Join(ErrCouldNotStartProcess, err)

		return out
	}

	limit := r.MaxOutput
	if limit <= 0 {
		limit = DefaultMaxOutput
	}

	var (
		wg               sync.WaitGroup
		stdout, stderr   []byte
		stdoutE, stderrE error
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		stdout, stdoutE = readAllUpToMax(rOut, limit)
	}()

	go func() {
		defer wg.Done()
		stderr, stderrE = readAllUpToMax(rErr, limit)
	}()

	done := make(chan struct{})
	killed := make(chan struct{})

	go func() {
		select {
		case <-ctx.Done():
			if err := ps.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
				logger.Warn("process kill error", "pid", ps.Pid, "error", err)
			}

			close(killed)
		case <-done:
		}
	}()

	wg.Wait()

	state, waitErr := ps.Wait()

	close(done)
	closeAll(rOut, rErr)

	if state != nil {
		out.ExitCode = state.ExitCode()
	}

	select {
	case <-killed:
		waitErr = errors.Join(ErrProcessKilled, ctx.Err())
	default:
	}

	out.Err = errors.Join(waitErr, stdoutE, stderrE)
	out.Stdout = Decode(r.Encoding, stdout)
	out.Stderr = Decode(r.Encoding, stderr)

	logger.Debug("process finished", "exitCode", out.ExitCode, "stdoutBytes", len(stdout), "stderrBytes", len(stderr))

	return out
}

func (r *OS) environ() []string {
	env := os.Environ()
	for k, v := range r.Env {
		env = append(env, k+"="+v)
	}

	return env
}

// readAllUpToMax reads r to EOF, keeping at most limit bytes.
// Bytes past the limit are discarded so the child never blocks on a full pipe.
func readAllUpToMax(r io.Reader, limit int64) ([]byte, error) {
	var buf bytes.Buffer

	n, err := io.CopyN(&buf, r, limit+1)
	if err != nil && !errors.Is(err, io.EOF) {
		return buf.Bytes(), errors.Join(ErrFailedToReadBuffer, err)
	}

	if n > limit {
		_, _ = io.Copy(io.Discard, r)
		return buf.Bytes()[:limit], ErrBufferOverflow
	}

	return buf.Bytes(), nil
}

func closeAll(files ...*os.File) {
	for _, f := range files {
		_ = f.Close()
	}
}
