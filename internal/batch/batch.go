// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/kako-jun/gitp/internal/config"
	"github.com/kako-jun/gitp/internal/ctxlog"
	"github.com/kako-jun/gitp/internal/gitops"
	"github.com/kako-jun/gitp/internal/progress"
	"github.com/kako-jun/gitp/internal/runbatch"
	"github.com/kako-jun/gitp/internal/runner"
	"github.com/kako-jun/gitp/internal/tui"
)

// NoReposMessage is logged when there is nothing to do.
const NoReposMessage = "No enabled repositories found in configuration."

var (
	// ErrNoSettings is returned when RunBatch is called without settings.
	ErrNoSettings = errors.New("no settings loaded")
	// ErrRepoNotFound is returned when Command.Repo names no enabled repository.
	ErrRepoNotFound = errors.New("repository not found")
)

// DefaultEnv is added to the environment of every git process so that
// a missing credential fails instead of waiting for input.
var DefaultEnv = map[string]string{"GIT_TERMINAL_PROMPT": "0"}

// Options configure RunBatch. Zero values select the defaults.
type Options struct {
	// Serial forces serial mode even when the command did not ask for it.
	Serial bool
	// Parallelism caps the number of concurrent repositories. Zero is unbounded.
	Parallelism int
	Policy      runner.Policy
	// Presenter shows progress. Nil means tui.Plain.
	Presenter tui.Presenter
	// Runner executes git. Nil means runner.OS with DefaultEnv.
	Runner runner.Runner
	// Program is the git executable.
	Program string
	// Summary receives a table of final states. Nil disables it.
	Summary io.Writer
	// Failures receives the output of failed repositories. Nil disables it.
	Failures io.Writer
}

// RunBatch runs cmd against every enabled repository of s and blocks until the
// presenter returns. Failures of individual repositories are shown, not returned.
// When the user leaves the view early the workers are left running and
// tui.ErrCancelled is returned.
func RunBatch(ctx context.Context, s *config.Settings, cmd Command, opts Options) error {
	if s == nil {
		return ErrNoSettings
	}

	repos, err := selectRepos(s, cmd.Repo)
	if err != nil {
		return err
	}

	if len(repos) == 0 {
		ctxlog.Warn(ctx, NoReposMessage)
		return nil
	}

	if err := config.CheckUniqueNames(repos); err != nil {
		return err
	}

	ctx = ctxlog.With(ctx, "batch", uuid.NewString(), "operation", cmd.Kind.String())

	names := make([]string, len(repos))
	for i, r := range repos {
		names[i] = r.Name()
	}

	table := progress.New(names)
	ops := &gitops.Ops{
		Runner:  opts.runner(),
		Program: opts.Program,
		Policy:  opts.Policy,
	}

	tasks := make([]runbatch.Task, len(repos))
	for i, repo := range repos {
		req := gitops.Request{Kind: cmd.Kind, Repo: repo, Settings: s, Message: cmd.Message, Args: cmd.Args}
		tasks[i] = runbatch.Task{
			Name: names[i],
			Run: func(ctx context.Context, step gitops.Step) (gitops.Report, error) {
				return ops.Do(ctx, req, step)
			},
		}
	}

	ctxlog.Info(ctx, "starting batch", "repositories", len(tasks), "serial", cmd.Serial || opts.Serial)

	b := runbatch.Start(ctx, table, tasks, runbatch.Options{
		Serial: cmd.Serial || opts.Serial,
		Limit:  opts.Parallelism,
		Policy: opts.Policy,
	})

	if err := opts.presenter().Present(ctx, table); err != nil {
		if errors.Is(err, tui.ErrCancelled) {
			c := progress.Count(table.Snapshot())
			ctxlog.Warn(ctx, "view closed before completion", "still_running", c.Total-c.Completed)
		}

		return err
	}

	results := b.Wait()

	if opts.Summary != nil {
		progress.WriteSummary(opts.Summary, table.Snapshot())
	}

	if opts.Failures != nil {
		runbatch.WriteFailures(opts.Failures, results)
	}

	ctxlog.Info(ctx, "batch finished", "failed", len(results.Failed()))

	return nil
}

func selectRepos(s *config.Settings, name string) ([]config.Repository, error) {
	if name == "" {
		return s.EnabledRepos(), nil
	}

	r, ok := s.FindRepo(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRepoNotFound, name)
	}

	return []config.Repository{r}, nil
}

func (o Options) runner() runner.Runner {
	if o.Runner != nil {
		return o.Runner
	}

	return &runner.OS{Env: DefaultEnv}
}

func (o Options) presenter() tui.Presenter {
	if o.Presenter != nil {
		return o.Presenter
	}

	return &tui.Plain{}
}
