// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package gitops

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/kako-jun/gitp/internal/config"
	"github.com/kako-jun/gitp/internal/ctxlog"
	"github.com/kako-jun/gitp/internal/runner"
	"github.com/spf13/afero"
)

// DefaultProgram is the git executable looked up on PATH.
const DefaultProgram = "git"

// Success messages shown when an operation passes classification.
const (
	MessageDone       = "Done"
	MessageConfigured = "Configured"
)

var (
	// ErrCreateDirectory is returned when the group directory cannot be created.
	ErrCreateDirectory = errors.New("failed to create directory")
	// ErrResolveDirectory is returned when the checkout is missing or is not a repository.
	ErrResolveDirectory = errors.New("failed to resolve repository directory")
	// ErrCommand is returned when git could not be launched or its output could not be read.
	ErrCommand = errors.New("git command failed to run")
	// ErrNoArgs is returned by exec without arguments.
	ErrNoArgs = errors.New("no git arguments given")
	// ErrUnknownKind is returned for a Kind that has no operation.
	ErrUnknownKind = errors.New("unknown operation")
)

// Step records a progress checkpoint.
type Step func(message string, percent int)

// Request is one operation for one repository.
type Request struct {
	Kind Kind
	// Repo is a copy owned by the caller's task.
	Repo     config.Repository
	Settings *config.Settings
	// Message is the push commit message. Empty falls back to the settings.
	Message string
	// Args are the git arguments for KindExec.
	Args []string
}

// Report is what an operation hands back for classification.
type Report struct {
	// Decisive holds the outcomes whose classification decides the status.
	Decisive []runner.Outcome
	// SuccessMessage replaces the default "Done" when the outcomes pass.
	SuccessMessage string
}

// Ops runs repository operations through a Runner.
type Ops struct {
	Runner runner.Runner
	// Program defaults to DefaultProgram.
	Program string
	// Policy stops an operation early once a decisive step has failed.
	Policy runner.Policy
	// FS creates group directories. Nil means the OS file system.
	FS afero.Fs
	// Probe checks a checkout before pull, push, config and exec. Nil means Inspect.
	Probe func(dir string) error
}

// Do runs req, calling step at each checkpoint.
func (o *Ops) Do(ctx context.Context, req Request, step Step) (Report, error) {
	if step == nil {
		step = func(string, int) {}
	}

	ctx = ctxlog.With(ctx, "repo", req.Repo.Name(), "operation", req.Kind.String())

	if req.Kind.NeedsCheckout() {
		if err := o.probe(req.Repo.CheckoutPath()); err != nil {
			return Report{}, err
		}
	}

	switch req.Kind {
	case KindClone:
		return o.clone(ctx, req, step)
	case KindPull:
		return o.pull(ctx, req, step)
	case KindPush:
		return o.push(ctx, req, step)
	case KindConfig:
		return o.applyAllConfig(ctx, req, step)
	case KindConfigUser:
		return o.applyUserConfig(ctx, req, step)
	case KindExec:
		return o.exec(ctx, req, step)
	default:
		return Report{}, fmt.Errorf("%w: %d", ErrUnknownKind, int(req.Kind))
	}
}

// clone runs "clone <remote> -b <branch>" in the group, then writes the identity into the new checkout.
func (o *Ops) clone(ctx context.Context, req Request, step Step) (Report, error) {
	step("Creating directory...", 20)

	if err := o.fs().MkdirAll(req.Repo.Group, os.FileMode(0o755)); err != nil {
		return Report{}, fmt.Errorf("%w: %s: %w", ErrCreateDirectory, req.Repo.Group, err)
	}

	step("Cloning...", 40)

	out, err := o.git(ctx, req.Repo.Group, "clone", req.Repo.Remote, "-b", req.Repo.Branch)
	if err != nil {
		return Report{}, err
	}

	rep := Report{Decisive: []runner.Outcome{out}}
	if o.Policy.Failed(out) {
		return rep, nil
	}

	step("Configuring...", 80)

	if _, err := o.setUser(ctx, req.Repo.CheckoutPath(), req.Settings.User); err != nil {
		return Report{}, err
	}

	return rep, nil
}

func (o *Ops) pull(ctx context.Context, req Request, step Step) (Report, error) {
	dir := req.Repo.CheckoutPath()

	step("Configuring...", 30)

	if _, err := o.setUser(ctx, dir, req.Settings.User); err != nil {
		return Report{}, err
	}

	step("Pulling...", 50)

	out, err := o.git(ctx, dir, "pull")
	if err != nil {
		return Report{}, err
	}

	return Report{Decisive: []runner.Outcome{out}}, nil
}

// push stages everything, commits and pushes. Only the push itself is decisive:
// "nothing to commit" is not a reason to skip pushing earlier commits.
func (o *Ops) push(ctx context.Context, req Request, step Step) (Report, error) {
	dir := req.Repo.CheckoutPath()

	step("Configuring...", 20)

	if _, err := o.setUser(ctx, dir, req.Settings.User); err != nil {
		return Report{}, err
	}

	step("Adding files...", 40)

	if _, err := o.git(ctx, dir, "add", "-A"); err != nil {
		return Report{}, err
	}

	step("Committing...", 60)

	if _, err := o.git(ctx, dir, "commit", "-m", req.Settings.CommitMessage(req.Message)); err != nil {
		return Report{}, err
	}

	step("Pushing...", 80)

	out, err := o.git(ctx, dir, "push")
	if err != nil {
		return Report{}, err
	}

	return Report{Decisive: []runner.Outcome{out}}, nil
}

// applyAllConfig writes the identity and then every config entry in key order.
func (o *Ops) applyAllConfig(ctx context.Context, req Request, step Step) (Report, error) {
	dir := req.Repo.CheckoutPath()

	step("Setting user...", 20)

	decisive, err := o.setUser(ctx, dir, req.Settings.User)
	if err != nil {
		return Report{}, err
	}

	keys := req.Settings.ConfigKeys()
	n := max(len(keys), 1)

	for i, key := range keys {
		step(fmt.Sprintf("Setting %s...", key), 20+(i+1)*70/n)

		out, err := o.git(ctx, dir, "config", key, req.Settings.Config[key])
		if err != nil {
			return Report{}, err
		}

		decisive = append(decisive, out)
	}

	return Report{Decisive: decisive, SuccessMessage: MessageConfigured}, nil
}

func (o *Ops) applyUserConfig(ctx context.Context, req Request, step Step) (Report, error) {
	dir := req.Repo.CheckoutPath()
	user := req.Settings.User

	step("Setting user.name...", 40)

	name, err := o.git(ctx, dir, "config", "user.name", user.Name)
	if err != nil {
		return Report{}, err
	}

	step("Setting user.email...", 80)

	email, err := o.git(ctx, dir, "config", "user.email", user.Email)
	if err != nil {
		return Report{}, err
	}

	return Report{Decisive: []runner.Outcome{name, email}, SuccessMessage: MessageConfigured}, nil
}

func (o *Ops) exec(ctx context.Context, req Request, step Step) (Report, error) {
	if len(req.Args) == 0 {
		return Report{}, ErrNoArgs
	}

	step(fmt.Sprintf("Running git %s...", req.Args[0]), 40)

	out, err := o.git(ctx, req.Repo.CheckoutPath(), req.Args...)
	if err != nil {
		return Report{}, err
	}

	return Report{Decisive: []runner.Outcome{out}}, nil
}

// setUser writes user.name and user.email into dir.
func (o *Ops) setUser(ctx context.Context, dir string, user config.User) ([]runner.Outcome, error) {
	name, err := o.git(ctx, dir, "config", "user.name", user.Name)
	if err != nil {
		return nil, err
	}

	email, err := o.git(ctx, dir, "config", "user.email", user.Email)
	if err != nil {
		return nil, err
	}

	return []runner.Outcome{name, email}, nil
}

// git runs one git command in dir. Launch and read failures become ErrCommand;
// a git process that ran and complained is returned as a normal outcome.
func (o *Ops) git(ctx context.Context, dir string, args ...string) (runner.Outcome, error) {
	out := o.Runner.Run(ctx, dir, o.program(), slices.Clone(args)...)

	ctxlog.Debug(ctx, "git finished", "dir", dir, "args", args, "exitCode", out.ExitCode, "output", out.Combined())

	if out.Err != nil {
		return out, fmt.Errorf("%w: %w", ErrCommand, out.Err)
	}

	return out, nil
}

func (o *Ops) program() string {
	if o.Program == "" {
		return DefaultProgram
	}

	return o.Program
}

func (o *Ops) fs() afero.Fs {
	if o.FS == nil {
		return afero.NewOsFs()
	}

	return o.FS
}

func (o *Ops) probe(dir string) error {
	if o.Probe != nil {
		return o.Probe(dir)
	}

	_, err := Inspect(dir)

	return err
}
