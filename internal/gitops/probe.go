// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package gitops

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Checkout describes an existing working tree.
type Checkout struct {
	Path string
	// Head is the short name of the checked out branch, or a short hash when detached.
	Head string
}

// Inspect opens dir as a git repository without running git.
// It fails with ErrResolveDirectory when dir is missing or is not the root of a repository.
func Inspect(dir string) (Checkout, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return Checkout{}, fmt.Errorf("%w: %s: %w", ErrResolveDirectory, dir, err)
	}

	if !info.IsDir() {
		return Checkout{}, fmt.Errorf("%w: %s is not a directory", ErrResolveDirectory, dir)
	}

	repo, err := git.PlainOpen(dir)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return Checkout{}, fmt.Errorf("%w: %s is not a git repository", ErrResolveDirectory, dir)
		}

		return Checkout{}, fmt.Errorf("%w: %s: %w", ErrResolveDirectory, dir, err)
	}

	return Checkout{Path: dir, Head: head(repo)}, nil
}

func head(repo *git.Repository) string {
	ref, err := repo.Head()
	if err == nil {
		if ref.Name().IsBranch() {
			return ref.Name().Short()
		}

		return ref.Hash().String()[:7]
	}

	// An unborn branch has a symbolic HEAD pointing at a missing ref.
	sym, err := repo.Reference(plumbing.HEAD, false)
	if err != nil || sym.Type() != plumbing.SymbolicReference {
		return ""
	}

	return sym.Target().Short()
}
