// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"path/filepath"
	"slices"
	"strings"
)

// DefaultCommitMessage is used by push when neither the caller nor comments.default provide one.
const DefaultCommitMessage = "update."

// DefaultCommentKey is the comments entry used as the push commit message.
const DefaultCommentKey = "default"

// User is the identity written into every checkout.
type User struct {
	Name  string `yaml:"name" hcl:"name"`
	Email string `yaml:"email" hcl:"email"`
}

// Repository describes one managed repository.
type Repository struct {
	Enabled bool   `yaml:"enabled" hcl:"enabled,optional"`
	Remote  string `yaml:"remote" hcl:"remote"`
	Branch  string `yaml:"branch" hcl:"branch,optional"`
	// Group is the local parent directory the repository is cloned into.
	Group string `yaml:"group" hcl:"group"`
}

// Name is the derived name of the repository, see RepoName.
func (r Repository) Name() string {
	return RepoName(r.Remote)
}

// CheckoutPath is where the working tree lives: Group/Name.
func (r Repository) CheckoutPath() string {
	return filepath.Join(r.Group, r.Name())
}

// Settings is the whole settings document.
type Settings struct {
	User     User              `yaml:"user" hcl:"user,block"`
	Comments map[string]string `yaml:"comments" hcl:"comments,optional"`
	Config   map[string]string `yaml:"config,omitempty" hcl:"config,optional"`
	Repos    []Repository      `yaml:"repos" hcl:"repo,block"`
}

// EnabledRepos returns copies of the enabled repositories in document order.
func (s *Settings) EnabledRepos() []Repository {
	out := make([]Repository, 0, len(s.Repos))

	for _, r := range s.Repos {
		if r.Enabled {
			out = append(out, r)
		}
	}

	return out
}

// FindRepo returns the enabled repository whose derived name is name.
func (s *Settings) FindRepo(name string) (Repository, bool) {
	for _, r := range s.EnabledRepos() {
		if r.Name() == name {
			return r, true
		}
	}

	return Repository{}, false
}

// CommitMessage returns msg, or comments.default, or DefaultCommitMessage.
func (s *Settings) CommitMessage(msg string) string {
	if msg != "" {
		return msg
	}

	if m := s.Comments[DefaultCommentKey]; m != "" {
		return m
	}

	return DefaultCommitMessage
}

// ConfigKeys returns the keys of Config in sorted order.
func (s *Settings) ConfigKeys() []string {
	keys := make([]string, 0, len(s.Config))
	for k := range s.Config {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

// RepoName derives a repository name from a remote URL: the last path
// segment with any trailing ".git" removed. Both slashes and backslashes separate
// segments, so Windows paths work, trailing separators are ignored and the host
// part of an scp-style remote (git@host:name.git) is dropped.
func RepoName(remote string) string {
	s := strings.TrimRight(strings.TrimSpace(remote), `/\`)

	if i := strings.LastIndexAny(s, `/\:`); i >= 0 {
		s = s[i+1:]
	}

	for {
		t := strings.TrimSuffix(strings.TrimSpace(s), ".git")
		if t == s {
			return s
		}

		s = t
	}
}

func (s *Settings) applyDefaults() {
	if s.Comments == nil {
		s.Comments = map[string]string{}
	}

	if s.Config == nil {
		s.Config = map[string]string{}
	}
}
