// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

var (
	// ErrInvalidSettings wraps every problem found by Validate.
	ErrInvalidSettings = errors.New("invalid settings")
	// ErrDuplicateName is returned when two repositories derive the same name.
	ErrDuplicateName = errors.New("duplicate repository name")
)

// Validate checks every enabled repository and reports all problems at once.
// Disabled entries may be incomplete.
func (s *Settings) Validate() error {
	var result *multierror.Error

	for i, r := range s.Repos {
		if !r.Enabled {
			continue
		}

		label := fmt.Sprintf("repos[%d]", i)

		if r.Remote == "" {
			result = multierror.Append(result, fmt.Errorf("%s: remote is required", label))
			continue
		}

		label = fmt.Sprintf("%s (%s)", label, r.Remote)

		if r.Name() == "" {
			result = multierror.Append(result, fmt.Errorf("%s: cannot derive a repository name", label))
		}

		if r.Group == "" {
			result = multierror.Append(result, fmt.Errorf("%s: group is required", label))
		}

		if r.Branch == "" {
			result = multierror.Append(result, fmt.Errorf("%s: branch is required", label))
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return errors.Join(ErrInvalidSettings, err)
	}

	return nil
}

// CheckUniqueNames fails when two repositories in repos share a derived name,
// since progress is tracked by name.
func CheckUniqueNames(repos []Repository) error {
	var result *multierror.Error

	seen := make(map[string]string, len(repos))

	for _, r := range repos {
		name := r.Name()
		if prev, ok := seen[name]; ok {
			result = multierror.Append(result, fmt.Errorf("%w %q: %s and %s", ErrDuplicateName, name, prev, r.Remote))
			continue
		}

		seen[name] = r.Remote
	}

	return result.ErrorOrNil()
}
