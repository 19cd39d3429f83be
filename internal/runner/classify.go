// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPolicy is returned by ParsePolicy for an unrecognised name.
var ErrUnknownPolicy = errors.New("unknown classification policy")

// Policy decides whether an Outcome is a failure.
type Policy int

const (
	// PolicyOutput fails when the output mentions "fatal" or "error".
	PolicyOutput Policy = iota
	// PolicyExitCode fails on a non-zero exit status.
	PolicyExitCode
	// PolicyStrict fails when either of the above would.
	PolicyStrict
)

// FailureMarkers are the substrings PolicyOutput looks for.
var FailureMarkers = []string{"fatal", "error"}

var policyNames = map[Policy]string{
	PolicyOutput:   "output",
	PolicyExitCode: "exit-code",
	PolicyStrict:   "strict",
}

// PolicyNames lists the accepted names in display order.
func PolicyNames() []string {
	return []string{policyNames[PolicyOutput], policyNames[PolicyExitCode], policyNames[PolicyStrict]}
}

func (p Policy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}

	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy maps a name to a Policy. The empty string selects PolicyOutput.
func ParsePolicy(s string) (Policy, error) {
	if s == "" {
		return PolicyOutput, nil
	}

	for p, name := range policyNames {
		if strings.EqualFold(s, name) {
			return p, nil
		}
	}

	return PolicyOutput, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownPolicy, s, strings.Join(PolicyNames(), ", "))
}

// Failed reports whether any of outcomes counts as a failure.
// An Outcome with Err set always fails.
func (p Policy) Failed(outcomes ...Outcome) bool {
	for _, o := range outcomes {
		if o.Err != nil {
			return true
		}

		byOutput := HasFailureMarker(o.Combined())
		byExit := o.ExitCode != 0

		switch p {
		case PolicyExitCode:
			if byExit {
				return true
			}
		case PolicyStrict:
			if byOutput || byExit {
				return true
			}
		default:
			if byOutput {
				return true
			}
		}
	}

	return false
}

// HasFailureMarker reports whether text contains one of FailureMarkers.
// The match is case sensitive, so "Error" alone does not count.
func HasFailureMarker(text string) bool {
	for _, m := range FailureMarkers {
		if strings.Contains(text, m) {
			return true
		}
	}

	return false
}
