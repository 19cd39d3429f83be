// Copyright (c) kako-jun 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicy_Failed(t *testing.T) {
	notFound := Outcome{Stderr: "fatal: repository not found\n", ExitCode: 128}
	clean := Outcome{Stdout: "Already up to date.\n"}
	chattyZero := Outcome{Stdout: "fixed error handling in parser\n"}
	silentNonZero := Outcome{ExitCode: 1}
	launch := Outcome{Err: ErrCommandNotFound, ExitCode: -1}

	tests := []struct {
		name     string
		policy   Policy
		outcomes []Outcome
		want     bool
	}{
		{"output marks fatal", PolicyOutput, []Outcome{notFound}, true},
		{"output passes clean", PolicyOutput, []Outcome{clean}, false},
		{"output trips on innocuous text", PolicyOutput, []Outcome{chattyZero}, true},
		{"output ignores exit code", PolicyOutput, []Outcome{silentNonZero}, false},
		{"exit-code ignores text", PolicyExitCode, []Outcome{chattyZero}, false},
		{"exit-code fails non-zero", PolicyExitCode, []Outcome{silentNonZero}, true},
		{"strict fails on text", PolicyStrict, []Outcome{chattyZero}, true},
		{"strict fails on exit", PolicyStrict, []Outcome{silentNonZero}, true},
		{"strict passes clean", PolicyStrict, []Outcome{clean}, false},
		{"launch error always fails", PolicyExitCode, []Outcome{launch}, true},
		{"any failing outcome fails", PolicyOutput, []Outcome{clean, notFound}, true},
		{"no outcomes pass", PolicyStrict, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.policy.Failed(tt.outcomes...))
		})
	}
}

func TestParsePolicy(t *testing.T) {
	for _, name := range PolicyNames() {
		p, err := ParsePolicy(name)
		require.NoError(t, err)
		assert.Equal(t, name, p.String())
	}

	p, err := ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyOutput, p)

	p, err = ParsePolicy("EXIT-CODE")
	require.NoError(t, err)
	assert.Equal(t, PolicyExitCode, p)

	_, err = ParsePolicy("vibes")
	assert.ErrorIs(t, err, ErrUnknownPolicy)
	assert.Equal(t, "Policy(9)", Policy(9).String())
}

func TestOutcome_CombinedAndSummary(t *testing.T) {
	o := Outcome{Stdout: "Cloning into 'gitp'...\n", Stderr: "done.\n"}
	assert.Equal(t, "Cloning into 'gitp'...\ndone.\n", o.Combined())
	assert.Equal(t, "done.", o.Summary())

	assert.Equal(t, "", Outcome{}.Summary())
	assert.Equal(t, "boom", Outcome{Err: errors.New("boom")}.Summary())
}
