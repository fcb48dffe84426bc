// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	// A negative descriptor is never a terminal.
	const notATerminal = -1

	tests := []struct {
		name     string
		env      map[string]string
		expected bool
	}{
		{name: "nothing set, not a terminal", env: map[string]string{}, expected: false},
		{name: "NO_COLOR", env: map[string]string{NoColor: "1"}, expected: false},
		{name: "FORCE_COLOR", env: map[string]string{ForceColor: "1"}, expected: true},
		{name: "NO_COLOR wins", env: map[string]string{NoColor: "1", ForceColor: "1"}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(k string) string { return tt.env[k] }
			assert.Equal(t, tt.expected, Decide(getenv, notATerminal))
		})
	}
}

func TestControlString(t *testing.T) {
	assert.Equal(t, "\033[1m", ControlString(Bold))
	assert.Equal(t, "\033[1;31m", ControlString(Bold, FgRed))
	assert.Equal(t, "\033[m", ControlString())
}

func TestApply(t *testing.T) {
	assert.Equal(t, "\033[32mok\033[0m", Apply("ok", FgGreen))
	assert.Equal(t, "\033[1;93mwarn\033[0m", Apply("warn", Bold, FgHiYellow))
	assert.Equal(t, "plain", Apply("plain"))
}

func TestColorizeFollowsEnabled(t *testing.T) {
	orig := SetEnabled(false)
	defer SetEnabled(orig)

	assert.Equal(t, "x", Colorize("x", FgRed))
	assert.False(t, Enabled())

	assert.False(t, SetEnabled(true))
	assert.Equal(t, Apply("x", FgRed), Colorize("x", FgRed))
	assert.True(t, Enabled())
}

func BenchmarkColorize(b *testing.B) {
	for b.Loop() {
		Apply("benchmark", FgRed, Bold)
	}
}
