// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterReporter_Format(t *testing.T) {
	wr := NewWriterReporter(nil).WithColour(false)

	tests := []struct {
		name     string
		event    Event
		expected string
	}{
		{
			name:     "sequential first step",
			event:    Event{Type: EventStarted, Index: 1, Total: 3, Command: "make build"},
			expected: "[1/3] Executing: make build",
		},
		{
			name:     "sequential step with operator",
			event:    Event{Type: EventStarted, Index: 2, Total: 3, Operator: "&&", Command: "make test"},
			expected: "[2/3] (&&) Executing: make test",
		},
		{
			name:     "skipped",
			event:    Event{Type: EventSkipped, Index: 3, Total: 3, Command: "echo failed", Reason: "previous command succeeded"},
			expected: "[3/3] Skipping: echo failed (previous command succeeded)",
		},
		{
			name:     "sequential failure",
			event:    Event{Type: EventFailed, Index: 1, Total: 2, Err: errors.New("not found")},
			expected: "[1/2] Failed: not found",
		},
		{
			name:     "sequential completion is silent",
			event:    Event{Type: EventCompleted, Index: 1, Total: 2},
			expected: "",
		},
		{
			name:     "sequential chain start is silent",
			event:    Event{Type: EventChainStarted, Total: 2},
			expected: "",
		},
		{
			name:     "parallel chain start",
			event:    Event{Type: EventChainStarted, Total: 2, Parallel: true},
			expected: "Executing 2 commands in parallel",
		},
		{
			name:     "parallel started",
			event:    Event{Type: EventStarted, Index: 1, Total: 2, Command: "npm run lint", Parallel: true},
			expected: "[1/2] Started: npm run lint",
		},
		{
			name:     "parallel completed",
			event:    Event{Type: EventCompleted, Index: 2, Total: 2, ExitCode: 1, Parallel: true},
			expected: "Completed [2/2]: exit code 1",
		},
		{
			name:     "parallel failed",
			event:    Event{Type: EventFailed, Index: 1, Total: 2, Parallel: true},
			expected: "Failed [1/2]: unknown error",
		},
		{
			name:     "parallel summary success",
			event:    Event{Type: EventChainCompleted, Total: 2, Parallel: true},
			expected: "All parallel commands completed successfully",
		},
		{
			name:     "parallel summary failure",
			event:    Event{Type: EventChainCompleted, Total: 3, Failed: 2, Parallel: true},
			expected: "Failed commands: 2/3",
		},
		{
			name:     "sequential summary",
			event:    Event{Type: EventChainCompleted, Total: 3},
			expected: "Sequential command chain completed",
		},
		{
			name:     "sequential summary non-zero",
			event:    Event{Type: EventChainCompleted, Total: 3, ExitCode: 2},
			expected: "Sequential command chain completed with exit code 2",
		},
		{
			name:     "sequential abort",
			event:    Event{Type: EventChainCompleted, Index: 2, Total: 3, ExitCode: 127, Err: errors.New("spawn")},
			expected: "Command chain stopped at step 2/3",
		},
		{
			name:     "unknown type",
			event:    Event{Type: EventType(99)},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, wr.Format(tt.event))
		})
	}
}

func TestWriterReporter_Report(t *testing.T) {
	buf := &bytes.Buffer{}
	wr := NewWriterReporter(buf).WithColour(false)

	wr.Report(Event{Type: EventStarted, Index: 1, Total: 1, Command: "ls"})
	wr.Report(Event{Type: EventCompleted, Index: 1, Total: 1})
	wr.Report(Event{Type: EventChainCompleted, Total: 1})
	wr.Close()

	assert.Equal(t, "[1/1] Executing: ls\nSequential command chain completed\n", buf.String())
}

func TestWriterReporter_Colour(t *testing.T) {
	wr := NewWriterReporter(nil).WithColour(true)
	line := wr.Format(Event{Type: EventStarted, Index: 1, Total: 1, Command: "ls"})

	assert.Contains(t, line, "ls")
	assert.Contains(t, line, "Executing:")
}
