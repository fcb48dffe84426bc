// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"time"
)

// Event is one notification from a running chain.
type Event struct {
	Type      EventType
	Index     int    // 1-based step number, 0 for chain level events
	Total     int    // number of steps in the chain
	Operator  string // operator symbol, empty for the first step and in parallel mode
	Command   string // command text after substitution
	ExitCode  int    // exit status for EventCompleted and EventChainCompleted
	Reason    string // why an EventSkipped step did not run
	Err       error  // cause for EventFailed, or the abort cause for EventChainCompleted
	Failed    int    // number of unsuccessful steps, EventChainCompleted only
	Parallel  bool
	Timestamp time.Time
}

// EventType represents the type of progress event.
type EventType int

const (
	// EventChainStarted indicates a chain is about to launch its steps.
	EventChainStarted EventType = iota
	// EventStarted indicates a step has begun execution.
	EventStarted
	// EventSkipped indicates a step did not run because its operator did not allow it.
	EventSkipped
	// EventCompleted indicates a step ran and exited, with any exit code.
	EventCompleted
	// EventFailed indicates a step could not produce an exit code (spawn failure, interrupt or crash).
	EventFailed
	// EventChainCompleted indicates every step has finished or the chain was aborted.
	EventChainCompleted
)

// String implements the Stringer interface for EventType.
func (et EventType) String() string {
	switch et {
	case EventChainStarted:
		return "chain-started"
	case EventStarted:
		return "started"
	case EventSkipped:
		return "skipped"
	case EventCompleted:
		return "completed"
	case EventFailed:
		return "failed"
	case EventChainCompleted:
		return "chain-completed"
	default:
		return "unknown"
	}
}

// Reporter is the interface for sending progress events.
type Reporter interface {
	// Report sends a progress event. Events from one chain arrive in emission order.
	Report(event Event)
	// Close signals that no more events will be sent and cleans up resources.
	Close()
}

// NullReporter is a no-op implementation of Reporter.
// Used when progress reporting is not needed.
type NullReporter struct{}

// Report implements Reporter.Report by doing nothing.
func (nr *NullReporter) Report(_ Event) {}

// Close implements Reporter.Close by doing nothing.
func (nr *NullReporter) Close() {}

// NewNullReporter creates a new NullReporter.
func NewNullReporter() Reporter {
	return &NullReporter{}
}

// Tee fans every event out to each of the reporters in order.
func Tee(reporters ...Reporter) Reporter {
	return teeReporter(reporters)
}

type teeReporter []Reporter

func (t teeReporter) Report(event Event) {
	for _, r := range t {
		r.Report(event)
	}
}

func (t teeReporter) Close() {
	for _, r := range t {
		r.Close()
	}
}
