// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"log/slog"
)

var _ Reporter = (*LogReporter)(nil)

// LogReporter mirrors events to a structured logger at debug level.
type LogReporter struct {
	Logger *slog.Logger
}

// Report implements Reporter.
func (lr *LogReporter) Report(e Event) {
	if lr.Logger == nil {
		return
	}

	attrs := []any{
		"index", e.Index,
		"total", e.Total,
		"parallel", e.Parallel,
	}

	switch e.Type {
	case EventStarted:
		attrs = append(attrs, "operator", e.Operator, "command", e.Command)
	case EventSkipped:
		attrs = append(attrs, "command", e.Command, "reason", e.Reason)
	case EventCompleted:
		attrs = append(attrs, "exitCode", e.ExitCode)
	case EventFailed:
		attrs = append(attrs, "error", e.Err)
	case EventChainCompleted:
		attrs = append(attrs, "exitCode", e.ExitCode, "failed", e.Failed)
	}

	lr.Logger.Debug(e.Type.String(), attrs...)
}

// Close implements Reporter.
func (lr *LogReporter) Close() {}
