// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/matt-FFFFFF/alias/internal/color"
)

var _ Reporter = (*WriterReporter)(nil)

// WriterReporter renders events as human readable lines, one per event.
type WriterReporter struct {
	w      io.Writer
	m      sync.Mutex
	colour bool
}

// NewWriterReporter returns a WriterReporter writing to w.
// Colour follows the process wide setting of the color package.
func NewWriterReporter(w io.Writer) *WriterReporter {
	return &WriterReporter{
		w:      w,
		colour: color.Enabled(),
	}
}

// WithColour overrides the colour setting.
func (wr *WriterReporter) WithColour(enabled bool) *WriterReporter {
	wr.colour = enabled
	return wr
}

// Report implements Reporter.
func (wr *WriterReporter) Report(event Event) {
	line := wr.Format(event)
	if line == "" {
		return
	}

	wr.m.Lock()
	defer wr.m.Unlock()

	fmt.Fprintln(wr.w, line) //nolint:errcheck
}

// Close implements Reporter.
func (wr *WriterReporter) Close() {}

// Format returns the line for an event, or the empty string when the event is not displayed.
func (wr *WriterReporter) Format(e Event) string {
	switch e.Type {
	case EventChainStarted:
		if !e.Parallel {
			return ""
		}

		return wr.paint(fmt.Sprintf("Executing %d commands in parallel", e.Total), color.FgCyan)

	case EventStarted:
		if e.Parallel {
			return wr.counter(e) + " " + wr.paint("Started:", color.FgHiBlack) + " " + wr.paint(e.Command, color.FgCyan)
		}

		sb := strings.Builder{}
		sb.WriteString(wr.counter(e))

		if e.Operator != "" {
			sb.WriteString(" (" + e.Operator + ")")
		}

		sb.WriteString(" Executing: ")
		sb.WriteString(wr.paint(e.Command, color.FgCyan))

		return sb.String()

	case EventSkipped:
		return fmt.Sprintf("%s Skipping: %s (%s)", wr.counter(e), wr.paint(e.Command, color.FgHiBlack), e.Reason)

	case EventCompleted:
		if !e.Parallel {
			return ""
		}

		return wr.paint(fmt.Sprintf("Completed [%d/%d]:", e.Index, e.Total), color.FgGreen) + fmt.Sprintf(" exit code %d", e.ExitCode)

	case EventFailed:
		if e.Parallel {
			return wr.paint(fmt.Sprintf("Failed [%d/%d]:", e.Index, e.Total), color.FgYellow) + " " + errText(e.Err)
		}

		return fmt.Sprintf("%s %s %s", wr.counter(e), wr.paint("Failed:", color.FgYellow), errText(e.Err))

	case EventChainCompleted:
		return wr.summary(e)
	}

	return ""
}

func (wr *WriterReporter) summary(e Event) string {
	switch {
	case e.Parallel && e.Failed == 0:
		return wr.paint("All parallel commands completed successfully", color.FgGreen)
	case e.Parallel:
		return wr.paint(fmt.Sprintf("Failed commands: %d/%d", e.Failed, e.Total), color.FgYellow)
	case e.Err != nil:
		return wr.paint(fmt.Sprintf("Command chain stopped at step %d/%d", e.Index, e.Total), color.FgYellow)
	case e.ExitCode != 0:
		return wr.paint(fmt.Sprintf("Sequential command chain completed with exit code %d", e.ExitCode), color.FgYellow)
	default:
		return wr.paint("Sequential command chain completed", color.FgGreen)
	}
}

func (wr *WriterReporter) counter(e Event) string {
	return wr.paint(fmt.Sprintf("[%d/%d]", e.Index, e.Total), color.FgHiBlack)
}

func (wr *WriterReporter) paint(s string, codes ...color.Code) string {
	if !wr.colour {
		return s
	}

	return color.Apply(s, codes...)
}

func errText(err error) string {
	if err == nil {
		return "unknown error"
	}

	return err.Error()
}
