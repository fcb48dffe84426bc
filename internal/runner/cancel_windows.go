// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build windows

package runner

import (
	"os/exec"
	"time"
)

// configureCancel kills the process when the context is cancelled.
// Windows cannot deliver an interrupt to a single child process.
func configureCancel(cmd *exec.Cmd, grace time.Duration) {
	cmd.Cancel = func() error {
		return cmd.Process.Kill()
	}
	cmd.WaitDelay = grace
}

// statusControlCExit is the exit status of a console process stopped by Ctrl-C or Ctrl-Break.
const statusControlCExit = 0xC000013A

// interruptedExit reports whether code means the process was stopped by a console interrupt.
func interruptedExit(code int) bool {
	return uint32(code) == statusControlCExit //nolint:gosec
}
