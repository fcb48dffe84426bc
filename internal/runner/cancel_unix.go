// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build !windows

package runner

import (
	"os"
	"os/exec"
	"time"
)

// configureCancel interrupts the process when the context is cancelled.
// exec kills it if it is still running after grace.
func configureCancel(cmd *exec.Cmd, grace time.Duration) {
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = grace
}

// interruptedExit reports whether code means the process was stopped by an interrupt.
// Signal deaths already surface as -1, so no exit code qualifies.
func interruptedExit(int) bool {
	return false
}
