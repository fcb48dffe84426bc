// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/matt-FFFFFF/alias/internal/ctxlog"
	"github.com/matt-FFFFFF/alias/internal/resolve"
)

// DefaultGracePeriod is how long a cancelled program has to exit after being interrupted
// before it is killed.
const DefaultGracePeriod = 5 * time.Second

var _ Runner = (*OSRunner)(nil)

var (
	// ErrCouldNotStartProcess is returned when the process could not be started.
	ErrCouldNotStartProcess = errors.New("could not start process")
	// ErrSignalReceived is returned when the process was terminated by a signal.
	ErrSignalReceived = errors.New("process terminated by signal")
	// ErrContextDone is returned when the process was stopped because the context was cancelled.
	ErrContextDone = errors.New("context done, process stopped")
)

// OSRunner runs programs as operating system processes.
// Standard streams default to those of the current process so interactive programs work.
type OSRunner struct {
	// Strategy resolves the program before it is launched.
	// When nil the platform strategy is built per call from the effective environment.
	Strategy    resolve.Strategy
	GracePeriod time.Duration
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
}

// NewOSRunner returns an OSRunner attached to the current process streams.
func NewOSRunner() *OSRunner {
	return &OSRunner{
		GracePeriod: DefaultGracePeriod,
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
	}
}

// Run implements Runner.
func (r *OSRunner) Run(ctx context.Context, program string, args []string, opts ...Option) Outcome {
	o := NewOptions(opts...)
	logger := ctxlog.Logger(ctx).With("runnerType", "OSRunner")

	if err := ctx.Err(); err != nil {
		logger.Debug("context done before start", "program", program)
		return InterruptedBy(errors.Join(ErrContextDone, err))
	}

	strategy := r.Strategy
	if strategy == nil {
		strategy = resolve.ForCurrentPlatform(getenv(o.Env))
	}

	path := strategy.Resolve(program)
	logger.Debug("command info", "program", program, "path", path, "cwd", o.Dir, "args", args)

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = o.Dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if len(o.Env) > 0 {
		cmd.Env = os.Environ()
		for k, v := range o.Env {
			logger.Debug("adding environment variable", "key", k)
			cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
		}
	}

	grace := r.GracePeriod
	if grace <= 0 {
		grace = DefaultGracePeriod
	}

	configureCancel(cmd, grace)

	if err := cmd.Start(); err != nil {
		logger.Debug("process start failed", "error", err)
		return SpawnFailed(errors.Join(ErrCouldNotStartProcess, err))
	}

	logger.Debug("process started", "pid", cmd.Process.Pid)

	err := cmd.Wait()

	if ctxErr := ctx.Err(); ctxErr != nil {
		logger.Info("context done, process stopped", "pid", cmd.Process.Pid)
		return InterruptedBy(errors.Join(ErrContextDone, ctxErr))
	}

	if cmd.ProcessState == nil {
		return SpawnFailed(errors.Join(ErrCouldNotStartProcess, err))
	}

	code := cmd.ProcessState.ExitCode()
	logger.Debug("process finished", "exitCode", code)

	if code == -1 || interruptedExit(code) {
		return InterruptedBy(errors.Join(ErrSignalReceived, err))
	}

	return ExitedWith(code)
}

// getenv overlays env on the process environment.
func getenv(env map[string]string) func(string) string {
	return func(key string) string {
		if v, ok := env[key]; ok {
			return v
		}

		return os.Getenv(key)
	}
}
