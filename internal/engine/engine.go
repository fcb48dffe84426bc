// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"time"

	"github.com/matt-FFFFFF/alias/internal/chain"
	"github.com/matt-FFFFFF/alias/internal/ctxlog"
	"github.com/matt-FFFFFF/alias/internal/params"
	"github.com/matt-FFFFFF/alias/internal/progress"
	"github.com/matt-FFFFFF/alias/internal/runner"
)

// Exit statuses returned by Execute besides the exit codes of the steps themselves.
const (
	// ExitSpawnFailure is returned when a step could not be started.
	ExitSpawnFailure = runner.CodeSpawnFailure
	// ExitInterrupted is returned when a step was interrupted.
	ExitInterrupted = runner.CodeInterrupted
	// ExitGenericFailure replaces statuses that cannot be a process exit code.
	ExitGenericFailure = 1
)

// Engine runs alias commands through a Runner and reports progress.
type Engine struct {
	Runner   runner.Runner
	Reporter progress.Reporter
	Dir      string            // working directory for every step, empty inherits
	Env      map[string]string // extra environment for every step
	// Interrupted returns non-nil once the process has been asked to stop.
	// No step starts after that and a sequential chain ends with ExitInterrupted.
	Interrupted func() error
}

// New creates an Engine. A nil reporter discards progress events.
func New(r runner.Runner, rep progress.Reporter) *Engine {
	if rep == nil {
		rep = progress.NewNullReporter()
	}

	return &Engine{
		Runner:   r,
		Reporter: rep,
	}
}

// Execute runs ct with the invocation arguments and returns an exit status in [0, 255].
func (e *Engine) Execute(ctx context.Context, ct chain.CommandType, args []string) int {
	logger := ctxlog.Logger(ctx).With("component", "engine")

	var code int

	switch {
	case ct.Kind == chain.KindSimple && !ct.IsLegacyChain():
		logger.Debug("executing simple command", "command", ct.Simple, "args", args)
		code = e.runSimple(ctx, ct.Simple, args)
	case ct.Kind == chain.KindChain && ct.Chain.Parallel:
		logger.Debug("executing parallel chain", "steps", len(ct.Chain.Steps), "args", args)
		code = e.runParallel(ctx, ct.Chain, args)
	default:
		c := ct.AsChain()
		logger.Debug("executing sequential chain", "steps", len(c.Steps), "legacy", ct.IsLegacyChain(), "args", args)
		code = e.runSequential(ctx, c, args)
	}

	logger.Debug("execution finished", "code", code)

	return Normalize(code)
}

// Normalize maps any status outside [0, 255] to ExitGenericFailure.
func Normalize(code int) int {
	if code < 0 || code > 255 {
		return ExitGenericFailure
	}

	return code
}

// runSimple runs a single command without any notifications.
func (e *Engine) runSimple(ctx context.Context, command string, args []string) int {
	if err := e.interrupted(ctx); err != nil {
		return ExitInterrupted
	}

	inv, err := Prepare(params.PlanFor([]string{command}), 0, 1, command, args)
	if err != nil {
		ctxlog.Warn(ctx, "cannot prepare command", "command", command, "error", err)
		return ExitSpawnFailure
	}

	out := e.Runner.Run(ctx, inv.Program, inv.Args, e.options()...)
	if out.Err != nil {
		ctxlog.Debug(ctx, "command did not exit normally", "outcome", out.Kind.String(), "error", out.Err)
	}

	return out.ExitStatus()
}

// interrupted returns why no further step may start, or nil.
func (e *Engine) interrupted(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if e.Interrupted == nil {
		return nil
	}

	return e.Interrupted()
}

func (e *Engine) options() []runner.Option {
	return []runner.Option{
		runner.WithDir(e.Dir),
		runner.WithEnv(e.Env),
	}
}

func (e *Engine) report(ev progress.Event) {
	if e.Reporter == nil {
		return
	}

	ev.Timestamp = time.Now()
	e.Reporter.Report(ev)
}
