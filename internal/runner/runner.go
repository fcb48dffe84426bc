// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"context"
	"maps"
)

// Exit statuses reported for outcomes that are not a normal exit.
const (
	// CodeSpawnFailure is the conventional shell status for a command that could not be started.
	CodeSpawnFailure = 127
	// CodeInterrupted is the conventional shell status for a command stopped by an interrupt.
	CodeInterrupted = 130
	// CodeCrashed is the sentinel for a worker that died without reporting.
	CodeCrashed = -1
)

// OutcomeKind is the way a launched program ended.
type OutcomeKind int

const (
	// Exited means the program ran and exited with Outcome.Code.
	Exited OutcomeKind = iota
	// Interrupted means the program was terminated by a signal or by context cancellation.
	Interrupted
	// SpawnFailure means the program could not be started at all.
	SpawnFailure
	// Crashed means the worker running the program failed before it could report.
	Crashed
)

// String implements the Stringer interface for OutcomeKind.
func (k OutcomeKind) String() string {
	switch k {
	case Exited:
		return "exited"
	case Interrupted:
		return "interrupted"
	case SpawnFailure:
		return "spawn-failure"
	case Crashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// Outcome is the result of one Run call.
type Outcome struct {
	Kind OutcomeKind
	Code int   // exit code, only meaningful for Exited
	Err  error // cause for anything other than Exited
}

// ExitedWith returns the outcome of a program that exited with code.
func ExitedWith(code int) Outcome {
	return Outcome{Kind: Exited, Code: code}
}

// SpawnFailed returns the outcome of a program that could not be started.
func SpawnFailed(err error) Outcome {
	return Outcome{Kind: SpawnFailure, Code: CodeSpawnFailure, Err: err}
}

// InterruptedBy returns the outcome of a program stopped by an interrupt.
func InterruptedBy(err error) Outcome {
	return Outcome{Kind: Interrupted, Code: CodeInterrupted, Err: err}
}

// CrashedWith returns the outcome of a worker that failed before reporting.
func CrashedWith(err error) Outcome {
	return Outcome{Kind: Crashed, Code: CodeCrashed, Err: err}
}

// Success reports whether the program exited with code zero.
func (o Outcome) Success() bool {
	return o.Kind == Exited && o.Code == 0
}

// ExitStatus maps the outcome to a shell style exit status.
func (o Outcome) ExitStatus() int {
	switch o.Kind {
	case Exited:
		return o.Code
	case Interrupted:
		return CodeInterrupted
	case SpawnFailure:
		return CodeSpawnFailure
	default:
		return CodeCrashed
	}
}

// Runner launches a program and blocks until it ends or ctx is cancelled.
// Arguments are passed as a discrete list and are never re-joined or re-split.
type Runner interface {
	Run(ctx context.Context, program string, args []string, opts ...Option) Outcome
}

// Options holds the per invocation settings applied by a Runner.
type Options struct {
	Dir string            // working directory, empty inherits the current one
	Env map[string]string // variables added to (or overriding) the inherited environment
}

// Option configures a single Run call.
type Option func(*Options)

// WithDir sets the working directory of the launched program.
func WithDir(dir string) Option {
	return func(o *Options) {
		o.Dir = dir
	}
}

// WithEnv adds environment variables to the launched program.
// Multiple WithEnv options are merged, later values win.
func WithEnv(env map[string]string) Option {
	return func(o *Options) {
		if len(env) == 0 {
			return
		}

		if o.Env == nil {
			o.Env = make(map[string]string, len(env))
		}

		maps.Copy(o.Env, env)
	}
}

// NewOptions applies opts to an empty Options value.
func NewOptions(opts ...Option) Options {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
