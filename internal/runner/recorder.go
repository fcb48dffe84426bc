// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"context"
	"errors"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"
)

var _ Runner = (*Recorder)(nil)

// ErrRecorderCancelled is the cause attached to outcomes interrupted while a Recorder was waiting.
var ErrRecorderCancelled = errors.New("recorder: context cancelled")

// Call is one invocation captured by a Recorder.
type Call struct {
	Program string
	Args    []string
	Dir     string
	Env     map[string]string
}

// Line returns the program and arguments joined by spaces.
func (c Call) Line() string {
	return strings.Join(append([]string{c.Program}, c.Args...), " ")
}

// Response scripts how a Recorder answers a matching call.
type Response struct {
	Outcome Outcome
	// Panic, when non-nil, makes Run panic with this value after recording the call.
	Panic any
	// Delay holds the call open before answering. Cancellation during the delay yields Interrupted.
	Delay time.Duration
	// UntilCancel holds the call open until the context is cancelled.
	UntilCancel bool
}

// Recorder is a Runner that never touches the operating system.
// It records every call and answers from scripted responses, matched first by the full
// command line and then by program name. Unmatched calls exit with code 0.
// It is safe for concurrent use.
type Recorder struct {
	mu        sync.Mutex
	calls     []Call
	responses map[string]Response
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		responses: make(map[string]Response),
	}
}

// On scripts the response for a command line ("prog arg1 arg2") or a bare program name.
func (r *Recorder) On(key string, resp Response) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.responses[key] = resp

	return r
}

// Exit scripts key to exit with code.
func (r *Recorder) Exit(key string, code int) *Recorder {
	return r.On(key, Response{Outcome: ExitedWith(code)})
}

// Run implements Runner.
func (r *Recorder) Run(ctx context.Context, program string, args []string, opts ...Option) Outcome {
	o := NewOptions(opts...)
	call := Call{
		Program: program,
		Args:    slices.Clone(args),
		Dir:     o.Dir,
		Env:     maps.Clone(o.Env),
	}

	r.mu.Lock()
	r.calls = append(r.calls, call)
	resp, ok := r.responses[call.Line()]

	if !ok {
		resp, ok = r.responses[program]
	}
	r.mu.Unlock()

	if !ok {
		resp = Response{Outcome: ExitedWith(0)}
	}

	if resp.Panic != nil {
		panic(resp.Panic)
	}

	switch {
	case resp.UntilCancel:
		<-ctx.Done()
		return InterruptedBy(errors.Join(ErrRecorderCancelled, ctx.Err()))
	case resp.Delay > 0:
		t := time.NewTimer(resp.Delay)
		defer t.Stop()

		select {
		case <-t.C:
		case <-ctx.Done():
			return InterruptedBy(errors.Join(ErrRecorderCancelled, ctx.Err()))
		}
	}

	return resp.Outcome
}

// Calls returns a copy of the recorded calls in the order they were made.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.calls)
}

// Lines returns the command line of every recorded call.
func (r *Recorder) Lines() []string {
	calls := r.Calls()
	lines := make([]string, len(calls))

	for i, c := range calls {
		lines[i] = c.Line()
	}

	return lines
}
