// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"testing"

	"github.com/matt-FFFFFF/alias/internal/chain"
	"github.com/matt-FFFFFF/alias/internal/progress"
	"github.com/matt-FFFFFF/alias/internal/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() (*Engine, *runner.Recorder, *progress.Recorder) {
	rec := runner.NewRecorder()
	events := &progress.Recorder{}

	return New(rec, events), rec, events
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, 0, Normalize(0))
	assert.Equal(t, 255, Normalize(255))
	assert.Equal(t, ExitGenericFailure, Normalize(256))
	assert.Equal(t, ExitGenericFailure, Normalize(runner.CodeCrashed))
}

func TestNew_NilReporter(t *testing.T) {
	e := New(runner.NewRecorder(), nil)
	require.NotNil(t, e.Reporter)
	assert.Equal(t, 0, e.Execute(context.Background(), chain.NewSimple("true"), nil))
}

func TestExecute_Simple(t *testing.T) {
	e, rec, events := newTestEngine()
	rec.Exit("git", 4)

	code := e.Execute(context.Background(), chain.NewSimple("git status"), []string{"-s", "--branch"})

	assert.Equal(t, 4, code)
	assert.Equal(t, []string{"git status -s --branch"}, rec.Lines())
	assert.Empty(t, events.Events(), "simple commands emit no notifications")
}

func TestExecute_SimpleSubstitution(t *testing.T) {
	e, rec, _ := newTestEngine()

	code := e.Execute(context.Background(), chain.NewSimple("echo $2 $1"), []string{"a", "b", "c"})

	assert.Equal(t, 0, code)
	assert.Equal(t, []string{"echo b a"}, rec.Lines())
}

func TestExecute_SimpleErrors(t *testing.T) {
	t.Run("unbalanced quote", func(t *testing.T) {
		e, rec, _ := newTestEngine()
		assert.Equal(t, ExitSpawnFailure, e.Execute(context.Background(), chain.NewSimple(`echo "oops`), nil))
		assert.Empty(t, rec.Calls())
	})

	t.Run("spawn failure", func(t *testing.T) {
		e, rec, _ := newTestEngine()
		rec.On("nope", runner.Response{Outcome: runner.SpawnFailed(assert.AnError)})
		assert.Equal(t, ExitSpawnFailure, e.Execute(context.Background(), chain.NewSimple("nope"), nil))
	})

	t.Run("cancelled context", func(t *testing.T) {
		e, rec, _ := newTestEngine()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.Equal(t, ExitInterrupted, e.Execute(ctx, chain.NewSimple("echo"), nil))
		assert.Empty(t, rec.Calls())
	})

	t.Run("out of range exit code", func(t *testing.T) {
		e, rec, _ := newTestEngine()
		rec.Exit("weird", 300)
		assert.Equal(t, ExitGenericFailure, e.Execute(context.Background(), chain.NewSimple("weird"), nil))
	})
}

func TestExecute_LegacyChain(t *testing.T) {
	e, rec, events := newTestEngine()

	code := e.Execute(context.Background(), chain.NewSimple("make && make test"), []string{"-v"})

	assert.Equal(t, 0, code)
	assert.Equal(t, []string{"make", "make test -v"}, rec.Lines())

	started := events.OfType(progress.EventStarted)
	require.Len(t, started, 2)
	assert.Empty(t, started[0].Operator)
	assert.Equal(t, "&&", started[1].Operator)
	assert.Equal(t, "make test -v", started[1].Command)
}

func TestExecute_LegacyChainStopsOnFailure(t *testing.T) {
	e, rec, _ := newTestEngine()
	rec.Exit("make", 2)

	code := e.Execute(context.Background(), chain.NewSimple("make && echo built"), nil)

	assert.Equal(t, 2, code)
	assert.Equal(t, []string{"make"}, rec.Lines())
}

func TestExecute_DirAndEnv(t *testing.T) {
	e, rec, _ := newTestEngine()
	e.Dir = "/work"
	e.Env = map[string]string{"CI": "1"}

	e.Execute(context.Background(), chain.NewChain(chain.New("a", false, chain.Then(chain.And(), "b"))), nil)

	for _, c := range rec.Calls() {
		assert.Equal(t, "/work", c.Dir)
		assert.Equal(t, map[string]string{"CI": "1"}, c.Env)
	}
}
