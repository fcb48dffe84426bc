// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/matt-FFFFFF/alias/internal/chain"
	"github.com/matt-FFFFFF/alias/internal/progress"
	"github.com/matt-FFFFFF/alias/internal/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func parallel(first string, rest ...chain.Step) chain.CommandType {
	return chain.NewChain(chain.New(first, true, rest...))
}

// finished counts per step completion notifications, successful or not.
func finished(events *progress.Recorder) int {
	return len(events.OfType(progress.EventCompleted)) + len(events.OfType(progress.EventFailed))
}

func TestParallel_AllSucceed(t *testing.T) {
	defer goleak.VerifyNone(t)

	e, rec, events := newTestEngine()

	code := e.Execute(context.Background(), parallel("A", chain.Step{Template: "B"}, chain.Step{Template: "C"}), nil)

	assert.Equal(t, 0, code)
	assert.ElementsMatch(t, []string{"A", "B", "C"}, rec.Lines())
	assert.Equal(t, 3, finished(events))

	started := events.OfType(progress.EventStarted)
	require.Len(t, started, 3)

	for i, ev := range started {
		assert.Equal(t, i+1, ev.Index, "started events follow listed order")
		assert.True(t, ev.Parallel)
	}

	done := events.OfType(progress.EventChainCompleted)
	require.Len(t, done, 1)
	assert.Equal(t, 0, done[0].Failed)
}

func TestParallel_LowestIndexFailureWins(t *testing.T) {
	defer goleak.VerifyNone(t)

	e, rec, events := newTestEngine()
	// A fails last so that C's failure reaches the coordinator first.
	rec.On("A", runner.Response{Outcome: runner.ExitedWith(3), Delay: 100 * time.Millisecond}).
		Exit("B", 0).
		Exit("C", 5)

	code := e.Execute(context.Background(), parallel("A", chain.Step{Template: "B"}, chain.Step{Template: "C"}), nil)

	assert.Equal(t, 3, code)

	completed := events.OfType(progress.EventCompleted)
	require.Len(t, completed, 3)
	assert.Equal(t, 1, completed[2].Index, "slowest step arrives last")

	done := events.OfType(progress.EventChainCompleted)
	require.Len(t, done, 1)
	assert.Equal(t, 2, done[0].Failed)
	assert.Equal(t, 3, done[0].ExitCode)
}

func TestParallel_OperatorsAreIgnored(t *testing.T) {
	defer goleak.VerifyNone(t)

	e, rec, _ := newTestEngine()

	code := e.Execute(context.Background(), parallel("A",
		chain.Then(chain.Or(), "B"),
		chain.Then(chain.IfCode(9), "C"),
	), nil)

	assert.Equal(t, 0, code)
	assert.Len(t, rec.Calls(), 3)
}

func TestParallel_CrashedWorkerStillReports(t *testing.T) {
	defer goleak.VerifyNone(t)

	e, rec, events := newTestEngine()
	rec.On("B", runner.Response{Panic: "boom"})

	code := e.Execute(context.Background(), parallel("A", chain.Step{Template: "B"}, chain.Step{Template: "C"}), nil)

	assert.Equal(t, ExitGenericFailure, code, "crash sentinel normalizes to a generic failure")
	assert.Equal(t, 3, finished(events))

	failed := events.OfType(progress.EventFailed)
	require.Len(t, failed, 1)
	assert.Equal(t, 2, failed[0].Index)
	assert.ErrorIs(t, failed[0].Err, ErrWorkerPanicked)
}

func TestParallel_SpawnFailureIsLocal(t *testing.T) {
	defer goleak.VerifyNone(t)

	e, rec, events := newTestEngine()
	rec.On("B", runner.Response{Outcome: runner.SpawnFailed(assert.AnError)})

	code := e.Execute(context.Background(), parallel("A",
		chain.Step{Template: "B"},
		chain.Step{Template: `echo "broken`},
		chain.Step{Template: "D"},
	), nil)

	assert.Equal(t, ExitSpawnFailure, code)
	assert.ElementsMatch(t, []string{"A", "B", "D"}, rec.Lines())
	assert.Equal(t, 4, finished(events))
	assert.Len(t, events.OfType(progress.EventFailed), 2)
}

func TestParallel_ArgumentPlan(t *testing.T) {
	defer goleak.VerifyNone(t)

	t.Run("legacy", func(t *testing.T) {
		e, rec, _ := newTestEngine()
		e.Execute(context.Background(), parallel("lint", chain.Step{Template: "test"}), []string{"-v"})

		lines := rec.Lines()
		slices.Sort(lines)
		assert.Equal(t, []string{"lint", "test -v"}, lines)
	})

	t.Run("substitute", func(t *testing.T) {
		e, rec, _ := newTestEngine()
		e.Execute(context.Background(), parallel("lint $1", chain.Step{Template: "test $@"}), []string{"pkg", "more"})

		lines := rec.Lines()
		slices.Sort(lines)
		assert.Equal(t, []string{"lint pkg", "test pkg more"}, lines)
	})
}

func TestParallel_InterruptTerminatesAndAwaitsAll(t *testing.T) {
	defer goleak.VerifyNone(t)

	e, rec, events := newTestEngine()
	wait := runner.Response{UntilCancel: true}
	rec.On("A", wait).On("B", wait).On("C", wait)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	result := make(chan int, 1)

	go func() {
		result <- e.Execute(ctx, parallel("A", chain.Step{Template: "B"}, chain.Step{Template: "C"}), nil)
	}()

	require.Eventually(t, func() bool { return len(rec.Calls()) == 3 }, 2*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case code := <-result:
		assert.Equal(t, ExitInterrupted, code)
	case <-time.After(2 * time.Second):
		t.Fatal("parallel chain did not finish after cancellation")
	}

	failed := events.OfType(progress.EventFailed)
	assert.Len(t, failed, 3)

	done := events.OfType(progress.EventChainCompleted)
	require.Len(t, done, 1)
	assert.Equal(t, 3, done[0].Failed)
}

func TestAggregate(t *testing.T) {
	assert.Equal(t, 0, aggregate(nil))
	assert.Equal(t, 0, aggregate([]runner.Outcome{runner.ExitedWith(0), runner.ExitedWith(0)}))
	assert.Equal(t, 4, aggregate([]runner.Outcome{runner.ExitedWith(0), runner.ExitedWith(4), runner.SpawnFailed(nil)}))
	assert.Equal(t, runner.CodeInterrupted, aggregate([]runner.Outcome{runner.InterruptedBy(nil), runner.ExitedWith(4)}))
}
