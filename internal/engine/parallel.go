// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/matt-FFFFFF/alias/internal/chain"
	"github.com/matt-FFFFFF/alias/internal/ctxlog"
	"github.com/matt-FFFFFF/alias/internal/params"
	"github.com/matt-FFFFFF/alias/internal/progress"
	"github.com/matt-FFFFFF/alias/internal/runner"
)

// ErrWorkerPanicked is the cause attached to the outcome of a step whose goroutine panicked.
var ErrWorkerPanicked = errors.New("worker panicked")

type stepResult struct {
	index   int
	outcome runner.Outcome
}

// runParallel launches every step at once. Operators are not evaluated.
// resChan is buffered to the step count so no worker ever blocks on send,
// and the coordinator performs exactly one receive per step.
// On cancellation every runner sees the cancelled context and the coordinator
// still waits for all results.
func (e *Engine) runParallel(ctx context.Context, c chain.Chain, args []string) int {
	logger := ctxlog.Logger(ctx).With("mode", "parallel")
	total := len(c.Steps)
	plan := params.PlanFor(c.Templates())
	resChan := make(chan stepResult, total)

	logger.Debug("argument plan", "substitute", plan.Substitute)
	e.report(progress.Event{Type: progress.EventChainStarted, Total: total, Parallel: true})

	for i, step := range c.Steps {
		inv, err := Prepare(plan, i, total, step.Template, args)

		e.report(progress.Event{
			Type:     progress.EventStarted,
			Index:    i + 1,
			Total:    total,
			Command:  inv.Text,
			Parallel: true,
		})

		if err != nil {
			resChan <- stepResult{index: i, outcome: runner.SpawnFailed(err)}
			continue
		}

		if err := e.interrupted(ctx); err != nil {
			resChan <- stepResult{index: i, outcome: runner.InterruptedBy(err)}
			continue
		}

		go func(index int, inv Invocation) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("worker panicked", "index", index+1, "panic", r)
					resChan <- stepResult{
						index:   index,
						outcome: runner.CrashedWith(fmt.Errorf("%w: %v", ErrWorkerPanicked, r)),
					}
				}
			}()

			resChan <- stepResult{
				index:   index,
				outcome: e.Runner.Run(ctx, inv.Program, inv.Args, e.options()...),
			}
		}(i, inv)
	}

	outcomes := make([]runner.Outcome, total)
	failed := 0

	for range total {
		res := <-resChan
		outcomes[res.index] = res.outcome

		logger.Debug("step finished", "index", res.index+1, "outcome", res.outcome.Kind.String(), "code", res.outcome.Code)

		if !res.outcome.Success() {
			failed++
		}

		if res.outcome.Kind == runner.Exited {
			e.report(progress.Event{
				Type:     progress.EventCompleted,
				Index:    res.index + 1,
				Total:    total,
				ExitCode: res.outcome.Code,
				Parallel: true,
			})

			continue
		}

		e.report(progress.Event{
			Type:     progress.EventFailed,
			Index:    res.index + 1,
			Total:    total,
			Err:      res.outcome.Err,
			Parallel: true,
		})
	}

	code := aggregate(outcomes)

	e.report(progress.Event{
		Type:     progress.EventChainCompleted,
		Total:    total,
		ExitCode: code,
		Failed:   failed,
		Parallel: true,
	})

	return code
}

// aggregate returns 0 when every outcome succeeded, otherwise the exit status of
// the lowest indexed failure, independent of arrival order.
func aggregate(outcomes []runner.Outcome) int {
	for _, o := range outcomes {
		if !o.Success() {
			return o.ExitStatus()
		}
	}

	return 0
}
