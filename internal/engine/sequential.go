// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package engine

import (
	"context"

	"github.com/matt-FFFFFF/alias/internal/chain"
	"github.com/matt-FFFFFF/alias/internal/ctxlog"
	"github.com/matt-FFFFFF/alias/internal/params"
	"github.com/matt-FFFFFF/alias/internal/progress"
	"github.com/matt-FFFFFF/alias/internal/runner"
)

// runSequential runs the steps in order. lastCode holds the exit code of the
// most recently executed step; skipped steps leave it unchanged.
// A step that cannot produce an exit code aborts the chain.
func (e *Engine) runSequential(ctx context.Context, c chain.Chain, args []string) int {
	logger := ctxlog.Logger(ctx).With("mode", "sequential")
	total := len(c.Steps)
	plan := params.PlanFor(c.Templates())
	lastCode := 0

	logger.Debug("argument plan", "substitute", plan.Substitute)
	e.report(progress.Event{Type: progress.EventChainStarted, Total: total})

	for i, step := range c.Steps {
		idx := i + 1
		op := operatorAt(i, step)

		if op != nil && !op.Allows(lastCode) {
			reason := op.SkipReason(lastCode)
			logger.Debug("skipping step", "index", idx, "operator", op.String(), "lastCode", lastCode)
			e.report(progress.Event{
				Type:    progress.EventSkipped,
				Index:   idx,
				Total:   total,
				Command: step.Template,
				Reason:  reason,
			})

			continue
		}

		out := e.runStep(ctx, plan, i, total, step.Template, op, args)

		// A program that handles the interrupt itself still exits normally.
		if out.Kind == runner.Exited {
			if err := e.interrupted(ctx); err != nil {
				out = runner.InterruptedBy(err)
			}
		}

		if out.Kind != runner.Exited {
			logger.Debug("aborting chain", "index", idx, "outcome", out.Kind.String(), "error", out.Err)
			e.report(progress.Event{
				Type:  progress.EventFailed,
				Index: idx,
				Total: total,
				Err:   out.Err,
			})
			e.report(progress.Event{
				Type:     progress.EventChainCompleted,
				Index:    idx,
				Total:    total,
				ExitCode: out.ExitStatus(),
				Err:      out.Err,
				Failed:   1,
			})

			return out.ExitStatus()
		}

		lastCode = out.Code
		e.report(progress.Event{
			Type:     progress.EventCompleted,
			Index:    idx,
			Total:    total,
			ExitCode: lastCode,
		})
	}

	e.report(progress.Event{Type: progress.EventChainCompleted, Total: total, ExitCode: lastCode})

	return lastCode
}

// runStep announces and runs one step.
func (e *Engine) runStep(
	ctx context.Context, plan params.Plan, i, total int, template string, op *chain.Operator, args []string,
) runner.Outcome {
	if err := e.interrupted(ctx); err != nil {
		return runner.InterruptedBy(err)
	}

	inv, err := Prepare(plan, i, total, template, args)

	ev := progress.Event{
		Type:    progress.EventStarted,
		Index:   i + 1,
		Total:   total,
		Command: inv.Text,
	}
	if op != nil {
		ev.Operator = op.Symbol()
	}

	e.report(ev)

	if err != nil {
		return runner.SpawnFailed(err)
	}

	return e.Runner.Run(ctx, inv.Program, inv.Args, e.options()...)
}

// operatorAt returns the operator governing step i.
// The first step always runs; later steps without an operator behave as Always.
func operatorAt(i int, step chain.Step) *chain.Operator {
	if i == 0 {
		return nil
	}

	if step.Operator == nil {
		return chain.Always()
	}

	return step.Operator
}
