// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker subscribes to termination signals so `a` survives the first interrupt.
//
// Aliased programs share the terminal, so the first Ctrl-C reaches them directly and
// they decide how to stop. The first signal trips a Latch so no further step is scheduled.
// The second signal of the same type cancels the root context, which makes the runner
// terminate every child still running.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matt-FFFFFF/alias/internal/ctxlog"
)

var termSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGQUIT,
	os.Interrupt,
}

// New returns a channel receiving the given signals, or the termination signals when none are given.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	ch := make(chan os.Signal, 1)

	if len(sigs) == 0 {
		sigs = termSignals
	}

	ctxlog.Debug(ctx, "signalbroker", "detail", "creating signal broker", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch
}

// Stop unsubscribes the channel. No more signals are delivered to it afterwards.
func Stop(ch chan os.Signal) {
	signal.Stop(ch)
}

// Watch consumes signals until the channel is closed or ctx is done.
// Every signal trips latch, which may be nil. The second signal of the same type calls cancel
// and Watch returns.
func Watch(ctx context.Context, sigCh <-chan os.Signal, cancel context.CancelFunc, latch *Latch) {
	seen := make(map[os.Signal]struct{})

	for {
		select {
		case <-ctx.Done():
			return

		case sig, ok := <-sigCh:
			if !ok {
				return
			}

			if latch != nil {
				latch.Trip(sig)
			}

			if _, dup := seen[sig]; dup {
				ctxlog.Info(ctx, "watchdog", "detail", "received second signal of type, terminating children", "signal", sig.String())
				cancel()

				return
			}

			ctxlog.Info(ctx, "watchdog", "detail", "received first signal of type, no further steps will start", "signal", sig.String())

			seen[sig] = struct{}{}
		}
	}
}
