// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the entry point for the a command-line application.
package main

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/alias/cmd"
	"github.com/matt-FFFFFF/alias/cmd/cmdstate"
	"github.com/matt-FFFFFF/alias/internal/ctxlog"
	"github.com/matt-FFFFFF/alias/internal/signalbroker"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctx = ctxlog.New(ctx, ctxlog.FromEnv(os.Getenv, os.Stderr))

	sigCh := signalbroker.New(ctx)
	defer signalbroker.Stop(sigCh)

	latch := &signalbroker.Latch{}

	go signalbroker.Watch(ctx, sigCh, cancel, latch)

	st, err := cmdstate.Default(os.Getenv)
	if err != nil {
		ctxlog.Error(ctx, "failed to initialise alias manager", "error", err)
		return 1
	}

	st.Interrupted = latch.Err

	code := cmd.Main(cmdstate.New(ctx, st), os.Args)

	if ctx.Err() != nil {
		ctxlog.Debug(ctx, "command terminated due to cancellation", "error", ctx.Err())
	}

	return code
}
