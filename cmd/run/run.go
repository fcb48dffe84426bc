// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package run implements the run subcommand, which executes an alias.
package run

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/alias/cmd/cmdstate"
	"github.com/matt-FFFFFF/alias/internal/ctxlog"
	"github.com/matt-FFFFFF/alias/internal/engine"
	"github.com/matt-FFFFFF/alias/internal/progress"
	"github.com/urfave/cli/v3"
)

// cliExitStr is the empty message used when the exit status says it all.
const cliExitStr = ""

// New returns the command that executes an alias with the remaining arguments. `a <alias> args...` is rewritten to this command.
func New() *cli.Command {
	return &cli.Command{
		Name:            "run",
		Usage:           "Execute an alias",
		UsageText:       "a run <alias> [args...]",
		SkipFlagParsing: true,
		Action:          actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return cli.Exit("Usage: a run <alias> [args...]", 1)
	}

	name, rest := args[0], args[1:]
	logger := ctxlog.Logger(ctx).With("command", cmd.Name, "alias", name)

	st, err := cmdstate.FromContext(ctx)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	s, err := st.Open()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	e, ok := s.Config.Get(name)
	if !ok {
		return cli.Exit(fmt.Sprintf("Error executing alias: Alias '%s' not found", name), 1)
	}

	reporter := progress.Tee(
		progress.NewWriterReporter(cmd.Root().Writer),
		&progress.LogReporter{Logger: logger},
	)
	defer reporter.Close()

	eng := engine.New(st.Runner, reporter)
	eng.Interrupted = st.Interrupted

	code := eng.Execute(ctx, e.CommandType, rest)

	logger.Debug("alias finished", "exit_code", code)

	if code != 0 {
		return cli.Exit(cliExitStr, code)
	}

	return nil
}
