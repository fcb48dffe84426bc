// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package add implements the add subcommand.
package add

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/shlex"
	"github.com/matt-FFFFFF/alias/cmd/cmdstate"
	"github.com/matt-FFFFFF/alias/internal/chain"
	"github.com/matt-FFFFFF/alias/internal/color"
	"github.com/matt-FFFFFF/alias/internal/confirm"
	"github.com/matt-FFFFFF/alias/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

const (
	descFlag     = "--desc"
	forceFlag    = "--force"
	parallelFlag = "--parallel"
	chainFlag    = "--chain"
	andFlag      = "--and"
	orFlag       = "--or"
	alwaysFlag   = "--always"
	ifCodeFlag   = "--if-code"
)

var (
	// ErrUsage is returned when the name or first command is missing.
	ErrUsage = errors.New("usage: a add <name> <command> [OPTIONS]")
	// ErrMissingValue is returned when an option is not followed by its value.
	ErrMissingValue = errors.New("option requires a value")
	// ErrUnknownOption is returned for an unrecognised option.
	ErrUnknownOption = errors.New("unknown option")
	// ErrInvalidExitCode is returned when --if-code is not followed by an integer.
	ErrInvalidExitCode = errors.New("--if-code requires a numeric exit code")
	// ErrUnparsable is returned when a command cannot be split into words.
	ErrUnparsable = errors.New("command cannot be parsed")
)

// New returns the command that adds or updates an alias. Options are parsed in order, so chain steps are kept in the order given.
func New() *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Add or update an alias",
		UsageText: `a add <name> <command> [--desc "description"] [--force] [--parallel]
      [--and|--chain <command>] [--or <command>] [--always <command>] [--if-code <N> <command>]`,
		Description: `Chain operators decide whether a step runs from the exit code of the last step that ran:
  --and, --chain   run if the previous step succeeded
  --or             run if the previous step failed
  --always         always run
  --if-code N      run if the previous exit code was N

With --parallel every step runs at the same time and operators are ignored.
Commands may use $1, $2... for single arguments, $@ or $* for all of them and $$ for a literal $.`,
		SkipFlagParsing: true,
		Action:          actionFunc,
	}
}

// Request is a parsed add command line.
type Request struct {
	Name        string
	CommandType chain.CommandType
	Description *string
	Force       bool
}

// Parse reads `<name> <command> [OPTIONS]`. A single command without --parallel is stored as a simple command.
func Parse(args []string) (*Request, error) {
	if len(args) < 2 { //nolint:mnd
		return nil, ErrUsage
	}

	req := &Request{Name: args[0]}
	c := chain.New(args[1], false)

	value := func(i, n int) ([]string, error) {
		if i+n >= len(args) {
			return nil, fmt.Errorf("%w: %s", ErrMissingValue, args[i])
		}

		return args[i+1 : i+1+n], nil
	}

	for i := 2; i < len(args); {
		opt := args[i]

		switch opt {
		case forceFlag:
			req.Force = true
			i++
		case parallelFlag:
			c.Parallel = true
			i++
		case descFlag:
			v, err := value(i, 1)
			if err != nil {
				return nil, err
			}

			req.Description = &v[0]
			i += 2
		case chainFlag, andFlag, orFlag, alwaysFlag:
			v, err := value(i, 1)
			if err != nil {
				return nil, err
			}

			c.Steps = append(c.Steps, chain.Then(operatorFor(opt), v[0]))
			i += 2
		case ifCodeFlag:
			v, err := value(i, 2) //nolint:mnd
			if err != nil {
				return nil, err
			}

			code, err := strconv.Atoi(v[0])
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidExitCode, v[0])
			}

			c.Steps = append(c.Steps, chain.Then(chain.IfCode(code), v[1]))
			i += 3
		default:
			return nil, fmt.Errorf("%w: '%s'", ErrUnknownOption, opt)
		}
	}

	if len(c.Steps) == 1 && !c.Parallel {
		req.CommandType = chain.NewSimple(c.Steps[0].Template)
	} else {
		req.CommandType = chain.NewChain(c)
	}

	for _, t := range req.CommandType.Templates() {
		if _, err := shlex.Split(t); err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrUnparsable, t, err)
		}
	}

	return req, nil
}

func operatorFor(opt string) *chain.Operator {
	switch opt {
	case orFlag:
		return chain.Or()
	case alwaysFlag:
		return chain.Always()
	}

	return chain.And()
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)
	w := cmd.Root().Writer

	st, err := cmdstate.FromContext(ctx)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	req, err := Parse(cmd.Args().Slice())
	if err != nil {
		return cli.Exit("Error adding alias: "+err.Error(), 1)
	}

	s, err := st.Open()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	force := req.Force
	existing, exists := s.Config.Get(req.Name)

	if exists && !force {
		fmt.Fprintln(w, color.Colorize(fmt.Sprintf("Alias '%s' already exists:", req.Name), color.FgYellow))
		fmt.Fprintln(w, "  "+color.Colorize("Current:", color.FgCyan), existing.CommandType.Display())

		if existing.Description != nil {
			fmt.Fprintln(w, "  "+color.Colorize("Description:", color.FgCyan), *existing.Description)
		}

		fmt.Fprintln(w, "  "+color.Colorize("New:", color.FgCyan), req.CommandType.Summary())

		ok, err := st.Prompter.Confirm(confirm.OverwritePrompt)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}

		if !ok {
			fmt.Fprintln(w, color.Colorize("Alias not modified.", color.FgHiBlack))
			return nil
		}

		force = true
	}

	if _, err := s.Config.Add(req.Name, req.CommandType, req.Description, force); err != nil {
		return cli.Exit("Error adding alias: "+err.Error(), 1)
	}

	if err := s.Save(); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	logger.Debug("alias saved", "name", req.Name, "path", s.Path())

	verb := "Added"
	if exists {
		verb = "Updated"
	}

	fmt.Fprintln(w, color.Colorize(fmt.Sprintf("%s alias '%s'", verb, req.Name), color.FgGreen))

	return nil
}
