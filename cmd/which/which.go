// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package which implements the which subcommand, which explains what an alias runs.
package which

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/matt-FFFFFF/alias/cmd/cmdstate"
	"github.com/matt-FFFFFF/alias/internal/chain"
	"github.com/matt-FFFFFF/alias/internal/color"
	"github.com/matt-FFFFFF/alias/internal/params"
	"github.com/urfave/cli/v3"
)

const nameArg = "name"

// ExampleArgs are substituted in the preview.
var ExampleArgs = []string{"arg1", "arg2", "arg3"}

// New returns the command that shows the command an alias runs, the chain breakdown and a substitution preview.
func New() *cli.Command {
	return &cli.Command{
		Name:  "which",
		Usage: "Show what an alias executes",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      nameArg,
				UsageText: "NAME",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.StringArg(nameArg)
			if name == "" {
				return cli.Exit("Usage: a which <name>", 1)
			}

			st, err := cmdstate.FromContext(ctx)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			s, err := st.Open()
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			w := cmd.Root().Writer

			e, ok := s.Config.Get(name)
			if !ok {
				fmt.Fprintln(w, color.Colorize(fmt.Sprintf("Alias '%s' not found.", name), color.FgYellow))
				return nil
			}

			fmt.Fprintln(w, color.Colorize(fmt.Sprintf("Alias '%s' executes:", name), color.FgCyan), e.CommandType.Display())

			if e.Description != nil {
				fmt.Fprintln(w, color.Colorize("Description:", color.FgCyan), *e.Description)
			}

			Preview(w, name, e.CommandType)
			Breakdown(w, e.CommandType)

			return nil
		},
	}
}

// Preview prints how the alias resolves with ExampleArgs. Nothing is printed when no step uses a variable.
func Preview(w io.Writer, name string, ct chain.CommandType) {
	plan := params.PlanFor(ct.Templates())
	if !plan.Substitute {
		return
	}

	fmt.Fprintln(w, color.Colorize("Parameter substitution example:", color.FgCyan))
	fmt.Fprintln(w, "  "+color.Colorize("a", color.FgGreen), name, color.Colorize("arg1 arg2 arg3", color.FgYellow))

	if ct.Kind == chain.KindSimple {
		fmt.Fprintln(w, "  "+color.Colorize("Resolves to:", color.FgHiBlack), plan.Resolve(ct.Simple, ExampleArgs))
		fmt.Fprintln(w)

		return
	}

	fmt.Fprintln(w, "  "+color.Colorize("Resolves to:", color.FgHiBlack))

	for i, s := range ct.Chain.Steps {
		prefix := ""
		if i > 0 && s.Operator != nil {
			prefix = s.Operator.Symbol() + " "
		}

		fmt.Fprintln(w, "    "+color.Colorize(prefix+plan.Resolve(s.Template, ExampleArgs), color.FgBlue))
	}

	fmt.Fprintln(w)
}

// Breakdown lists the steps of a chain with their run conditions and the execution mode.
func Breakdown(w io.Writer, ct chain.CommandType) {
	if ct.Kind != chain.KindChain {
		return
	}

	fmt.Fprintln(w, color.Colorize("Command breakdown:", color.FgCyan))

	for i, s := range ct.Chain.Steps {
		line := "  " + color.Colorize(strconv.Itoa(i+1)+".", color.FgHiBlack) + " " + s.Template

		if params.HasVariables(s.Template) {
			line += " " + color.Colorize("[uses arguments]", color.FgYellow)
		}

		if i > 0 && s.Operator != nil && !ct.Chain.Parallel {
			line += " " + color.Colorize("("+s.Operator.Describe()+")", color.FgHiBlack)
		}

		fmt.Fprintln(w, line)
	}

	mode := "Sequential"
	if ct.Chain.Parallel {
		mode = "Parallel"
	}

	fmt.Fprintln(w, color.Colorize("Execution mode:", color.FgCyan), mode)
}
