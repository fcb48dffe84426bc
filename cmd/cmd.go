// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/matt-FFFFFF/alias"
	"github.com/matt-FFFFFF/alias/cmd/add"
	"github.com/matt-FFFFFF/alias/cmd/config"
	"github.com/matt-FFFFFF/alias/cmd/export"
	"github.com/matt-FFFFFF/alias/cmd/importcmd"
	"github.com/matt-FFFFFF/alias/cmd/list"
	"github.com/matt-FFFFFF/alias/cmd/pull"
	"github.com/matt-FFFFFF/alias/cmd/push"
	"github.com/matt-FFFFFF/alias/cmd/remove"
	"github.com/matt-FFFFFF/alias/cmd/run"
	"github.com/matt-FFFFFF/alias/cmd/which"
	"github.com/matt-FFFFFF/alias/internal/color"
	"github.com/urfave/cli/v3"
)

const runCommand = "run"

// legacyFlags maps the flag style command line of earlier releases to subcommands.
var legacyFlags = map[string]string{
	"--add":    "add",
	"--list":   "list",
	"--remove": "remove",
	"--which":  "which",
	"--config": "config",
	"--export": "export",
	"--push":   "push",
	"--pull":   "pull",
	"--run":    runCommand,
}

const examples = `Examples:
  a add gs "git status"                                  simple alias
  a add build "cargo build" --and "cargo test"           run tests only if the build succeeded
  a add deploy "make" --and "make deploy" --or "notify failed"
  a add fmt "cargo fmt" --always "cargo clippy"          always run the second step
  a add retry "flaky" --if-code 75 "flaky --again"       react to a specific exit code
  a add checks "npm run lint" --and "npm test" --parallel
  a add greet "echo Hello $1, args: $@"                  use arguments
  a gs                                                   run an alias
  a greet World                                          prints: Hello World, args: World
  a which build                                          show what an alias does
`

// NewRootCmd returns the root command writing to w and errW.
// Errors are returned from Run, never turned into os.Exit calls; see ExitCode.
func NewRootCmd(w, errW io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "a",
		Usage: "a <alias> [args...]",
		Description: `A cross-platform command alias manager.
Aliases are single commands or chains of commands joined by conditional operators,
run one after another or in parallel. Any other first argument runs the alias of that name.`,
		Version: fmt.Sprintf("%s (commit: %s)", alias.Version, alias.Commit),
		Commands: []*cli.Command{
			add.New(),
			list.New(),
			remove.New(),
			which.New(),
			config.New(),
			export.New(),
			importcmd.New(),
			push.New(),
			pull.New(),
			run.New(),
			{
				Name:  "examples",
				Usage: "Show usage examples",
				Action: func(_ context.Context, cmd *cli.Command) error {
					_, err := io.WriteString(cmd.Root().Writer, examples)
					return err
				},
			},
		},
		Writer:    w,
		ErrWriter: errW,
		Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
		Authors: []any{
			"Matt White (matt-FFFFFF)",
		},
		ExitErrHandler:        func(context.Context, *cli.Command, error) {},
		EnableShellCompletion: true,
	}
}

// RewriteArgs turns `a --add ...` into `a add ...` and `a <alias> args...` into `a run <alias> args...`.
// Subcommand names win over alias names; `a run <name>` always reaches the alias.
func RewriteArgs(root *cli.Command, args []string) []string {
	if len(args) < 2 { //nolint:mnd
		return args
	}

	first := args[1]
	out := slices.Clone(args)

	if sub, ok := legacyFlags[first]; ok {
		out[1] = sub
		return out
	}

	if first == "--examples" || (isHelp(first) && slices.Contains(args[2:], "--examples")) {
		return []string{args[0], "examples"}
	}

	if strings.HasPrefix(first, "-") || first == "help" || root.Command(first) != nil {
		return out
	}

	return slices.Insert(out, 1, runCommand)
}

func isHelp(s string) bool {
	return s == "--help" || s == "-h"
}

// ExitCode returns the process exit status for the error returned by Run and prints its message to w.
func ExitCode(w io.Writer, err error) int {
	if err == nil {
		return 0
	}

	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		if msg := ec.Error(); msg != "" {
			fmt.Fprintln(w, color.Colorize(msg, color.FgYellow))
		}

		return ec.ExitCode()
	}

	fmt.Fprintln(w, color.Colorize("Error:", color.FgYellow), err)

	return 1
}

// Main runs the CLI with args and returns the exit status.
func Main(ctx context.Context, args []string) int {
	root := NewRootCmd(os.Stdout, os.Stderr)

	return ExitCode(root.ErrWriter, root.Run(ctx, RewriteArgs(root, args)))
}
