// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package remove implements the remove subcommand.
package remove

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/alias/cmd/cmdstate"
	"github.com/matt-FFFFFF/alias/internal/color"
	"github.com/urfave/cli/v3"
)

const nameArg = "name"

// New returns the command that deletes an alias.
func New() *cli.Command {
	return &cli.Command{
		Name:    "remove",
		Aliases: []string{"rm"},
		Usage:   "Remove an alias",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      nameArg,
				UsageText: "NAME",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.StringArg(nameArg)
			if name == "" {
				return cli.Exit("Usage: a remove <name>", 1)
			}

			st, err := cmdstate.FromContext(ctx)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			s, err := st.Open()
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			if err := s.Config.Remove(name); err != nil {
				return cli.Exit("Error removing alias: "+err.Error(), 1)
			}

			if err := s.Save(); err != nil {
				return cli.Exit(err.Error(), 1)
			}

			fmt.Fprintln(cmd.Root().Writer, color.Colorize(fmt.Sprintf("Removed alias '%s'", name), color.FgGreen))

			return nil
		},
	}
}
