// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package list implements the list subcommand.
package list

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/matt-FFFFFF/alias/cmd/cmdstate"
	"github.com/matt-FFFFFF/alias/internal/color"
	"github.com/matt-FFFFFF/alias/internal/store"
	"github.com/urfave/cli/v3"
)

const (
	filterArg    = "filter"
	minNameWidth = 16
	nameAlign    = 4
)

// New returns the command that lists aliases, optionally only those whose name contains a filter.
func New() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List configured aliases",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      filterArg,
				UsageText: "[FILTER]",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			st, err := cmdstate.FromContext(ctx)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			s, err := st.Open()
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			Write(cmd.Root().Writer, s.Config, cmd.StringArg(filterArg))

			return nil
		},
	}
}

// Write prints the aliases matching filter as an aligned table.
func Write(w io.Writer, cfg *store.Config, filter string) {
	aliases := cfg.List(filter)

	if len(aliases) == 0 {
		msg := "No aliases configured."
		if filter != "" {
			msg = "No aliases found matching filter."
		}

		fmt.Fprintln(w, color.Colorize(msg, color.FgYellow))

		return
	}

	fmt.Fprintln(w, color.Colorize("Configured aliases:", color.Bold, color.FgCyan))

	width := NameWidth(aliases)

	for _, a := range aliases {
		sb := strings.Builder{}
		sb.WriteString("  ")
		sb.WriteString(color.Colorize(a.Name, color.FgGreen))
		sb.WriteString(strings.Repeat(" ", max(width-len(a.Name), 0)))
		sb.WriteString(" -> ")
		sb.WriteString(color.Colorize(a.Entry.CommandType.Display(), color.FgBlue))

		if a.Entry.Description != nil {
			sb.WriteString(" " + color.Colorize("("+*a.Entry.Description+")", color.FgHiBlack))
		}

		sb.WriteString(" " + color.Colorize("["+a.Entry.Created+"]", color.FgHiBlack))
		fmt.Fprintln(w, sb.String())
	}
}

// NameWidth is the column width for alias names: at least 16, grown in steps of 4.
func NameWidth(aliases []store.Named) int {
	longest := 0
	for _, a := range aliases {
		longest = max(longest, len(a.Name))
	}

	return max(minNameWidth, ((longest+nameAlign)/nameAlign)*nameAlign)
}
