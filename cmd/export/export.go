// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package export implements the export subcommand.
package export

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/alias/cmd/cmdstate"
	"github.com/matt-FFFFFF/alias/internal/color"
	"github.com/matt-FFFFFF/alias/internal/store"
	"github.com/urfave/cli/v3"
)

const (
	dirArg     = "dir"
	formatFlag = "format"
)

// New returns the command that copies the alias file into a directory.
func New() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Copy the alias file into a directory (default: current directory)",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      dirArg,
				UsageText: "[DIR]",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     formatFlag,
				Aliases:  []string{"f"},
				Usage:    "Output format, json or yaml",
				Value:    string(store.FormatJSON),
				OnlyOnce: true,
			},
		},
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	st, err := cmdstate.FromContext(ctx)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	format, err := store.ParseFormat(cmd.String(formatFlag))
	if err != nil {
		return cli.Exit("Error exporting config: "+err.Error(), 1)
	}

	dir := cmd.StringArg(dirArg)
	if dir == "" {
		if dir, err = os.Getwd(); err != nil {
			return cli.Exit("Error exporting config: failed to get current directory: "+err.Error(), 1)
		}
	}

	s, err := st.Open()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	target, err := s.Export(dir, format)
	if err != nil {
		return cli.Exit("Error exporting config: "+err.Error(), 1)
	}

	w := cmd.Root().Writer
	fmt.Fprintln(w, color.Colorize("Config exported to:", color.FgGreen), target)
	fmt.Fprintln(w, color.Colorize(fmt.Sprintf("File contains %d aliases", len(s.Config.Aliases)), color.FgHiBlack))

	return nil
}
