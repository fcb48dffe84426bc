// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config implements the config subcommand.
package config

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/alias/cmd/cmdstate"
	"github.com/matt-FFFFFF/alias/internal/color"
	"github.com/matt-FFFFFF/alias/internal/settings"
	"github.com/urfave/cli/v3"
)

const settingsFlag = "settings"

// New returns the command that shows where the alias file lives and, on request, the effective settings.
func New() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Show the config file location",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        settingsFlag,
				Usage:       "Also print the effective settings as TOML",
				Value:       false,
				DefaultText: "false",
				OnlyOnce:    true,
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

	s, err := st.Open()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	w := cmd.Root().Writer
	fmt.Fprintln(w, color.Colorize("Config file location:", color.FgCyan), s.Path())

	if !cmd.Bool(settingsFlag) {
		return nil
	}

	set, err := st.Settings()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	out, err := set.Encode()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fmt.Fprintln(w, color.Colorize("Settings file:", color.FgCyan), settings.Path(st.Dir))
	fmt.Fprint(w, out)

	return nil
}
