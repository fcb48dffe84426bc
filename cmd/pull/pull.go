// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package pull implements the pull subcommand.
package pull

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/alias/cmd/cmdstate"
	"github.com/matt-FFFFFF/alias/internal/color"
	"github.com/matt-FFFFFF/alias/internal/ghsync"
	"github.com/urfave/cli/v3"
)

// New returns the command that replaces the alias file with the copy kept on GitHub.
func New() *cli.Command {
	return &cli.Command{
		Name:  "pull",
		Usage: "Download the alias file from GitHub, backing up the current one",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() > 0 {
				return cli.Exit("pull does not accept arguments; the repository is set in settings.toml", 1)
			}

			st, err := cmdstate.FromContext(ctx)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			set, err := st.Settings()
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			token, _ := st.Token(ctx)
			client := ghsync.New(set.Sync, token)

			content, err := client.Pull(ctx)
			if err != nil {
				return cli.Exit("Error pulling config: "+err.Error(), 1)
			}

			s, err := st.Open()
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			backup, err := s.Replace(content)
			if err != nil {
				return cli.Exit("Error pulling config: downloaded config is invalid: "+err.Error(), 1)
			}

			w := cmd.Root().Writer

			if backup != "" {
				fmt.Fprintln(w, color.Colorize("Existing config backed up to:", color.FgHiBlack), backup)
			}

			fmt.Fprintln(w, color.Colorize("Config pulled from GitHub:", color.FgGreen), client.BlobURL())
			fmt.Fprintln(w, color.Colorize(fmt.Sprintf("File contains %d aliases", len(s.Config.Aliases)), color.FgHiBlack))

			return nil
		},
	}
}
