// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package push implements the push subcommand.
package push

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/alias/cmd/cmdstate"
	"github.com/matt-FFFFFF/alias/internal/color"
	"github.com/matt-FFFFFF/alias/internal/ghsync"
	"github.com/urfave/cli/v3"
)

const messageFlag = "message"

// New returns the command that uploads the alias file to the configured GitHub repository.
func New() *cli.Command {
	return &cli.Command{
		Name:  "push",
		Usage: "Upload the alias file to GitHub",
		Description: `Upload the alias file to the repository configured in settings.toml.
A token is taken from A_GITHUB_TOKEN, GITHUB_TOKEN or GH_TOKEN, then from the gh CLI,
then from git credential helpers.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     messageFlag,
				Aliases:  []string{"m"},
				Usage:    "Commit message",
				OnlyOnce: true,
			},
		},
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() > 0 {
		return cli.Exit("Unknown or unsupported option for push: "+cmd.Args().First(), 1)
	}

	st, err := cmdstate.FromContext(ctx)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	set, err := st.Settings()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	token, ok := st.Token(ctx)
	if !ok {
		return cli.Exit("Error pushing config: "+ghsync.ErrMissingToken.Error(), 1)
	}

	s, err := st.Open()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	content, err := s.Raw()
	if err != nil {
		return cli.Exit("Error pushing config: "+err.Error(), 1)
	}

	message := cmd.String(messageFlag)
	if message == "" {
		message = set.Sync.Message
	}

	client := ghsync.New(set.Sync, token)
	if err := client.Push(ctx, content, message); err != nil {
		return cli.Exit("Error pushing config: "+err.Error(), 1)
	}

	fmt.Fprintln(cmd.Root().Writer, color.Colorize("Config pushed to GitHub:", color.FgGreen), client.BlobURL())

	return nil
}
