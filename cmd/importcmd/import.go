// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package importcmd implements the import subcommand.
package importcmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/matt-FFFFFF/alias/cmd/cmdstate"
	"github.com/matt-FFFFFF/alias/internal/color"
	"github.com/matt-FFFFFF/alias/internal/ctxlog"
	"github.com/matt-FFFFFF/alias/internal/fetch"
	"github.com/matt-FFFFFF/alias/internal/store"
	"github.com/urfave/cli/v3"
)

const (
	sourceArg             = "source"
	forceFlag             = "force"
	timeoutFlag           = "timeout"
	timeoutSecondsDefault = 60
)

// New returns the command that merges aliases from a file fetched from any go-getter source.
func New() *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "Merge aliases from a JSON or YAML file",
		Description: `Merge the aliases of another alias file into yours.
Existing aliases are kept unless --force is given. The current file is backed up first.

Sources use Hashicorp's go-getter syntax, so local paths, https URLs, git repositories and
buckets all work. See https://github.com/hashicorp/go-getter.`,
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      sourceArg,
				UsageText: "SOURCE",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        forceFlag,
				Usage:       "Replace aliases that already exist",
				Value:       false,
				DefaultText: "false",
				OnlyOnce:    true,
			},
			&cli.IntFlag{
				Name:  timeoutFlag,
				Usage: "Maximum time in seconds to wait for the source",
				Value: timeoutSecondsDefault,
			},
		},
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)

	src := cmd.StringArg(sourceArg)
	if src == "" {
		return cli.Exit("Usage: a import <source> [--force]", 1)
	}

	st, err := cmdstate.FromContext(ctx)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fetchCtx, cancel := context.WithTimeout(ctx, time.Duration(cmd.Int(timeoutFlag))*time.Second)
	defer cancel()

	f, err := fetch.Get(fetchCtx, src)
	if err != nil {
		return cli.Exit("Error importing aliases: "+err.Error(), 1)
	}

	incoming, err := store.DecodeFile(f.Name, f.Data)
	if err != nil {
		return cli.Exit("Error importing aliases: "+err.Error(), 1)
	}

	s, err := st.Open()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	report, err := s.Config.Merge(incoming, cmd.Bool(forceFlag))
	if err != nil {
		return cli.Exit("Error importing aliases: "+err.Error(), 1)
	}

	w := cmd.Root().Writer

	if len(report.Added)+len(report.Replaced) > 0 {
		backup, err := s.Backup()
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}

		if backup != "" {
			fmt.Fprintln(w, color.Colorize("Existing config backed up to:", color.FgHiBlack), backup)
		}

		if err := s.Save(); err != nil {
			return cli.Exit(err.Error(), 1)
		}
	}

	logger.Debug("import merged", "source", src, "added", len(report.Added), "replaced", len(report.Replaced))

	fmt.Fprintln(w, color.Colorize(fmt.Sprintf("Imported %d aliases from %s", len(report.Added)+len(report.Replaced), src), color.FgGreen))
	writeNames(w, "Added", report.Added)
	writeNames(w, "Replaced", report.Replaced)

	if len(report.Skipped) > 0 {
		writeNames(w, "Skipped existing", report.Skipped)
		fmt.Fprintln(w, color.Colorize("Use --force to replace existing aliases.", color.FgYellow))
	}

	return nil
}

func writeNames(w io.Writer, label string, names []string) {
	if len(names) == 0 {
		return
	}

	fmt.Fprintln(w, "  "+color.Colorize(label+":", color.FgCyan), strings.Join(names, ", "))
}
