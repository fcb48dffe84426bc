// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ghsync

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/matt-FFFFFF/alias/internal/ctxlog"
)

// TokenEnvVars are checked in order before any external tool is asked.
var TokenEnvVars = []string{"A_GITHUB_TOKEN", "GITHUB_TOKEN", "GH_TOKEN"}

// credentialHosts are asked of git credential fill in order.
var credentialHosts = []string{"github.com", "api.github.com"}

const (
	ghStatusMarker = "Token:"
	ghPlaceholder  = "<TOKEN>"
)

// ExecFunc runs name with args, feeding stdin, and returns its standard output.
// A non-zero exit is an error. extraEnv is appended to the current environment.
type ExecFunc func(ctx context.Context, stdin string, extraEnv []string, name string, args ...string) (string, error)

type tokenSource struct {
	name string
	find func(context.Context) string
}

// TokenFinder looks for a GitHub token.
type TokenFinder struct {
	Getenv func(string) string
	Exec   ExecFunc
}

// NewTokenFinder returns a TokenFinder using the process environment and real commands.
func NewTokenFinder() *TokenFinder {
	return &TokenFinder{
		Getenv: os.Getenv,
		Exec:   execOutput,
	}
}

// Find returns the first token found, or false.
func (f *TokenFinder) Find(ctx context.Context) (string, bool) {
	for _, name := range TokenEnvVars {
		if tok := strings.TrimSpace(f.Getenv(name)); tok != "" {
			ctxlog.Debug(ctx, "github token found", "source", name)
			return tok, true
		}
	}

	sources := []tokenSource{
		{"gh auth status", f.fromGhStatus},
		{"gh auth token", f.fromGhToken},
	}

	for _, host := range credentialHosts {
		sources = append(sources, tokenSource{
			name: "git credential " + host,
			find: func(ctx context.Context) string { return f.fromGitCredential(ctx, host) },
		})
	}

	for _, s := range sources {
		if tok := s.find(ctx); tok != "" {
			ctxlog.Debug(ctx, "github token found", "source", s.name)
			return tok, true
		}
	}

	ctxlog.Debug(ctx, "no github token found")

	return "", false
}

func (f *TokenFinder) fromGhStatus(ctx context.Context) string {
	out, err := f.Exec(ctx, "", []string{"GH_PROMPT_DISABLED=1"}, "gh", "auth", "status", "--show-token")
	if err != nil {
		return ""
	}

	for line := range strings.Lines(out) {
		_, after, ok := strings.Cut(line, ghStatusMarker)
		if !ok {
			continue
		}

		if tok := strings.TrimSpace(after); tok != "" && tok != ghPlaceholder {
			return tok
		}
	}

	return ""
}

func (f *TokenFinder) fromGhToken(ctx context.Context) string {
	out, err := f.Exec(ctx, "", []string{"GH_PROMPT_DISABLED=1"}, "gh", "auth", "token")
	if err != nil {
		return ""
	}

	return strings.TrimSpace(out)
}

func (f *TokenFinder) fromGitCredential(ctx context.Context, host string) string {
	out, err := f.Exec(ctx, "protocol=https\nhost="+host+"\n\n", nil, "git", "credential", "fill")
	if err != nil {
		return ""
	}

	for line := range strings.Lines(out) {
		k, v, ok := strings.Cut(strings.TrimRight(line, "\r\n"), "=")
		if ok && k == "password" && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}

	return ""
}

func execOutput(ctx context.Context, stdin string, extraEnv []string, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	if len(extraEnv) > 0 {
		cmd.Env = append(os.Environ(), extraEnv...)
	}

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		return "", err
	}

	return stdout.String(), nil
}
