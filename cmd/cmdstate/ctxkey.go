// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmdstate carries the dependencies shared by every subcommand in the context.
// Tests put a State backed by a temporary directory and a recording runner in its place.
package cmdstate

import (
	"context"
	"errors"
	"os"

	"github.com/matt-FFFFFF/alias/internal/confirm"
	"github.com/matt-FFFFFF/alias/internal/ghsync"
	"github.com/matt-FFFFFF/alias/internal/runner"
	"github.com/matt-FFFFFF/alias/internal/settings"
	"github.com/matt-FFFFFF/alias/internal/store"
)

// ErrNoState is returned when the context carries no State.
var ErrNoState = errors.New("failed to get command state from context")

// StateContextKey is the context key for the State.
type StateContextKey struct{}

// State is what subcommands need from the outside world.
type State struct {
	// Dir holds the alias file and settings.toml.
	Dir      string
	Runner   runner.Runner
	Prompter confirm.Prompter
	// Token returns a GitHub token, if one can be found.
	Token func(context.Context) (string, bool)
	// Interrupted reports a termination signal received by the process. Nil means never.
	Interrupted func() error
}

// Default builds the State used by the real binary.
func Default(getenv func(string) string) (*State, error) {
	dir, err := store.DefaultDir(getenv)
	if err != nil {
		return nil, err
	}

	return &State{
		Dir:      dir,
		Runner:   runner.NewOSRunner(),
		Prompter: confirm.New(os.Stdin, os.Stdout),
		Token:    ghsync.NewTokenFinder().Find,
	}, nil
}

// New returns a context carrying s.
func New(ctx context.Context, s *State) context.Context {
	return context.WithValue(ctx, StateContextKey{}, s)
}

// FromContext returns the State carried by ctx.
func FromContext(ctx context.Context) (*State, error) {
	s, ok := ctx.Value(StateContextKey{}).(*State)
	if !ok || s == nil {
		return nil, ErrNoState
	}

	return s, nil
}

// Open loads the alias store.
func (s *State) Open() (*store.Store, error) {
	return store.Open(s.Dir)
}

// Settings loads settings.toml.
func (s *State) Settings() (*settings.Settings, error) {
	return settings.Load(s.Dir)
}
