// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package engine

import (
	"errors"
	"slices"

	"github.com/google/shlex"
	"github.com/matt-FFFFFF/alias/internal/params"
)

var (
	// ErrEmptyCommand is returned when a step resolves to no words at all.
	ErrEmptyCommand = errors.New("command is empty")
	// ErrParseCommand is returned when a step cannot be split into words, e.g. an unbalanced quote.
	ErrParseCommand = errors.New("cannot parse command")
)

// Invocation is a step ready to launch.
type Invocation struct {
	Text    string   // display text, including appended arguments
	Program string   // first word
	Args    []string // remaining words followed by any appended arguments
}

// Prepare resolves a step template into an Invocation.
// The resolved text is split with POSIX shell quoting rules, no shell is involved.
// Appended arguments are added as discrete words and never re-split.
// Text is always set, even when an error is returned.
func Prepare(plan params.Plan, index, total int, template string, args []string) (Invocation, error) {
	inv := Invocation{
		Text: plan.Preview(index, total, template, args),
	}

	words, err := shlex.Split(plan.Resolve(template, args))
	if err != nil {
		return inv, errors.Join(ErrParseCommand, err)
	}

	if len(words) == 0 {
		return inv, ErrEmptyCommand
	}

	inv.Program = words[0]
	inv.Args = slices.Concat(words[1:], plan.Appended(index, total, args))

	return inv, nil
}
