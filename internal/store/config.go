// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package store

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/alias/internal/chain"
)

// DateLayout is the format of Entry.Created.
const DateLayout = "2006-01-02"

var (
	// ErrReservedName is returned when an alias name collides with the command line syntax.
	ErrReservedName = errors.New("cannot use reserved prefixes")
	// ErrAliasNotFound is returned when an alias does not exist.
	ErrAliasNotFound = errors.New("alias not found")
	// ErrInvalidAlias is returned when an alias fails validation.
	ErrInvalidAlias = errors.New("invalid alias")
)

// Entry is a stored alias.
type Entry struct {
	CommandType chain.CommandType `json:"command_type"`
	Description *string           `json:"description"`
	Created     string            `json:"created"`
}

// Named pairs an alias name with its entry.
type Named struct {
	Name  string
	Entry *Entry
}

// Config is the whole alias file.
type Config struct {
	Aliases map[string]*Entry `json:"aliases"`
}

// NewConfig returns an empty Config.
func NewConfig() *Config {
	return &Config{Aliases: make(map[string]*Entry)}
}

// IsReservedName reports whether name cannot be used for an alias:
// names starting with "--" or "." and names containing "mgr:".
func IsReservedName(name string) bool {
	return strings.HasPrefix(name, "--") ||
		strings.Contains(name, "mgr:") ||
		strings.HasPrefix(name, ".")
}

// Add stores ct under name. When the name already exists and force is false nothing changes
// and added is false, so the caller can ask for confirmation and retry with force.
func (c *Config) Add(name string, ct chain.CommandType, description *string, force bool) (bool, error) {
	if IsReservedName(name) || strings.TrimSpace(name) == "" {
		return false, fmt.Errorf("%w: invalid alias name '%s'", ErrReservedName, name)
	}

	if err := ct.Validate(); err != nil {
		return false, errors.Join(fmt.Errorf("%w: '%s'", ErrInvalidAlias, name), err)
	}

	if _, exists := c.Aliases[name]; exists && !force {
		return false, nil
	}

	if c.Aliases == nil {
		c.Aliases = make(map[string]*Entry)
	}

	c.Aliases[name] = &Entry{
		CommandType: ct,
		Description: description,
		Created:     Now().UTC().Format(DateLayout),
	}

	return true, nil
}

// Remove deletes an alias.
func (c *Config) Remove(name string) error {
	if _, ok := c.Aliases[name]; !ok {
		return fmt.Errorf("%w: '%s'", ErrAliasNotFound, name)
	}

	delete(c.Aliases, name)

	return nil
}

// Get returns the entry stored under name.
func (c *Config) Get(name string) (*Entry, bool) {
	e, ok := c.Aliases[name]
	return e, ok
}

// List returns the aliases whose name contains filter, sorted by name.
// An empty filter matches every alias.
func (c *Config) List(filter string) []Named {
	out := make([]Named, 0, len(c.Aliases))

	for name, e := range c.Aliases {
		if filter != "" && !strings.Contains(name, filter) {
			continue
		}

		out = append(out, Named{Name: name, Entry: e})
	}

	slices.SortFunc(out, func(a, b Named) int {
		return strings.Compare(a.Name, b.Name)
	})

	return out
}

// Validate checks every alias and reports all problems at once.
func (c *Config) Validate() error {
	var result error

	for _, n := range c.List("") {
		if IsReservedName(n.Name) {
			result = multierror.Append(result, fmt.Errorf("%w: invalid alias name '%s'", ErrReservedName, n.Name))
		}

		if n.Entry == nil {
			result = multierror.Append(result, fmt.Errorf("%w: '%s' has no entry", ErrInvalidAlias, n.Name))
			continue
		}

		if err := n.Entry.CommandType.Validate(); err != nil {
			result = multierror.Append(result, errors.Join(fmt.Errorf("%w: '%s'", ErrInvalidAlias, n.Name), err))
		}
	}

	return result
}

// MergeReport lists what Merge did with each incoming alias.
type MergeReport struct {
	Added    []string
	Replaced []string
	Skipped  []string // already present and not forced
}

// Merge copies the aliases of other into c. Existing names are kept unless force is set.
// other is validated first and nothing is merged when it is invalid.
func (c *Config) Merge(other *Config, force bool) (MergeReport, error) {
	report := MergeReport{}

	if err := other.Validate(); err != nil {
		return report, err
	}

	if c.Aliases == nil {
		c.Aliases = make(map[string]*Entry)
	}

	for _, n := range other.List("") {
		_, exists := c.Aliases[n.Name]

		switch {
		case exists && !force:
			report.Skipped = append(report.Skipped, n.Name)
			continue
		case exists:
			report.Replaced = append(report.Replaced, n.Name)
		default:
			report.Added = append(report.Added, n.Name)
		}

		e := *n.Entry
		c.Aliases[n.Name] = &e
	}

	return report, nil
}
