// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package params

import (
	"slices"
	"strings"
)

// Plan is the argument passing policy for one invocation of a chain.
// It is decided once, before any step runs.
type Plan struct {
	// Substitute is true when at least one step template contains a variable.
	// Every step is then expanded with the same arguments and nothing is appended.
	// Otherwise the arguments are appended to the last listed step only.
	Substitute bool
}

// PlanFor scans every template and returns the policy for the whole chain.
func PlanFor(templates []string) Plan {
	return Plan{
		Substitute: slices.ContainsFunc(templates, HasVariables),
	}
}

// Resolve returns the command text for one step template.
func (p Plan) Resolve(template string, args []string) string {
	if p.Substitute {
		return Substitute(template, args)
	}

	return template
}

// Appended returns the raw arguments to append as extra tokens to the step at index.
// Only the last listed step receives them and only in legacy mode.
func (p Plan) Appended(index, total int, args []string) []string {
	if p.Substitute || index != total-1 || len(args) == 0 {
		return nil
	}

	return slices.Clone(args)
}

// Preview renders the text a step would run with, joining any appended arguments.
// It is meant for display only; execution keeps appended arguments as discrete tokens.
func (p Plan) Preview(index, total int, template string, args []string) string {
	text := p.Resolve(template, args)
	if extra := p.Appended(index, total, args); len(extra) > 0 {
		text += " " + strings.Join(extra, " ")
	}

	return text
}
