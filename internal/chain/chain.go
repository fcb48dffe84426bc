// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package chain

import (
	"errors"
	"fmt"
	"strings"
)

// legacySeparator is how chains were written before operators were stored per step.
const legacySeparator = " && "

var (
	// ErrEmptyChain is returned when a chain has no steps.
	ErrEmptyChain = errors.New("chain must contain at least one step")
	// ErrFirstStepConditional is returned when the first step of a chain carries an operator.
	ErrFirstStepConditional = errors.New("first step of a chain cannot carry an operator")
	// ErrEmptyTemplate is returned when a step has an empty command template.
	ErrEmptyTemplate = errors.New("step command is empty")
)

// Step is one command template plus the operator governing whether it runs.
// The first step in a chain has no operator.
type Step struct {
	Template string    `json:"command"`
	Operator *Operator `json:"operator"`
}

// Chain is an ordered, non-empty sequence of steps run sequentially or in parallel.
type Chain struct {
	Steps    []Step `json:"commands"`
	Parallel bool   `json:"parallel"`
}

// New creates a chain whose first step runs the given template unconditionally.
func New(first string, parallel bool, rest ...Step) Chain {
	steps := make([]Step, 0, len(rest)+1)
	steps = append(steps, Step{Template: first})
	steps = append(steps, rest...)

	return Chain{
		Steps:    steps,
		Parallel: parallel,
	}
}

// Then returns a step that runs template under the given operator.
func Then(op *Operator, template string) Step {
	return Step{Template: template, Operator: op}
}

// Templates returns the command templates of every step in listed order.
func (c Chain) Templates() []string {
	t := make([]string, len(c.Steps))
	for i, s := range c.Steps {
		t[i] = s.Template
	}

	return t
}

// Validate checks the chain invariants.
func (c Chain) Validate() error {
	if len(c.Steps) == 0 {
		return ErrEmptyChain
	}

	if c.Steps[0].Operator != nil {
		return ErrFirstStepConditional
	}

	for i, s := range c.Steps {
		if strings.TrimSpace(s.Template) == "" {
			return fmt.Errorf("%w: step %d", ErrEmptyTemplate, i+1)
		}
	}

	return nil
}

// Kind identifies the variant held by a CommandType.
type Kind int

const (
	// KindSimple is a single command string.
	KindSimple Kind = iota
	// KindChain is a chain of steps.
	KindChain
)

// CommandType is what an alias is bound to: a single command or a chain.
type CommandType struct {
	Kind   Kind
	Simple string
	Chain  Chain
}

// NewSimple creates a CommandType wrapping a single command.
func NewSimple(command string) CommandType {
	return CommandType{Kind: KindSimple, Simple: command}
}

// NewChain creates a CommandType wrapping a chain.
func NewChain(c Chain) CommandType {
	return CommandType{Kind: KindChain, Chain: c}
}

// IsLegacyChain reports whether a simple command uses the old ` && ` chaining notation.
func (ct CommandType) IsLegacyChain() bool {
	return ct.Kind == KindSimple && strings.Contains(ct.Simple, legacySeparator)
}

// AsChain converts the command into a chain.
// A simple command becomes a single step chain, unless it is a legacy chain,
// in which case every ` && ` separated part becomes an And step.
// Empty legacy parts are dropped.
func (ct CommandType) AsChain() Chain {
	if ct.Kind == KindChain {
		return ct.Chain
	}

	if !ct.IsLegacyChain() {
		return New(ct.Simple, false)
	}

	var c Chain

	for part := range strings.SplitSeq(ct.Simple, legacySeparator) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if len(c.Steps) == 0 {
			c.Steps = append(c.Steps, Step{Template: part})
			continue
		}

		c.Steps = append(c.Steps, Then(And(), part))
	}

	return c
}

// Templates returns every command template the alias may run.
func (ct CommandType) Templates() []string {
	if ct.Kind == KindSimple {
		return []string{ct.Simple}
	}

	return ct.Chain.Templates()
}

// Validate checks the command type invariants.
func (ct CommandType) Validate() error {
	if ct.Kind == KindSimple {
		if strings.TrimSpace(ct.Simple) == "" {
			return ErrEmptyTemplate
		}

		return nil
	}

	return ct.Chain.Validate()
}

// Display renders the command in chain notation, e.g. `make && make test || echo failed`.
func (ct CommandType) Display() string {
	if ct.Kind == KindSimple {
		return ct.Simple
	}

	sb := strings.Builder{}

	for i, s := range ct.Chain.Steps {
		if i > 0 {
			if s.Operator == nil {
				sb.WriteString(" ")
			} else {
				sb.WriteString(" " + s.Operator.Symbol() + " ")
			}
		}

		sb.WriteString(s.Template)
	}

	if ct.Chain.Parallel {
		return "PARALLEL: " + sb.String()
	}

	return sb.String()
}

// Summary is a short description used when comparing an existing alias with a new one.
func (ct CommandType) Summary() string {
	if ct.Kind == KindSimple {
		return ct.Simple
	}

	return fmt.Sprintf("Complex chain with %d commands", len(ct.Chain.Steps))
}
