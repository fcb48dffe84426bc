// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package chain

import (
	"errors"
	"strconv"
)

// OperatorKind defines when a step should run based on the exit code of the previously executed step.
type OperatorKind int

const (
	// OpAnd means the step runs only if the previous executed step succeeded (exit code 0).
	OpAnd OperatorKind = iota
	// OpOr means the step runs only if the previous executed step failed (non-zero exit code).
	OpOr
	// OpAlways means the step always runs regardless of the previous step's result.
	OpAlways
	// OpIfCode means the step runs only if the previous executed step's exit code matches Operator.Code.
	OpIfCode
)

const (
	opAndStr     = "and"
	opOrStr      = "or"
	opAlwaysStr  = "always"
	opIfCodeStr  = "if-code"
	opUnknownStr = "unknown"
)

var (
	// ErrOperatorUnknown is returned when an unknown operator name is encountered.
	ErrOperatorUnknown = errors.New("unknown chain operator")
)

// Operator links a step to the outcome of the most recently executed step.
// Code is only meaningful for OpIfCode.
type Operator struct {
	Kind OperatorKind
	Code int
}

// And returns an operator that runs the step if the previous step succeeded.
func And() *Operator { return &Operator{Kind: OpAnd} }

// Or returns an operator that runs the step if the previous step failed.
func Or() *Operator { return &Operator{Kind: OpOr} }

// Always returns an operator that always runs the step.
func Always() *Operator { return &Operator{Kind: OpAlways} }

// IfCode returns an operator that runs the step if the previous exit code equals code.
func IfCode(code int) *Operator { return &Operator{Kind: OpIfCode, Code: code} }

// Allows reports whether a step carrying this operator should run, given the exit code
// of the last step that actually executed.
func (o Operator) Allows(lastCode int) bool {
	switch o.Kind {
	case OpAnd:
		return lastCode == 0
	case OpOr:
		return lastCode != 0
	case OpAlways:
		return true
	case OpIfCode:
		return lastCode == o.Code
	}

	return false
}

// Symbol returns the compact chain notation for the operator, e.g. `&&` or `?[2]`.
func (o Operator) Symbol() string {
	switch o.Kind {
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	case OpAlways:
		return ";"
	case OpIfCode:
		return "?[" + strconv.Itoa(o.Code) + "]"
	}

	return "?"
}

// String returns the name of the operator.
func (o Operator) String() string {
	switch o.Kind {
	case OpAnd:
		return opAndStr
	case OpOr:
		return opOrStr
	case OpAlways:
		return opAlwaysStr
	case OpIfCode:
		return opIfCodeStr + " " + strconv.Itoa(o.Code)
	default:
		return opUnknownStr
	}
}

// Describe returns a human readable description of the run condition.
func (o Operator) Describe() string {
	switch o.Kind {
	case OpAnd:
		return "run if previous succeeded"
	case OpOr:
		return "run if previous failed"
	case OpAlways:
		return "always run"
	case OpIfCode:
		return "run if previous exit code = " + strconv.Itoa(o.Code)
	}

	return opUnknownStr
}

// SkipReason explains why a step with this operator did not run.
func (o Operator) SkipReason(lastCode int) string {
	switch o.Kind {
	case OpAnd:
		return "previous command failed (exit code " + strconv.Itoa(lastCode) + ")"
	case OpOr:
		return "previous command succeeded"
	case OpIfCode:
		return "previous exit code was " + strconv.Itoa(lastCode) + ", expected " + strconv.Itoa(o.Code)
	}

	return "unknown condition"
}

// NewOperator creates an operator from its name. The code is used only for if-code.
func NewOperator(name string, code int) (*Operator, error) {
	switch name {
	case opAndStr:
		return And(), nil
	case opOrStr:
		return Or(), nil
	case opAlwaysStr:
		return Always(), nil
	case opIfCodeStr:
		return IfCode(code), nil
	default:
		return nil, ErrOperatorUnknown
	}
}
