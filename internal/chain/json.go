// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package chain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// The JSON form follows the externally tagged layout of existing alias files:
// unit operators are bare strings ("And"), if-code is {"IfCode": 2},
// and command types are {"Simple": "..."} or {"Chain": {...}}.
const (
	jsonAnd    = "And"
	jsonOr     = "Or"
	jsonAlways = "Always"
	jsonIfCode = "IfCode"
	jsonSimple = "Simple"
	jsonChain  = "Chain"
)

var (
	// ErrInvalidOperatorJSON is returned when an operator cannot be decoded.
	ErrInvalidOperatorJSON = errors.New("invalid operator")
	// ErrInvalidCommandTypeJSON is returned when a command type cannot be decoded.
	ErrInvalidCommandTypeJSON = errors.New("invalid command type")
)

// MarshalJSON implements json.Marshaler.
func (o Operator) MarshalJSON() ([]byte, error) {
	switch o.Kind {
	case OpAnd:
		return json.Marshal(jsonAnd)
	case OpOr:
		return json.Marshal(jsonOr)
	case OpAlways:
		return json.Marshal(jsonAlways)
	case OpIfCode:
		return json.Marshal(map[string]int{jsonIfCode: o.Code})
	}

	return nil, fmt.Errorf("%w: kind %d", ErrInvalidOperatorJSON, o.Kind)
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Operator) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		switch name {
		case jsonAnd:
			*o = Operator{Kind: OpAnd}
		case jsonOr:
			*o = Operator{Kind: OpOr}
		case jsonAlways:
			*o = Operator{Kind: OpAlways}
		default:
			return fmt.Errorf("%w: %q", ErrInvalidOperatorJSON, name)
		}

		return nil
	}

	var tagged map[string]int
	if err := json.Unmarshal(data, &tagged); err != nil {
		return errors.Join(ErrInvalidOperatorJSON, err)
	}

	code, ok := tagged[jsonIfCode]
	if !ok || len(tagged) != 1 {
		return fmt.Errorf("%w: %s", ErrInvalidOperatorJSON, string(data))
	}

	*o = Operator{Kind: OpIfCode, Code: code}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (ct CommandType) MarshalJSON() ([]byte, error) {
	switch ct.Kind {
	case KindSimple:
		return json.Marshal(map[string]string{jsonSimple: ct.Simple})
	case KindChain:
		return json.Marshal(map[string]Chain{jsonChain: ct.Chain})
	}

	return nil, fmt.Errorf("%w: kind %d", ErrInvalidCommandTypeJSON, ct.Kind)
}

// UnmarshalJSON implements json.Unmarshaler.
func (ct *CommandType) UnmarshalJSON(data []byte) error {
	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(data, &tagged); err != nil {
		return errors.Join(ErrInvalidCommandTypeJSON, err)
	}

	if len(tagged) != 1 {
		return fmt.Errorf("%w: expected exactly one of %s or %s", ErrInvalidCommandTypeJSON, jsonSimple, jsonChain)
	}

	if raw, ok := tagged[jsonSimple]; ok {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return errors.Join(ErrInvalidCommandTypeJSON, err)
		}

		*ct = NewSimple(s)

		return nil
	}

	if raw, ok := tagged[jsonChain]; ok {
		var c Chain
		if err := json.Unmarshal(raw, &c); err != nil {
			return errors.Join(ErrInvalidCommandTypeJSON, err)
		}

		*ct = NewChain(c)

		return nil
	}

	return fmt.Errorf("%w: unknown variant in %s", ErrInvalidCommandTypeJSON, string(data))
}
