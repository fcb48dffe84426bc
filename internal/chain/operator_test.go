// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperator_Allows(t *testing.T) {
	tests := []struct {
		name     string
		op       *Operator
		lastCode int
		want     bool
	}{
		{name: "and after success", op: And(), lastCode: 0, want: true},
		{name: "and after failure", op: And(), lastCode: 1, want: false},
		{name: "or after success", op: Or(), lastCode: 0, want: false},
		{name: "or after failure", op: Or(), lastCode: 2, want: true},
		{name: "always after success", op: Always(), lastCode: 0, want: true},
		{name: "always after failure", op: Always(), lastCode: 127, want: true},
		{name: "if-code match", op: IfCode(2), lastCode: 2, want: true},
		{name: "if-code mismatch", op: IfCode(2), lastCode: 1, want: false},
		{name: "if-code zero", op: IfCode(0), lastCode: 0, want: true},
		{name: "unknown kind", op: &Operator{Kind: OperatorKind(42)}, lastCode: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.op.Allows(tt.lastCode))
		})
	}
}

func TestOperator_Symbol(t *testing.T) {
	assert.Equal(t, "&&", And().Symbol())
	assert.Equal(t, "||", Or().Symbol())
	assert.Equal(t, ";", Always().Symbol())
	assert.Equal(t, "?[3]", IfCode(3).Symbol())
}

func TestOperator_SkipReason(t *testing.T) {
	assert.Equal(t, "previous command failed (exit code 1)", And().SkipReason(1))
	assert.Equal(t, "previous command succeeded", Or().SkipReason(0))
	assert.Equal(t, "previous exit code was 1, expected 2", IfCode(2).SkipReason(1))
}

func TestNewOperator(t *testing.T) {
	op, err := NewOperator("if-code", 4)
	require.NoError(t, err)
	assert.Equal(t, IfCode(4), op)

	op, err = NewOperator("and", 0)
	require.NoError(t, err)
	assert.Equal(t, And(), op)

	_, err = NewOperator("sometimes", 0)
	require.ErrorIs(t, err, ErrOperatorUnknown)
}

func TestOperator_String(t *testing.T) {
	assert.Equal(t, "and", And().String())
	assert.Equal(t, "if-code 7", IfCode(7).String())
	assert.Equal(t, "unknown", Operator{Kind: OperatorKind(-1)}.String())
}
