// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package chain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandType_JSONLayout(t *testing.T) {
	ct := NewChain(New("cargo build", false,
		Then(And(), "cargo test"),
		Then(IfCode(101), "echo panicked"),
	))

	data, err := json.Marshal(ct)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Chain":{"commands":[
		{"command":"cargo build","operator":null},
		{"command":"cargo test","operator":"And"},
		{"command":"echo panicked","operator":{"IfCode":101}}
	],"parallel":false}}`, string(data))

	simple, err := json.Marshal(NewSimple("git status"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"Simple":"git status"}`, string(simple))
}

func TestCommandType_UnmarshalJSON(t *testing.T) {
	input := `{"Chain":{"commands":[
		{"command":"npm ci","operator":null},
		{"command":"npm test","operator":"Always"},
		{"command":"npm run fix","operator":"Or"},
		{"command":"echo one","operator":{"IfCode":1}}
	],"parallel":true}}`

	var ct CommandType
	require.NoError(t, json.Unmarshal([]byte(input), &ct))

	assert.Equal(t, KindChain, ct.Kind)
	assert.True(t, ct.Chain.Parallel)
	require.Len(t, ct.Chain.Steps, 4)
	assert.Nil(t, ct.Chain.Steps[0].Operator)
	assert.Equal(t, Always(), ct.Chain.Steps[1].Operator)
	assert.Equal(t, Or(), ct.Chain.Steps[2].Operator)
	assert.Equal(t, IfCode(1), ct.Chain.Steps[3].Operator)
}

func TestUnmarshalJSON_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "unknown unit operator", input: `{"Chain":{"commands":[{"command":"a","operator":"Maybe"}],"parallel":false}}`, wantErr: ErrInvalidOperatorJSON},
		{name: "unknown tagged operator", input: `{"Chain":{"commands":[{"command":"a","operator":{"OnCode":1}}],"parallel":false}}`, wantErr: ErrInvalidOperatorJSON},
		{name: "unknown variant", input: `{"Script":"echo"}`, wantErr: ErrInvalidCommandTypeJSON},
		{name: "two variants", input: `{"Simple":"a","Chain":{}}`, wantErr: ErrInvalidCommandTypeJSON},
		{name: "not an object", input: `"echo"`, wantErr: ErrInvalidCommandTypeJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ct CommandType
			err := json.Unmarshal([]byte(tt.input), &ct)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
