// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package list

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matt-FFFFFF/alias/internal/chain"
	"github.com/matt-FFFFFF/alias/internal/color"
	"github.com/matt-FFFFFF/alias/internal/store"
	"github.com/stretchr/testify/assert"
)

func named(names ...string) []store.Named {
	out := make([]store.Named, len(names))
	for i, n := range names {
		out[i] = store.Named{Name: n}
	}

	return out
}

func TestNameWidth(t *testing.T) {
	assert.Equal(t, 16, NameWidth(nil))
	assert.Equal(t, 16, NameWidth(named("a", "build")))
	assert.Equal(t, 16, NameWidth(named("twelve-chars")))
	assert.Equal(t, 20, NameWidth(named("sixteen-chars-xx")))
	assert.Equal(t, 24, NameWidth(named("a-name-of-twenty-chars")))
}

func TestWrite(t *testing.T) {
	prev := color.SetEnabled(false)
	t.Cleanup(func() { color.SetEnabled(prev) })

	desc := "status"
	cfg := store.NewConfig()
	cfg.Aliases["gs"] = &store.Entry{CommandType: chain.NewSimple("git status"), Description: &desc, Created: "2024-01-01"}
	cfg.Aliases["b"] = &store.Entry{CommandType: chain.NewChain(chain.New("make", true, chain.Then(nil, "make docs"))), Created: "2024-02-02"}

	buf := &bytes.Buffer{}
	Write(buf, cfg, "")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "Configured aliases:", lines[0])
	assert.Equal(t, "  b"+strings.Repeat(" ", 15)+" -> PARALLEL: make make docs [2024-02-02]", lines[1])
	assert.Equal(t, "  gs"+strings.Repeat(" ", 14)+" -> git status (status) [2024-01-01]", lines[2])

	buf.Reset()
	Write(buf, store.NewConfig(), "")
	assert.Equal(t, "No aliases configured.\n", buf.String())
}
