// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build !windows

package runner

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matt-FFFFFF/alias/internal/resolve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner() (*OSRunner, *bytes.Buffer) {
	out := &bytes.Buffer{}

	return &OSRunner{
		Strategy:    resolve.Identity{},
		GracePeriod: 500 * time.Millisecond,
		Stdout:      out,
		Stderr:      out,
	}, out
}

func TestOSRunner_ExitCodes(t *testing.T) {
	r, _ := newTestRunner()

	assert.Equal(t, ExitedWith(0), r.Run(context.Background(), "/bin/sh", []string{"-c", "exit 0"}))
	assert.Equal(t, ExitedWith(3), r.Run(context.Background(), "/bin/sh", []string{"-c", "exit 3"}))
}

func TestOSRunner_ArgumentsAreDiscrete(t *testing.T) {
	r, out := newTestRunner()

	res := r.Run(context.Background(), "/bin/echo", []string{"hello world", "$HOME"})
	require.True(t, res.Success())
	assert.Equal(t, "hello world $HOME\n", out.String())
}

func TestOSRunner_SpawnFailure(t *testing.T) {
	r, _ := newTestRunner()

	res := r.Run(context.Background(), "definitely-not-a-real-program-xyz", nil)
	assert.Equal(t, SpawnFailure, res.Kind)
	assert.Equal(t, CodeSpawnFailure, res.ExitStatus())
	assert.ErrorIs(t, res.Err, ErrCouldNotStartProcess)
}

func TestOSRunner_DirAndEnv(t *testing.T) {
	r, out := newTestRunner()
	dir := t.TempDir()

	res := r.Run(context.Background(), "/bin/sh", []string{"-c", "pwd; echo $ALIAS_TEST_VAR"},
		WithDir(dir),
		WithEnv(map[string]string{"ALIAS_TEST_VAR": "from-env"}),
	)
	require.True(t, res.Success())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)

	// macOS temp dirs live behind a symlink.
	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(lines[0])
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, "from-env", lines[1])
}

func TestOSRunner_ContextCancelled(t *testing.T) {
	r, _ := newTestRunner()
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	res := r.Run(ctx, "/bin/sleep", []string{"10"})

	assert.Equal(t, Interrupted, res.Kind)
	assert.Equal(t, CodeInterrupted, res.ExitStatus())
	assert.ErrorIs(t, res.Err, ErrContextDone)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestOSRunner_AlreadyCancelled(t *testing.T) {
	r, out := newTestRunner()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := r.Run(ctx, "/bin/echo", []string{"never"})
	assert.Equal(t, Interrupted, res.Kind)
	assert.Empty(t, out.String())
}

func TestOSRunner_KilledBySignal(t *testing.T) {
	r, _ := newTestRunner()

	res := r.Run(context.Background(), "/bin/sh", []string{"-c", "kill -TERM $$"})
	assert.Equal(t, Interrupted, res.Kind)
	assert.ErrorIs(t, res.Err, ErrSignalReceived)
}

func TestNewOSRunner(t *testing.T) {
	r := NewOSRunner()
	assert.Equal(t, DefaultGracePeriod, r.GracePeriod)
	assert.Equal(t, os.Stdout, r.Stdout)
	assert.Nil(t, r.Strategy)
}

func TestInterruptedExit_NoExitCodeQualifies(t *testing.T) {
	for _, code := range []int{0, 1, 130, 255} {
		assert.False(t, interruptedExit(code), code)
	}
}
