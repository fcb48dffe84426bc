// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package store

import (
	"path/filepath"
	"testing"

	"github.com/matt-FFFFFF/alias/internal/chain"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDir = "/home/user/.alias-mgr"

func memFs(t *testing.T) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	stubs := gostub.Stub(&FsFactory, func() afero.Fs { return fs })
	t.Cleanup(stubs.Reset)

	return fs
}

func TestOpen_MissingFile(t *testing.T) {
	fs := memFs(t)

	s, err := Open(testDir)
	require.NoError(t, err)
	assert.Empty(t, s.Config.Aliases)
	assert.False(t, s.Exists())
	assert.Equal(t, filepath.Join(testDir, FileName), s.Path())

	isDir, err := afero.IsDir(fs, testDir)
	require.NoError(t, err)
	assert.True(t, isDir)

	_, err = s.Raw()
	require.ErrorIs(t, err, ErrNoConfig)

	backup, err := s.Backup()
	require.NoError(t, err)
	assert.Empty(t, backup)
}

func TestSaveAndReopen(t *testing.T) {
	memFs(t)
	stubNow(t)

	s, err := Open(testDir)
	require.NoError(t, err)

	_, err = s.Config.Add("gs", chain.NewSimple("git status"), nil, false)
	require.NoError(t, err)
	require.NoError(t, s.Save())
	assert.True(t, s.Exists())

	again, err := Open(testDir)
	require.NoError(t, err)
	assert.Equal(t, s.Config, again.Config)

	raw, err := again.Raw()
	require.NoError(t, err)
	assert.JSONEq(t, `{"aliases": {"gs": {"command_type": {"Simple": "git status"}, "description": null, "created": "2025-03-14"}}}`, string(raw))
}

func TestOpen_LegacyFile(t *testing.T) {
	fs := memFs(t)
	require.NoError(t, afero.WriteFile(fs, filepath.Join(testDir, FileName), []byte(legacyFile), 0o644))

	s, err := Open(testDir)
	require.NoError(t, err)
	assert.True(t, s.Config.Aliases["deploy"].CommandType.IsLegacyChain())

	require.NoError(t, s.Save())

	raw, err := s.Raw()
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"command_type"`)
	assert.NotContains(t, string(raw), `"command": "ls -la"`)
}

func TestOpen_CorruptFile(t *testing.T) {
	fs := memFs(t)
	require.NoError(t, afero.WriteFile(fs, filepath.Join(testDir, FileName), []byte("{"), 0o644))

	_, err := Open(testDir)
	require.ErrorIs(t, err, ErrDecode)
}

func TestReplace(t *testing.T) {
	fs := memFs(t)
	require.NoError(t, afero.WriteFile(fs, filepath.Join(testDir, FileName), []byte(legacyFile), 0o644))

	s, err := Open(testDir)
	require.NoError(t, err)

	backup, err := s.Replace([]byte(currentFile))
	require.NoError(t, err)
	assert.Equal(t, s.BackupPath(), backup)

	old, err := afero.ReadFile(fs, backup)
	require.NoError(t, err)
	assert.Equal(t, legacyFile, string(old))

	raw, err := s.Raw()
	require.NoError(t, err)
	assert.Equal(t, currentFile, string(raw), "content is written verbatim")
	assert.Contains(t, s.Config.Aliases, "build")

	_, err = s.Replace([]byte(`{"nope": 1}`))
	require.ErrorIs(t, err, ErrMissingAliases)

	raw, err = s.Raw()
	require.NoError(t, err)
	assert.Equal(t, currentFile, string(raw), "invalid content leaves the file alone")
}

func TestExport(t *testing.T) {
	fs := memFs(t)
	require.NoError(t, afero.WriteFile(fs, filepath.Join(testDir, FileName), []byte(currentFile), 0o644))

	s, err := Open(testDir)
	require.NoError(t, err)

	target, err := s.Export("/backup/aliases", FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/backup/aliases", "config.json"), target)

	data, err := afero.ReadFile(fs, target)
	require.NoError(t, err)
	assert.Equal(t, currentFile, string(data))

	target, err = s.Export("/backup/aliases", FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/backup/aliases", "config.yaml"), target)

	data, err = afero.ReadFile(fs, target)
	require.NoError(t, err)

	cfg, err := DecodeAs(data, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, s.Config, cfg)
}

func TestExport_Errors(t *testing.T) {
	fs := memFs(t)
	require.NoError(t, afero.WriteFile(fs, "/tmp/file", []byte("x"), 0o644))

	s, err := Open(testDir)
	require.NoError(t, err)

	_, err = s.Export("/tmp/file", FormatJSON)
	require.ErrorIs(t, err, ErrNotDirectory)

	_, err = s.Export("/tmp/out", FormatJSON)
	require.ErrorIs(t, err, ErrNoConfig)
}

func TestDefaultDir(t *testing.T) {
	env := map[string]string{}
	getenv := func(k string) string { return env[k] }

	_, err := DefaultDir(getenv)
	require.ErrorIs(t, err, ErrNoHome)

	env["HOME"] = "/home/user"
	env["USERPROFILE"] = "/home/user"

	dir, err := DefaultDir(getenv)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/user", DirName), dir)

	env[EnvConfigDir] = "/custom"

	dir, err = DefaultDir(getenv)
	require.NoError(t, err)
	assert.Equal(t, "/custom", dir)
}
