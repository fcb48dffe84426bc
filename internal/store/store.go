// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/afero"
)

const (
	// DirName is the directory under the home directory holding the alias file.
	DirName = ".alias-mgr"
	// FileName is the alias file name.
	FileName = "config.json"
	// BackupFileName receives the previous alias file before it is replaced.
	BackupFileName = "config.backup.json"
	// EnvConfigDir overrides the directory holding the alias file.
	EnvConfigDir = "A_CONFIG_DIR"
)

var (
	// ErrNoHome is returned when the home directory cannot be determined.
	ErrNoHome = errors.New("home directory not found")
	// ErrNoConfig is returned when an operation needs the alias file and it does not exist yet.
	ErrNoConfig = errors.New("source config file does not exist, create some aliases first")
	// ErrNotDirectory is returned when an export target exists and is not a directory.
	ErrNotDirectory = errors.New("target path exists but is not a directory")
	// ErrRead is returned when the alias file cannot be read.
	ErrRead = errors.New("failed to read config file")
	// ErrWrite is returned when the alias file cannot be written.
	ErrWrite = errors.New("failed to save config file")
)

// DefaultDir returns the directory holding the alias file:
// $A_CONFIG_DIR, or .alias-mgr under USERPROFILE on Windows and HOME elsewhere.
func DefaultDir(getenv func(string) string) (string, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	if dir := getenv(EnvConfigDir); dir != "" {
		return dir, nil
	}

	homeVar := "HOME"
	if runtime.GOOS == "windows" {
		homeVar = "USERPROFILE"
	}

	home := getenv(homeVar)
	if home == "" {
		return "", fmt.Errorf("%w: %s is not set", ErrNoHome, homeVar)
	}

	return filepath.Join(home, DirName), nil
}

// Store is an alias file loaded into memory.
type Store struct {
	Config *Config
	fs     afero.Fs
	dir    string
}

// Open loads the alias file in dir, creating dir when needed.
// A missing file yields an empty Config; it is created by the first Save.
func Open(dir string) (*Store, error) {
	s := &Store{
		fs:  FsFactory(),
		dir: dir,
	}

	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	cfg, err := s.load()
	if err != nil {
		return nil, err
	}

	s.Config = cfg

	return s, nil
}

// Path returns the alias file path.
func (s *Store) Path() string {
	return filepath.Join(s.dir, FileName)
}

// BackupPath returns the path the previous alias file is copied to.
func (s *Store) BackupPath() string {
	return filepath.Join(s.dir, BackupFileName)
}

// Exists reports whether the alias file has been written.
func (s *Store) Exists() bool {
	ok, err := afero.Exists(s.fs, s.Path())
	return err == nil && ok
}

func (s *Store) load() (*Config, error) {
	if !s.Exists() {
		return NewConfig(), nil
	}

	data, err := afero.ReadFile(s.fs, s.Path())
	if err != nil {
		return nil, errors.Join(ErrRead, err)
	}

	return Decode(data)
}

// Save writes the in-memory Config to the alias file.
func (s *Store) Save() error {
	data, err := Encode(s.Config)
	if err != nil {
		return errors.Join(ErrWrite, err)
	}

	if err := afero.WriteFile(s.fs, s.Path(), data, 0o644); err != nil {
		return errors.Join(ErrWrite, err)
	}

	return nil
}

// Raw returns the alias file exactly as stored.
func (s *Store) Raw() ([]byte, error) {
	if !s.Exists() {
		return nil, ErrNoConfig
	}

	data, err := afero.ReadFile(s.fs, s.Path())
	if err != nil {
		return nil, errors.Join(ErrRead, err)
	}

	return data, nil
}

// Backup copies the alias file to BackupPath. It returns the empty string when there is nothing to back up.
func (s *Store) Backup() (string, error) {
	if !s.Exists() {
		return "", nil
	}

	data, err := s.Raw()
	if err != nil {
		return "", err
	}

	if err := afero.WriteFile(s.fs, s.BackupPath(), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to create backup: %w", err)
	}

	return s.BackupPath(), nil
}

// Replace validates content as an alias file, backs up the current file and writes content verbatim.
// It returns the backup path, empty when there was no previous file.
func (s *Store) Replace(content []byte) (string, error) {
	cfg, err := Decode(content)
	if err != nil {
		return "", err
	}

	backup, err := s.Backup()
	if err != nil {
		return "", err
	}

	if err := afero.WriteFile(s.fs, s.Path(), content, 0o644); err != nil {
		return backup, errors.Join(ErrWrite, err)
	}

	s.Config = cfg

	return backup, nil
}

// Export writes the alias file into dir, creating dir when needed, and returns the written path.
// JSON exports copy the file byte for byte.
func (s *Store) Export(dir string, f Format) (string, error) {
	info, err := s.fs.Stat(dir)

	switch {
	case err == nil && !info.IsDir():
		return "", fmt.Errorf("%w: '%s'", ErrNotDirectory, dir)
	case err != nil && !os.IsNotExist(err):
		return "", err
	case err != nil:
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create target directory '%s': %w", dir, err)
		}
	}

	data, err := s.Raw()
	if err != nil {
		return "", err
	}

	if f == FormatYAML {
		if data, err = EncodeAs(s.Config, FormatYAML); err != nil {
			return "", err
		}
	}

	target := filepath.Join(dir, "config"+f.Extension())
	if err := afero.WriteFile(s.fs, target, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to copy config file: %w", err)
	}

	return target, nil
}
