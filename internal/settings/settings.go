// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package settings reads the optional settings.toml file that sits next to the alias file.
// Every field has a default, so a missing file is not an error.
package settings

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
)

// FileName is the settings file name inside the config directory.
const FileName = "settings.toml"

// Defaults for the sync section.
const (
	DefaultRepo      = "0x4d44/a"
	DefaultBranch    = "main"
	DefaultPath      = "config.json"
	DefaultAPIURL    = "https://api.github.com"
	DefaultUserAgent = "a-alias-manager"
	DefaultTimeout   = 30 * time.Second
)

var (
	// ErrParse is returned when settings.toml is not valid TOML.
	ErrParse = errors.New("failed to parse settings")
	// ErrInvalidRepo is returned when the sync repository is not in owner/name form.
	ErrInvalidRepo = errors.New("sync repo must be in the form owner/name")
)

// FsFactory is a function that returns an afero filesystem.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Duration wraps time.Duration so it can be written as "30s" in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))

	return err
}

// MarshalText formats the duration as a string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Sync configures where push and pull keep the alias file.
type Sync struct {
	Repo      string   `toml:"repo"`
	Branch    string   `toml:"branch"`
	Path      string   `toml:"path"`
	APIURL    string   `toml:"api_url"`
	UserAgent string   `toml:"user_agent"`
	Timeout   Duration `toml:"timeout"`
	Message   string   `toml:"message"`
}

// Settings is the content of settings.toml.
type Settings struct {
	Sync Sync `toml:"sync"`
}

// Default returns the settings used when no file exists.
func Default() *Settings {
	s := &Settings{}
	s.applyDefaults()

	return s
}

// Path returns the settings file path inside dir.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Load reads settings.toml from dir and fills in defaults for anything left out.
func Load(dir string) (*Settings, error) {
	fs := FsFactory()
	path := Path(dir)

	ok, err := afero.Exists(fs, path)
	if err != nil {
		return nil, err
	}

	if !ok {
		return Default(), nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	s := &Settings{}
	if _, err := toml.Decode(string(data), s); err != nil {
		return nil, errors.Join(ErrParse, err)
	}

	s.applyDefaults()

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate checks the loaded values.
func (s *Settings) Validate() error {
	owner, name, ok := strings.Cut(s.Sync.Repo, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidRepo, s.Sync.Repo)
	}

	return nil
}

// Encode renders the settings as TOML.
func (s *Settings) Encode() (string, error) {
	sb := strings.Builder{}
	if err := toml.NewEncoder(&sb).Encode(s); err != nil {
		return "", err
	}

	return sb.String(), nil
}

func (s *Settings) applyDefaults() {
	if s.Sync.Repo == "" {
		s.Sync.Repo = DefaultRepo
	}

	if s.Sync.Branch == "" {
		s.Sync.Branch = DefaultBranch
	}

	if s.Sync.Path == "" {
		s.Sync.Path = DefaultPath
	}

	if s.Sync.APIURL == "" {
		s.Sync.APIURL = DefaultAPIURL
	}

	s.Sync.APIURL = strings.TrimRight(s.Sync.APIURL, "/")

	if s.Sync.UserAgent == "" {
		s.Sync.UserAgent = DefaultUserAgent
	}

	if s.Sync.Timeout.Duration <= 0 {
		s.Sync.Timeout.Duration = DefaultTimeout
	}
}
