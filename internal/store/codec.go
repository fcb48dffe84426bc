// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/alias/internal/chain"
)

// Format is a serialisation of the alias file.
type Format string

const (
	// FormatJSON is the native format.
	FormatJSON Format = "json"
	// FormatYAML is offered for export and import only.
	FormatYAML Format = "yaml"
)

var (
	// ErrDecode is returned when an alias file cannot be decoded.
	ErrDecode = errors.New("cannot decode alias file")
	// ErrMissingAliases is returned when the top level "aliases" object is absent.
	ErrMissingAliases = errors.New(`missing "aliases" object`)
	// ErrMissingCommand is returned when an entry has neither "command_type" nor a legacy "command".
	ErrMissingCommand = errors.New(`entry has no "command_type"`)
	// ErrUnknownFormat is returned for a format other than json or yaml.
	ErrUnknownFormat = errors.New("unknown format")
)

// ParseFormat converts a format name, case insensitively.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatJSON, "":
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Extension returns the file extension used for the format.
func (f Format) Extension() string {
	return "." + string(f)
}

// rawEntry accepts both the current and the legacy entry shape.
type rawEntry struct {
	CommandType json.RawMessage `json:"command_type"`
	Command     *string         `json:"command"`
	Description *string         `json:"description"`
	Created     string          `json:"created"`
}

type rawConfig struct {
	Aliases map[string]rawEntry `json:"aliases"`
}

// Decode parses an alias file. Legacy entries with a "command" string become simple commands.
// Problems with individual entries are collected and reported together.
func Decode(data []byte) (*Config, error) {
	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrDecode, err)
	}

	if raw.Aliases == nil {
		return nil, errors.Join(ErrDecode, ErrMissingAliases)
	}

	cfg := NewConfig()

	var result error

	for name, re := range raw.Aliases {
		e := &Entry{
			Description: re.Description,
			Created:     re.Created,
		}

		switch {
		case len(re.CommandType) > 0 && string(re.CommandType) != "null":
			if err := json.Unmarshal(re.CommandType, &e.CommandType); err != nil {
				result = multierror.Append(result, fmt.Errorf("alias '%s': %w", name, err))
				continue
			}
		case re.Command != nil:
			e.CommandType = chain.NewSimple(*re.Command)
		default:
			result = multierror.Append(result, fmt.Errorf("alias '%s': %w", name, ErrMissingCommand))
			continue
		}

		cfg.Aliases[name] = e
	}

	if result != nil {
		return nil, errors.Join(ErrDecode, result)
	}

	return cfg, nil
}

// Encode renders the config as indented JSON.
func Encode(cfg *Config) ([]byte, error) {
	return json.MarshalIndent(cfg, "", "  ")
}

// EncodeAs renders the config in the given format.
func EncodeAs(cfg *Config, f Format) ([]byte, error) {
	data, err := Encode(cfg)
	if err != nil {
		return nil, err
	}

	switch f {
	case FormatJSON:
		return data, nil
	case FormatYAML:
		return yaml.JSONToYAML(data)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// DecodeAs parses data in the given format.
func DecodeAs(data []byte, f Format) (*Config, error) {
	switch f {
	case FormatJSON:
		return Decode(data)
	case FormatYAML:
		j, err := yaml.YAMLToJSON(data)
		if err != nil {
			return nil, errors.Join(ErrDecode, err)
		}

		return Decode(j)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// DecodeFile parses data read from name. The extension picks the format;
// without a known extension JSON is tried before YAML.
func DecodeFile(name string, data []byte) (*Config, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return Decode(data)
	case ".yaml", ".yml":
		return DecodeAs(data, FormatYAML)
	}

	cfg, jsonErr := Decode(data)
	if jsonErr == nil {
		return cfg, nil
	}

	cfg, yamlErr := DecodeAs(data, FormatYAML)
	if yamlErr == nil {
		return cfg, nil
	}

	return nil, errors.Join(jsonErr, yamlErr)
}
