// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package fetch retrieves a single file from any source understood by go-getter:
// local paths, http(s), git, s3 and so on. See https://github.com/hashicorp/go-getter.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter/v2"
	"github.com/matt-FFFFFF/alias/internal/ctxlog"
)

// ErrFetch is returned when the source cannot be retrieved.
var ErrFetch = errors.New("failed to fetch file")

const (
	getterPathSeparator = "//"
	getterRefSeparator  = "?"
	minimumGetterParts  = 3 // scheme, host and path
)

// File is a fetched file.
type File struct {
	// Name is the base name of the file at the source, used to guess its format.
	Name string
	Data []byte
}

// Get downloads src into a temporary directory, reads the file and removes the directory.
// Remote sources are fetched as a directory, the file is then picked out of it.
func Get(ctx context.Context, src string) (*File, error) {
	if src == "" {
		return nil, fmt.Errorf("%w: empty source", ErrFetch)
	}

	tmpDir, err := os.MkdirTemp("", "a-getter-*")
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}

	client := getter.Client{
		DisableSymlinks: true,
	}

	req := &getter.Request{
		Src:     src,
		Dst:     filepath.Join(tmpDir, "g"),
		Pwd:     wd,
		GetMode: getter.ModeDir,
	}

	var fileName string

	// https://github.com/hashicorp/go-getter/issues/98
	if ok, err := getter.Detect(req, &getter.FileGetter{}); !ok || err != nil {
		if err != nil {
			return nil, errors.Join(ErrFetch, err)
		}

		var dirURL string

		dirURL, fileName = SplitFileName(src)
		if dirURL == "" || fileName == "" {
			return nil, fmt.Errorf("%w: invalid source format: %s", ErrFetch, src)
		}

		req.Src = dirURL
	}

	if fileName == "" {
		req.Src = filepath.Dir(src)
		fileName = filepath.Base(src)
	}

	ctxlog.Debug(ctx, "fetching", "src", req.Src, "file", fileName)

	res, err := client.Get(ctx, req)
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}

	data, err := os.ReadFile(filepath.Join(res.Dst, fileName))
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}

	return &File{Name: fileName, Data: data}, nil
}

// SplitFileName splits a getter URL into the directory URL and the file name.
// A ref query is carried over to the directory URL. Both results are empty when
// the URL has no subdirectory part naming a file.
func SplitFileName(src string) (string, string) {
	var ref string

	parts := strings.Split(src, getterPathSeparator)
	if len(parts) < minimumGetterParts {
		return "", ""
	}

	last := parts[len(parts)-1]
	if base, query, ok := strings.Cut(last, getterRefSeparator); ok {
		ref = query
		last = base
	}

	if filepath.Clean(last) == filepath.Dir(last) {
		return "", ""
	}

	fileName := filepath.Base(last)
	parts[len(parts)-1] = filepath.Dir(last)

	if parts[len(parts)-1] == "." {
		parts = parts[:len(parts)-1]
	}

	dirURL := strings.Join(parts, getterPathSeparator)

	if ref != "" {
		dirURL += getterRefSeparator + ref
	}

	return dirURL, fileName
}
