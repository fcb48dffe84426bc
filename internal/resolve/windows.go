// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package resolve

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const (
	// DefaultPathExt is used when PATHEXT is unset or empty.
	DefaultPathExt = ".COM;.EXE;.BAT;.CMD"

	envPath          = "PATH"
	envPathExt       = "PATHEXT"
	listSeparator    = ";"
	directorySepChrs = `\/`
)

var _ Strategy = (*Windows)(nil)

// Windows reproduces cmd.exe executable lookup: PATH directories in order,
// trying every PATHEXT extension in a directory before moving to the next one.
type Windows struct {
	Fs     afero.Fs
	Getenv func(string) string
}

// Resolve implements Strategy.
func (w *Windows) Resolve(program string) string {
	if program == "" {
		return program
	}

	exts := w.extensions()
	hasDir := strings.ContainsAny(program, directorySepChrs)

	if hasExtension(program, exts) {
		return program
	}

	if hasDir && w.isFile(program) {
		return program
	}

	if hasDir {
		if found, ok := w.probe(program, exts); ok {
			return found
		}

		return program
	}

	for dir := range strings.SplitSeq(w.Getenv(envPath), listSeparator) {
		dir = strings.Trim(strings.TrimSpace(dir), `"`)
		if dir == "" {
			continue
		}

		if found, ok := w.probe(filepath.Join(dir, program), exts); ok {
			return found
		}
	}

	return program
}

// extensions returns the ordered PATHEXT entries, falling back to DefaultPathExt.
func (w *Windows) extensions() []string {
	raw := strings.TrimSpace(w.Getenv(envPathExt))
	if raw == "" {
		raw = DefaultPathExt
	}

	var exts []string

	for ext := range strings.SplitSeq(raw, listSeparator) {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}

		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		exts = append(exts, ext)
	}

	return exts
}

// probe tries base+ext for each extension in order.
// Windows filesystems are case insensitive; the lower case spelling is probed as well
// so the result matches the file on disk when the filesystem is not.
func (w *Windows) probe(base string, exts []string) (string, bool) {
	for _, ext := range exts {
		candidates := []string{base + ext}
		if lower := strings.ToLower(ext); lower != ext {
			candidates = append(candidates, base+lower)
		}

		for _, c := range candidates {
			if w.isFile(c) {
				return c, true
			}
		}
	}

	return "", false
}

func (w *Windows) isFile(path string) bool {
	info, err := w.Fs.Stat(path)
	if err != nil {
		return false
	}

	return !info.IsDir()
}

func hasExtension(program string, exts []string) bool {
	upper := strings.ToUpper(program)
	for _, ext := range exts {
		if strings.HasSuffix(upper, strings.ToUpper(ext)) {
			return true
		}
	}

	return false
}
