// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package resolve turns a bare program name into a runnable path the way an interactive shell would,
// without invoking a shell.
//
// Only Windows needs this: CreateProcess does not consult PATHEXT, so `npm` would never find `npm.cmd`.
// Every other platform uses the Identity strategy and the token passes through unmodified.
package resolve

import (
	"os"
	"runtime"

	"github.com/spf13/afero"
)

const (
	// GOOSWindows is the string constant for Windows OS from the runtime package.
	GOOSWindows = "windows"
)

// FsFactory returns the filesystem used to probe for candidate executables.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Strategy resolves a program token to the path that should be launched.
// Implementations never fail: an unresolvable token is returned unchanged
// and the launch fails naturally.
type Strategy interface {
	Resolve(program string) string
}

// Identity is the strategy for platforms whose process launch already searches PATH.
type Identity struct{}

// Resolve implements Strategy by returning the program unchanged.
func (Identity) Resolve(program string) string {
	return program
}

// ForPlatform selects the strategy for the given GOOS value.
// The getenv accessor is used to read PATH and PATHEXT; nil means os.Getenv.
func ForPlatform(goos string, getenv func(string) string) Strategy {
	if goos != GOOSWindows {
		return Identity{}
	}

	if getenv == nil {
		getenv = os.Getenv
	}

	return &Windows{
		Fs:     FsFactory(),
		Getenv: getenv,
	}
}

// ForCurrentPlatform selects the strategy for the platform the binary was built for.
func ForCurrentPlatform(getenv func(string) string) Strategy {
	return ForPlatform(runtime.GOOS, getenv)
}
