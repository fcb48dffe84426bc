// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color wraps text in ANSI escape codes.
//
// Colorize honours the process wide decision made at start up from NO_COLOR, FORCE_COLOR
// and whether stdout is a terminal (golang.org/x/term). Apply always colours and is for
// callers, such as the log handler, that decide for themselves.
package color
