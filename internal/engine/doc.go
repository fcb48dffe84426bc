// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package engine executes the command bound to an alias.
//
// A simple command runs once. A chain runs either sequentially, where each step's
// operator is checked against the exit code of the last step that actually ran,
// or in parallel, where every step is launched at once and the results are
// gathered on a single channel.
//
// Execute never returns an error. Everything the caller needs is in the exit code
// it returns and the progress events sent to the Reporter.
package engine
