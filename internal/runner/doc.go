// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package runner launches a single program with a discrete argument list and reports how it ended.
//
// The Runner interface is the seam between the chain executors and the operating system.
// OSRunner spawns real processes with inherited standard streams,
// Recorder is a deterministic double for tests.
package runner
