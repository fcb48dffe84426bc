// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package progress carries the notifications emitted while an alias runs:
// steps starting, being skipped and finishing, plus chain level summaries.
//
// Executors emit events through a Reporter. WriterReporter renders them as the
// line oriented stream users see on stdout, LogReporter mirrors them to the
// structured log and Recorder keeps them for inspection in tests.
package progress
