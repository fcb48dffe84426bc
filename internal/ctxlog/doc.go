// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a structured logger in a context.Context.
//
// The level and format are read from environment variables named after the executable:
// for the `a` binary these are A_LOG_LEVEL (DEBUG, INFO, WARN, ERROR, default WARN)
// and A_LOG_FORMAT (pretty or json, default pretty).
//
// Logs always go to stderr. Stdout belongs to the aliased programs and the progress stream.
package ctxlog
