// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package store persists aliases in ~/.alias-mgr/config.json.
//
// The file layout is shared with existing installations and with configs pushed to GitHub,
// so the JSON shape is fixed. Files written before command chains existed carry a plain
// "command" string per alias and are migrated on load.
//
// All file access goes through FsFactory so tests can run against an in-memory filesystem.
package store
