// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ghsync keeps the alias file in a GitHub repository using the contents API.
//
// Push uploads the local file, replacing the remote one when it exists.
// Pull downloads it; the caller validates and stores the content.
// A token is discovered from the environment, the gh CLI or git credential helpers.
package ghsync
