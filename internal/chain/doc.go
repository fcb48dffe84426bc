// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package chain contains the data model for aliases: operators, steps, chains and command types.
// Values are built fresh for each invocation and carry no execution state.
package chain
