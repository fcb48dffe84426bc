// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package params expands positional and aggregate argument tokens in command templates.
//
// Recognised tokens, longest match first:
//
//	$N      the N-th argument (1-indexed, N may have several digits), empty if out of range
//	$@ $*   all arguments joined by a single space
//	$$      a literal $
//
// Any other $ is copied through unchanged.
package params

import (
	"strconv"
	"strings"
)

const sigil = '$'

// Substitute expands the argument tokens in template using args.
// It never fails: out of range positions resolve to the empty string.
func Substitute(template string, args []string) string {
	if strings.IndexByte(template, sigil) < 0 {
		return template
	}

	sb := strings.Builder{}
	sb.Grow(len(template))

	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != sigil || i+1 >= len(template) {
			sb.WriteByte(c)
			continue
		}

		next := template[i+1]

		switch {
		case next == sigil:
			sb.WriteByte(sigil)
			i++
		case next == '@' || next == '*':
			sb.WriteString(strings.Join(args, " "))
			i++
		case isDigit(next):
			end := i + 1
			for end < len(template) && isDigit(template[end]) {
				end++
			}

			sb.WriteString(positional(template[i+1:end], args))
			i = end - 1
		default:
			sb.WriteByte(c)
		}
	}

	return sb.String()
}

// HasVariables reports whether template contains at least one $N, $@ or $* token.
// An escaped $$ is not a variable and does not start one.
func HasVariables(template string) bool {
	for i := 0; i < len(template)-1; i++ {
		if template[i] != sigil {
			continue
		}

		next := template[i+1]

		switch {
		case next == sigil:
			i++
		case next == '@' || next == '*' || isDigit(next):
			return true
		}
	}

	return false
}

func positional(digits string, args []string) string {
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 || n > len(args) {
		// Overflowing digit runs can never index an argument.
		return ""
	}

	return args[n-1]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
