// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package confirm asks yes/no questions on the terminal.
package confirm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matt-FFFFFF/alias/internal/color"
	"github.com/peterh/liner"
	"golang.org/x/term"
)

// OverwritePrompt is asked before an existing alias is replaced.
const OverwritePrompt = "Overwrite? (y/N): "

// ErrRead is returned when the answer cannot be read.
var ErrRead = errors.New("failed to read input")

// Prompter asks a question and reports whether the answer was yes.
type Prompter interface {
	Confirm(prompt string) (bool, error)
}

// New returns a line editing prompter when in is a terminal and a plain reader otherwise.
func New(in *os.File, out io.Writer) Prompter {
	if term.IsTerminal(int(in.Fd())) {
		return &Terminal{}
	}

	return NewReader(in, out)
}

// IsYes reports whether answer means yes. Only y and yes are accepted, in any case.
func IsYes(answer string) bool {
	a := strings.ToLower(strings.TrimSpace(answer))
	return a == "y" || a == "yes"
}

// Reader reads the answer as a line from any reader.
type Reader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewReader creates a Reader.
func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Confirm implements Prompter. End of input counts as no.
func (r *Reader) Confirm(prompt string) (bool, error) {
	fmt.Fprint(r.out, color.Colorize(strings.TrimRight(prompt, " "), color.FgYellow)+" ") //nolint:errcheck

	line, err := r.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, errors.Join(ErrRead, err)
	}

	return IsYes(line), nil
}

// Terminal prompts with line editing. Ctrl+C counts as no.
type Terminal struct{}

// Confirm implements Prompter.
func (t *Terminal) Confirm(prompt string) (bool, error) {
	line := liner.NewLiner()
	defer func() {
		_ = line.Close()
	}()

	line.SetCtrlCAborts(true)

	input, err := line.Prompt(prompt)
	switch {
	case errors.Is(err, liner.ErrPromptAborted), errors.Is(err, io.EOF):
		return false, nil
	case err != nil:
		return false, errors.Join(ErrRead, err)
	}

	return IsYes(input), nil
}
