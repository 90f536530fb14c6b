// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter asks yes/no questions on a terminal.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewPrompter returns a Prompter reading answers from in.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{reader: bufio.NewReader(in), out: out}
}

// Confirm prints question and reports whether the answer was "y" or "yes".
// Anything else, including end of input, is a no.
func (p *Prompter) Confirm(question string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N]: ", question)

	response, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
