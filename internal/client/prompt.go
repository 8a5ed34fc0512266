// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"golang.org/x/term"
)

// PasswordEnv lets scripts supply the master password without a terminal.
const PasswordEnv = "PAD_PASSWORD"

var errNoPassword = errors.New("no password: stdin is not a terminal and " + PasswordEnv + " is not set")

// termPasswordReader reads the password from PAD_PASSWORD or, failing that,
// from the terminal without echo.
type termPasswordReader struct {
	in  *os.File
	out io.Writer
}

func newTermPasswordReader() *termPasswordReader {
	return &termPasswordReader{in: os.Stdin, out: os.Stderr}
}

func (r *termPasswordReader) ReadPassword(prompt string) (string, error) {
	if v, ok := os.LookupEnv(PasswordEnv); ok {
		return v, nil
	}

	fd := int(r.in.Fd())
	if !term.IsTerminal(fd) {
		return "", errNoPassword
	}

	fmt.Fprint(r.out, prompt)
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(r.out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(password), nil
}

// systemClipboard adapts atotto/clipboard to [Clipboard].
type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// readText returns args joined by spaces, or all of in when args is empty.
func readText(args []string, in io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	var b strings.Builder
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return b.String(), nil
}
