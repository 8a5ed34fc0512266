// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command line args and blocks until exit.
	Run(ctx context.Context, args []string) error
}

// PasswordReader obtains the master password from the user.
type PasswordReader interface {
	ReadPassword(prompt string) (string, error)
}

// Clipboard is the system clipboard.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}
