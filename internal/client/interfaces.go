// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command named by args[0] and returns when it is done.
	Run(ctx context.Context, args []string) error
}

// Prompter reads interactive input.
type Prompter interface {
	// Prompt shows label and returns the line typed, without the newline.
	Prompt(label string) (string, error)

	// PromptPassword is like Prompt but does not echo the input when it
	// reads from a terminal.
	PromptPassword(label string) (string, error)
}

// Clipboard is the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}
