// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the footy-tipping command-line client.
//
// An [App] dispatches one command per process run (register, login, users,
// update and so on) to the client user service, prompts for missing input
// on the terminal and renders results to its output writer.
package client
