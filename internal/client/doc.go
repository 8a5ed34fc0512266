// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the pad command-line application.
//
// It wires configuration, logging, the local stores, the remote client and
// the services into an [App], and exposes the session operations as cobra
// commands. Each command runs in its own process, so commands that read or
// write items unlock the pad first.
package client
