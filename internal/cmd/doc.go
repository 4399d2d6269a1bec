// SPDX-FileCopyrightText: 2026 Daniel Meza
//
// SPDX-License-Identifier: MIT

// Package cmd provides the CLI entry point for the launcher. It handles
// flag parsing, error handling, and output handling.
package cmd
