// SPDX-FileCopyrightText: 2026 Daniel Meza
//
// SPDX-License-Identifier: MIT

// Package sys provides file path resolution and validation helpers.
package sys
