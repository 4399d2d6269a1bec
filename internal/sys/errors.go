// SPDX-FileCopyrightText: 2026 Daniel Meza
//
// SPDX-License-Identifier: MIT

package sys

import "errors"

var (
	// ErrEmptyPath is returned if a given file path is empty.
	ErrEmptyPath = errors.New("file path must not be empty")

	// ErrNotRegularFile is returned if a path does not refer to a regular
	// file.
	ErrNotRegularFile = errors.New("not a regular file")

	// ErrNotExecutable is returned if a file may not be executed by the
	// current process.
	ErrNotExecutable = errors.New("file is not executable")
)
