// SPDX-FileCopyrightText: 2026 Daniel Meza
//
// SPDX-License-Identifier: MIT

//go:build !unix

package sys

// CanExecute checks if the file may be executed by the current process.
//
// Windows decides executability by file extension on process creation, so
// there is nothing to probe in advance.
func CanExecute(string) error {
	return nil
}
