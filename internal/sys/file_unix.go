// SPDX-FileCopyrightText: 2026 Daniel Meza
//
// SPDX-License-Identifier: MIT

//go:build unix

package sys

import "golang.org/x/sys/unix"

// CanExecute checks if the file may be executed by the current process.
//
// It returns [ErrNotExecutable] if execute permission is missing.
func CanExecute(name string) error {
	err := unix.Access(name, unix.X_OK)
	if err != nil {
		return ErrNotExecutable
	}

	return nil
}
