// SPDX-FileCopyrightText: 2026 Daniel Meza
//
// SPDX-License-Identifier: MIT

package launcher

// MissingExecutableError is returned if the importer executable is not
// present at the resolved path.
type MissingExecutableError struct {
	Path string
}

// Error implements the [error] interface.
func (e *MissingExecutableError) Error() string {
	return "executable not found at " + e.Path
}

// Is implements the [errors.Is] interface.
func (*MissingExecutableError) Is(other error) bool {
	_, ok := other.(*MissingExecutableError)
	return ok
}

// CommandError wraps any error occurred while running the importer
// process.
type CommandError struct {
	Err      error
	ExitCode int
}

// Error implements the [error] interface.
func (e *CommandError) Error() string {
	return "importer: " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*CommandError) Is(other error) bool {
	_, ok := other.(*CommandError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *CommandError) Unwrap() error {
	return e.Err
}
