// SPDX-FileCopyrightText: 2026 Daniel Meza
//
// SPDX-License-Identifier: MIT

package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"

	"github.com/danielmeza/kicad-ultra/internal/exitcode"
	"github.com/danielmeza/kicad-ultra/internal/sys"
)

// Command is a single importer invocation that can be run.
type Command struct {
	// Path of the importer executable.
	Executable string

	// Arguments passed to the importer process.
	Args []string

	// Environment for the importer process. Passed on as given, without
	// filtering or additions.
	Env []string
}

// NewCommand creates a new [Command] for the given [Spec].
//
// The importer path is resolved and checked before any process is
// created. It returns [MissingExecutableError] if there is no regular
// file at the resolved path.
func NewCommand(spec *Spec) (*Command, error) {
	path, err := spec.ExecutablePath()
	if err != nil {
		return nil, err
	}

	err = sys.ValidateFilePath(path)
	switch {
	case errors.Is(err, fs.ErrNotExist),
		errors.Is(err, sys.ErrNotRegularFile):
		return nil, &MissingExecutableError{Path: path}
	case err != nil:
		return nil, fmt.Errorf("stat executable: %w", err)
	}

	// The spawn itself is authoritative, so a failed permission probe is
	// only worth a warning.
	if err := sys.CanExecute(path); err != nil {
		slog.Warn("Importer file is not executable",
			slog.String("path", path))
	}

	env := spec.Env
	if env == nil {
		env = os.Environ()
	}

	return &Command{
		Executable: path,
		Args:       spec.Args,
		Env:        env,
	}, nil
}

// Run starts the importer process and blocks until it terminated.
//
// The given streams are attached to the process directly. If the process
// exited with a non-zero code, a [CommandError] wrapping an
// [exitcode.Error] is returned, so callers can relay the code verbatim.
// Any other failure is returned as [CommandError] with exit code -1.
func (c *Command) Run(
	ctx context.Context,
	stdin io.Reader,
	stdout, stderr io.Writer,
) error {
	cmd := exec.CommandContext(ctx, c.Executable, c.Args...)
	cmd.Env = c.Env
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	slog.Debug("Starting importer process",
		slog.String("path", c.Executable))

	err := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr) && exitErr.ExitCode() >= 0:
		code := exitErr.ExitCode()

		return &CommandError{
			Err:      exitcode.Error(code),
			ExitCode: code,
		}
	case err != nil:
		return &CommandError{Err: err, ExitCode: -1}
	}

	slog.Debug("Importer process terminated",
		slog.String("path", c.Executable))

	return nil
}
