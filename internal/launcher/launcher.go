// SPDX-FileCopyrightText: 2026 Daniel Meza
//
// SPDX-License-Identifier: MIT

package launcher

import (
	"context"
	"io"
	"log/slog"
)

// Run runs the importer described by the given [Spec].
//
// The importer process inherits the given standard streams and the
// environment from the spec. Run blocks until the process terminated. It
// returns no error only if the process exited with code 0.
func Run(
	ctx context.Context,
	spec *Spec,
	stdin io.Reader,
	stdout, stderr io.Writer,
) error {
	cmd, err := NewCommand(spec)
	if err != nil {
		return err
	}

	slog.Debug("Resolved importer executable",
		slog.String("path", cmd.Executable))

	return cmd.Run(ctx, stdin, stdout, stderr)
}
