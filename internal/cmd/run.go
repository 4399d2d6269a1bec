// SPDX-FileCopyrightText: 2026 Daniel Meza
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/danielmeza/kicad-ultra/internal/exitcode"
	"github.com/danielmeza/kicad-ultra/internal/launcher"
)

const localConfigFile = ".kicad-ultra-args"

// IO provides input and output streams for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func parseArgs(args []string, cfg IO) (*flags, error) {
	merged, err := MergedArgs(args, os.DirFS("."), localConfigFile)
	if err != nil {
		return nil, err
	}

	flags := newFlags(cfg.Stderr)

	err = flags.ParseArgs(merged)
	if err != nil {
		return nil, fmt.Errorf("parse args: %w", err)
	}

	return flags, nil
}

func handleParseArgsError(err error) int {
	// [ErrHelp] is returned when help or version output is requested. So
	// exit without error in this case.
	if errors.Is(err, ErrHelp) {
		return 0
	}

	// The flag package already printed the error, so just exit.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return -1
}

func handleRunError(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}

	// The only error condition of the launcher itself: report the
	// resolved path and exit with status 1.
	var missingErr *launcher.MissingExecutableError
	if errors.As(err, &missingErr) {
		printErr(stderr, err)
		return 1
	}

	exitCode := -1

	var cmdErr *launcher.CommandError
	if errors.As(err, &cmdErr) && cmdErr.ExitCode != 0 {
		exitCode = cmdErr.ExitCode
	}

	// Do not print the error in case the importer ran and terminated
	// with a non-zero exit code of its own. The code is relayed as is.
	if !errors.Is(err, exitcode.Error(0)) {
		printErr(stderr, err)
	}

	return exitCode
}

func printErr(w io.Writer, err error) {
	fmt.Fprintf(w, "Error [%s]: %v\n", name, err)
}

// Run is the main entry point for the launcher command.
//
// The returned value is supposed to be used as the process's exit code.
// It equals the importer's own exit code once the importer was started.
func Run(ctx context.Context, args []string, cfg IO) int {
	flags, err := parseArgs(args[1:], cfg)
	if err != nil {
		return handleParseArgsError(err)
	}

	setupLogging(cfg.Stderr, flags.debug)

	err = launcher.Run(ctx, &flags.spec, cfg.Stdin, cfg.Stdout, cfg.Stderr)

	return handleRunError(err, cfg.Stderr)
}
