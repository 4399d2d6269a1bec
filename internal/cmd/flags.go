// SPDX-FileCopyrightText: 2026 Daniel Meza
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"flag"
	"fmt"
	"io"
	"runtime/debug"

	"github.com/danielmeza/kicad-ultra/internal/launcher"
)

const (
	name = "ultralauncher"

	usageMessage = `Usage of 'ultralauncher':
    ultralauncher [flags...] [importer args...]

Launches the Ultralibrarian importer bundled with the KiCad plugin. The
importer is expected at 'bin/UltralibrarianImporter.exe' next to the
launcher binary. The launcher terminates with the importer's exit code.

All launcher flags can also be provided via environment variable
KICAD_ULTRA_ARGS:
	KICAD_ULTRA_ARGS="-debug" ultralauncher

All launcher flags can also be provided via file ./.kicad-ultra-args, with
one argument per line.
`
)

type flags struct {
	spec    launcher.Spec
	flagSet *flag.FlagSet

	version bool
	debug   bool
}

func newFlags(output io.Writer) *flags {
	flags := &flags{}

	flags.initFlagset(output)

	return flags
}

func (f *flags) ParseArgs(args []string) error {
	// Parses arguments up to the first one that is not prefixed with a "-" or
	// is "--".
	err := f.flagSet.Parse(args)
	if err != nil {
		return &ParseArgsError{msg: "flag parse", err: err}
	}

	// With version flag, just print the version and exit. Using [ErrHelp]
	// the main binary is supposed to return with a non error exit code.
	if f.version {
		err := f.printVersionInformation()
		return &ParseArgsError{msg: "version requested", err: err}
	}

	// All positional arguments are passed to the importer process. The
	// host application passes none.
	f.spec.Args = f.flagSet.Args()

	return nil
}

func (f *flags) initFlagset(output io.Writer) {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = f.usage

	flagSet.Var(
		(*FilePath)(&f.spec.Executable),
		"bin",
		"importer executable to run instead of the bundled one",
	)

	flagSet.Var(
		(*FilePath)(&f.spec.PluginDir),
		"plugin-dir",
		"plugin install directory to resolve the bundled importer in "+
			"(default is the directory containing the launcher)",
	)

	flagSet.BoolVar(
		&f.debug,
		"debug",
		f.debug,
		"enable debug output",
	)

	flagSet.BoolVar(
		&f.version,
		"version",
		f.version,
		"show version and exit",
	)

	f.flagSet = flagSet
}

func (f *flags) printVersionInformation() error {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return ErrReadBuildInfo
	}

	fmt.Fprintf(f.flagSet.Output(), "Version: %s\n", buildInfo.Main.Version)

	return ErrHelp
}

func (f *flags) usage() {
	fmt.Fprint(f.flagSet.Output(), usageMessage)
	fmt.Fprintln(f.flagSet.Output(), "\nFlags:")
	f.flagSet.PrintDefaults()
}
