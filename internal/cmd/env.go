// SPDX-FileCopyrightText: 2026 Daniel Meza
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// ArgsEnvVar is the environment variable launcher arguments may be passed
// in, in addition to the command line.
const ArgsEnvVar = "KICAD_ULTRA_ARGS"

// EnvArgs returns launcher arguments from the environment.
func EnvArgs() []string {
	return strings.Fields(os.Getenv(ArgsEnvVar))
}

// LocalConfigArgs returns launcher arguments from a local config file.
//
// The file's format is one argument per line. Environment variables may
// be used and are expanded with [os.ExpandEnv].
func LocalConfigArgs(fsys fs.FS, file string) ([]string, error) {
	conf, err := fs.ReadFile(fsys, file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("read file: %w", err)
	}

	args := []string{}

	expandedConf := os.ExpandEnv(string(conf))
	for line := range strings.SplitSeq(expandedConf, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			args = append(args, line)
		}
	}

	return args, nil
}

// MergedArgs merges launcher arguments from all supported sources.
//
// Config file arguments come first, then environment arguments, then the
// given command line arguments, so the command line takes precedence.
func MergedArgs(args []string, fsys fs.FS, file string) ([]string, error) {
	fileArgs, err := LocalConfigArgs(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("local config args: %w", err)
	}

	merged := make([]string, 0, len(fileArgs)+len(args))
	merged = append(merged, fileArgs...)
	merged = append(merged, EnvArgs()...)
	merged = append(merged, args...)

	return merged, nil
}
