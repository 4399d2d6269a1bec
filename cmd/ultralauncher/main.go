// SPDX-FileCopyrightText: 2026 Daniel Meza
//
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"os"

	"github.com/danielmeza/kicad-ultra/internal/cmd"
)

// No signal handling is installed on purpose. The importer inherits the
// terminal, so interrupts reach it through default OS propagation.
func main() {
	cfg := cmd.IO{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}

	rc := cmd.Run(context.Background(), os.Args, cfg)

	os.Exit(rc)
}
