// SPDX-FileCopyrightText: 2026 Daniel Meza
//
// SPDX-License-Identifier: MIT

package launcher

import (
	"fmt"
	"path/filepath"

	"github.com/danielmeza/kicad-ultra/internal/sys"
)

const (
	// BinDirName is the directory below the plugin install directory that
	// carries the bundled executables.
	BinDirName = "bin"

	// ExecutableName is the file name of the bundled importer.
	ExecutableName = "UltralibrarianImporter.exe"
)

// Spec describes a single launch of the importer.
type Spec struct {
	// PluginDir is the plugin install directory the importer path is
	// resolved against. If empty, the directory containing the running
	// launcher binary is used.
	PluginDir string

	// Executable overrides the resolved importer path completely.
	Executable string

	// Args are passed to the importer process. The host application
	// passes none.
	Args []string

	// Env is the environment for the importer process. If nil, the
	// launcher's own environment is passed on unmodified.
	Env []string
}

// ExecutablePath resolves the path of the importer executable for the
// spec.
//
// Unless overridden, it is the fixed subpath bin/UltralibrarianImporter.exe
// below the plugin install directory. The result does not depend on the
// process's working directory.
func (s *Spec) ExecutablePath() (string, error) {
	if s.Executable != "" {
		return sys.AbsolutePath(s.Executable)
	}

	dir := s.PluginDir
	if dir == "" {
		var err error

		dir, err = sys.ExecutableDir()
		if err != nil {
			return "", fmt.Errorf("locate plugin dir: %w", err)
		}
	}

	return filepath.Join(dir, BinDirName, ExecutableName), nil
}
