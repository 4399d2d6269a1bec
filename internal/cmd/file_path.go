// SPDX-FileCopyrightText: 2026 Daniel Meza
//
// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/danielmeza/kicad-ultra/internal/sys"
)

// FilePath is a [flag.Value] that resolves to an absolute path when set.
type FilePath string

func (f *FilePath) String() string {
	return string(*f)
}

func (f *FilePath) Set(s string) error {
	path, err := sys.AbsolutePath(s)

	*f = FilePath(path)

	return err
}
