// SPDX-FileCopyrightText: 2026 Daniel Meza
//
// SPDX-License-Identifier: MIT

// Package launcher locates the Ultralibrarian importer executable bundled
// with the KiCad plugin and runs it as a child process.
//
// The importer is expected at the fixed subpath bin/UltralibrarianImporter.exe
// below the plugin install directory, which defaults to the directory
// containing the running launcher binary. The child process inherits the
// launcher's environment and standard streams. Its exit code is carried
// back to the caller via [exitcode.Error] so it can be relayed verbatim.
package launcher
