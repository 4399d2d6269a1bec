// SPDX-FileCopyrightText: 2026 Daniel Meza
//
// SPDX-License-Identifier: MIT

package cmd_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/danielmeza/kicad-ultra/internal/cmd"
	"github.com/danielmeza/kicad-ultra/internal/launcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStub(tb testing.TB, dir, script string) string {
	tb.Helper()

	if runtime.GOOS == "windows" {
		tb.Skip("stub executables require a POSIX shell")
	}

	binDir := filepath.Join(dir, launcher.BinDirName)
	require.NoError(tb, os.MkdirAll(binDir, 0o755))

	path := filepath.Join(binDir, launcher.ExecutableName)
	content := "#!/bin/sh\n" + script + "\n"
	require.NoError(tb, os.WriteFile(path, []byte(content), 0o755))

	return path
}

func TestRun(t *testing.T) {
	t.Setenv(cmd.ArgsEnvVar, "")

	dir := t.TempDir()
	writeStub(t, dir, "echo started\nexit 42")

	var stdout, stderr bytes.Buffer

	cfg := cmd.IO{
		Stdin:  strings.NewReader(""),
		Stdout: &stdout,
		Stderr: &stderr,
	}

	args := []string{"ultralauncher", "-plugin-dir", dir}

	rc := cmd.Run(t.Context(), args, cfg)

	assert.Equal(t, 42, rc, "importer exit code should be relayed")
	assert.Equal(t, "started\n", stdout.String())
	assert.Empty(t, stderr.String(),
		"a relayed exit code should not be reported as error")
}

func TestRunMissingExecutable(t *testing.T) {
	t.Setenv(cmd.ArgsEnvVar, "")

	dir := t.TempDir()

	var stdout, stderr bytes.Buffer

	cfg := cmd.IO{
		Stdin:  strings.NewReader(""),
		Stdout: &stdout,
		Stderr: &stderr,
	}

	args := []string{"ultralauncher", "-plugin-dir", dir}

	rc := cmd.Run(t.Context(), args, cfg)

	expectedPath := filepath.Join(
		dir, launcher.BinDirName, launcher.ExecutableName,
	)

	assert.Equal(t, 1, rc)
	assert.Contains(t, stderr.String(), expectedPath,
		"diagnostic should name the resolved path")
}

func TestRunVersion(t *testing.T) {
	t.Setenv(cmd.ArgsEnvVar, "")

	var stderr bytes.Buffer

	cfg := cmd.IO{
		Stdin:  strings.NewReader(""),
		Stdout: io.Discard,
		Stderr: &stderr,
	}

	args := []string{"ultralauncher", "-version"}

	rc := cmd.Run(t.Context(), args, cfg)

	assert.Equal(t, 0, rc)
	assert.Contains(t, stderr.String(), "Version:")
}
