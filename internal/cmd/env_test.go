// SPDX-FileCopyrightText: 2026 Daniel Meza
//
// SPDX-License-Identifier: MIT

package cmd_test

import (
	"testing"
	"testing/fstest"

	"github.com/danielmeza/kicad-ultra/internal/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvArgs(t *testing.T) {
	tests := []struct {
		name   string
		env    string
		output []string
	}{
		{
			name:   "empty",
			env:    "",
			output: []string{},
		},
		{
			name:   "single arg",
			env:    "-debug",
			output: []string{"-debug"},
		},
		{
			name:   "multiple args",
			env:    "-debug -bin /opt/importer",
			output: []string{"-debug", "-bin", "/opt/importer"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(cmd.ArgsEnvVar, tt.env)
			assert.Equal(t, tt.output, cmd.EnvArgs())
		})
	}
}

func TestLocalConfigArgs(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		env      map[string]string
		expected []string
	}{
		{
			name:     "empty",
			content:  "",
			expected: []string{},
		},
		{
			name:     "single line",
			content:  "-debug",
			expected: []string{"-debug"},
		},
		{
			name:     "multiple lines",
			content:  "-bin\n/opt/importer\n-debug\n",
			expected: []string{"-bin", "/opt/importer", "-debug"},
		},
		{
			name:     "blank lines skipped",
			content:  "\n-debug\n\n",
			expected: []string{"-debug"},
		},
		{
			name:     "with env vars",
			content:  "-bin=${BIN_DIR}/importer\n-plugin-dir=$PLUGIN\n",
			env:      map[string]string{"BIN_DIR": "/opt", "PLUGIN": "/p"},
			expected: []string{"-bin=/opt/importer", "-plugin-dir=/p"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testFS := fstest.MapFS{
				"conf": &fstest.MapFile{
					Data: []byte(tt.content),
				},
			}

			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			content, err := cmd.LocalConfigArgs(testFS, "conf")
			require.NoError(t, err)

			assert.Equal(t, tt.expected, content)
		})
	}
}

func TestLocalConfigArgsMissingFile(t *testing.T) {
	args, err := cmd.LocalConfigArgs(fstest.MapFS{}, "conf")
	require.NoError(t, err)

	assert.Nil(t, args)
}

func TestMergedArgs(t *testing.T) {
	t.Setenv(cmd.ArgsEnvVar, "-from-env")

	testFS := fstest.MapFS{
		"conf": &fstest.MapFile{
			Data: []byte("-from-file\n"),
		},
	}

	merged, err := cmd.MergedArgs([]string{"-from-cli"}, testFS, "conf")
	require.NoError(t, err)

	// The command line comes last so it takes precedence.
	assert.Equal(t, []string{"-from-file", "-from-env", "-from-cli"}, merged)
}
