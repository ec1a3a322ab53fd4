// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package unjson

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/mdtidy/pkg/types"
)

const twoChapters = `Here is the draft:

{"text": [{"text": ["A", "B"]}, {"text": ["C"]}]}
`

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "draft.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_Stdout(t *testing.T) {
	in := writeInput(t, twoChapters)
	c, diag := newTestConsole()
	var out bytes.Buffer

	err := Run(types.ExtractConfig{InputPath: in}, &out, c)
	require.NoError(t, err)
	assert.Equal(t, "# Chapter 1\n\nA\n\nB\n\n# Chapter 2\n\nC\n", out.String())
	assert.Empty(t, diag.String())

	data, err := os.ReadFile(in)
	require.NoError(t, err)
	assert.Equal(t, twoChapters, string(data), "input must be untouched")
}

func TestRun_Failures(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantDiag []string
	}{
		{
			name:     "no json",
			content:  "# Notes\n\nOnly prose here.\n",
			wantDiag: []string{"Error: No valid JSON found in the input file"},
		},
		{
			name:    "unparsable json",
			content: "{not valid json}",
			wantDiag: []string{
				"Error: Failed to parse JSON content from the file",
				"Error: No valid JSON found in the input file",
			},
		},
		{
			name:     "empty object",
			content:  "{}",
			wantDiag: []string{"Error: No valid JSON found in the input file"},
		},
		{
			name:     "invalid utf-8",
			content:  "\xff\xfe{\"text\": []}",
			wantDiag: []string{"Error: Failed to read file:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := writeInput(t, tt.content)
			outPath := filepath.Join(t.TempDir(), "out.md")
			c, diag := newTestConsole()
			var out bytes.Buffer

			err := Run(types.ExtractConfig{InputPath: in, OutputPath: outPath}, &out, c)
			require.ErrorIs(t, err, ErrExit)
			for _, d := range tt.wantDiag {
				assert.Contains(t, diag.String(), d)
			}
			assert.Empty(t, out.String())
			assert.NoFileExists(t, outPath)
		})
	}
}

func TestRun_MissingInput(t *testing.T) {
	c, diag := newTestConsole()
	err := Run(types.ExtractConfig{InputPath: filepath.Join(t.TempDir(), "nope.md")}, &bytes.Buffer{}, c)
	require.ErrorIs(t, err, ErrExit)
	assert.Contains(t, diag.String(), "Error: Failed to read file:")
}

func TestRun_DirectoryInput(t *testing.T) {
	c, diag := newTestConsole()
	err := Run(types.ExtractConfig{InputPath: t.TempDir()}, &bytes.Buffer{}, c)
	require.ErrorIs(t, err, ErrExit)
	assert.Contains(t, diag.String(), "is a directory")
}

func TestRun_MissingTextKeySucceeds(t *testing.T) {
	in := writeInput(t, `{"foo": 1}`)
	c, diag := newTestConsole()
	var out bytes.Buffer

	err := Run(types.ExtractConfig{InputPath: in}, &out, c)
	require.NoError(t, err)
	assert.Equal(t, "\n", out.String())
	assert.Contains(t, diag.String(), "Warning: No 'text' key found in JSON")
}

func TestRun_OutputFile(t *testing.T) {
	in := writeInput(t, twoChapters)
	outPath := filepath.Join(t.TempDir(), "book.md")
	c, diag := newTestConsole()
	var out bytes.Buffer

	err := Run(types.ExtractConfig{InputPath: in, OutputPath: outPath}, &out, c)
	require.NoError(t, err)
	assert.Empty(t, out.String())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "# Chapter 1\n\nA\n\nB\n\n# Chapter 2\n\nC", string(data))
	assert.Contains(t, diag.String(), "Success: Markdown written to "+outPath+" (2 chapters)")
}

func TestRun_OutputFileWriteFailure(t *testing.T) {
	in := writeInput(t, twoChapters)
	outPath := filepath.Join(t.TempDir(), "missing-dir", "book.md")
	c, diag := newTestConsole()

	err := Run(types.ExtractConfig{InputPath: in, OutputPath: outPath}, &bytes.Buffer{}, c)
	require.ErrorIs(t, err, ErrExit)
	assert.Contains(t, diag.String(), "Error: Failed to write output file:")
}

func TestRun_OverwriteTakesPrecedence(t *testing.T) {
	in := writeInput(t, twoChapters)
	outPath := filepath.Join(t.TempDir(), "ignored.md")
	c, diag := newTestConsole()

	err := Run(types.ExtractConfig{InputPath: in, OutputPath: outPath, Overwrite: true}, &bytes.Buffer{}, c)
	require.NoError(t, err)

	assert.Contains(t, diag.String(), "Warning: Both --output and --overwrite specified; using --overwrite")
	assert.Contains(t, diag.String(), "Success: Markdown written back to "+in)
	assert.NoFileExists(t, outPath)

	data, err := os.ReadFile(in)
	require.NoError(t, err)
	assert.Equal(t, "# Chapter 1\n\nA\n\nB\n\n# Chapter 2\n\nC", string(data))
}

func TestRun_OverwritePreservesMode(t *testing.T) {
	in := writeInput(t, twoChapters)
	require.NoError(t, os.Chmod(in, 0o600))
	c, _ := newTestConsole()

	require.NoError(t, Run(types.ExtractConfig{InputPath: in, Overwrite: true}, &bytes.Buffer{}, c))

	info, err := os.Stat(in)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRun_RerunOnConvertedOutput(t *testing.T) {
	in := writeInput(t, twoChapters)
	c, _ := newTestConsole()
	require.NoError(t, Run(types.ExtractConfig{InputPath: in, Overwrite: true}, &bytes.Buffer{}, c))

	converted, err := os.ReadFile(in)
	require.NoError(t, err)

	c2, diag := newTestConsole()
	err = Run(types.ExtractConfig{InputPath: in, Overwrite: true}, &bytes.Buffer{}, c2)
	require.ErrorIs(t, err, ErrExit)
	assert.Contains(t, diag.String(), "No valid JSON found")

	again, err := os.ReadFile(in)
	require.NoError(t, err)
	assert.Equal(t, converted, again, "second run must not modify the converted file")
}

func TestRun_Pretty(t *testing.T) {
	in := writeInput(t, twoChapters)
	c, diag := newTestConsole()
	var out bytes.Buffer

	require.NoError(t, Run(types.ExtractConfig{InputPath: in, Pretty: true}, &out, c))
	assert.Contains(t, diag.String(), "Extracted JSON:\n{\n  \"text\": [")
	assert.Equal(t, "# Chapter 1\n\nA\n\nB\n\n# Chapter 2\n\nC\n", out.String())
}

func TestRun_PrettyKeepsMarkupCharacters(t *testing.T) {
	in := writeInput(t, `{"text": [{"text": ["<b>Tom & Jerry</b>"]}]}`)
	c, diag := newTestConsole()
	var out bytes.Buffer

	require.NoError(t, Run(types.ExtractConfig{InputPath: in, Pretty: true}, &out, c))
	assert.Contains(t, diag.String(), `"<b>Tom & Jerry</b>"`)
	assert.NotContains(t, diag.String(), `\u003c`)
	assert.NotContains(t, diag.String(), `\u0026`)
	assert.Equal(t, "# Chapter 1\n\n<b>Tom & Jerry</b>\n", out.String())
}
