// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package unjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/pdiddy/mdtidy/internal/console"
	"github.com/pdiddy/mdtidy/pkg/types"
)

// ErrExit marks a failure that Run has already reported on the console.
// Callers exit non-zero without printing it again.
var ErrExit = errors.New("extract failed")

// Run performs one extract invocation: read the input, recover the
// embedded object, render it, and route the Markdown to the input file
// (Overwrite), OutputPath, or stdout, in that order of precedence.
// Diagnostics go to c; rendered text bound for standard output goes to stdout.
func Run(cfg types.ExtractConfig, stdout io.Writer, c *console.Console) error {
	content, err := readText(cfg.InputPath)
	if err != nil {
		c.Errorf("Failed to read file: %v", err)
		return ErrExit
	}

	data, ok := ExtractEmbeddedJSON(content, c)
	if !ok || len(data) == 0 {
		c.Errorf("No valid JSON found in the input file")
		return ErrExit
	}

	if cfg.Pretty {
		c.Heading("Extracted JSON:")
		enc := json.NewEncoder(c.Writer())
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			c.Warnf("Could not format extracted JSON: %v", err)
		}
	}

	markdown := Render(data, c)

	switch {
	case cfg.Overwrite:
		if cfg.OutputPath != "" {
			c.Warnf("Both --output and --overwrite specified; using --overwrite")
		}
		if err := writeFileAtomic(cfg.InputPath, []byte(markdown)); err != nil {
			c.Errorf("Failed to overwrite input file: %v", err)
			return ErrExit
		}
		c.Successf("Markdown written back to %s%s", cfg.InputPath, chapterNote(markdown))
	case cfg.OutputPath != "":
		if err := writeFileAtomic(cfg.OutputPath, []byte(markdown)); err != nil {
			c.Errorf("Failed to write output file: %v", err)
			return ErrExit
		}
		c.Successf("Markdown written to %s%s", cfg.OutputPath, chapterNote(markdown))
	default:
		if _, err := fmt.Fprintln(stdout, markdown); err != nil {
			c.Errorf("Failed to write to standard output: %v", err)
			return ErrExit
		}
	}
	return nil
}

// readText loads path as UTF-8 text.
func readText(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s is not valid UTF-8 text", path)
	}
	return string(data), nil
}

func chapterNote(markdown string) string {
	n := len(Chapters(markdown))
	if n == 1 {
		return " (1 chapter)"
	}
	return fmt.Sprintf(" (%d chapters)", n)
}
