// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package console writes user-facing diagnostics with a styled severity
// prefix ("Error:", "Warning:", "Success:"). A Console is passed to every
// operation that reports to the user; there is no package-level instance.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/pdiddy/mdtidy/pkg/types"
)

// Console writes prefixed diagnostics to a single writer.
// A nil *Console discards everything.
type Console struct {
	w        io.Writer
	useColor bool

	errStyle  *color.Color
	warnStyle *color.Color
	okStyle   *color.Color
	infoStyle *color.Color
}

// New returns a Console writing to w. With types.ColorAuto, color is used
// only when w is a terminal and NO_COLOR is unset.
func New(w io.Writer, mode types.ColorMode) *Console {
	c := &Console{
		w:         w,
		useColor:  wantColor(w, mode),
		errStyle:  color.New(color.FgRed, color.Bold),
		warnStyle: color.New(color.FgYellow, color.Bold),
		okStyle:   color.New(color.FgGreen, color.Bold),
		infoStyle: color.New(color.FgBlue, color.Bold),
	}
	for _, s := range []*color.Color{c.errStyle, c.warnStyle, c.okStyle, c.infoStyle} {
		if c.useColor {
			s.EnableColor()
		} else {
			s.DisableColor()
		}
	}
	return c
}

func wantColor(w io.Writer, mode types.ColorMode) bool {
	switch mode {
	case types.ColorAlways:
		return true
	case types.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Writer returns the underlying writer, or io.Discard for a nil Console.
func (c *Console) Writer() io.Writer {
	if c == nil || c.w == nil {
		return io.Discard
	}
	return c.w
}

// Errorf reports a failure.
func (c *Console) Errorf(format string, args ...any) {
	if c == nil {
		return
	}
	c.print(c.errStyle, "Error:", format, args...)
}

// Warnf reports a recoverable problem; processing continues.
func (c *Console) Warnf(format string, args ...any) {
	if c == nil {
		return
	}
	c.print(c.warnStyle, "Warning:", format, args...)
}

// Successf confirms a completed side effect.
func (c *Console) Successf(format string, args ...any) {
	if c == nil {
		return
	}
	c.print(c.okStyle, "Success:", format, args...)
}

// Heading prints a styled label on its own line (e.g. "Extracted JSON:").
func (c *Console) Heading(label string) {
	if c == nil {
		return
	}
	fmt.Fprintln(c.Writer(), c.infoStyle.Sprint(label))
}

func (c *Console) print(s *color.Color, prefix, format string, args ...any) {
	fmt.Fprintf(c.Writer(), "%s %s\n", s.Sprint(prefix), fmt.Sprintf(format, args...))
}
