// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package unjson

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/mdtidy/internal/console"
)

const (
	textKey    = "text"
	blockSep   = "\n\n"
	headingFmt = "# Chapter %d"
)

// Render converts the object's "text" array into Markdown. Each well-formed
// section becomes a "# Chapter i" block where i is the section's 1-based
// position in the array; malformed sections are skipped with a warning and
// leave a gap in the numbering. A missing "text" key yields "".
func Render(data map[string]any, c *console.Console) string {
	raw, ok := data[textKey]
	if !ok {
		c.Warnf("No 'text' key found in JSON")
		return ""
	}
	sections, ok := raw.([]any)
	if !ok {
		c.Warnf("'text' in JSON is not an array, nothing to render")
		return ""
	}

	var blocks []string
	for idx, sec := range sections {
		i := idx + 1

		fields, ok := sec.(map[string]any)
		if !ok {
			c.Warnf("Section %d is missing 'text' key, skipping", i)
			continue
		}
		inner, ok := fields[textKey]
		if !ok {
			c.Warnf("Section %d is missing 'text' key, skipping", i)
			continue
		}
		paragraphs, ok := inner.([]any)
		if !ok {
			c.Warnf("'text' in section %d is not an array, skipping", i)
			continue
		}

		blocks = append(blocks, fmt.Sprintf(headingFmt, i)+blockSep+joinParagraphs(paragraphs))
	}

	return strings.Join(blocks, blockSep)
}

func joinParagraphs(paragraphs []any) string {
	parts := make([]string, len(paragraphs))
	for i, p := range paragraphs {
		switch v := p.(type) {
		case string:
			parts[i] = v
		case float64:
			parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			parts[i] = fmt.Sprint(v)
		}
	}
	return strings.Join(parts, blockSep)
}
