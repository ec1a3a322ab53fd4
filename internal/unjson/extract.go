// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package unjson recovers Markdown from files where a JSON object was
// written by mistake. The object is located by a greedy brace match,
// parsed, and its "text" array is rendered back into numbered chapters.
package unjson

import (
	"encoding/json"
	"regexp"

	"github.com/pdiddy/mdtidy/internal/console"
)

// embeddedObject spans from the first "{" to the last "}" in the content,
// across newlines. Braces in surrounding prose become part of the candidate.
var embeddedObject = regexp.MustCompile(`(?s)\{.*\}`)

// ExtractEmbeddedJSON returns the object embedded in content. It reports
// false when no brace span exists, and false with an error diagnostic when
// the span is not a valid JSON object.
func ExtractEmbeddedJSON(content string, c *console.Console) (map[string]any, bool) {
	span := embeddedObject.FindString(content)
	if span == "" {
		return nil, false
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(span), &obj); err != nil {
		c.Errorf("Failed to parse JSON content from the file")
		return nil, false
	}
	return obj, true
}
