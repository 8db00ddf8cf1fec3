// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package segment splits raw document text into header-delimited sections
// so extraction rules can score lines against their local context.
package segment

import (
	"strings"

	"github.com/pdiddy/tasksift/internal/patterns"
)

// Line is one content line with its 1-based position in the document.
type Line struct {
	Number int
	Text   string
}

// Section is a header-delimited span of the document. Header is empty
// for content that precedes the first recognized header, or when the
// document has no headers at all.
type Section struct {
	Header string
	Lines  []Line
}

// Split divides text into sections at recognized header lines. A document
// with no headers becomes a single section with an empty header. Header
// lines themselves are not content; blank lines are dropped.
func Split(text string, lib *patterns.Library) []Section {
	var sections []Section
	current := Section{}

	flush := func() {
		if current.Header != "" || len(current.Lines) > 0 {
			sections = append(sections, current)
		}
	}

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimRight(raw, "\r")

		if header, ok := lib.Header(line); ok {
			flush()
			current = Section{Header: header}
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		current.Lines = append(current.Lines, Line{Number: i + 1, Text: line})
	}
	flush()

	return sections
}
