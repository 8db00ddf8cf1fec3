// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	spaceRunRe   = regexp.MustCompile(`\s+`)
	leadMarkerRe = regexp.MustCompile(`^(?:[•·▪▫◦‣⁃\-\*]+|\d{1,3}[.)]|[a-zA-Z][.)])\s*`)
	trailPunctRe = regexp.MustCompile(`[\s.,;:!?\-]+$`)
	bareNumberRe = regexp.MustCompile(`^\d+$`)
)

// fillerWords are dropped from the front of a title until a content word
// is reached ("and submit the report" → "submit the report").
var fillerWords = map[string]bool{
	"and": true, "or": true, "to": true, "the": true, "a": true, "an": true,
}

// cleanTitle normalizes an extracted task phrase: whitespace runs are
// collapsed, leading bullet/ordinal markers and filler words stripped,
// trailing punctuation removed, and the result capped at maxLen runes
// (cut at a word boundary where possible).
func cleanTitle(s string, maxLen int) string {
	s = strings.TrimSpace(spaceRunRe.ReplaceAllString(s, " "))
	s = leadMarkerRe.ReplaceAllString(s, "")

	for {
		first, rest, found := strings.Cut(s, " ")
		if !found || !fillerWords[strings.ToLower(first)] {
			break
		}
		s = rest
	}

	s = trailPunctRe.ReplaceAllString(s, "")

	if runes := []rune(s); len(runes) > maxLen {
		s = string(runes[:maxLen])
		if i := strings.LastIndexByte(s, ' '); i > maxLen/2 {
			s = s[:i]
		}
		s = trailPunctRe.ReplaceAllString(s, "")
	}

	return strings.TrimSpace(s)
}

// validTitle applies the validity filter: minimum length, more than one
// token, not a bare number, not a stoplisted acknowledgement.
func (p *Parser) validTitle(title string) bool {
	if len(title) < p.cfg.MinTitleLength {
		return false
	}
	if !strings.ContainsAny(title, " \t") {
		return false
	}
	if bareNumberRe.MatchString(title) {
		return false
	}
	return !p.lib.Stoplisted(title)
}

// capLine truncates a line before any rule sees it so unbounded input
// cannot trigger pathological matching. The cut backs up to a rune
// boundary so a truncated line is still valid UTF-8.
func (p *Parser) capLine(s string) string {
	if len(s) <= p.cfg.MaxLineBytes {
		return s
	}
	cut := p.cfg.MaxLineBytes
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
