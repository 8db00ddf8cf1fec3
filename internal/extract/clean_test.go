// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/pdiddy/tasksift/pkg/types"
)

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"whitespace collapsed", "  Fix   the \t login  bug  ", "Fix the login bug"},
		{"bullet stripped", "- submit the report", "submit the report"},
		{"ordinal stripped", "3. review the draft", "review the draft"},
		{"trailing punctuation stripped", "submit the report.", "submit the report"},
		{"trailing dash stripped", "call the vendor -", "call the vendor"},
		{"leading filler stripped", "and submit the report", "submit the report"},
		{"stacked fillers stripped", "to the report draft", "report draft"},
		{"plain title untouched", "Fix the login bug", "Fix the login bug"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanTitle(tt.in, types.DefaultMaxTitleLength); got != tt.want {
				t.Errorf("cleanTitle(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanTitleCapsAtWordBoundary(t *testing.T) {
	long := strings.TrimSpace(strings.Repeat("review the quarterly budget ", 10))
	got := cleanTitle(long, types.DefaultMaxTitleLength)

	if len(got) > types.DefaultMaxTitleLength {
		t.Fatalf("len = %d, want <= %d", len(got), types.DefaultMaxTitleLength)
	}
	if strings.HasSuffix(got, " ") {
		t.Errorf("capped title has trailing space: %q", got)
	}
	// The cut lands between words, never mid-word.
	if !strings.HasSuffix(got, "budget") && !strings.HasSuffix(got, "review") &&
		!strings.HasSuffix(got, "the") && !strings.HasSuffix(got, "quarterly") {
		t.Errorf("capped title cut mid-word: %q", got)
	}
}

func TestCapLineKeepsValidUTF8(t *testing.T) {
	p := newTestParser()

	// 3-byte runes so the default cap of 4096 bytes lands mid-rune.
	line := strings.Repeat("日", 2000)
	got := p.capLine(line)

	if len(got) > types.DefaultMaxLineBytes {
		t.Fatalf("len = %d, want <= %d", len(got), types.DefaultMaxLineBytes)
	}
	if !utf8.ValidString(got) {
		t.Errorf("capped line is not valid UTF-8 (len %d)", len(got))
	}
	if short := p.capLine("short line"); short != "short line" {
		t.Errorf("capLine changed an in-budget line: %q", short)
	}
}

func TestValidTitle(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		title string
		want  bool
	}{
		{"Fix the login bug", true},
		{"submit report", true},
		{"ok", false},        // too short
		{"reconcile", false}, // single token
		{"20260311", false},  // bare number
		{"thank you", false}, // stoplisted
		{"let me know", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := p.validTitle(tt.title); got != tt.want {
			t.Errorf("validTitle(%q) = %v, want %v", tt.title, got, tt.want)
		}
	}
}
