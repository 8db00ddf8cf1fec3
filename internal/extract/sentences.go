// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "strings"

// sentenceEnd marks characters that terminate a sentence when followed
// by whitespace or end of line.
func sentenceEnd(r byte) bool {
	return r == '.' || r == '!' || r == '?'
}

// splitSentences breaks a line into sentences at terminal punctuation.
// Abbreviation handling is deliberately minimal: single-letter initials
// ("J. Smith") do not end a sentence. Empty fragments are dropped.
func splitSentences(line string) []string {
	var sentences []string
	start := 0

	for i := 0; i < len(line); i++ {
		if !sentenceEnd(line[i]) {
			continue
		}
		// End of line or followed by a space ends the sentence.
		if i+1 < len(line) && line[i+1] != ' ' {
			continue
		}
		// A single capital letter before the period is an initial.
		if line[i] == '.' && i >= 1 && isUpper(line[i-1]) && (i == 1 || line[i-2] == ' ') {
			continue
		}
		if s := strings.TrimSpace(line[start : i+1]); s != "" {
			sentences = append(sentences, s)
		}
		start = i + 1
	}

	if s := strings.TrimSpace(line[start:]); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}

func isUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}
