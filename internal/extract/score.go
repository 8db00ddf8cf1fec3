// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/pdiddy/tasksift/pkg/types"
)

var (
	strongActionRe = regexp.MustCompile(`(?i)\b(?:action|task|todo|deliver|complete|submit)\b`)
	obligationRe   = regexp.MustCompile(`(?i)\b(?:shall|must|required|mandatory)\b`)
	tentativeRe    = regexp.MustCompile(`(?i)\b(?:discuss|consider|maybe|might|perhaps|think about|explore)\b`)
	headerActionRe = regexp.MustCompile(`(?i)\b(?:action|task|todo|deliverable|responsibilit)`)
)

// score computes the heuristic confidence for a sentence-derived
// candidate. Adjustments are independent and additive; the result is
// clamped to the configured band.
func (p *Parser) score(title, source, header string) int {
	score := p.cfg.BaseConfidence

	if n := len(title); n >= 10 && n <= 100 {
		score += 10
	}
	if strongActionRe.MatchString(source) {
		score += 15
	}
	if header != "" && headerActionRe.MatchString(header) {
		score += 15
	}
	if obligationRe.MatchString(source) {
		score += 10
	}
	if strings.Contains(source, "?") {
		score -= 10
	}
	if tentativeRe.MatchString(source) {
		score -= 15
	}

	return clamp(score, p.cfg.MinConfidence, p.cfg.MaxConfidence)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// priorityFor classifies a candidate's priority. Keyword tables are
// checked against the section header and text combined, urgent before
// high before low, first match winning outright. Without a keyword match
// a near deadline escalates: due within a day is urgent, within three
// days high. Everything else is medium.
func (p *Parser) priorityFor(text, header string, due *time.Time, now time.Time) types.Priority {
	combined := text
	if header != "" {
		combined = header + " " + text
	}

	if level, ok := p.lib.MatchPriority(combined); ok {
		switch level {
		case "urgent":
			return types.PriorityUrgent
		case "high":
			return types.PriorityHigh
		case "low":
			return types.PriorityLow
		}
	}

	if due != nil {
		switch until := due.Sub(now); {
		case until < 24*time.Hour:
			return types.PriorityUrgent
		case until < 72*time.Hour:
			return types.PriorityHigh
		}
	}

	return types.PriorityMedium
}
