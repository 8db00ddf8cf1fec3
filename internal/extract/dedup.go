// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"sort"
	"strings"

	"github.com/pdiddy/tasksift/pkg/types"
)

// dedupe collapses candidates sharing a normalized (lowercased, trimmed)
// title. The earliest-seen candidate wins regardless of which extractor
// produced it or how the scores compare.
func dedupe(cands []types.TaskCandidate) []types.TaskCandidate {
	seen := make(map[string]bool, len(cands))
	out := cands[:0]

	for _, c := range cands {
		key := strings.ToLower(strings.TrimSpace(c.Title))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}

	return out
}

// rank sorts candidates by confidence descending, breaking ties by
// priority rank descending. The stable sort keeps first-seen order for
// full ties so repeated parses are byte-identical.
func rank(cands []types.TaskCandidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Confidence != cands[j].Confidence {
			return cands[i].Confidence > cands[j].Confidence
		}
		return cands[i].Priority.Rank() > cands[j].Priority.Rank()
	})
}
