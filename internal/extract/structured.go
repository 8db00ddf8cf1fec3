// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/tasksift/internal/dates"
	"github.com/pdiddy/tasksift/pkg/types"
)

// Structured rows come from an authoritative tabular source, so they
// bypass heuristic scoring: 95 when the row carries a due date or an
// assignee, 90 otherwise.
const (
	structuredConfidence     = 90
	structuredRichConfidence = 95
)

// structuredCandidates converts pre-parsed rows into candidates. Rows
// still pass the title validity filter; everything else is taken from the
// row directly.
func (p *Parser) structuredCandidates(rows []types.Row, now time.Time) []types.TaskCandidate {
	var out []types.TaskCandidate

	for i, row := range rows {
		title := cleanTitle(p.capLine(row.Title), p.cfg.MaxTitleLength)
		if !p.validTitle(title) {
			continue
		}

		rowNum := row.RowNumber
		if rowNum <= 0 {
			rowNum = i + 1
		}
		source := row.Source
		if source == "" {
			source = row.Title
		}

		var due *time.Time
		if row.DueDate != "" {
			// Resolve accepts both free-text expressions and
			// already-resolved date values.
			if t, ok := dates.Resolve(row.DueDate, now); ok {
				due = &t
			}
		}

		conf := structuredConfidence
		if due != nil || row.Assignee != "" {
			conf = structuredRichConfidence
		}

		out = append(out, types.TaskCandidate{
			Title:        title,
			SourceText:   fmt.Sprintf("row %d: %s", rowNum, source),
			Assignee:     strings.TrimSpace(row.Assignee),
			DueDate:      due,
			Priority:     rowPriority(row.Priority),
			Confidence:   conf,
			IsStructured: true,
		})
	}

	return out
}

// rowPriority maps a priority cell to a Priority, defaulting to medium
// for unrecognized values.
func rowPriority(s string) types.Priority {
	switch pr := types.Priority(strings.ToLower(strings.TrimSpace(s))); pr {
	case types.PriorityLow, types.PriorityMedium, types.PriorityHigh, types.PriorityUrgent:
		return pr
	}
	return types.PriorityMedium
}
