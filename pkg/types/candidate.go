// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Priority is the urgency level assigned to a task candidate.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Rank returns the sort weight for a priority: urgent=4, high=3,
// medium=2, low=1. Unknown values rank lowest.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Valid reports whether p is one of the four defined priority levels.
func (p Priority) Valid() bool {
	return p.Rank() > 0
}

// CandidateContext carries optional document-level signals attached to a
// candidate by the enrichment stage.
type CandidateContext struct {
	// People lists person names found in the candidate's source text.
	People []string `json:"people,omitempty" yaml:"people,omitempty"`

	// Organizations lists organization names found in the source text.
	Organizations []string `json:"organizations,omitempty" yaml:"organizations,omitempty"`

	// HasAttachmentMention is true when the document references an attachment.
	HasAttachmentMention bool `json:"has_attachment_mention" yaml:"has_attachment_mention"`

	// IsContractual is true when the document uses contractual language.
	IsContractual bool `json:"is_contractual" yaml:"is_contractual"`

	// IsMeeting is true when the document uses meeting language.
	IsMeeting bool `json:"is_meeting" yaml:"is_meeting"`
}

// TaskCandidate is a scored, structured record representing a possible
// actionable item found in text. Candidates have no identity or lifecycle
// beyond the parse call that produced them; the caller owns the returned
// slice.
type TaskCandidate struct {
	// Title is the cleaned task phrase: no leading bullet or ordinal
	// markers, no trailing punctuation, length-capped, never empty.
	Title string `json:"title" yaml:"title"`

	// SourceText is the originating sentence, line, or table row.
	SourceText string `json:"source_text" yaml:"source_text"`

	// Assignee is a person name, email address, or team label.
	// Empty when no assignee was found.
	Assignee string `json:"assignee,omitempty" yaml:"assignee,omitempty"`

	// DueDate is the resolved absolute deadline, nil if none was found
	// or the expression could not be resolved.
	DueDate *time.Time `json:"due_date,omitempty" yaml:"due_date,omitempty"`

	// Priority is always one of low, medium, high, urgent.
	Priority Priority `json:"priority" yaml:"priority"`

	// Confidence is an integer in [0,100] estimating how likely the
	// candidate is a genuine actionable task.
	Confidence int `json:"confidence" yaml:"confidence"`

	// LineNumber is the 1-based line in the source document the candidate
	// came from. Zero for structured rows.
	LineNumber int `json:"line_number,omitempty" yaml:"line_number,omitempty"`

	// SectionHeader is the header of the section the candidate came from.
	// Empty when the document had no recognized headers.
	SectionHeader string `json:"section_header,omitempty" yaml:"section_header,omitempty"`

	// IsStructured is true only for candidates produced from structured rows.
	IsStructured bool `json:"is_structured" yaml:"is_structured"`

	// Context holds optional enrichment output. Nil when enrichment
	// did not run.
	Context *CandidateContext `json:"context,omitempty" yaml:"context,omitempty"`
}

// Row is a pre-parsed tabular record treated as an authoritative task
// source (e.g. a spreadsheet row). Rows bypass text extraction and enter
// the pipeline through the structured data adapter.
type Row struct {
	// Title is the task title cell. Rows with invalid titles are dropped.
	Title string `json:"title" yaml:"title"`

	// Source is the raw row text, used for provenance when present.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// DueDate is the deadline cell: either an already-resolved date
	// (RFC 3339 or calendar form) or a free-text expression.
	DueDate string `json:"due_date,omitempty" yaml:"due_date,omitempty"`

	// Assignee is the owner cell.
	Assignee string `json:"assignee,omitempty" yaml:"assignee,omitempty"`

	// Priority is the priority cell. Unrecognized values fall back to medium.
	Priority string `json:"priority,omitempty" yaml:"priority,omitempty"`

	// RowNumber is the 1-based row position in the source table.
	RowNumber int `json:"row_number,omitempty" yaml:"row_number,omitempty"`
}
