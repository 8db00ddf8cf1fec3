// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package enrich is the optional entity-extraction stage. It backfills
// missing assignee and due-date fields from entities found in a
// candidate's source text and attaches document-level context flags.
// The extractor is an injected interface so the core pipeline stays
// testable without any NLP backend; a cheap regex implementation ships
// as the default.
package enrich

import (
	"regexp"
	"time"

	"github.com/pdiddy/tasksift/internal/dates"
	"github.com/pdiddy/tasksift/pkg/types"
)

// Entities is the output of entity extraction over one piece of text.
type Entities struct {
	// People lists person names, most confident first.
	People []string

	// Organizations lists organization names.
	Organizations []string

	// Emails lists email addresses.
	Emails []string

	// Dates lists date-like expressions, unresolved.
	Dates []string
}

// EntityExtractor supplies entities for a piece of text. Implementations
// may be local (regex) or backed by a remote NLP service; a remote call
// is the only asynchronous boundary the engine tolerates and it completes
// before deduplication runs.
type EntityExtractor interface {
	Extract(text string) Entities
}

// DocumentContext holds flags computed over the whole document, not an
// individual candidate.
type DocumentContext struct {
	IsContractual        bool
	IsMeeting            bool
	HasAttachmentMention bool
}

var (
	contractualRe = regexp.MustCompile(`(?i)\b(?:agreement|contract(?:ual)?|pursuant to|hereby|oblig(?:ation|ated)|party|parties|clause|terms and conditions|herein)\b`)
	meetingRe     = regexp.MustCompile(`(?i)\b(?:meeting|call|agenda|minutes|standup|sync|conference|discussed)\b`)
	attachmentRe  = regexp.MustCompile(`(?i)\b(?:attach(?:ed|ment|ments)?|enclosed|enclosure)\b`)
)

// AnalyzeDocument computes the document-level context flags.
func AnalyzeDocument(text string) DocumentContext {
	return DocumentContext{
		IsContractual:        contractualRe.MatchString(text),
		IsMeeting:            meetingRe.MatchString(text),
		HasAttachmentMention: attachmentRe.MatchString(text),
	}
}

// Options controls how Apply adjusts candidates.
type Options struct {
	// Boost is the confidence adjustment per relevant document flag.
	Boost int

	// MaxConfidence caps boosted heuristic scores.
	MaxConfidence int

	// Now is the base time for resolving backfilled dates.
	Now time.Time
}

// Apply enriches candidates in place and returns the slice. Missing
// assignees and due dates are backfilled from extracted entities, context
// flags are attached, and relevant flags boost confidence for heuristic
// (non-structured) candidates. Structured rows are authoritative: they
// get backfill and context but never a score adjustment.
func Apply(cands []types.TaskCandidate, doc string, x EntityExtractor, opts Options) []types.TaskCandidate {
	docCtx := AnalyzeDocument(doc)

	for i := range cands {
		c := &cands[i]
		ents := x.Extract(c.SourceText)

		if c.Assignee == "" {
			c.Assignee = firstAssignee(ents)
		}
		if c.DueDate == nil {
			for _, expr := range ents.Dates {
				if t, ok := dates.Resolve(expr, opts.Now); ok {
					c.DueDate = &t
					break
				}
			}
		}

		c.Context = &types.CandidateContext{
			People:               ents.People,
			Organizations:        ents.Organizations,
			HasAttachmentMention: docCtx.HasAttachmentMention,
			IsContractual:        docCtx.IsContractual,
			IsMeeting:            docCtx.IsMeeting,
		}

		if c.IsStructured {
			continue
		}

		boost := 0
		if docCtx.IsContractual {
			boost += opts.Boost
		}
		if docCtx.IsMeeting && c.Assignee != "" {
			boost += opts.Boost
		}
		if docCtx.HasAttachmentMention && attachmentRe.MatchString(c.SourceText) {
			boost += opts.Boost
		}
		if boost > 0 {
			c.Confidence += boost
			if c.Confidence > opts.MaxConfidence {
				c.Confidence = opts.MaxConfidence
			}
		}
	}

	return cands
}

// firstAssignee picks a person name over an email address.
func firstAssignee(ents Entities) string {
	if len(ents.People) > 0 {
		return ents.People[0]
	}
	if len(ents.Emails) > 0 {
		return ents.Emails[0]
	}
	return ""
}
