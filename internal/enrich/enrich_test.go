// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/tasksift/pkg/types"
)

var now = time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)

func TestRegexExtractor(t *testing.T) {
	x := NewRegexExtractor()

	t.Run("assignment phrase names the person", func(t *testing.T) {
		ents := x.Extract("John needs to complete the report by Friday.")
		require.NotEmpty(t, ents.People)
		assert.Equal(t, "John", ents.People[0])
	})

	t.Run("full names", func(t *testing.T) {
		ents := x.Extract("Sarah Chen is responsible for vendor onboarding.")
		require.NotEmpty(t, ents.People)
		assert.Equal(t, "Sarah Chen", ents.People[0])
	})

	t.Run("organizations", func(t *testing.T) {
		ents := x.Extract("The agreement with Acme Corp expires soon.")
		assert.Equal(t, []string{"Acme Corp"}, ents.Organizations)
		assert.NotContains(t, ents.People, "Acme Corp")
	})

	t.Run("emails", func(t *testing.T) {
		ents := x.Extract("Send the draft to maria.lopez@example.com today.")
		assert.Equal(t, []string{"maria.lopez@example.com"}, ents.Emails)
	})

	t.Run("dates", func(t *testing.T) {
		ents := x.Extract("The filing is due 2026-04-01, review it tomorrow.")
		assert.Contains(t, ents.Dates, "2026-04-01")
		assert.Contains(t, ents.Dates, "tomorrow")
	})

	t.Run("sentence-initial words are not people", func(t *testing.T) {
		ents := x.Extract("Please submit the form. Thanks for the update.")
		assert.Empty(t, ents.People)
	})

	t.Run("weekdays are not people", func(t *testing.T) {
		ents := x.Extract("The review moves to Friday.")
		assert.Empty(t, ents.People)
	})

	t.Run("deduplicates case-insensitively", func(t *testing.T) {
		ents := x.Extract("John will present. John needs to prepare the slides.")
		assert.Equal(t, []string{"John"}, ents.People)
	})
}

func TestAnalyzeDocument(t *testing.T) {
	tests := []struct {
		name string
		text string
		want DocumentContext
	}{
		{
			name: "contractual",
			text: "Pursuant to the agreement, the parties shall deliver the report.",
			want: DocumentContext{IsContractual: true},
		},
		{
			name: "meeting",
			text: "Minutes from the weekly sync are below.",
			want: DocumentContext{IsMeeting: true},
		},
		{
			name: "attachment",
			text: "See the attached spreadsheet for details.",
			want: DocumentContext{HasAttachmentMention: true},
		},
		{
			name: "plain",
			text: "Nothing special in this note.",
			want: DocumentContext{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AnalyzeDocument(tt.text))
		})
	}
}

func TestApplyBackfillsAssignee(t *testing.T) {
	cands := []types.TaskCandidate{{
		Title:      "complete the report",
		SourceText: "John needs to complete the report.",
		Priority:   types.PriorityMedium,
		Confidence: 65,
	}}

	got := Apply(cands, cands[0].SourceText, NewRegexExtractor(), Options{
		Boost: 10, MaxConfidence: 95, Now: now,
	})

	require.Len(t, got, 1)
	assert.Equal(t, "John", got[0].Assignee)
	require.NotNil(t, got[0].Context)
	assert.Contains(t, got[0].Context.People, "John")
}

func TestApplyBackfillsDueDate(t *testing.T) {
	cands := []types.TaskCandidate{{
		Title:      "submit the filing",
		SourceText: "Submit the filing, it is expected 2026-04-01.",
		Priority:   types.PriorityMedium,
		Confidence: 65,
	}}

	got := Apply(cands, cands[0].SourceText, NewRegexExtractor(), Options{
		Boost: 10, MaxConfidence: 95, Now: now,
	})

	require.Len(t, got, 1)
	require.NotNil(t, got[0].DueDate)
	assert.Equal(t, time.Date(2026, 4, 1, 23, 59, 59, 999_000_000, time.UTC), *got[0].DueDate)
}

func TestApplyDoesNotOverwrite(t *testing.T) {
	due := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	cands := []types.TaskCandidate{{
		Title:      "complete the report",
		SourceText: "John needs to complete the report by tomorrow.",
		Assignee:   "Maria",
		DueDate:    &due,
		Priority:   types.PriorityMedium,
		Confidence: 65,
	}}

	got := Apply(cands, cands[0].SourceText, NewRegexExtractor(), Options{
		Boost: 10, MaxConfidence: 95, Now: now,
	})

	assert.Equal(t, "Maria", got[0].Assignee)
	assert.True(t, got[0].DueDate.Equal(due))
}

func TestApplyBoosts(t *testing.T) {
	doc := "Per the contract, please see the attached schedule from our meeting."

	t.Run("contractual boost", func(t *testing.T) {
		cands := []types.TaskCandidate{{
			Title:      "file the renewal",
			SourceText: "We must file the renewal soon.",
			Priority:   types.PriorityMedium,
			Confidence: 65,
		}}
		got := Apply(cands, doc, NewRegexExtractor(), Options{Boost: 10, MaxConfidence: 95, Now: now})
		// Contractual applies; the meeting boost needs an assignee and the
		// attachment boost needs the mention inside the candidate's source.
		assert.Equal(t, 75, got[0].Confidence)
	})

	t.Run("attachment boost needs local mention", func(t *testing.T) {
		cands := []types.TaskCandidate{{
			Title:      "review the attached schedule",
			SourceText: "Please review the attached schedule.",
			Priority:   types.PriorityMedium,
			Confidence: 65,
		}}
		got := Apply(cands, doc, NewRegexExtractor(), Options{Boost: 10, MaxConfidence: 95, Now: now})
		assert.Equal(t, 85, got[0].Confidence)
	})

	t.Run("boost is capped", func(t *testing.T) {
		cands := []types.TaskCandidate{{
			Title:      "review the attached schedule",
			SourceText: "Please review the attached schedule.",
			Priority:   types.PriorityMedium,
			Confidence: 90,
		}}
		got := Apply(cands, doc, NewRegexExtractor(), Options{Boost: 10, MaxConfidence: 95, Now: now})
		assert.Equal(t, 95, got[0].Confidence)
	})

	t.Run("structured rows are never boosted", func(t *testing.T) {
		cands := []types.TaskCandidate{{
			Title:        "review the attached schedule",
			SourceText:   "row 1: review the attached schedule",
			Priority:     types.PriorityMedium,
			Confidence:   90,
			IsStructured: true,
		}}
		got := Apply(cands, doc, NewRegexExtractor(), Options{Boost: 10, MaxConfidence: 95, Now: now})
		assert.Equal(t, 90, got[0].Confidence)
		assert.NotNil(t, got[0].Context)
	})
}
