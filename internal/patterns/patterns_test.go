// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package patterns

import "testing"

func TestActionRules(t *testing.T) {
	lib := Default()

	tests := []struct {
		name     string
		sentence string
		wantRule string
		wantFrag string
	}{
		{
			name:     "todo marker",
			sentence: "TODO: Fix the login bug",
			wantRule: "todo-marker",
			wantFrag: "Fix the login bug",
		},
		{
			name:     "action item marker",
			sentence: "Action item: review the contract draft",
			wantRule: "action-item-marker",
			wantFrag: "review the contract draft",
		},
		{
			name:     "need to",
			sentence: "We need to finalize the budget numbers.",
			wantRule: "need-to",
			wantFrag: "finalize the budget numbers",
		},
		{
			name:     "must",
			sentence: "The team must submit the quarterly filing.",
			wantRule: "need-to",
			wantFrag: "submit the quarterly filing",
		},
		{
			name:     "please request",
			sentence: "Please send the signed copy back to me.",
			wantRule: "please-request",
			wantFrag: "send the signed copy back to me",
		},
		{
			name:     "imperative verb",
			sentence: "Submit the expense report before month end.",
			wantRule: "imperative-verb",
			wantFrag: "expense report before month end",
		},
		{
			name:     "responsible for",
			sentence: "Marketing is responsible for updating the landing page.",
			wantRule: "responsible-for",
			wantFrag: "updating the landing page",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotRule, gotFrag string
			for _, r := range lib.Action {
				if frags := r.Extract(tt.sentence); len(frags) > 0 {
					gotRule, gotFrag = r.Name, frags[0]
					break
				}
			}
			if gotRule != tt.wantRule {
				t.Fatalf("first matching rule = %q, want %q", gotRule, tt.wantRule)
			}
			if gotFrag != tt.wantFrag {
				t.Errorf("extracted fragment = %q, want %q", gotFrag, tt.wantFrag)
			}
		})
	}
}

func TestNegation(t *testing.T) {
	lib := Default()

	tests := []struct {
		sentence string
		want     bool
	}{
		{"We don't need to submit the report.", true},
		{"You do not have to attend the review.", true},
		{"The migration is no longer necessary.", true},
		{"The report was already completed last week.", true},
		{"No further action is required on this item.", true},
		{"The demo has been cancelled.", true},
		{"We need to submit the report.", false},
		{"Please complete the onboarding checklist.", false},
	}

	for _, tt := range tests {
		if got := lib.IsNegated(tt.sentence); got != tt.want {
			t.Errorf("IsNegated(%q) = %v, want %v", tt.sentence, got, tt.want)
		}
	}
}

func TestHeader(t *testing.T) {
	lib := Default()

	if lib.header.Kind != KindHeader {
		t.Errorf("header rule Kind = %q, want %q", lib.header.Kind, KindHeader)
	}

	tests := []struct {
		line   string
		want   string
		wantOK bool
	}{
		{"Action Items:", "Action Items", true},
		{"action items", "action items", true},
		{"Next Steps", "Next Steps", true},
		{"  Deliverables -  ", "Deliverables", true},
		{"TODOs:", "TODOs", true},
		{"Follow-ups:", "Follow-ups", true},
		{"Action items were discussed.", "", false},
		{"Please review the action items below.", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := lib.Header(tt.line)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("Header(%q) = %q, %v; want %q, %v", tt.line, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestListItem(t *testing.T) {
	lib := Default()

	tests := []struct {
		line   string
		want   string
		wantOK bool
	}{
		{"• Submit timesheet by Friday", "Submit timesheet by Friday", true},
		{"- Review the budget", "Review the budget", true},
		{"* Ship the release", "Ship the release", true},
		{"1. Prepare slides", "Prepare slides", true},
		{"12) Call the vendor", "Call the vendor", true},
		{"a) Confirm attendance", "Confirm attendance", true},
		{"  - indented bullet", "indented bullet", true},
		{"Just a normal sentence.", "", false},
		{"-no space after marker", "", false},
	}

	for _, tt := range tests {
		got, ok := lib.ListItem(tt.line)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ListItem(%q) = %q, %v; want %q, %v", tt.line, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestMatchPriority(t *testing.T) {
	lib := Default()

	tests := []struct {
		text   string
		want   string
		wantOK bool
	}{
		{"This is urgent, please respond.", "urgent", true},
		{"Need this ASAP.", "urgent", true},
		{"Handle immediately.", "urgent", true},
		{"This is an important deliverable.", "high", true},
		{"It is crucial that we file on time.", "high", true},
		{"No rush on this one.", "low", true},
		{"Whenever you get to it.", "low", true},
		// Urgent keywords outrank high ones in the same text.
		{"This important fix is needed immediately.", "urgent", true},
		{"Regular sentence with no keywords.", "", false},
	}

	for _, tt := range tests {
		got, ok := lib.MatchPriority(tt.text)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("MatchPriority(%q) = %q, %v; want %q, %v", tt.text, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestAssignmentExtractPair(t *testing.T) {
	lib := Default()

	tests := []struct {
		name       string
		text       string
		wantPerson string
		wantTask   string
	}{
		{
			name:       "name needs to",
			text:       "John needs to complete the report by Friday.",
			wantPerson: "John",
			wantTask:   "complete the report by Friday",
		},
		{
			name:       "full name responsible",
			text:       "Sarah Chen is responsible for vendor onboarding this quarter.",
			wantPerson: "Sarah Chen",
			wantTask:   "vendor onboarding this quarter",
		},
		{
			name:       "assigned to label",
			text:       "Assigned to: Maria",
			wantPerson: "Maria",
			wantTask:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var person, task string
			for _, r := range lib.Assignment {
				if p, s, ok := r.ExtractPair(tt.text); ok {
					person, task = p, s
					break
				}
			}
			if person != tt.wantPerson || task != tt.wantTask {
				t.Errorf("got (%q, %q), want (%q, %q)", person, task, tt.wantPerson, tt.wantTask)
			}
		})
	}
}

func TestStoplisted(t *testing.T) {
	lib := Default()

	if !lib.Stoplisted("Thanks") {
		t.Error("Stoplisted(Thanks) = false, want true")
	}
	if !lib.Stoplisted("  let me know  ") {
		t.Error("Stoplisted(let me know) = false, want true")
	}
	if lib.Stoplisted("finalize the budget") {
		t.Error("Stoplisted(finalize the budget) = true, want false")
	}
}
