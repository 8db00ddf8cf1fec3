// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package patterns holds the immutable, data-driven rule tables the
// extraction pipeline matches against: action phrases, deadline phrases,
// priority keywords, assignment phrases, section headers, and negations.
// Rules are tagged and ordered so new ones can be appended without
// touching extraction control flow.
package patterns

import (
	"regexp"
	"strings"
)

// Kind tags a rule with the pipeline stage it serves.
type Kind string

const (
	KindAction     Kind = "action"
	KindDeadline   Kind = "deadline"
	KindAssignment Kind = "assignment"
	KindNegation   Kind = "negation"
	KindHeader     Kind = "header"
	KindPriority   Kind = "priority"
)

// Rule is one tagged matcher. The extracted text is the first capture
// group when the expression has one, otherwise the whole match.
type Rule struct {
	// Name identifies the rule in diagnostics.
	Name string

	// Kind tags which stage the rule belongs to.
	Kind Kind

	re *regexp.Regexp
}

// Matches reports whether the rule matches s. A panicking expression
// counts as no match; one bad rule/line combination must never abort
// a parse.
func (r Rule) Matches(s string) (matched bool) {
	defer func() {
		if recover() != nil {
			matched = false
		}
	}()
	return r.re.MatchString(s)
}

// Extract returns every extracted fragment for the rule in s: the first
// capture group per match, or the whole match for group-free expressions.
// A panicking expression yields nil.
func (r Rule) Extract(s string) (out []string) {
	defer func() {
		if recover() != nil {
			out = nil
		}
	}()
	for _, m := range r.re.FindAllStringSubmatch(s, -1) {
		frag := m[0]
		if len(m) > 1 && m[1] != "" {
			frag = m[1]
		}
		out = append(out, frag)
	}
	return out
}

// ExtractPair returns the first match's capture groups 1 and 2, for
// assignment rules of the form "<person> <verb phrase> <task>".
func (r Rule) ExtractPair(s string) (first, second string, ok bool) {
	defer func() {
		if recover() != nil {
			first, second, ok = "", "", false
		}
	}()
	m := r.re.FindStringSubmatch(s)
	if len(m) < 3 {
		return "", "", false
	}
	return m[1], m[2], true
}

// Library is the loaded-once, read-only pattern set shared safely across
// concurrent parses.
type Library struct {
	// Action rules emit task candidates from sentences.
	Action []Rule

	// Deadline rules capture free-text deadline expressions.
	Deadline []Rule

	// Assignment rules capture "<person> needs to <task>" forms.
	Assignment []Rule

	// Negation rules veto a whole sentence.
	Negation []Rule

	urgent []Rule
	high   []Rule
	low    []Rule

	header Rule
	listRe *regexp.Regexp

	stoplist map[string]bool
}

var defaultLibrary = build()

// Default returns the shared immutable pattern library.
func Default() *Library {
	return defaultLibrary
}

func build() *Library {
	action := []Rule{
		rule("todo-marker", KindAction, `(?i)\btodo[:\-]\s*(.{3,200})`),
		rule("action-item-marker", KindAction, `(?i)\baction(?:\s+item)?[:\-]\s*(.{3,200})`),
		rule("task-marker", KindAction, `(?i)^\s*(?:task|deliverable)[:\-]\s*(.{3,200})`),
		rule("please-request", KindAction, `(?i)\b(?:please|pls|kindly)\s+([a-z][a-z'\- ]{4,120})`),
		rule("need-to", KindAction, `(?i)\b(?:need(?:s)? to|have to|has to|must|should)\s+([a-z][^.!?\n]{4,150})`),
		rule("imperative-verb", KindAction, `(?i)\b(?:complete|submit|deliver|prepare|review|send|schedule|finish|update|create|draft|fix|sign|confirm|provide)\s+(?:the\s+|a\s+|an\s+)?([a-z][^.!?\n]{3,150})`),
		rule("responsible-for", KindAction, `(?i)\bresponsible for\s+([a-z][^.!?\n]{4,150})`),
		rule("is-due", KindAction, `(?i)\b([A-Za-z][^.!?\n]{4,100})\s+is due\b`),
	}

	deadline := []Rule{
		rule("by-phrase", KindDeadline, `(?i)\bby\s+((?:end of\s+)?[A-Za-z0-9][A-Za-z0-9 ,/\-]{1,40})`),
		rule("due-phrase", KindDeadline, `(?i)\bdue\s+(?:on\s+|by\s+)?([A-Za-z0-9][A-Za-z0-9 ,/\-]{1,40})`),
		rule("deadline-phrase", KindDeadline, `(?i)\bdeadline(?:\s+is)?[:\s]\s*([A-Za-z0-9][A-Za-z0-9 ,/\-]{1,40})`),
		rule("before-phrase", KindDeadline, `(?i)\bbefore\s+([A-Za-z0-9][A-Za-z0-9 ,/\-]{1,40})`),
		rule("no-later-than", KindDeadline, `(?i)\bno later than\s+([A-Za-z0-9][A-Za-z0-9 ,/\-]{1,40})`),
		rule("within-units", KindDeadline, `(?i)\b(within\s+\d{1,3}\s+(?:hours?|days?|weeks?|months?))\b`),
	}

	assignment := []Rule{
		rule("name-needs-to", KindAssignment, `\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\s+(?:needs? to|should|must|will|has to|is going to)\s+([a-z][^.!?\n]{4,150})`),
		rule("name-responsible", KindAssignment, `\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\s+is responsible for\s+([a-z][^.!?\n]{4,150})`),
		rule("assigned-to", KindAssignment, `(?i)\bassigned to[:\s]\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)()`),
		rule("owner-label", KindAssignment, `(?i)\bowner[:\s]\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)()`),
	}

	negation := []Rule{
		rule("dont-need", KindNegation, `(?i)\b(?:don'?t|do not|doesn'?t|does not|won'?t|will not|no)\s+(?:need|have)\s+to\b`),
		rule("no-longer", KindNegation, `(?i)\bno longer\s+(?:need|needs|required|necessary)\b`),
		rule("already-done", KindNegation, `(?i)\b(?:already|has been|have been|was|were)\s+(?:completed?|done|finished|submitted|sent|handled|resolved)\b`),
		rule("no-action", KindNegation, `(?i)\bno\s+(?:further\s+)?action\s+(?:is\s+)?(?:required|needed|necessary)\b`),
		rule("not-necessary", KindNegation, `(?i)\b(?:not|isn'?t|is no longer)\s+necessary\b`),
		rule("cancelled", KindNegation, `(?i)\b(?:was|has been|is)\s+cancell?ed\b`),
	}

	urgent := []Rule{
		rule("urgent-kw", KindPriority, `(?i)\b(?:urgent(?:ly)?|asap|a\.s\.a\.p\.?|immediately|right away|critical|emergency|as soon as possible|top priority)\b`),
	}
	high := []Rule{
		rule("high-kw", KindPriority, `(?i)\b(?:high priority|important|crucial|essential|key deliverable)\b`),
	}
	low := []Rule{
		rule("low-kw", KindPriority, `(?i)\b(?:low priority|whenever|no rush|no hurry|eventually|at your convenience|nice to have|when you get a chance)\b`),
	}

	// Header lines open a new section. Anchored at line start; an
	// optional trailing colon or dash is tolerated, nothing else.
	header := rule("section-header", KindHeader, `(?i)^\s*(action items?|next steps?|deliverables?|to-?dos?|task list|tasks?|responsibilit(?:y|ies)|follow[- ]?ups?|action required|open items?|assignments?|agenda|decisions?|notes?)\s*[:\-]?\s*$`)

	// Bullet (•, ·, ▪, ▫, ◦, ‣, ⁃, -, *), numbered (1. / 1)) and
	// lettered (a. / a)) list markers.
	listRe := regexp.MustCompile(`^\s*(?:[•·▪▫◦‣⁃\-\*]+|\d{1,3}[.)]|[a-zA-Z][.)])\s+(.+)$`)

	stop := []string{
		"see above", "see below", "thanks", "thank you", "thanks again",
		"n/a", "tbd", "tbc", "none", "no action needed", "as discussed",
		"let me know", "looking forward", "best regards", "kind regards",
		"for your information", "as mentioned", "per my last email",
	}
	stoplist := make(map[string]bool, len(stop))
	for _, s := range stop {
		stoplist[s] = true
	}

	return &Library{
		Action:     action,
		Deadline:   deadline,
		Assignment: assignment,
		Negation:   negation,
		urgent:     urgent,
		high:       high,
		low:        low,
		header:     header,
		listRe:     listRe,
		stoplist:   stoplist,
	}
}

func rule(name string, kind Kind, expr string) Rule {
	return Rule{Name: name, Kind: kind, re: regexp.MustCompile(expr)}
}

// IsNegated reports whether any negation rule matches the sentence.
// Negated sentences emit no candidates at all.
func (l *Library) IsNegated(sentence string) bool {
	for _, r := range l.Negation {
		if r.Matches(sentence) {
			return true
		}
	}
	return false
}

// Header returns the canonical header text if line is a recognized
// section header, and ok=false otherwise.
func (l *Library) Header(line string) (string, bool) {
	frags := l.header.Extract(line)
	if len(frags) == 0 {
		return "", false
	}
	return strings.TrimSpace(frags[0]), true
}

// ListItem returns the content after a bullet, numbered, or lettered
// list marker, and ok=false for non-list lines.
func (l *Library) ListItem(line string) (string, bool) {
	m := l.listRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// MatchPriority checks the urgent, then high, then low keyword tables
// against text. First match wins. ok=false means no keyword matched.
func (l *Library) MatchPriority(text string) (level string, ok bool) {
	for _, r := range l.urgent {
		if r.Matches(text) {
			return "urgent", true
		}
	}
	for _, r := range l.high {
		if r.Matches(text) {
			return "high", true
		}
	}
	for _, r := range l.low {
		if r.Matches(text) {
			return "low", true
		}
	}
	return "", false
}

// Stoplisted reports whether the cleaned title is a generic
// acknowledgement that can never be a task.
func (l *Library) Stoplisted(title string) bool {
	return l.stoplist[strings.ToLower(strings.TrimSpace(title))]
}
