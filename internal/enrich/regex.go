// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"regexp"
	"strings"

	"github.com/pdiddy/tasksift/internal/patterns"
)

var (
	emailRe = regexp.MustCompile(`\b[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}\b`)
	orgRe   = regexp.MustCompile(`\b([A-Z][A-Za-z&]+(?:\s+[A-Z][A-Za-z&]+){0,3}\s+(?:Inc|Corp|Corporation|LLC|Ltd|GmbH|Co)\.?)\b`)
	nameRe  = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\b`)
	dateRe  = regexp.MustCompile(`(?i)\b(\d{4}-\d{2}-\d{2}|\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4}|(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?\s+\d{1,2}(?:st|nd|rd|th)?(?:,?\s+\d{4})?|monday|tuesday|wednesday|thursday|friday|saturday|sunday|tomorrow|today|next week|next month)\b`)
)

// notNames are capitalized tokens that start sentences without naming
// anyone. Keeps sentence-initial words out of the people list.
var notNames = map[string]bool{
	"The": true, "This": true, "That": true, "These": true, "Those": true,
	"We": true, "They": true, "You": true, "It": true, "He": true, "She": true,
	"Please": true, "Thanks": true, "Thank": true, "Hi": true, "Hello": true,
	"Dear": true, "Regards": true, "Best": true, "Also": true, "Note": true,
	"Action": true, "Task": true, "Todo": true, "Monday": true, "Tuesday": true,
	"Wednesday": true, "Thursday": true, "Friday": true, "Saturday": true,
	"Sunday": true, "January": true, "February": true, "March": true,
	"April": true, "May": true, "June": true, "July": true, "August": true,
	"September": true, "October": true, "November": true, "December": true,
	"If": true, "When": true, "After": true, "Before": true, "Once": true,
	"Send": true, "Review": true, "Submit": true, "Complete": true,
	"Update": true, "Create": true, "Fix": true, "Schedule": true,
	"Prepare": true, "Draft": true, "Deliver": true, "Sign": true,
	"Confirm": true, "Provide": true, "Email": true, "Call": true,
	"Finish": true, "Follow": true, "Let": true, "Our": true, "Your": true,
	"There": true, "Here": true, "All": true, "Next": true, "Meeting": true,
	"Agenda": true, "Deadline": true, "Tomorrow": true, "Today": true,
}

const maxEntities = 10

// RegexExtractor is the default EntityExtractor: cheap, local, and
// deterministic. Assignment phrases from the pattern library take
// precedence for people, then capitalized person-like tokens.
type RegexExtractor struct {
	lib *patterns.Library
}

// NewRegexExtractor returns an extractor backed by the shared pattern
// library.
func NewRegexExtractor() *RegexExtractor {
	return &RegexExtractor{lib: patterns.Default()}
}

// Extract finds people, organizations, emails, and date expressions in
// text.
func (x *RegexExtractor) Extract(text string) Entities {
	var ents Entities

	// Assignment phrases name the responsible person explicitly. The
	// name pattern still matches pronouns, so the stoplist applies here
	// too.
	for _, rule := range x.lib.Assignment {
		if name, _, ok := rule.ExtractPair(text); ok {
			name = strings.TrimSpace(name)
			if notNames[firstWord(name)] {
				continue
			}
			ents.People = appendUnique(ents.People, name)
		}
	}

	for _, org := range firstGroups(orgRe, text) {
		ents.Organizations = appendUnique(ents.Organizations, org)
	}

	orgText := orgRe.ReplaceAllString(text, "")
	for _, name := range firstGroups(nameRe, orgText) {
		if notNames[firstWord(name)] || notNames[name] {
			continue
		}
		ents.People = appendUnique(ents.People, name)
	}

	for _, m := range emailRe.FindAllString(text, maxEntities) {
		ents.Emails = appendUnique(ents.Emails, m)
	}
	for _, d := range firstGroups(dateRe, text) {
		ents.Dates = appendUnique(ents.Dates, d)
	}

	return ents
}

func firstGroups(re *regexp.Regexp, text string) []string {
	var out []string
	for _, m := range re.FindAllStringSubmatch(text, maxEntities) {
		if len(m) > 1 && m[1] != "" {
			out = append(out, m[1])
		}
	}
	return out
}

func appendUnique(list []string, v string) []string {
	if v == "" || len(list) >= maxEntities {
		return list
	}
	for _, have := range list {
		if strings.EqualFold(have, v) {
			return list
		}
	}
	return append(list, v)
}

func firstWord(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}
