// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dates resolves free-text deadline expressions ("by Friday",
// "within 3 days", "EOM", "March 15") into absolute timestamps relative
// to a caller-supplied base time. Resolution walks an ordered rule set;
// the first matching rule wins, and nothing here ever returns an error —
// an unresolvable expression simply yields ok=false.
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// resolver is one entry in the ordered rule table.
type resolver struct {
	name string
	re   *regexp.Regexp
	fn   func(m []string, now time.Time) (time.Time, bool)
}

var (
	isoDateRe   = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	numDateRe   = regexp.MustCompile(`\b(\d{1,2})[/\-](\d{1,2})[/\-](\d{2,4})\b`)
	monthNameRe = regexp.MustCompile(`(?i)\b(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s+(\d{4}))?\b`)
	dayMonthRe  = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)(?:,?\s+(\d{4}))?\b`)
	todayRe     = regexp.MustCompile(`(?i)\b(?:today|eod|end of (?:the )?day|cob|close of business)\b`)
	tomorrowRe  = regexp.MustCompile(`(?i)\btomorrow\b`)
	weekdayRe   = regexp.MustCompile(`(?i)\b(?:next\s+|this\s+|on\s+)?(monday|tuesday|wednesday|thursday|friday|saturday|sunday|mon|tue|tues|wed|thu|thur|thurs|fri|sat|sun)\b`)
	eowRe       = regexp.MustCompile(`(?i)\b(?:eow|end of (?:the )?week)\b`)
	eomRe       = regexp.MustCompile(`(?i)\b(?:eom|end of (?:the )?month)\b`)
	nextWeekRe  = regexp.MustCompile(`(?i)\bnext week\b`)
	nextMonthRe = regexp.MustCompile(`(?i)\bnext month\b`)
	withinRe    = regexp.MustCompile(`(?i)\bwithin\s+(\d{1,3})\s+(hours?|days?|weeks?|months?)\b`)
)

var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

var weekdays = map[string]time.Weekday{
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "tues": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
	"sunday": time.Sunday, "sun": time.Sunday,
}

// rules is the ordered resolution table. Exact calendar dates outrank
// relative forms so "by Friday March 15" resolves to March 15, not the
// coming Friday.
var rules = []resolver{
	{"iso-date", isoDateRe, resolveISO},
	{"month-name", monthNameRe, resolveMonthName},
	{"day-month", dayMonthRe, resolveDayMonth},
	{"numeric-date", numDateRe, resolveNumeric},
	{"today-eod", todayRe, func(_ []string, now time.Time) (time.Time, bool) {
		return endOfDay(now), true
	}},
	{"tomorrow", tomorrowRe, func(_ []string, now time.Time) (time.Time, bool) {
		return endOfDay(now.AddDate(0, 0, 1)), true
	}},
	{"weekday", weekdayRe, resolveWeekday},
	{"end-of-week", eowRe, func(_ []string, now time.Time) (time.Time, bool) {
		return endOfDay(now.AddDate(0, 0, daysUntil(now, time.Friday))), true
	}},
	{"end-of-month", eomRe, func(_ []string, now time.Time) (time.Time, bool) {
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		last := first.AddDate(0, 1, -1)
		return endOfDay(last), true
	}},
	{"next-week", nextWeekRe, func(_ []string, now time.Time) (time.Time, bool) {
		return now.AddDate(0, 0, 7), true
	}},
	{"next-month", nextMonthRe, func(_ []string, now time.Time) (time.Time, bool) {
		return now.AddDate(0, 1, 0), true
	}},
	{"within-units", withinRe, resolveWithin},
}

// fallbackLayouts are tried, in order, when no rule matched.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// Resolve converts a free-text deadline expression into an absolute
// timestamp relative to now. Relative day expressions resolve to end of
// day (23:59:59.999); duration expressions keep the time of day.
// ok=false means the expression could not be resolved; Resolve never
// fails any harder than that.
func Resolve(expr string, now time.Time) (t time.Time, ok bool) {
	defer func() {
		if recover() != nil {
			t, ok = time.Time{}, false
		}
	}()

	expr = strings.TrimSpace(expr)
	if expr == "" {
		return time.Time{}, false
	}

	for _, r := range rules {
		if m := r.re.FindStringSubmatch(expr); m != nil {
			if t, ok := r.fn(m, now); ok {
				return t, true
			}
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.ParseInLocation(layout, expr, now.Location()); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func resolveISO(m []string, now time.Time) (time.Time, bool) {
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return calendarDay(year, time.Month(month), day, now)
}

func resolveNumeric(m []string, now time.Time) (time.Time, bool) {
	// Numeric dates are day-first: D/M/Y. When the middle component
	// cannot be a month, fall back to month-first.
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if year < 100 {
		year += 2000
	}
	if month > 12 && day <= 12 {
		day, month = month, day
	}
	return calendarDay(year, time.Month(month), day, now)
}

func resolveMonthName(m []string, now time.Time) (time.Time, bool) {
	month, ok := months[strings.ToLower(m[1])[:3]]
	if !ok {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[2])
	year := now.Year()
	if m[3] != "" {
		year, _ = strconv.Atoi(m[3])
	}
	return calendarDay(year, month, day, now)
}

func resolveDayMonth(m []string, now time.Time) (time.Time, bool) {
	day, _ := strconv.Atoi(m[1])
	month, ok := months[strings.ToLower(m[2])[:3]]
	if !ok {
		return time.Time{}, false
	}
	year := now.Year()
	if m[3] != "" {
		year, _ = strconv.Atoi(m[3])
	}
	return calendarDay(year, month, day, now)
}

func resolveWeekday(m []string, now time.Time) (time.Time, bool) {
	wd, ok := weekdays[strings.ToLower(m[1])]
	if !ok {
		return time.Time{}, false
	}
	return endOfDay(now.AddDate(0, 0, daysUntil(now, wd))), true
}

func resolveWithin(m []string, now time.Time) (time.Time, bool) {
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return time.Time{}, false
	}
	unit := strings.ToLower(strings.TrimSuffix(m[2], "s"))
	switch unit {
	case "hour":
		return now.Add(time.Duration(n) * time.Hour), true
	case "day":
		return now.AddDate(0, 0, n), true
	case "week":
		return now.AddDate(0, 0, 7*n), true
	case "month":
		return now.AddDate(0, n, 0), true
	}
	return time.Time{}, false
}

// daysUntil returns the forward offset in days from now to the next
// occurrence of wd. An offset that lands today or in the past rolls
// forward a full week so weekday deadlines always resolve forward.
func daysUntil(now time.Time, wd time.Weekday) int {
	diff := int(wd) - int(now.Weekday())
	if diff <= 0 {
		diff += 7
	}
	return diff
}

// calendarDay validates the date components and returns end of that day.
func calendarDay(year int, month time.Month, day int, now time.Time) (time.Time, bool) {
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	// time.Date normalizes overflow (Feb 30 → Mar 2); reject that.
	if t.Month() != month || t.Day() != day {
		return time.Time{}, false
	}
	return endOfDay(t), true
}

// endOfDay returns t's date at 23:59:59.999.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, t.Location())
}
