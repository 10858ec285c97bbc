package events

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Event is a dated item found in free text. Date is YYYY-MM-DD with no
// time-of-day so it never shifts across timezones.
type Event struct {
	Title string `json:"title"`
	Date  string `json:"date"`
}

var monthNames = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
	"jan":       time.January,
	"feb":       time.February,
	"mar":       time.March,
	"apr":       time.April,
	"jun":       time.June,
	"jul":       time.July,
	"aug":       time.August,
	"sep":       time.September,
	"sept":      time.September,
	"oct":       time.October,
	"nov":       time.November,
	"dec":       time.December,
}

var (
	isoPattern = regexp.MustCompile(`(?i)(.+?)\s+on\s+(\d{4})-(\d{2})-(\d{2})\b`)
	// Full names come before abbreviations so "march" is not cut to "mar".
	naturalPattern = regexp.MustCompile(`(?i)(.+?)\s+on\s+` +
		`(january|february|march|april|may|june|july|august|september|october|november|december|` +
		`jan|feb|mar|apr|jun|jul|aug|sept|sep|oct|nov|dec)\.?\s+` +
		`(\d{1,2})(?:st|nd|rd|th)?\b(?:,?\s*(\d{4})\b)?`)
)

// Extract returns the events mentioned in text. A zero ref means now; ref is
// only used to pick a year when the text omits it.
func Extract(text string, ref time.Time) []Event {
	if ref.IsZero() {
		ref = time.Now()
	}
	found := []Event{}
	seen := map[string]bool{}
	for _, match := range []func(string, time.Time) (Event, bool){matchISO, matchNatural} {
		ev, ok := match(text, ref)
		if !ok {
			continue
		}
		key := strings.ToLower(ev.Title) + "|" + ev.Date
		if seen[key] {
			continue
		}
		seen[key] = true
		found = append(found, ev)
	}
	return found
}

func matchISO(text string, _ time.Time) (Event, bool) {
	m := isoPattern.FindStringSubmatch(text)
	if m == nil {
		return Event{}, false
	}
	title := cleanTitle(m[1])
	if title == "" {
		return Event{}, false
	}
	year, _ := strconv.Atoi(m[2])
	month, _ := strconv.Atoi(m[3])
	day, _ := strconv.Atoi(m[4])
	if !validMonthDay(month, day) {
		return Event{}, false
	}
	return Event{Title: title, Date: formatDate(year, month, day)}, true
}

func matchNatural(text string, ref time.Time) (Event, bool) {
	m := naturalPattern.FindStringSubmatch(text)
	if m == nil {
		return Event{}, false
	}
	title := cleanTitle(m[1])
	if title == "" {
		return Event{}, false
	}
	month, ok := monthNames[strings.ToLower(m[2])]
	if !ok {
		return Event{}, false
	}
	day, _ := strconv.Atoi(m[3])
	if !validMonthDay(int(month), day) {
		return Event{}, false
	}
	year := 0
	if m[4] != "" {
		year, _ = strconv.Atoi(m[4])
	} else {
		year = ChooseYear(month, day, ref)
	}
	return Event{Title: title, Date: formatDate(year, int(month), day)}, true
}

// ChooseYear resolves a month/day without a year to the next time it occurs
// on or after ref's calendar day.
func ChooseYear(month time.Month, day int, ref time.Time) int {
	today := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	candidate := time.Date(ref.Year(), month, day, 0, 0, 0, 0, ref.Location())
	if !candidate.Before(today) {
		return ref.Year()
	}
	return ref.Year() + 1
}

func validMonthDay(month, day int) bool {
	return month >= 1 && month <= 12 && day >= 1 && day <= 31
}

func formatDate(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

func cleanTitle(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}
