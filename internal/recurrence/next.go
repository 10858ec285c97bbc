package recurrence

import (
	"fmt"
	"strings"
	"time"

	rrule "github.com/teambition/rrule-go"
)

// NextOccurrences expands rule from start and returns up to n occurrences
// strictly after after. A zero start anchors the rule at after.
func NextOccurrences(rule string, start, after time.Time, n int, loc *time.Location) ([]time.Time, error) {
	clean := stripRulePrefix(rule)
	if clean == "" || n <= 0 {
		return nil, nil
	}
	location := loc
	if location == nil {
		location = time.Local
	}
	option, err := rrule.StrToROptionInLocation(clean, location)
	if err != nil {
		return nil, fmt.Errorf("parse rule %q: %w", strings.TrimSpace(rule), err)
	}
	if !start.IsZero() {
		option.Dtstart = start.In(location)
	} else if option.Dtstart.IsZero() {
		option.Dtstart = after.In(location)
	}
	parsed, err := rrule.NewRRule(*option)
	if err != nil {
		return nil, fmt.Errorf("build rule %q: %w", strings.TrimSpace(rule), err)
	}
	occurrences := make([]time.Time, 0, n)
	cursor := after.In(location)
	for len(occurrences) < n {
		next := parsed.After(cursor, false)
		if next.IsZero() {
			break
		}
		occurrences = append(occurrences, next.In(location))
		cursor = next
	}
	return occurrences, nil
}
