package recurrence

import (
	"fmt"
	"regexp"
	"strings"
)

var dayMap = map[string]string{
	"monday":     "MO",
	"mondays":    "MO",
	"mon":        "MO",
	"tuesday":    "TU",
	"tuesdays":   "TU",
	"tue":        "TU",
	"tues":       "TU",
	"wednesday":  "WE",
	"wednesdays": "WE",
	"wed":        "WE",
	"thursday":   "TH",
	"thursdays":  "TH",
	"thu":        "TH",
	"thurs":      "TH",
	"friday":     "FR",
	"fridays":    "FR",
	"fri":        "FR",
	"saturday":   "SA",
	"saturdays":  "SA",
	"sat":        "SA",
	"sunday":     "SU",
	"sundays":    "SU",
	"sun":        "SU",
}

var dayOrder = []string{"MO", "TU", "WE", "TH", "FR", "SA", "SU"}

var intervalPattern = regexp.MustCompile(`\bevery (\d{1,3}|other) (day|week|month|year)s?\b`)

var freqByUnit = map[string]string{
	"day":   "DAILY",
	"week":  "WEEKLY",
	"month": "MONTHLY",
	"year":  "YEARLY",
}

// ParseEvery turns a short phrase ("daily", "every 2 weeks", "mon and fri",
// a preset name) into a rule string.
func ParseEvery(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", nil
	}
	if rule, ok := PresetRule(input); ok {
		return rule, nil
	}
	if _, ok := ParseRule(input)["FREQ"]; ok {
		return stripRulePrefix(input), nil
	}
	rule, ok := parseRecurrence(input, true)
	if !ok {
		return "", fmt.Errorf("unsupported recurrence: %s", input)
	}
	return rule, nil
}

// ExtractFromText looks for a recurrence phrase inside a sentence. It returns
// the sentence without the phrase and the rule when one is found.
func ExtractFromText(text string) (string, string, bool) {
	input := strings.TrimSpace(text)
	if input == "" {
		return text, "", false
	}
	rule, ok := parseRecurrence(input, false)
	if !ok {
		return text, "", false
	}
	return stripRecurrenceTokens(input), rule, true
}

func parseRecurrence(input string, allowBareDays bool) (string, bool) {
	clean := strings.ToLower(strings.TrimSpace(input))
	if m := intervalPattern.FindStringSubmatch(clean); m != nil {
		n := m[1]
		if n == "other" {
			n = "2"
		}
		rule := "FREQ=" + freqByUnit[m[2]]
		if n != "1" {
			rule += ";INTERVAL=" + n
		}
		if m[2] == "week" {
			if days := parseDayCodes(clean); len(days) > 0 {
				rule += ";BYDAY=" + strings.Join(days, ",")
			}
		}
		return rule, true
	}
	if containsAny(clean, []string{"weekdays", "every weekday", "workdays"}) {
		return "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR", true
	}
	if containsAny(clean, []string{"weekends", "every weekend"}) {
		return "FREQ=WEEKLY;BYDAY=SA,SU", true
	}
	if allowBareDays || containsRecurrencePrefix(clean) {
		if days := parseDayCodes(clean); len(days) > 0 {
			return "FREQ=WEEKLY;BYDAY=" + strings.Join(days, ","), true
		}
	}
	if containsAny(clean, []string{"daily", "every day", "each day"}) {
		return "FREQ=DAILY", true
	}
	if containsAny(clean, []string{"weekly", "every week", "each week"}) {
		return "FREQ=WEEKLY", true
	}
	if containsAny(clean, []string{"monthly", "every month", "each month"}) {
		return "FREQ=MONTHLY", true
	}
	if containsAny(clean, []string{"yearly", "annually", "every year", "each year"}) {
		return "FREQ=YEARLY", true
	}
	return "", false
}

func parseDayCodes(clean string) []string {
	found := map[string]bool{}
	for _, token := range strings.Fields(clean) {
		key := strings.Trim(token, " ,.;:")
		if code, ok := dayMap[key]; ok {
			found[code] = true
		}
	}
	result := []string{}
	for _, code := range dayOrder {
		if found[code] {
			result = append(result, code)
		}
	}
	return result
}

func containsRecurrencePrefix(text string) bool {
	for _, token := range strings.Fields(text) {
		switch token {
		case "every", "each":
			return true
		}
	}
	return false
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

var recurrenceTokens = []string{
	"every", "each", "other", "daily", "weekly", "monthly", "yearly", "annually",
	"weekdays", "weekday", "weekends", "weekend", "workdays",
	"days", "day", "weeks", "week", "months", "month", "years", "year", "and",
}

// stripRecurrenceTokens drops whole words that belong to a recurrence phrase,
// including an "on" that introduces a weekday.
func stripRecurrenceTokens(text string) string {
	drop := map[string]bool{}
	for _, token := range recurrenceTokens {
		drop[token] = true
	}
	for token := range dayMap {
		drop[token] = true
	}
	words := strings.Fields(text)
	kept := []string{}
	afterEvery := false
	for i, word := range words {
		key := strings.ToLower(strings.Trim(word, ",.;:"))
		if drop[key] || (afterEvery && isCount(key)) || (key == "on" && beforeWeekday(words, i)) {
			afterEvery = key == "every"
			continue
		}
		afterEvery = false
		kept = append(kept, word)
	}
	return strings.Join(kept, " ")
}

func beforeWeekday(words []string, i int) bool {
	if i+1 >= len(words) {
		return false
	}
	_, ok := dayMap[strings.ToLower(strings.Trim(words[i+1], ",.;:"))]
	return ok
}

func isCount(word string) bool {
	if word == "" || len(word) > 3 {
		return false
	}
	for _, r := range word {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
