package recurrence

import (
	"fmt"
	"strconv"
	"strings"
)

var setPosWords = map[string]string{
	"1":  "first",
	"2":  "second",
	"3":  "third",
	"4":  "fourth",
	"-1": "last",
}

// HumanizeRule renders a FREQ=...;INTERVAL=... rule as a short phrase. A
// rule without a known FREQ is returned unchanged. Keys and values are
// case-sensitive.
func HumanizeRule(rule string) string {
	if rule == "" {
		return ""
	}
	parts := ParseRule(rule)
	interval := 1
	if v, err := strconv.Atoi(parts["INTERVAL"]); err == nil {
		interval = positiveOr(v, 1)
	}
	byDay := parts["BYDAY"]
	switch parts["FREQ"] {
	case "DAILY":
		return every(interval, "day")
	case "WEEKLY":
		if byDay == "" {
			return every(interval, "week")
		}
		days := strings.Join(strings.Split(byDay, ","), ", ")
		if interval == 1 {
			return "Every " + days
		}
		return fmt.Sprintf("Every %d weeks on %s", interval, days)
	case "MONTHLY":
		if monthDay := parts["BYMONTHDAY"]; monthDay != "" {
			return every(interval, "month") + " on the " + monthDay
		}
		if pos := parts["BYSETPOS"]; pos != "" && byDay != "" && !strings.Contains(byDay, ",") {
			ordinal, ok := setPosWords[pos]
			if !ok {
				ordinal = "#" + pos
			}
			if interval == 1 {
				return fmt.Sprintf("Every %s %s", ordinal, byDay)
			}
			return fmt.Sprintf("Every %d months on the %s %s", interval, ordinal, byDay)
		}
		return every(interval, "month")
	case "YEARLY":
		month, day := parts["BYMONTH"], parts["BYMONTHDAY"]
		if month != "" && day != "" {
			return fmt.Sprintf("Every year on %s/%s", unpad(month), unpad(day))
		}
		return every(interval, "year")
	default:
		return rule
	}
}

// ParseRule splits "KEY=VALUE;KEY=VALUE" into a map. A later duplicate key
// overrides an earlier one; a leading RRULE: is ignored.
func ParseRule(rule string) map[string]string {
	parts := map[string]string{}
	for _, pair := range strings.Split(stripRulePrefix(rule), ";") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		parts[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return parts
}

func stripRulePrefix(rule string) string {
	return strings.TrimPrefix(strings.TrimSpace(rule), "RRULE:")
}

func unpad(value string) string {
	if n, err := strconv.Atoi(value); err == nil {
		return strconv.Itoa(n)
	}
	return value
}
