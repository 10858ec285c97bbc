package timeparse

import (
	"fmt"
	"strings"
	"time"

	"github.com/tj/go-naturaldate"
)

func LoadLocation(name string) (*time.Location, error) {
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

// ParseDate resolves "2025-11-01", "tomorrow" or "next friday" relative to now
// and returns midnight of that day in loc. Empty input yields the zero time.
func ParseDate(dateStr string, now time.Time, loc *time.Location) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", dateStr, loc); err == nil {
		return t, nil
	}
	parsed, err := naturaldate.Parse(dateStr, now.In(loc), naturaldate.WithDirection(naturaldate.Future))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	return Midnight(parsed, loc), nil
}

// Midnight truncates t to the start of its calendar day in loc.
func Midnight(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
