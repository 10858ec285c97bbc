package recurrence

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Descriptor is the structured repeat setting stored on entries and tasks.
type Descriptor struct {
	Unit     string   `json:"unit"`
	Interval int      `json:"interval,omitempty"`
	ByDay    []string `json:"byDay,omitempty"`
}

// Repeat is either a legacy free-text label or a Descriptor.
type Repeat struct {
	Label      string
	Descriptor *Descriptor
}

// UnmarshalJSON accepts a bare string, an object, or null. A missing or
// non-numeric interval decodes to 1.
func (r *Repeat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = Repeat{}
		return nil
	}
	if data[0] == '"' {
		var label string
		if err := json.Unmarshal(data, &label); err != nil {
			return err
		}
		*r = Repeat{Label: label}
		return nil
	}
	var raw struct {
		Unit     string          `json:"unit"`
		Interval json.RawMessage `json:"interval"`
		ByDay    []string        `json:"byDay"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode repeat: %w", err)
	}
	*r = Repeat{Descriptor: &Descriptor{
		Unit:     raw.Unit,
		Interval: decodeInterval(raw.Interval),
		ByDay:    raw.ByDay,
	}}
	return nil
}

func (r Repeat) MarshalJSON() ([]byte, error) {
	if r.Descriptor != nil {
		return json.Marshal(r.Descriptor)
	}
	if r.Label == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.Label)
}

func decodeInterval(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 1
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return positiveOr(int(n), 1)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return positiveOr(v, 1)
		}
	}
	return 1
}

// DescribeRepeat renders a repeat setting for display. Labels are returned
// verbatim; unknown units read "Repeats".
func DescribeRepeat(r *Repeat) string {
	if r == nil {
		return ""
	}
	if r.Descriptor == nil {
		return r.Label
	}
	d := r.Descriptor
	interval := positiveOr(d.Interval, 1)
	switch d.Unit {
	case "day":
		return every(interval, "day")
	case "week":
		base := every(interval, "week")
		if len(d.ByDay) == 0 {
			return base
		}
		labels := make([]string, 0, len(d.ByDay))
		for _, code := range d.ByDay {
			labels = append(labels, weekdayLabel(code))
		}
		return base + " on " + strings.Join(labels, ", ")
	case "month":
		return every(interval, "month")
	default:
		return "Repeats"
	}
}

// every builds "Every day" / "Every 3 days".
func every(interval int, unit string) string {
	if interval == 1 {
		return "Every " + unit
	}
	return fmt.Sprintf("Every %d %ss", interval, unit)
}

func weekdayLabel(code string) string {
	switch code {
	case "MO":
		return "Mon"
	case "TU":
		return "Tue"
	case "WE":
		return "Wed"
	case "TH":
		return "Thu"
	case "FR":
		return "Fri"
	case "SA":
		return "Sat"
	case "SU":
		return "Sun"
	default:
		return code
	}
}

func positiveOr(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}
