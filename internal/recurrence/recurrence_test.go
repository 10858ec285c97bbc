package recurrence

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestHumanizeRule(t *testing.T) {
	tests := []struct {
		rule string
		want string
	}{
		{rule: "", want: ""},
		{rule: "FREQ=DAILY", want: "Every day"},
		{rule: "FREQ=DAILY;INTERVAL=3", want: "Every 3 days"},
		{rule: "FREQ=DAILY;INTERVAL=abc", want: "Every day"},
		{rule: "FREQ=WEEKLY", want: "Every week"},
		{rule: "FREQ=WEEKLY;INTERVAL=2", want: "Every 2 weeks"},
		{rule: "FREQ=WEEKLY;BYDAY=MO,WE,FR", want: "Every MO, WE, FR"},
		{rule: "FREQ=WEEKLY;INTERVAL=2;BYDAY=TU", want: "Every 2 weeks on TU"},
		{rule: "FREQ=MONTHLY", want: "Every month"},
		{rule: "FREQ=MONTHLY;INTERVAL=6", want: "Every 6 months"},
		{rule: "FREQ=MONTHLY;BYMONTHDAY=15", want: "Every month on the 15"},
		{rule: "FREQ=MONTHLY;INTERVAL=2;BYMONTHDAY=1", want: "Every 2 months on the 1"},
		{rule: "FREQ=MONTHLY;BYSETPOS=-1;BYDAY=FR", want: "Every last FR"},
		{rule: "FREQ=MONTHLY;BYSETPOS=2;BYDAY=TH", want: "Every second TH"},
		{rule: "FREQ=MONTHLY;INTERVAL=3;BYSETPOS=1;BYDAY=MO", want: "Every 3 months on the first MO"},
		{rule: "FREQ=MONTHLY;BYSETPOS=5;BYDAY=SU", want: "Every #5 SU"},
		{rule: "FREQ=MONTHLY;BYSETPOS=1;BYDAY=MO,TU", want: "Every month"},
		{rule: "FREQ=YEARLY", want: "Every year"},
		{rule: "FREQ=YEARLY;INTERVAL=2", want: "Every 2 years"},
		{rule: "FREQ=YEARLY;BYMONTH=03;BYMONTHDAY=07", want: "Every year on 3/7"},
		{rule: "FREQ=YEARLY;BYMONTH=12", want: "Every year"},
		{rule: "FREQ=DAILY;FREQ=WEEKLY", want: "Every week"},
		{rule: "RRULE:FREQ=DAILY", want: "Every day"},
		{rule: "FREQ=HOURLY", want: "FREQ=HOURLY"},
		{rule: "every tuesday", want: "every tuesday"},
		{rule: "freq=daily", want: "freq=daily"},
		{rule: "FREQ=daily", want: "FREQ=daily"},
		{rule: "   ", want: "   "},
	}
	for _, tt := range tests {
		if got := HumanizeRule(tt.rule); got != tt.want {
			t.Fatalf("HumanizeRule(%q) = %q, want %q", tt.rule, got, tt.want)
		}
	}
}

func TestDescribeRepeat(t *testing.T) {
	tests := []struct {
		name   string
		repeat *Repeat
		want   string
	}{
		{name: "nil", repeat: nil, want: ""},
		{name: "empty", repeat: &Repeat{}, want: ""},
		{name: "legacy label", repeat: &Repeat{Label: "daily"}, want: "daily"},
		{name: "day", repeat: &Repeat{Descriptor: &Descriptor{Unit: "day"}}, want: "Every day"},
		{name: "days", repeat: &Repeat{Descriptor: &Descriptor{Unit: "day", Interval: 3}}, want: "Every 3 days"},
		{name: "week", repeat: &Repeat{Descriptor: &Descriptor{Unit: "week", Interval: 1}}, want: "Every week"},
		{name: "week with days", repeat: &Repeat{Descriptor: &Descriptor{Unit: "week", Interval: 1, ByDay: []string{"FR", "MO"}}}, want: "Every week on Fri, Mon"},
		{name: "weeks with days", repeat: &Repeat{Descriptor: &Descriptor{Unit: "week", Interval: 2, ByDay: []string{"MO", "WE"}}}, want: "Every 2 weeks on Mon, Wed"},
		{name: "months", repeat: &Repeat{Descriptor: &Descriptor{Unit: "month", Interval: 4}}, want: "Every 4 months"},
		{name: "codes outside the table", repeat: &Repeat{Descriptor: &Descriptor{Unit: "week", ByDay: []string{"mo", "XX", "SA"}}}, want: "Every week on mo, XX, Sat"},
		{name: "unknown unit", repeat: &Repeat{Descriptor: &Descriptor{Unit: "fortnight"}}, want: "Repeats"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DescribeRepeat(tt.repeat); got != tt.want {
				t.Fatalf("DescribeRepeat() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRepeatUnmarshalJSON(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: `"daily"`, want: "daily"},
		{input: `null`, want: ""},
		{input: `{"unit":"week","interval":2,"byDay":["MO","WE"]}`, want: "Every 2 weeks on Mon, Wed"},
		{input: `{"unit":"day","interval":"4"}`, want: "Every 4 days"},
		{input: `{"unit":"day","interval":"soon"}`, want: "Every day"},
		{input: `{"unit":"month"}`, want: "Every month"},
		{input: `{"unit":"fortnight"}`, want: "Repeats"},
	}
	for _, tt := range tests {
		var r Repeat
		if err := json.Unmarshal([]byte(tt.input), &r); err != nil {
			t.Fatalf("unmarshal %s: %v", tt.input, err)
		}
		if got := DescribeRepeat(&r); got != tt.want {
			t.Fatalf("DescribeRepeat(%s) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPresetsHumanize(t *testing.T) {
	want := map[string]string{
		"daily":         "Every day",
		"everyOtherDay": "Every 2 days",
		"weekdays":      "Every MO, TU, WE, TH, FR",
		"weekends":      "Every SA, SU",
		"wednesday":     "Every WE",
	}
	if len(Presets) != len(want) {
		t.Fatalf("expected %d presets, got %d", len(want), len(Presets))
	}
	for _, p := range Presets {
		if got := HumanizeRule(p.Rule); got != want[p.Name] {
			t.Fatalf("preset %s humanized to %q, want %q", p.Name, got, want[p.Name])
		}
	}
	if _, ok := PresetRule("fortnightly"); ok {
		t.Fatalf("unexpected preset fortnightly")
	}
}

func TestParseEvery(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "daily", want: "FREQ=DAILY"},
		{input: "weekdays", want: "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR"},
		{input: "every other day", want: "FREQ=DAILY;INTERVAL=2"},
		{input: "every 3 weeks", want: "FREQ=WEEKLY;INTERVAL=3"},
		{input: "Friday and monday", want: "FREQ=WEEKLY;BYDAY=MO,FR"},
		{input: "everyOtherDay", want: "FREQ=DAILY;INTERVAL=2"},
		{input: "RRULE:FREQ=MONTHLY;BYMONTHDAY=1", want: "FREQ=MONTHLY;BYMONTHDAY=1"},
		{input: "yearly", want: "FREQ=YEARLY"},
		{input: "every 2 weeks on monday", want: "FREQ=WEEKLY;INTERVAL=2;BYDAY=MO"},
		{input: "every other week on tue and thu", want: "FREQ=WEEKLY;INTERVAL=2;BYDAY=TU,TH"},
		{input: "every 1 week on friday", want: "FREQ=WEEKLY;BYDAY=FR"},
		{input: "every 3 days", want: "FREQ=DAILY;INTERVAL=3"},
	}
	for _, tt := range tests {
		got, err := ParseEvery(tt.input)
		if err != nil {
			t.Fatalf("ParseEvery(%q) error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("ParseEvery(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
	if _, err := ParseEvery("whenever"); err == nil {
		t.Fatalf("expected error for unsupported phrase")
	}
}

func TestExtractFromText(t *testing.T) {
	clean, rule, ok := ExtractFromText("Take out trash every monday and thursday")
	if !ok {
		t.Fatalf("expected recurrence to be found")
	}
	if rule != "FREQ=WEEKLY;BYDAY=MO,TH" {
		t.Fatalf("unexpected rule %q", rule)
	}
	if clean != "Take out trash" {
		t.Fatalf("unexpected clean text %q", clean)
	}

	clean, rule, ok = ExtractFromText("Buy 3 apples every 2 weeks")
	if !ok || rule != "FREQ=WEEKLY;INTERVAL=2" {
		t.Fatalf("unexpected result %q %v", rule, ok)
	}
	if clean != "Buy 3 apples" {
		t.Fatalf("unexpected clean text %q", clean)
	}

	clean, rule, ok = ExtractFromText("Meet Sam every 2 weeks on Monday")
	if !ok || rule != "FREQ=WEEKLY;INTERVAL=2;BYDAY=MO" {
		t.Fatalf("unexpected result %q %v", rule, ok)
	}
	if clean != "Meet Sam" {
		t.Fatalf("unexpected clean text %q", clean)
	}

	if _, _, ok := ExtractFromText("Lunch with Sam on friday"); ok {
		t.Fatalf("bare weekday without every should not be a recurrence")
	}
}

func TestNextOccurrences(t *testing.T) {
	start := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	got, err := NextOccurrences("FREQ=WEEKLY;BYDAY=MO,WE", start, start, 3, time.UTC)
	if err != nil {
		t.Fatalf("NextOccurrences error: %v", err)
	}
	want := []time.Time{
		time.Date(2026, 1, 7, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 14, 9, 0, 0, 0, time.UTC),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected occurrences (-want +got):\n%s", diff)
	}

	if _, err := NextOccurrences("FREQ=SOMETIMES", start, start, 3, time.UTC); err == nil {
		t.Fatalf("expected error for invalid rule")
	}
	none, err := NextOccurrences("", start, start, 3, time.UTC)
	if err != nil || none != nil {
		t.Fatalf("expected no occurrences for empty rule, got %v %v", none, err)
	}
}
