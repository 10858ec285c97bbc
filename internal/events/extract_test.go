package events

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestExtract(t *testing.T) {
	ref := time.Date(2025, 11, 1, 15, 30, 0, 0, time.UTC)
	tests := []struct {
		name string
		text string
		want []Event
	}{
		{
			name: "iso date",
			text: "Dentist on 2025-09-02",
			want: []Event{{Title: "Dentist", Date: "2025-09-02"}},
		},
		{
			name: "iso uppercase on",
			text: "Dentist ON 2025-09-02",
			want: []Event{{Title: "Dentist", Date: "2025-09-02"}},
		},
		{
			name: "ordinal with year",
			text: "Trip on March 3rd, 2027",
			want: []Event{{Title: "Trip", Date: "2027-03-03"}},
		},
		{
			name: "plain day with year",
			text: "Trip on March 3, 2027",
			want: []Event{{Title: "Trip", Date: "2027-03-03"}},
		},
		{
			name: "abbreviated month",
			text: "Renew passport on Sept. 14th",
			want: []Event{{Title: "Renew passport", Date: "2026-09-14"}},
		},
		{
			name: "title whitespace collapsed",
			text: "  Book   club\tmeeting on Dec 5 2026",
			want: []Event{{Title: "Book club meeting", Date: "2026-12-05"}},
		},
		{
			name: "out of range iso month",
			text: "Party on 2025-13-40",
			want: []Event{},
		},
		{
			name: "out of range natural day",
			text: "Party on March 32",
			want: []Event{},
		},
		{
			name: "no match",
			text: "buy milk and eggs",
			want: []Event{},
		},
		{
			name: "both patterns same event",
			text: "Dentist on 2025-09-02\ndentist on September 2, 2025",
			want: []Event{{Title: "Dentist", Date: "2025-09-02"}},
		},
		{
			name: "both patterns different events",
			text: "Dentist on 2025-09-02\nRecital on May 9th, 2026",
			want: []Event{
				{Title: "Dentist", Date: "2025-09-02"},
				{Title: "Recital", Date: "2026-05-09"},
			},
		},
		{
			name: "permissive calendar day",
			text: "Odd day on February 30, 2026",
			want: []Event{{Title: "Odd day", Date: "2026-02-30"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text, ref)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Extract(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestExtractYearRollover(t *testing.T) {
	text := "Colton starts school on September 2nd."

	late := Extract(text, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC))
	if len(late) != 1 || late[0].Date != "2026-09-02" {
		t.Fatalf("expected 2026-09-02 after the date passed, got %#v", late)
	}
	if late[0].Title != "Colton starts school" {
		t.Fatalf("unexpected title %q", late[0].Title)
	}

	early := Extract(text, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	if len(early) != 1 || early[0].Date != "2025-09-02" {
		t.Fatalf("expected 2025-09-02 before the date, got %#v", early)
	}
}

func TestExtractDeterministic(t *testing.T) {
	ref := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	text := "Vet on 2025-07-01 and Groomer on July 3rd"
	first := Extract(text, ref)
	second := Extract(text, ref)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("Extract is not deterministic:\n%s", diff)
	}
}

func TestChooseYearSameDayIsThisYear(t *testing.T) {
	ref := time.Date(2025, 9, 2, 23, 0, 0, 0, time.UTC)
	if got := ChooseYear(time.September, 2, ref); got != 2025 {
		t.Fatalf("expected same-day to keep 2025, got %d", got)
	}
	if got := ChooseYear(time.September, 1, ref); got != 2026 {
		t.Fatalf("expected yesterday to roll to 2026, got %d", got)
	}
}

func TestWriteICS(t *testing.T) {
	var buf bytes.Buffer
	evs := []Event{
		{Title: "Dentist", Date: "2025-09-02"},
		{Title: "Odd day", Date: "2026-02-30"},
	}
	stamp := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	if err := WriteICS(&buf, evs, stamp); err != nil {
		t.Fatalf("WriteICS error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "SUMMARY:Dentist") {
		t.Fatalf("expected summary in output, got:\n%s", out)
	}
	if !strings.Contains(out, "20250902") {
		t.Fatalf("expected all-day start date in output, got:\n%s", out)
	}
	if strings.Contains(out, "Odd day") {
		t.Fatalf("expected impossible date to be skipped, got:\n%s", out)
	}
}
