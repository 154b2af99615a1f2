package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/chris-regnier/termcal/internal/event"
)

func TestPreview(t *testing.T) {
	exact := strings.Repeat("x", 50)
	long := strings.Repeat("y", 60)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"short", "Bring snacks", "Bring snacks"},
		{"first line only", "Line one\nLine two", "Line one"},
		{"exact width kept", exact, exact},
		{"long cut with ellipsis", long, strings.Repeat("y", 47) + "..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preview(tt.in, PreviewWidth); got != tt.want {
				t.Errorf("Preview(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func sampleEvent() event.Event {
	return event.Event{
		ID:          "abc12345",
		Title:       "Dentist",
		Date:        time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Time:        event.At(9, 30),
		Description: "Bring insurance card",
	}
}

func TestFormatEventMessages(t *testing.T) {
	e := sampleEvent()
	var buf bytes.Buffer

	FormatEventAdded(&buf, e)
	if got := buf.String(); got != "Added: Dentist (abc12345, 2025-03-14 09:30)\n" {
		t.Errorf("added = %q", got)
	}

	buf.Reset()
	e.Time = nil
	FormatEventUpdated(&buf, e)
	if got := buf.String(); got != "Updated: Dentist (abc12345, 2025-03-14 All day)\n" {
		t.Errorf("updated = %q", got)
	}

	buf.Reset()
	FormatEventDeleted(&buf, e)
	if got := buf.String(); got != "Deleted: Dentist (abc12345)\n" {
		t.Errorf("deleted = %q", got)
	}

	buf.Reset()
	FormatNoChanges(&buf, e.ID)
	if got := buf.String(); got != "No changes for event abc12345.\n" {
		t.Errorf("no changes = %q", got)
	}
}

func TestFormatEventList(t *testing.T) {
	var buf bytes.Buffer
	FormatEventList(&buf, nil)
	if buf.String() != "No events found.\n" {
		t.Errorf("empty list = %q", buf.String())
	}

	buf.Reset()
	FormatEventList(&buf, []event.Event{sampleEvent()})
	want := "2025-03-14  Fri  09:30    Dentist  [abc12345]\n    Bring insurance card\n"
	if buf.String() != want {
		t.Errorf("list =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestFormatEventFull(t *testing.T) {
	var buf bytes.Buffer
	FormatEventFull(&buf, sampleEvent(), "notty")
	out := stripANSI(buf.String())
	for _, want := range []string{"Event: abc12345", "Title: Dentist", "Friday, March 14, 2025", "09:30", "insurance card"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatHolidays(t *testing.T) {
	var buf bytes.Buffer
	FormatHolidays(&buf, nil)
	if buf.String() != "No holidays found.\n" {
		t.Errorf("empty = %q", buf.String())
	}

	jul4 := time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC)
	jan1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	holidays := map[time.Time]string{jul4: "Independence Day", jan1: "New Year's Day"}

	buf.Reset()
	FormatHolidays(&buf, holidays)
	want := "2025-01-01  Wed  New Year's Day\n2025-07-04  Fri  Independence Day\n"
	if buf.String() != want {
		t.Errorf("holidays = %q", buf.String())
	}

	js := ToHolidayJSON(holidays)
	if len(js) != 2 || js[0].Date != "2025-01-01" || js[1].Name != "Independence Day" {
		t.Errorf("ToHolidayJSON = %+v", js)
	}
}

func TestFormatJSONRecords(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatJSON(&buf, ToRecords([]event.Event{sampleEvent()})); err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"id": "abc12345"`, `"date": "2025-03-14"`, `"time": "09:30:00"`} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON missing %s:\n%s", want, out)
		}
	}

	buf.Reset()
	FormatJSON(&buf, ToRecords(nil))
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("empty records = %q", buf.String())
	}
}
