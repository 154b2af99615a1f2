package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/chris-regnier/termcal/internal/event"
)

func TestAddDefaultsToToday(t *testing.T) {
	setupTestEnv(t)

	var buf bytes.Buffer
	e, err := addRun(&buf, "Call mom", addOptions{})
	if err != nil {
		t.Fatalf("addRun: %v", err)
	}
	if e.Date.Format("2006-01-02") != "2025-03-10" {
		t.Errorf("date = %s, want today", e.Date.Format("2006-01-02"))
	}
	if e.Time != nil {
		t.Error("expected all-day event")
	}
	if _, ok := store.Get(e.ID); !ok {
		t.Error("event not stored")
	}
	want := "Added: Call mom (" + e.ID + ", 2025-03-10 All day)\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestAddWithDateAndTime(t *testing.T) {
	setupTestEnv(t)

	var buf bytes.Buffer
	e, err := addRun(&buf, "  Dentist ", addOptions{date: "2025-03-14", time: "0930", description: "Bring card"})
	if err != nil {
		t.Fatalf("addRun: %v", err)
	}
	if e.Title != "Dentist" {
		t.Errorf("title = %q", e.Title)
	}
	if e.Time == nil || e.Time.Short() != "09:30" {
		t.Errorf("time = %v", e.Time)
	}
	got := store.ByDate(e.Date)
	if len(got) != 1 || got[0].Description != "Bring card" {
		t.Errorf("ByDate = %+v", got)
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	setupTestEnv(t)

	tests := []struct {
		name  string
		title string
		opts  addOptions
		want  error
	}{
		{"blank title", "   ", addOptions{}, event.ErrValidation},
		{"bad date", "X", addOptions{date: "2025-13-01"}, event.ErrFormat},
		{"bad time", "X", addOptions{time: "noon"}, event.ErrFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			_, err := addRun(&buf, tt.title, tt.opts)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
	if n := len(store.All()); n != 0 {
		t.Errorf("%d events stored after failures", n)
	}
}

func TestAddJSONOutput(t *testing.T) {
	setupTestEnv(t)
	jsonOutput = true

	var buf bytes.Buffer
	e, err := addRun(&buf, "Standup", addOptions{date: "2025-03-11", time: "09:00"})
	if err != nil {
		t.Fatalf("addRun: %v", err)
	}
	var got event.Record
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("JSON unmarshal: %v", err)
	}
	if got.ID != e.ID || got.Date != "2025-03-11" || got.Title != "Standup" {
		t.Errorf("record = %+v", got)
	}
	if strings.Contains(buf.String(), "Added:") {
		t.Error("text output mixed into JSON")
	}
}
