package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/chris-regnier/termcal/internal/event"
)

// PreviewWidth is the width description previews are cut to.
const PreviewWidth = 50

// Preview returns the first line of a description, cut to width cells with
// a trailing ellipsis.
func Preview(description string, width int) string {
	line, _, _ := strings.Cut(strings.TrimSpace(description), "\n")
	line = strings.TrimSpace(line)
	if lipgloss.Width(line) <= width {
		return line
	}
	return truncate.StringWithTail(line, uint(width), "...")
}

func when(e event.Event) string {
	return fmt.Sprintf("%s %s", e.Date.Format("2006-01-02"), e.DisplayTime())
}

// FormatEventAdded formats a creation confirmation message.
func FormatEventAdded(w io.Writer, e event.Event) {
	fmt.Fprintf(w, "Added: %s (%s, %s)\n", e.Title, e.ID, when(e))
}

// FormatEventUpdated formats an update confirmation message.
func FormatEventUpdated(w io.Writer, e event.Event) {
	fmt.Fprintf(w, "Updated: %s (%s, %s)\n", e.Title, e.ID, when(e))
}

// FormatEventDeleted formats a deletion confirmation message.
func FormatEventDeleted(w io.Writer, e event.Event) {
	fmt.Fprintf(w, "Deleted: %s (%s)\n", e.Title, e.ID)
}

// FormatNoChanges formats a "no changes" message.
func FormatNoChanges(w io.Writer, id string) {
	fmt.Fprintf(w, "No changes for event %s.\n", id)
}

// FormatEventList writes one line per event with an indented description
// preview.
func FormatEventList(w io.Writer, events []event.Event) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No events found.")
		return
	}
	for _, e := range events {
		fmt.Fprintf(w, "%s  %s  %-7s  %s  [%s]\n",
			e.Date.Format("2006-01-02"),
			e.Date.Format("Mon"),
			e.DisplayTime(),
			e.Title,
			e.ID,
		)
		if e.Description != "" {
			fmt.Fprintf(w, "    %s\n", Preview(e.Description, PreviewWidth))
		}
	}
}

// FormatEventFull writes an event with its description rendered as markdown.
func FormatEventFull(w io.Writer, e event.Event, markdownStyle string) {
	fmt.Fprintf(w, "Event: %s\n", e.ID)
	fmt.Fprintf(w, "Title: %s\n", e.Title)
	fmt.Fprintf(w, "Date:  %s\n", e.Date.Format("Monday, January 02, 2006"))
	fmt.Fprintf(w, "Time:  %s\n", e.DisplayTime())
	if e.Description != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, RenderMarkdown(e.Description, 80, markdownStyle))
	}
}

// FormatHolidays writes holidays in date order.
func FormatHolidays(w io.Writer, holidays map[time.Time]string) {
	if len(holidays) == 0 {
		fmt.Fprintln(w, "No holidays found.")
		return
	}
	for _, d := range SortedDates(holidays) {
		fmt.Fprintf(w, "%s  %s  %s\n", d.Format("2006-01-02"), d.Format("Mon"), holidays[d])
	}
}

// SortedDates returns the keys of a date-keyed map in ascending order.
func SortedDates[V any](m map[time.Time]V) []time.Time {
	dates := make([]time.Time, 0, len(m))
	for d := range m {
		dates = append(dates, d)
	}
	slices.SortFunc(dates, func(a, b time.Time) int { return a.Compare(b) })
	return dates
}

// FormatJSON writes any value as JSON to the writer.
func FormatJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ToRecords converts events to their JSON form.
func ToRecords(events []event.Event) []event.Record {
	out := make([]event.Record, len(events))
	for i, e := range events {
		out[i] = e.ToRecord()
	}
	return out
}

// HolidayJSON is the JSON form of one holiday.
type HolidayJSON struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// ToHolidayJSON converts a holiday map to a date-ordered slice.
func ToHolidayJSON(holidays map[time.Time]string) []HolidayJSON {
	out := make([]HolidayJSON, 0, len(holidays))
	for _, d := range SortedDates(holidays) {
		out = append(out, HolidayJSON{Date: d.Format("2006-01-02"), Name: holidays[d]})
	}
	return out
}

// DeleteResult is the JSON form of a delete outcome.
type DeleteResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}
