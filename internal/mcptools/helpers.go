package mcptools

import (
	"fmt"
	"strings"
	"time"

	"github.com/chris-regnier/termcal/internal/calendar"
	"github.com/chris-regnier/termcal/internal/event"
)

func parseDate(field, s string) (time.Time, error) {
	d, err := calendar.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be YYYY-MM-DD, got %q", event.ErrFormat, field, s)
	}
	return d, nil
}

func toResult(e event.Event) EventResult {
	r := EventResult{
		ID:          e.ID,
		Title:       e.Title,
		Date:        e.Date.Format("2006-01-02"),
		Description: e.Description,
	}
	if e.Time != nil {
		r.Time = e.Time.Short()
	}
	return r
}

func toResults(events []event.Event) []EventResult {
	out := make([]EventResult, 0, len(events))
	for _, e := range events {
		out = append(out, toResult(e))
	}
	return out
}
