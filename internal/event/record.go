package event

import (
	"fmt"
	"strings"

	"github.com/chris-regnier/termcal/internal/calendar"
)

// Record is the persisted form of an event.
type Record struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Date        string  `json:"date"`
	Time        *string `json:"time"`
	Description string  `json:"description"`
}

// ToRecord converts the event to its persisted form.
func (e Event) ToRecord() Record {
	r := Record{
		ID:          e.ID,
		Title:       e.Title,
		Date:        e.Date.Format("2006-01-02"),
		Description: e.Description,
	}
	if e.Time != nil {
		s := e.Time.String()
		r.Time = &s
	}
	return r
}

// FromRecord rebuilds an event from its persisted form. Missing id, title or
// date fail with ErrValidation; a malformed date or time fails with ErrFormat.
// The record's ID is kept as is.
func FromRecord(r Record) (Event, error) {
	var missing []string
	if r.ID == "" {
		missing = append(missing, "id")
	}
	if r.Title == "" {
		missing = append(missing, "title")
	}
	if r.Date == "" {
		missing = append(missing, "date")
	}
	if len(missing) > 0 {
		return Event{}, fmt.Errorf("%w: missing required fields: %s", ErrValidation, strings.Join(missing, ", "))
	}

	date, err := calendar.ParseDate(r.Date)
	if err != nil {
		return Event{}, fmt.Errorf("%w: invalid date %q", ErrFormat, r.Date)
	}

	e := Event{
		ID:          r.ID,
		Title:       strings.TrimSpace(r.Title),
		Date:        date,
		Description: strings.TrimSpace(r.Description),
	}
	if r.Time != nil && *r.Time != "" {
		c, err := ParseClock(*r.Time)
		if err != nil {
			return Event{}, err
		}
		e.Time = &c
	}

	if err := e.Validate(); err != nil {
		return Event{}, err
	}
	return e, nil
}
