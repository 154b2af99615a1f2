package event

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/chris-regnier/termcal/internal/calendar"
)

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 8

	// AllDay is shown in place of a time for untimed events.
	AllDay = "All day"
)

// Sentinel errors for event construction and decoding.
var (
	ErrValidation = errors.New("validation error")
	ErrFormat     = errors.New("format error")
)

// Event is a titled occurrence on a calendar date, optionally timed.
type Event struct {
	ID          string
	Title       string
	Date        time.Time // normalized, see calendar.NormalizeDate
	Time        *Clock    // nil for all-day events
	Description string
}

// NewID generates a new nanoid for an event.
func NewID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}

// New builds an event with a fresh ID. Title and description are trimmed; a
// title that is empty after trimming is rejected with ErrValidation.
func New(title string, date time.Time, clock *Clock, description string) (Event, error) {
	e := Event{
		Title:       strings.TrimSpace(title),
		Date:        calendar.NormalizeDate(date),
		Time:        clock,
		Description: strings.TrimSpace(description),
	}
	if err := e.validateFields(); err != nil {
		return Event{}, err
	}

	id, err := NewID()
	if err != nil {
		return Event{}, fmt.Errorf("generating event ID: %w", err)
	}
	e.ID = id
	return e, nil
}

var notBlank = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
})

// validClock accepts a nil clock, meaning all day.
func validClock(value interface{}) error {
	c, _ := value.(*Clock)
	if c == nil {
		return nil
	}
	return c.Validate()
}

func (e *Event) validateFields() error {
	err := validation.ValidateStruct(e,
		validation.Field(&e.Title, notBlank),
		validation.Field(&e.Date, validation.Required),
		validation.Field(&e.Time, validation.By(validClock)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// Validate checks the invariants of a live event: an ID, a non-blank title
// and a date.
func (e Event) Validate() error {
	if err := validation.Validate(e.ID, validation.Required); err != nil {
		return fmt.Errorf("%w: id: %v", ErrValidation, err)
	}
	return e.validateFields()
}

// DisplayTime returns "HH:MM" for timed events and AllDay otherwise.
func (e Event) DisplayTime() string {
	if e.Time == nil {
		return AllDay
	}
	return e.Time.Short()
}

// Starts returns the moment the event is sorted by: its date plus its time,
// or midnight for all-day events.
func (e Event) Starts() time.Time {
	if e.Time == nil {
		return e.Date
	}
	return e.Date.Add(e.Time.Duration())
}

// Equal reports whether two events carry the same ID and field values.
func (e Event) Equal(o Event) bool {
	if e.ID != o.ID || e.Title != o.Title || e.Description != o.Description || !e.Date.Equal(o.Date) {
		return false
	}
	if e.Time == nil || o.Time == nil {
		return e.Time == nil && o.Time == nil
	}
	return *e.Time == *o.Time
}

// Less orders events by date, then by time with all-day events at midnight.
func Less(a, b Event) bool {
	return a.Starts().Before(b.Starts())
}

// Sort orders events in place by Less. Events with equal keys keep their
// relative order.
func Sort(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return Less(events[i], events[j])
	})
}
