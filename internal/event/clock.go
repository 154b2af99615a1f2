package event

import (
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Clock is a time of day without a date or zone.
type Clock struct {
	Hour   int
	Minute int
	Second int
}

// Validate checks that every component is within a day.
func (c Clock) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Hour, validation.Min(0), validation.Max(23)),
		validation.Field(&c.Minute, validation.Min(0), validation.Max(59)),
		validation.Field(&c.Second, validation.Min(0), validation.Max(59)),
	)
}

// At returns a clock for hour:minute.
func At(hour, minute int) *Clock {
	return &Clock{Hour: hour, Minute: minute}
}

// ParseClock parses an ISO-8601 time of day. "HH:MM:SS" and "HH:MM" are
// accepted, as is the "HHMM" shorthand typed into the event form.
func ParseClock(s string) (Clock, error) {
	s = strings.TrimSpace(s)
	if len(s) == 4 && !strings.Contains(s, ":") {
		s = s[:2] + ":" + s[2:]
	}

	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return Clock{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
		}
	}
	return Clock{}, fmt.Errorf("%w: invalid time %q (use HH:MM)", ErrFormat, s)
}

// String formats the clock as HH:MM:SS.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// Short formats the clock as HH:MM.
func (c Clock) Short() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Duration returns the offset of the clock from midnight.
func (c Clock) Duration() time.Duration {
	return time.Duration(c.Hour)*time.Hour + time.Duration(c.Minute)*time.Minute + time.Duration(c.Second)*time.Second
}
