package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/chris-regnier/termcal/internal/calendar"
	"github.com/chris-regnier/termcal/internal/event"
)

func parseDateFlag(name, value string) (time.Time, error) {
	d, err := calendar.ParseDate(strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid --%s %q (use YYYY-MM-DD)", event.ErrFormat, name, value)
	}
	return d, nil
}

// parseTimeFlag returns nil for an empty value, meaning all day.
func parseTimeFlag(value string) (*event.Clock, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	c, err := event.ParseClock(value)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
