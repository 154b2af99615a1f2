// Package view holds the navigation state behind the month, day and agenda
// screens and derives what each one displays. It knows nothing about
// rendering; the TUI draws a Snapshot.
package view

import (
	"time"

	"github.com/chris-regnier/termcal/internal/calendar"
	"github.com/chris-regnier/termcal/internal/event"
	"github.com/chris-regnier/termcal/internal/storage"
)

// Mode identifies one of the three screens.
type Mode int

const (
	ModeMonth Mode = iota
	ModeDay
	ModeAgenda
)

func (m Mode) String() string {
	switch m {
	case ModeMonth:
		return "Month"
	case ModeDay:
		return "Day"
	case ModeAgenda:
		return "Agenda"
	}
	return "Unknown"
}

// Modes lists the screens in tab order.
var Modes = []Mode{ModeMonth, ModeDay, ModeAgenda}

// Holidays is the subset of holiday.Provider a State needs.
type Holidays interface {
	Name(d time.Time) (string, bool)
	InMonth(year int, month time.Month) map[time.Time]string
}

// State is the navigation model shared by the screens. It is not safe for
// concurrent use.
type State struct {
	store      storage.Storage
	holidays   Holidays
	now        func() time.Time
	agendaDays int

	mode      Mode
	cursor    calendar.Cursor
	day       time.Time
	highlight map[Mode]int

	subscribers []func(Notification)
}

// Option configures a State.
type Option func(*State)

// WithClock sets the source of the current time.
func WithClock(now func() time.Time) Option {
	return func(s *State) { s.now = now }
}

// WithAgendaDays sets the agenda window length.
func WithAgendaDays(days int) Option {
	return func(s *State) {
		if days > 0 {
			s.agendaDays = days
		}
	}
}

// New returns a State in month mode with today selected. holidays may be nil.
func New(store storage.Storage, holidays Holidays, opts ...Option) *State {
	s := &State{
		store:      store,
		holidays:   holidays,
		now:        time.Now,
		agendaDays: storage.DefaultUpcomingDays,
		highlight:  map[Mode]int{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.cursor = calendar.NewCursor(s.today())
	s.day = s.cursor.Selected
	return s
}

func (s *State) today() time.Time {
	return calendar.Today(s.now())
}

// Mode returns the active screen.
func (s *State) Mode() Mode { return s.mode }

// Cursor returns the month navigation cursor.
func (s *State) Cursor() calendar.Cursor { return s.cursor }

// Selected returns the date selected in the month screen.
func (s *State) Selected() time.Time { return s.cursor.Selected }

// Day returns the date shown by the day screen.
func (s *State) Day() time.Time { return s.day }

// AgendaDays returns the agenda window length.
func (s *State) AgendaDays() int { return s.agendaDays }

// Highlighted returns the highlighted row of the active list screen.
func (s *State) Highlighted() int { return s.highlight[s.mode] }

// NextMonth shows the following month.
func (s *State) NextMonth() {
	s.setCursor(s.cursor.NextMonth())
}

// PrevMonth shows the preceding month.
func (s *State) PrevMonth() {
	s.setCursor(s.cursor.PrevMonth())
}

// GotoToday shows the current month with today selected.
func (s *State) GotoToday() {
	s.setCursor(s.cursor.GotoToday(s.now()))
}

// Move shifts the month selection by delta days.
func (s *State) Move(delta int) {
	s.setCursor(s.cursor.Move(delta))
}

// SelectDate selects d in the month screen and shows it in the day screen.
func (s *State) SelectDate(d time.Time) {
	s.setCursor(s.cursor.Select(d))
	s.setDay(s.cursor.Selected)
}

func (s *State) setCursor(next calendar.Cursor) {
	prev := s.cursor
	s.cursor = next
	if !prev.Month.Equal(next.Month) {
		s.notify(MonthChanged{Month: next.Month})
	}
	if !prev.Selected.Equal(next.Selected) {
		s.notify(DateSelected{Date: next.Selected})
	}
}

func (s *State) setDay(d time.Time) {
	if !s.day.Equal(d) {
		s.day = d
		s.highlight[ModeDay] = 0
	}
}

// SwitchTo activates a screen. The day screen always opens on the month
// selection.
func (s *State) SwitchTo(mode Mode) {
	if mode == ModeDay {
		s.setDay(s.cursor.Selected)
	}
	if mode == s.mode {
		return
	}
	s.mode = mode
	s.notify(ViewChanged{Mode: mode})
}

// Highlight moves the highlighted row of the active list screen by delta,
// staying within the list.
func (s *State) Highlight(delta int) {
	events := s.listEvents(s.mode)
	if events == nil {
		return
	}
	s.highlight[s.mode] = clamp(s.highlight[s.mode]+delta, len(events))
}

// SelectedEvent returns the highlighted event of the active list screen. The
// month screen has no event selection.
func (s *State) SelectedEvent() (event.Event, bool) {
	events := s.listEvents(s.mode)
	if len(events) == 0 {
		return event.Event{}, false
	}
	i := clamp(s.highlight[s.mode], len(events))
	return events[i], true
}

// DefaultDate returns the date a new event is prefilled with.
func (s *State) DefaultDate() time.Time {
	switch s.mode {
	case ModeMonth:
		return s.cursor.Selected
	case ModeDay:
		return s.day
	}
	return s.today()
}

// EventsMutated is called after the store changed. Highlights are kept in
// range and subscribers are told to redraw.
func (s *State) EventsMutated() {
	for _, mode := range []Mode{ModeDay, ModeAgenda} {
		s.highlight[mode] = clamp(s.highlight[mode], len(s.listEvents(mode)))
	}
	s.notify(EventsChanged{})
}

// listEvents returns the list backing a list screen, or nil for the month
// screen.
func (s *State) listEvents(mode Mode) []event.Event {
	switch mode {
	case ModeDay:
		return s.store.ByDate(s.day)
	case ModeAgenda:
		return s.store.Upcoming(s.today(), s.agendaDays)
	}
	return nil
}

func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
