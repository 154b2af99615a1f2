package view

import (
	"fmt"
	"time"

	"github.com/chris-regnier/termcal/internal/calendar"
	"github.com/chris-regnier/termcal/internal/event"
)

// DayTitleLayout formats the day screen heading.
const DayTitleLayout = "Monday, January 02, 2006"

// Cell is one rendered square of the month grid. Flags are only set on
// in-month cells.
type Cell struct {
	Date      time.Time
	InMonth   bool
	Today     bool
	Selected  bool
	HasEvents bool
	Holiday   string
}

// MonthView is what the month screen shows.
type MonthView struct {
	Month time.Time
	Title string
	Cells [calendar.GridRows][calendar.GridCols]Cell
}

// DayView is what the day screen shows.
type DayView struct {
	Date      time.Time
	Title     string
	Holiday   string
	Events    []event.Event
	Highlight int
}

// AgendaView is what the agenda screen shows.
type AgendaView struct {
	From      time.Time
	Days      int
	Title     string
	Events    []event.Event
	Highlight int
}

// Snapshot is the derived content of every screen.
type Snapshot struct {
	Mode   Mode
	Month  MonthView
	Day    DayView
	Agenda AgendaView
}

// Refresh derives the content of every screen from the store and holiday
// data. It never changes the selection.
func (s *State) Refresh() Snapshot {
	return Snapshot{
		Mode:   s.mode,
		Month:  s.monthView(),
		Day:    s.dayView(),
		Agenda: s.agendaView(),
	}
}

func (s *State) monthView() MonthView {
	first := s.cursor.Month
	today := s.today()
	var holidays map[time.Time]string
	if s.holidays != nil {
		holidays = s.holidays.InMonth(first.Year(), first.Month())
	}

	mv := MonthView{Month: first, Title: first.Format("January 2006")}
	grid := calendar.MonthGrid(first.Year(), first.Month())
	for r, row := range grid {
		for c, gc := range row {
			cell := Cell{Date: gc.Date, InMonth: gc.InMonth}
			if gc.InMonth {
				cell.Today = gc.Date.Equal(today)
				cell.Selected = gc.Date.Equal(s.cursor.Selected)
				cell.HasEvents = s.store.HasEvents(gc.Date)
				cell.Holiday = holidays[gc.Date]
			}
			mv.Cells[r][c] = cell
		}
	}
	return mv
}

func (s *State) dayView() DayView {
	events := s.listEvents(ModeDay)
	dv := DayView{
		Date:      s.day,
		Title:     s.day.Format(DayTitleLayout),
		Events:    events,
		Highlight: clamp(s.highlight[ModeDay], len(events)),
	}
	if s.holidays != nil {
		dv.Holiday, _ = s.holidays.Name(s.day)
	}
	return dv
}

func (s *State) agendaView() AgendaView {
	events := s.listEvents(ModeAgenda)
	return AgendaView{
		From:      s.today(),
		Days:      s.agendaDays,
		Title:     fmt.Sprintf("Upcoming Events (Next %d days)", s.agendaDays),
		Events:    events,
		Highlight: clamp(s.highlight[ModeAgenda], len(events)),
	}
}
