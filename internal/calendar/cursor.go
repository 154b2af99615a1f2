package calendar

import "time"

// Cursor is the navigation state of a month view: the displayed month and the
// selected date. The selection always lies inside the displayed month; every
// method that moves one keeps the other consistent.
type Cursor struct {
	Month    time.Time // first of the displayed month
	Selected time.Time
}

// NewCursor returns a cursor selecting d.
func NewCursor(d time.Time) Cursor {
	d = NormalizeDate(d)
	return Cursor{Month: FirstOfMonth(d), Selected: d}
}

// Move shifts the selection by delta days. When the result lands in another
// month, the displayed month follows it.
func (c Cursor) Move(delta int) Cursor {
	next := c.Selected.AddDate(0, 0, delta)
	if !SameMonth(next, c.Month) {
		c.Month = FirstOfMonth(next)
	}
	c.Selected = next
	return c
}

// Select points the cursor at d, changing the displayed month if needed.
func (c Cursor) Select(d time.Time) Cursor {
	return NewCursor(d)
}

// NextMonth displays the following month. The selection keeps its day of
// month, clamped to the new month's length.
func (c Cursor) NextMonth() Cursor {
	return c.showMonth(NextMonth(c.Month))
}

// PrevMonth displays the preceding month, clamping the selection the same way
// as NextMonth.
func (c Cursor) PrevMonth() Cursor {
	return c.showMonth(PrevMonth(c.Month))
}

// GotoToday displays the current month and selects today.
func (c Cursor) GotoToday(now time.Time) Cursor {
	return NewCursor(Today(now))
}

func (c Cursor) showMonth(first time.Time) Cursor {
	day := min(c.Selected.Day(), DaysIn(first.Year(), first.Month()))
	return Cursor{Month: first, Selected: Date(first.Year(), first.Month(), day)}
}
