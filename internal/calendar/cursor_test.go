package calendar

import (
	"testing"
	"time"
)

func TestCursorMoveAcrossMonthEnd(t *testing.T) {
	c := NewCursor(Date(2025, time.January, 31))
	c = c.Move(1)

	if !c.Selected.Equal(Date(2025, time.February, 1)) {
		t.Errorf("selected = %s, want 2025-02-01", c.Selected.Format("2006-01-02"))
	}
	if !c.Month.Equal(Date(2025, time.February, 1)) {
		t.Errorf("month = %s, want 2025-02-01", c.Month.Format("2006-01-02"))
	}
}

func TestCursorMoveBackwardAcrossYear(t *testing.T) {
	c := NewCursor(Date(2026, time.January, 3))
	c = c.Move(-7)

	if !c.Selected.Equal(Date(2025, time.December, 27)) {
		t.Errorf("selected = %s, want 2025-12-27", c.Selected.Format("2006-01-02"))
	}
	if !c.Month.Equal(Date(2025, time.December, 1)) {
		t.Errorf("month = %s, want 2025-12-01", c.Month.Format("2006-01-02"))
	}
}

func TestCursorMoveSameMonthNumberNextYear(t *testing.T) {
	c := NewCursor(Date(2025, time.January, 15))
	c = c.Move(365)

	if !c.Month.Equal(Date(2026, time.January, 1)) {
		t.Errorf("month = %s, want 2026-01-01", c.Month.Format("2006-01-02"))
	}
}

func TestCursorMoveWithinMonth(t *testing.T) {
	c := NewCursor(Date(2025, time.March, 10))
	c = c.Move(7)

	if !c.Month.Equal(Date(2025, time.March, 1)) {
		t.Errorf("month changed to %s", c.Month.Format("2006-01-02"))
	}
	if c.Selected.Day() != 17 {
		t.Errorf("selected day = %d, want 17", c.Selected.Day())
	}
}

func TestCursorNextMonthClampsSelection(t *testing.T) {
	c := NewCursor(Date(2025, time.January, 31))
	c = c.NextMonth()

	if !c.Month.Equal(Date(2025, time.February, 1)) {
		t.Errorf("month = %s", c.Month.Format("2006-01-02"))
	}
	if !c.Selected.Equal(Date(2025, time.February, 28)) {
		t.Errorf("selected = %s, want 2025-02-28", c.Selected.Format("2006-01-02"))
	}

	c = c.PrevMonth()
	if !c.Selected.Equal(Date(2025, time.January, 28)) {
		t.Errorf("selected = %s, want 2025-01-28", c.Selected.Format("2006-01-02"))
	}
}

func TestCursorPrevMonthYearRollover(t *testing.T) {
	c := NewCursor(Date(2026, time.January, 5)).PrevMonth()
	if !c.Month.Equal(Date(2025, time.December, 1)) {
		t.Errorf("month = %s, want 2025-12-01", c.Month.Format("2006-01-02"))
	}
}

func TestCursorGotoToday(t *testing.T) {
	now := time.Date(2026, time.October, 14, 15, 4, 5, 0, time.Local)
	c := NewCursor(Date(2020, time.May, 5)).GotoToday(now)

	if !c.Selected.Equal(Date(2026, time.October, 14)) {
		t.Errorf("selected = %s", c.Selected.Format("2006-01-02"))
	}
	if !c.Month.Equal(Date(2026, time.October, 1)) {
		t.Errorf("month = %s", c.Month.Format("2006-01-02"))
	}
}
