// Package calendar provides Gregorian date arithmetic for the month, day and
// agenda views: naive date normalization, fixed-size month grids and the
// navigation cursor shared by the views.
package calendar

import "time"

// GridRows and GridCols give the fixed month grid shape. Six rows are always
// produced so the grid height does not change between months.
const (
	GridRows = 6
	GridCols = 7
)

// Weekdays is the Monday-first header for a month grid.
var Weekdays = [GridCols]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// NormalizeDate strips the time of day from t, keeping its wall-clock date.
// Dates are represented as midnight UTC so day arithmetic never crosses a DST
// transition.
func NormalizeDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Date builds a normalized date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Today returns the normalized local date of now.
func Today(now time.Time) time.Time {
	return NormalizeDate(now.Local())
}

// ParseDate parses an ISO-8601 calendar date (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.UTC)
}

// FirstOfMonth returns the first day of the month containing d.
func FirstOfMonth(d time.Time) time.Time {
	return Date(d.Year(), d.Month(), 1)
}

// SameMonth reports whether a and b fall in the same year and month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return Date(year, month+1, 0).Day()
}

// NextMonth returns the first of the month after first, rolling over the year.
func NextMonth(first time.Time) time.Time {
	year, month := first.Year(), first.Month()+1
	if month > time.December {
		month = time.January
		year++
	}
	return Date(year, month, 1)
}

// PrevMonth returns the first of the month before first, rolling back the year.
func PrevMonth(first time.Time) time.Time {
	year, month := first.Year(), first.Month()-1
	if month < time.January {
		month = time.December
		year--
	}
	return Date(year, month, 1)
}

// Cell is one day in a month grid.
type Cell struct {
	Date    time.Time
	InMonth bool // false for leading/trailing days of adjacent months
}

// Grid is a month laid out in weeks, Monday first.
type Grid [GridRows][GridCols]Cell

// MonthGrid lays out the given month as 42 cells. The grid starts on the
// Monday on or before the first of the month; cells outside the month are
// marked so views can show them without making them selectable.
func MonthGrid(year int, month time.Month) Grid {
	first := Date(year, month, 1)
	offset := (int(first.Weekday()) + 6) % 7 // days since Monday
	start := first.AddDate(0, 0, -offset)

	var g Grid
	for i := 0; i < GridRows*GridCols; i++ {
		d := start.AddDate(0, 0, i)
		g[i/GridCols][i%GridCols] = Cell{
			Date:    d,
			InMonth: d.Month() == month && d.Year() == year,
		}
	}
	return g
}

// Cells returns the grid flattened in row-major order.
func (g Grid) Cells() []Cell {
	cells := make([]Cell, 0, GridRows*GridCols)
	for _, row := range g {
		cells = append(cells, row[:]...)
	}
	return cells
}
