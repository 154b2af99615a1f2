package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/chris-regnier/termcal/internal/calendar"
	"github.com/chris-regnier/termcal/internal/event"
	"github.com/chris-regnier/termcal/internal/view"
)

const (
	cellWidth  = 6
	gridWidth  = cellWidth * 7
	noEvents   = "No events"
	loadingFmt = "On this day: loading..."
)

// cellText is the day number, marked when the day has events.
func cellText(c view.Cell) string {
	text := fmt.Sprintf("%2d", c.Date.Day())
	if c.HasEvents {
		text += " *"
	}
	return text
}

func renderTabs(mode view.Mode, theme Theme) string {
	tabs := make([]string, 0, len(view.Modes))
	for i, m := range view.Modes {
		tabs = append(tabs, theme.TabStyle(m == mode).Render(fmt.Sprintf("%d %s", i+1, m)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderMonth draws the month grid with its title, header row and the fact
// banner underneath.
func renderMonth(mv view.MonthView, fact string, width int, theme Theme) string {
	var b strings.Builder
	b.WriteString(theme.HeaderStyle().Width(gridWidth).Align(lipgloss.Center).Render(mv.Title))
	b.WriteString("\n")

	header := make([]string, len(calendar.Weekdays))
	for i, wd := range calendar.Weekdays {
		header[i] = theme.HelpStyle().Width(cellWidth).Align(lipgloss.Center).Render(wd)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))
	b.WriteString("\n")

	for _, row := range mv.Cells {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = theme.CellStyle(c).Render(cellText(c))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	if sel, ok := selectedCell(mv); ok && sel.Holiday != "" {
		b.WriteString("\n")
		b.WriteString(theme.HolidayStyle().Render(sel.Holiday))
		b.WriteString("\n")
	}

	if fact != "" {
		b.WriteString("\n")
		b.WriteString(theme.HelpStyle().Render(wordwrap.String(fact, max(width-2, 20))))
	}
	return strings.TrimRight(b.String(), "\n")
}

func selectedCell(mv view.MonthView) (view.Cell, bool) {
	for _, row := range mv.Cells {
		for _, c := range row {
			if c.Selected {
				return c, true
			}
		}
	}
	return view.Cell{}, false
}

func dayRow(e event.Event) string {
	line := e.DisplayTime() + "  " + e.Title
	if p := Preview(e.Description, PreviewWidth); p != "" {
		line += "\n    " + p
	}
	return line
}

func agendaRow(e event.Event) string {
	return fmt.Sprintf("%s  %s  %s", e.Date.Format("Mon 02 Jan"), e.DisplayTime(), e.Title)
}

func renderRows(events []event.Event, highlight int, row func(event.Event) string, theme Theme) string {
	if len(events) == 0 {
		return theme.HelpStyle().PaddingLeft(2).Render(noEvents)
	}
	rows := make([]string, len(events))
	for i, e := range events {
		rows[i] = theme.RowStyle(i == highlight).Render(row(e))
	}
	return strings.Join(rows, "\n")
}

// renderDay draws the day title, holiday banner and event list. The
// highlighted description is rendered separately into the detail viewport.
func renderDay(dv view.DayView, theme Theme) string {
	parts := []string{theme.HeaderStyle().Render(dv.Title)}
	if dv.Holiday != "" {
		parts = append(parts, theme.HolidayStyle().Render("Holiday: "+dv.Holiday))
	}
	parts = append(parts, "", renderRows(dv.Events, dv.Highlight, dayRow, theme))
	return strings.Join(parts, "\n")
}

func renderAgenda(av view.AgendaView, theme Theme) string {
	return theme.HeaderStyle().Render(av.Title) + "\n\n" +
		renderRows(av.Events, av.Highlight, agendaRow, theme)
}

// dayDetail returns the markdown body for the highlighted day event.
func dayDetail(dv view.DayView, width int, theme Theme) string {
	if len(dv.Events) == 0 {
		return ""
	}
	return RenderMarkdown(dv.Events[dv.Highlight].Description, width, theme.MarkdownStyle)
}

func factPlaceholder(selected, factFor time.Time, fact string) string {
	if fact != "" && selected.Equal(factFor) {
		return fact
	}
	return loadingFmt
}
