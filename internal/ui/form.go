package ui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chris-regnier/termcal/internal/calendar"
	"github.com/chris-regnier/termcal/internal/event"
)

const (
	fieldTitle = iota
	fieldDate
	fieldTime
	fieldDescription
	fieldCount
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 4000
)

var fieldLabels = [fieldCount]string{
	"Title:",
	"Date (YYYY-MM-DD):",
	"Time (HH:MM, optional):",
	"Description:",
}

type formAction int

const (
	formNone formAction = iota
	formCancel
	formSubmit
	formEditDescription
)

// eventForm edits the fields of one event. original is nil when adding.
type eventForm struct {
	inputs   [fieldDescription]textinput.Model
	desc     textarea.Model
	focus    int
	original *event.Event
	err      string
	built    bool
}

func newEventForm(original *event.Event, date time.Time) eventForm {
	f := eventForm{built: true}
	placeholders := [fieldDescription]string{"Event title", "2026-01-05", "14:00"}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.Prompt = "> "
		f.inputs[i] = ti
	}
	f.inputs[fieldTitle].CharLimit = maxTitleLength

	f.desc = textarea.New()
	f.desc.Placeholder = "Optional description (^J newline, ^E editor)"
	f.desc.CharLimit = maxDescriptionLength
	f.desc.ShowLineNumbers = false
	f.desc.SetHeight(4)

	if original != nil {
		e := *original
		f.original = &e
		f.inputs[fieldTitle].SetValue(e.Title)
		date = e.Date
		if e.Time != nil {
			f.inputs[fieldTime].SetValue(e.Time.Short())
		}
		f.desc.SetValue(e.Description)
	}
	f.inputs[fieldDate].SetValue(date.Format("2006-01-02"))
	f.inputs[fieldTitle].Focus()
	return f
}

func (f eventForm) title() string {
	if f.original == nil {
		return "Add Event"
	}
	return "Edit Event"
}

func (f *eventForm) setFocus(i int) {
	if f.focus == fieldDescription {
		f.desc.Blur()
	} else {
		f.inputs[f.focus].Blur()
	}
	f.focus = (i + fieldCount) % fieldCount
	if f.focus == fieldDescription {
		f.desc.Focus()
	} else {
		f.inputs[f.focus].Focus()
	}
}

func (f eventForm) description() string {
	return f.desc.Value()
}

func (f *eventForm) setDescription(s string) {
	f.desc.SetValue(s)
}

// setWidth is a no-op on a form that newEventForm did not build.
func (f *eventForm) setWidth(width int) {
	if !f.built {
		return
	}
	w := formWidth(width) - 8
	for i := range f.inputs {
		f.inputs[i].Width = w - 2
	}
	f.desc.SetWidth(w)
}

func formWidth(width int) int {
	return min(max(width-4, 40), 70)
}

// update handles one key press, returning what the caller should do next.
func (f eventForm) update(msg tea.KeyMsg) (eventForm, formAction, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return f, formCancel, nil
	case "enter":
		return f, formSubmit, nil
	case "ctrl+e":
		return f, formEditDescription, nil
	case "tab":
		f.setFocus(f.focus + 1)
		return f, formNone, nil
	case "shift+tab":
		f.setFocus(f.focus - 1)
		return f, formNone, nil
	}

	var cmd tea.Cmd
	if f.focus == fieldDescription {
		if msg.String() == "ctrl+j" {
			f.desc.InsertString("\n")
			return f, formNone, nil
		}
		f.desc, cmd = f.desc.Update(msg)
		return f, formNone, cmd
	}
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, formNone, cmd
}

// build validates the inputs and returns the event they describe. Edits
// keep the original ID.
func (f eventForm) build() (event.Event, error) {
	title := strings.TrimSpace(f.inputs[fieldTitle].Value())
	if title == "" {
		return event.Event{}, errors.New("Title is required")
	}

	date, err := calendar.ParseDate(strings.TrimSpace(f.inputs[fieldDate].Value()))
	if err != nil {
		return event.Event{}, errors.New("Invalid date format. Use YYYY-MM-DD")
	}

	var clock *event.Clock
	if s := strings.TrimSpace(f.inputs[fieldTime].Value()); s != "" {
		c, err := event.ParseClock(s)
		if err != nil {
			return event.Event{}, errors.New("Invalid time format. Use HH:MM")
		}
		clock = &c
	}

	desc := strings.TrimSpace(f.description())
	if f.original == nil {
		return event.New(title, date, clock, desc)
	}

	e := *f.original
	e.Title, e.Date, e.Time, e.Description = title, date, clock, desc
	return e, e.Validate()
}

func (f eventForm) view(width int, theme Theme) string {
	var b strings.Builder
	b.WriteString(theme.HeaderStyle().Render(f.title()))
	b.WriteString("\n\n")
	for i, label := range fieldLabels {
		style := theme.HelpStyle()
		if i == f.focus {
			style = theme.AccentStyle()
		}
		b.WriteString(style.Render(label))
		b.WriteString("\n")
		if i == fieldDescription {
			b.WriteString(f.desc.View())
		} else {
			b.WriteString(f.inputs[i].View())
		}
		b.WriteString("\n")
	}
	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(theme.DangerStyle().Render(f.err))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.HelpStyle().Render("tab next • shift+tab prev • ctrl+e editor • enter save • esc cancel"))

	return theme.BorderStyle().
		Padding(1, 2).
		Width(formWidth(width)).
		Render(b.String())
}

func placeCenter(width, height int, content string, theme Theme) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content,
		lipgloss.WithWhitespaceBackground(theme.Background))
}
