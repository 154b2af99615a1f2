package ui

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chris-regnier/termcal/internal/config"
	"github.com/chris-regnier/termcal/internal/editor"
	"github.com/chris-regnier/termcal/internal/event"
	"github.com/chris-regnier/termcal/internal/holiday"
	"github.com/chris-regnier/termcal/internal/logging"
	"github.com/chris-regnier/termcal/internal/storage"
	"github.com/chris-regnier/termcal/internal/view"
)

const factTimeout = 10 * time.Second

// FactSource supplies the "on this day" line for a date. It must not fail:
// any problem is folded into the returned text.
type FactSource interface {
	EventForDisplay(ctx context.Context, d time.Time) string
}

// TUIConfig holds everything the calendar TUI needs.
type TUIConfig struct {
	Store      storage.Storage
	Holidays   *holiday.Provider
	Facts      FactSource // nil hides the fact banner
	Theme      Theme
	Editor     string
	AgendaDays int
	Now        func() time.Time
	Logger     *slog.Logger

	// Watch, when set, registers a callback invoked with every reloaded
	// config.
	Watch func(func(*config.Config))
}

type factMsg struct {
	date time.Time
	text string
}

type editorFinishedMsg struct {
	content string
	changed bool
	err     error
}

type configChangedMsg struct {
	cfg *config.Config
}

// calendarModel is the Bubble Tea model for the calendar.
type calendarModel struct {
	cfg     TUIConfig
	logger  *slog.Logger
	state   *view.State
	changes *[]view.Notification
	snap    view.Snapshot

	// Event form
	form       eventForm
	formActive bool
	// Delete confirmation mode
	deleteActive bool
	deleteEvent  event.Event
	// Help overlay
	helpActive bool
	// Status line
	status    string
	statusErr bool
	// On this day
	fact     string
	factFor  time.Time
	fetching bool
	initCmd  tea.Cmd
	// Day view description pane
	detail viewport.Model
	// Common
	width  int
	height int
	ready  bool
}

func newCalendarModel(cfg TUIConfig) calendarModel {
	if cfg.Logger == nil {
		cfg.Logger = logging.Discard()
	}
	if cfg.AgendaDays < 1 {
		cfg.AgendaDays = storage.DefaultUpcomingDays
	}

	opts := []view.Option{view.WithAgendaDays(cfg.AgendaDays)}
	if cfg.Now != nil {
		opts = append(opts, view.WithClock(cfg.Now))
	}
	var holidays view.Holidays
	if cfg.Holidays != nil {
		holidays = cfg.Holidays
	}

	m := calendarModel{
		cfg:     cfg,
		logger:  cfg.Logger,
		state:   view.New(cfg.Store, holidays, opts...),
		changes: new([]view.Notification),
	}
	changes := m.changes
	m.state.Subscribe(func(n view.Notification) {
		*changes = append(*changes, n)
	})
	m.snap = m.state.Refresh()
	m.initCmd = m.requestFact()
	return m
}

func (m calendarModel) Init() tea.Cmd {
	return m.initCmd
}

func (m calendarModel) theme() Theme { return m.cfg.Theme }

func (m calendarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case factMsg:
		m.fetching = false
		if !msg.date.Equal(m.state.Selected()) {
			m.logger.Debug("discarding stale fact", "date", msg.date.Format("2006-01-02"))
			return m, m.requestFact()
		}
		m.fact, m.factFor = msg.text, msg.date
		return m, nil

	case editorFinishedMsg:
		if !m.formActive {
			return m, nil
		}
		if msg.err != nil {
			m.form.err = fmt.Sprintf("Editor: %v", msg.err)
			return m, nil
		}
		if msg.changed {
			m.form.setDescription(msg.content)
		}
		return m, nil

	case configChangedMsg:
		m.applyConfig(msg.cfg)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		if m.formActive {
			m.form.setWidth(m.width)
		}
		m.detail = viewport.New(m.width, m.detailHeight())
		m.refreshDetail()
		return m, nil

	case tea.KeyMsg:
		if m.helpActive {
			switch msg.String() {
			case "?", "esc", "q":
				m.helpActive = false
			}
			return m, nil
		}
		if m.formActive {
			return m.updateForm(msg)
		}
		if m.deleteActive {
			return m.updateDeleteConfirm(msg)
		}

		m.status, m.statusErr = "", false
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "?":
			m.helpActive = true
			return m, nil
		case "1", "2", "3":
			m.state.SwitchTo(view.Modes[msg.String()[0]-'1'])
			return m.sync()
		case "a":
			return m.startForm(nil)
		case "e":
			e, ok := m.state.SelectedEvent()
			if !ok {
				m.setStatus("No event selected", true)
				return m, nil
			}
			return m.startForm(&e)
		case "x":
			e, ok := m.state.SelectedEvent()
			if !ok {
				m.setStatus("No event selected", true)
				return m, nil
			}
			m.deleteActive, m.deleteEvent = true, e
			return m, nil
		}

		switch m.state.Mode() {
		case view.ModeMonth:
			return m.updateMonth(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m calendarModel) updateMonth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n":
		m.state.NextMonth()
	case "p":
		m.state.PrevMonth()
	case "t":
		m.state.GotoToday()
	case "left", "h":
		m.state.Move(-1)
	case "right", "l":
		m.state.Move(1)
	case "up", "k":
		m.state.Move(-7)
	case "down", "j":
		m.state.Move(7)
	case "enter":
		m.state.SwitchTo(view.ModeDay)
	default:
		return m, nil
	}
	return m.sync()
}

func (m calendarModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.state.Highlight(-1)
	case "down", "j":
		m.state.Highlight(1)
	case "esc":
		m.state.SwitchTo(view.ModeMonth)
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
	return m.sync()
}

func (m calendarModel) startForm(original *event.Event) (tea.Model, tea.Cmd) {
	m.form = newEventForm(original, m.state.DefaultDate())
	m.form.setWidth(m.width)
	m.formActive = true
	return m, nil
}

func (m calendarModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form, action, cmd := m.form.update(msg)
	m.form = form
	switch action {
	case formCancel:
		m.formActive = false
	case formSubmit:
		return m.saveForm()
	case formEditDescription:
		return m.editDescription()
	}
	return m, cmd
}

func (m calendarModel) saveForm() (tea.Model, tea.Cmd) {
	e, err := m.form.build()
	if err != nil {
		m.form.err = err.Error()
		return m, nil
	}

	if m.form.original == nil {
		if err := m.cfg.Store.Add(e); err != nil {
			m.form.err = err.Error()
			return m, nil
		}
		m.setStatus("Added: "+e.Title, false)
	} else {
		updated, err := m.cfg.Store.Update(e)
		if err != nil {
			m.form.err = err.Error()
			return m, nil
		}
		if updated {
			m.setStatus("Updated: "+e.Title, false)
		} else {
			m.setStatus("Event no longer exists", true)
		}
	}

	m.formActive = false
	m.state.EventsMutated()
	return m.sync()
}

func (m calendarModel) editDescription() (tea.Model, tea.Cmd) {
	original := m.form.description()
	path, err := editor.TempFile(original)
	if err != nil {
		m.form.err = fmt.Sprintf("Editor: %v", err)
		return m, nil
	}
	c, err := editor.Command(editor.ResolveEditor(m.cfg.Editor), path)
	if err != nil {
		os.Remove(path)
		m.form.err = fmt.Sprintf("Editor: %v", err)
		return m, nil
	}

	return m, tea.ExecProcess(c, func(err error) tea.Msg {
		defer os.Remove(path)
		if err != nil {
			return editorFinishedMsg{err: err}
		}
		content, changed, err := editor.ReadResult(path, original)
		return editorFinishedMsg{content: content, changed: changed, err: err}
	})
}

func (m calendarModel) updateDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y":
		m.deleteActive = false
		e := m.deleteEvent
		deleted, err := m.cfg.Store.Delete(e.ID)
		switch {
		case err != nil:
			m.setStatus(err.Error(), true)
		case deleted:
			m.setStatus("Deleted: "+e.Title, false)
		default:
			m.setStatus("Event no longer exists", true)
		}
		m.state.EventsMutated()
		return m.sync()
	case "n", "esc":
		m.deleteActive = false
	}
	return m, nil
}

func (m *calendarModel) setStatus(s string, isErr bool) {
	m.status, m.statusErr = s, isErr
}

// sync drains pending view notifications, rebuilds the snapshot and starts a
// fact fetch when the selection moved.
func (m calendarModel) sync() (tea.Model, tea.Cmd) {
	pending := *m.changes
	*m.changes = (*m.changes)[:0]

	var cmd tea.Cmd
	for _, n := range pending {
		if _, ok := n.(view.DateSelected); ok {
			cmd = m.requestFact()
		}
	}
	if len(pending) > 0 {
		m.logger.Debug("view changed", "notifications", len(pending), "mode", m.state.Mode().String())
	}
	m.snap = m.state.Refresh()
	m.refreshDetail()
	return m, cmd
}

// requestFact starts fetching the fact for the selected date. At most one
// fetch runs at a time; a result for a date that is no longer selected
// triggers a new request.
func (m *calendarModel) requestFact() tea.Cmd {
	if m.cfg.Facts == nil || m.fetching {
		return nil
	}
	sel := m.state.Selected()
	if m.fact != "" && m.factFor.Equal(sel) {
		return nil
	}
	m.fetching = true
	facts := m.cfg.Facts
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), factTimeout)
		defer cancel()
		return factMsg{date: sel, text: facts.EventForDisplay(ctx, sel)}
	}
}

func (m *calendarModel) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	if m.cfg.Holidays != nil {
		m.cfg.Holidays.Reconfigure(holiday.Settings{
			Country:      cfg.Country,
			Subdivision:  cfg.Subdivision,
			ShowHolidays: cfg.ShowHolidays,
		})
	}
	m.cfg.Theme = ResolveTheme(cfg.Theme)
	m.cfg.Editor = cfg.Editor
	m.logger.Info("config reloaded", "country", cfg.Country, "show_holidays", cfg.ShowHolidays)
	m.snap = m.state.Refresh()
	m.refreshDetail()
}

func (m calendarModel) detailHeight() int {
	return max(m.height/3, 3)
}

func (m *calendarModel) refreshDetail() {
	if !m.ready {
		return
	}
	m.detail.Width = m.width
	m.detail.Height = m.detailHeight()
	m.detail.SetContent(dayDetail(m.snap.Day, max(m.width-4, 20), m.theme()))
	m.detail.GotoTop()
}

func (m calendarModel) View() string {
	if !m.ready {
		// No PaintScreen here: dimensions are unknown until the first WindowSizeMsg.
		return "Loading..."
	}

	if m.helpActive {
		return m.theme().PaintScreen(m.helpOverlay(), m.width, m.height)
	}
	if m.formActive {
		return m.theme().PaintScreen(placeCenter(m.width, m.height, m.form.view(m.width, m.theme()), m.theme()), m.width, m.height)
	}

	sections := []string{renderTabs(m.snap.Mode, m.theme()), ""}
	switch m.snap.Mode {
	case view.ModeMonth:
		fact := ""
		if m.cfg.Facts != nil {
			fact = factPlaceholder(m.state.Selected(), m.factFor, m.fact)
		}
		sections = append(sections, renderMonth(m.snap.Month, fact, m.width, m.theme()))
	case view.ModeDay:
		sections = append(sections, renderDay(m.snap.Day, m.theme()))
		if len(m.snap.Day.Events) > 0 && m.snap.Day.Events[m.snap.Day.Highlight].Description != "" {
			sections = append(sections, "", m.detail.View())
		}
	case view.ModeAgenda:
		sections = append(sections, renderAgenda(m.snap.Agenda, m.theme()))
	}

	sections = append(sections, "", m.footer())
	return m.theme().PaintScreen(strings.Join(sections, "\n"), m.width, m.height)
}

func (m calendarModel) footer() string {
	if m.deleteActive {
		return m.theme().DangerStyle().Render(fmt.Sprintf("Delete '%s'? [y/N] ", m.deleteEvent.Title))
	}
	if m.status != "" {
		if m.statusErr {
			return m.theme().DangerStyle().Render(m.status)
		}
		return m.theme().AccentStyle().Render(m.status)
	}
	switch m.snap.Mode {
	case view.ModeMonth:
		return m.theme().HelpStyle().Render("←/→/↑/↓ move • n/p month • t today • enter day • a add • 1-3 views • ? help • q quit")
	default:
		return m.theme().HelpStyle().Render("↑/↓ select • a add • e edit • x delete • esc month • 1-3 views • ? help • q quit")
	}
}

func (m calendarModel) helpOverlay() string {
	help := m.theme().BorderStyle().
		Padding(1, 2).
		Width(48).
		Render(`Views
  1 2 3      month / day / agenda
  enter      open selected day
  esc        back to month

Month
  ←/→        previous / next day
  ↑/↓        previous / next week
  n/p        next / previous month
  t          today

Events
  a          add event
  e          edit selected event
  x          delete selected event
  ↑/↓        select event (day, agenda)

  q          quit     ? close help`)
	return placeCenter(m.width, m.height, help, m.theme())
}

// RunTUI launches the interactive calendar.
func RunTUI(cfg TUIConfig) error {
	m := newCalendarModel(cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if cfg.Watch != nil {
		cfg.Watch(func(c *config.Config) {
			p.Send(configChangedMsg{cfg: c})
		})
	}
	_, err := p.Run()
	return err
}
