package cmd

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chris-regnier/termcal/internal/config"
	"github.com/chris-regnier/termcal/internal/event"
	"github.com/chris-regnier/termcal/internal/history"
	"github.com/chris-regnier/termcal/internal/holiday"
	"github.com/chris-regnier/termcal/internal/logging"
	"github.com/chris-regnier/termcal/internal/storage"
	"github.com/chris-regnier/termcal/internal/storage/jsonfile"
)

var testNow = time.Date(2025, time.March, 10, 10, 0, 0, 0, time.Local)

func setupTestStore(t *testing.T) storage.Storage {
	t.Helper()
	s, err := jsonfile.New(filepath.Join(t.TempDir(), "events.json"), logging.Discard())
	if err != nil {
		t.Fatalf("creating test storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func setupTestEnv(t *testing.T) {
	t.Helper()
	store = setupTestStore(t)
	appConfig = &config.Config{Country: "US", ShowHolidays: true, AgendaDays: 30}
	holidays = holiday.NewProvider(holiday.Settings{Country: "US", ShowHolidays: true}, nil, logging.Discard())
	facts = history.NewProvider("http://127.0.0.1:0")
	logger = logging.Discard()
	now = func() time.Time { return testNow }
	jsonOutput = false
	t.Cleanup(func() {
		now = time.Now
		jsonOutput = false
	})
}

func addTestEvent(t *testing.T, title, date, clock, description string) event.Event {
	t.Helper()
	d, err := parseDateFlag("date", date)
	if err != nil {
		t.Fatal(err)
	}
	c, err := parseTimeFlag(clock)
	if err != nil {
		t.Fatal(err)
	}
	e, err := event.New(title, d, c, description)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Add(e); err != nil {
		t.Fatalf("Add: %v", err)
	}
	return e
}

func TestParseDateFlag(t *testing.T) {
	d, err := parseDateFlag("date", " 2025-03-14 ")
	if err != nil {
		t.Fatalf("parseDateFlag: %v", err)
	}
	if d.Format("2006-01-02") != "2025-03-14" {
		t.Errorf("date = %s", d)
	}

	_, err = parseDateFlag("from", "14/03/2025")
	if !errors.Is(err, event.ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "--from") {
		t.Errorf("error should name the flag: %v", err)
	}
}

func TestParseTimeFlag(t *testing.T) {
	c, err := parseTimeFlag("")
	if err != nil || c != nil {
		t.Errorf("empty time = %v, %v; want nil, nil", c, err)
	}
	c, err = parseTimeFlag("09:30")
	if err != nil {
		t.Fatalf("parseTimeFlag: %v", err)
	}
	if c.Short() != "09:30" {
		t.Errorf("clock = %s", c.Short())
	}
	if _, err := parseTimeFlag("25:00"); err == nil {
		t.Error("expected error for 25:00")
	}
}
