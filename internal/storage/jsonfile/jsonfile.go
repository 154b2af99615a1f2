package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/chris-regnier/termcal/internal/calendar"
	"github.com/chris-regnier/termcal/internal/event"
	"github.com/chris-regnier/termcal/internal/storage"
)

// FileName is the name of the events document inside the data directory.
const FileName = "events.json"

// Store implements storage.Storage as an in-memory map persisted wholesale to
// a JSON document after every mutation. A Store is not safe for concurrent
// use.
type Store struct {
	path   string
	logger *slog.Logger
	events map[string]event.Event
	order  []string // insertion order, used to break sort ties
}

type document struct {
	Events []event.Record `json:"events"`
}

type rawDocument struct {
	Events []json.RawMessage `json:"events"`
}

// Path returns the events document path for a data directory.
func Path(dataDir string) string {
	return filepath.Join(dataDir, FileName)
}

// New opens the events document at path, creating it when absent. Malformed
// records are skipped and an unparsable document yields an empty store; both
// are logged rather than returned.
func New(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		path:   path,
		logger: logger,
		events: make(map[string]event.Event),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close is a no-op; every mutation is already on disk.
func (s *Store) Close() error {
	return nil
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return s.write(s.events, s.order)
	}
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", storage.ErrStorage, s.path, err)
	}

	var doc rawDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Error("corrupted events file, starting fresh", "path", s.path, "err", err)
		return nil
	}

	for i, raw := range doc.Events {
		var r event.Record
		if err := json.Unmarshal(raw, &r); err != nil {
			s.logger.Warn("skipping invalid event", "index", i, "err", fmt.Errorf("%w: %v", event.ErrFormat, err))
			continue
		}
		e, err := event.FromRecord(r)
		if err != nil {
			s.logger.Warn("skipping invalid event", "index", i, "err", err)
			continue
		}
		if _, dup := s.events[e.ID]; !dup {
			s.order = append(s.order, e.ID)
		}
		s.events[e.ID] = e
	}
	s.logger.Debug("events loaded", "path", s.path, "count", len(s.events))
	return nil
}

// commit persists the new state and only then makes it current, so a failed
// write leaves memory matching the file.
func (s *Store) commit(events map[string]event.Event, order []string) error {
	if err := s.write(events, order); err != nil {
		return err
	}
	s.events = events
	s.order = order
	return nil
}

func (s *Store) write(events map[string]event.Event, order []string) error {
	doc := document{Events: make([]event.Record, 0, len(order))}
	for _, id := range order {
		doc.Events = append(doc.Events, events[id].ToRecord())
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding events: %v", storage.ErrStorage, err)
	}
	return atomicWrite(s.path, append(data, '\n'))
}

// atomicWrite writes data to a temp file then renames it to the target path.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: creating directory: %v", storage.ErrStorage, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", storage.ErrStorage, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing temp file: %v", storage.ErrStorage, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing temp file: %v", storage.ErrStorage, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: renaming file: %v", storage.ErrStorage, err)
	}

	return nil
}

// Add inserts e and rewrites the document.
func (s *Store) Add(e event.Event) error {
	if err := e.Validate(); err != nil {
		return err
	}
	events := maps.Clone(s.events)
	order := slices.Clip(s.order)
	if _, exists := events[e.ID]; !exists {
		order = append(order, e.ID)
	}
	events[e.ID] = e
	return s.commit(events, order)
}

// Update replaces an existing event. Unknown IDs are ignored.
func (s *Store) Update(e event.Event) (bool, error) {
	if _, exists := s.events[e.ID]; !exists {
		return false, nil
	}
	if err := e.Validate(); err != nil {
		return false, err
	}
	events := maps.Clone(s.events)
	events[e.ID] = e
	if err := s.commit(events, s.order); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes an event if present.
func (s *Store) Delete(id string) (bool, error) {
	if _, exists := s.events[id]; !exists {
		return false, nil
	}
	events := maps.Clone(s.events)
	delete(events, id)
	order := slices.DeleteFunc(slices.Clone(s.order), func(o string) bool { return o == id })
	if err := s.commit(events, order); err != nil {
		return false, err
	}
	return true, nil
}

// Get returns the event with the given ID.
func (s *Store) Get(id string) (event.Event, bool) {
	e, ok := s.events[id]
	return e, ok
}

// All returns every event in order.
func (s *Store) All() []event.Event {
	return s.filter(func(event.Event) bool { return true })
}

// ByDate returns the events on d.
func (s *Store) ByDate(d time.Time) []event.Event {
	d = calendar.NormalizeDate(d)
	return s.filter(func(e event.Event) bool { return e.Date.Equal(d) })
}

// Upcoming returns the events dated within [from, from+days].
func (s *Store) Upcoming(from time.Time, days int) []event.Event {
	from = calendar.NormalizeDate(from)
	end := from.AddDate(0, 0, days)
	return s.filter(func(e event.Event) bool {
		return !e.Date.Before(from) && !e.Date.After(end)
	})
}

// HasEvents reports whether any event falls on d.
func (s *Store) HasEvents(d time.Time) bool {
	d = calendar.NormalizeDate(d)
	for _, e := range s.events {
		if e.Date.Equal(d) {
			return true
		}
	}
	return false
}

func (s *Store) filter(keep func(event.Event) bool) []event.Event {
	out := make([]event.Event, 0, len(s.order))
	for _, id := range s.order {
		if e := s.events[id]; keep(e) {
			out = append(out, e)
		}
	}
	event.Sort(out)
	return out
}
