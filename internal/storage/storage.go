package storage

import (
	"errors"
	"time"

	"github.com/chris-regnier/termcal/internal/event"
)

// DefaultUpcomingDays is the agenda window used when callers have no preference.
const DefaultUpcomingDays = 30

// Sentinel errors for storage operations.
var (
	ErrNotFound = errors.New("event not found")
	ErrStorage  = errors.New("storage error")
)

// Storage defines the interface for event persistence. Every list method
// returns events ordered by event.Less, ties keeping insertion order.
type Storage interface {
	// Add inserts e under its ID and persists the store. Events that fail
	// validation are rejected with event.ErrValidation and nothing changes.
	Add(e event.Event) error

	// Update replaces the stored event with the same ID. An unknown ID is a
	// no-op: updated is false and err is nil.
	Update(e event.Event) (updated bool, err error)

	// Delete removes the event with the given ID if present. The store is
	// only persisted when something was removed.
	Delete(id string) (deleted bool, err error)

	// Get returns the event with the given ID and whether it exists.
	Get(id string) (event.Event, bool)

	// All returns every event.
	All() []event.Event

	// ByDate returns the events on date d.
	ByDate(d time.Time) []event.Event

	// Upcoming returns the events dated within [from, from+days].
	Upcoming(from time.Time, days int) []event.Event

	// HasEvents reports whether any event falls on date d.
	HasEvents(d time.Time) bool

	// Close releases any resources held by the backend.
	Close() error
}
