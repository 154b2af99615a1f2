package storage

import (
	"sync"
	"time"

	"github.com/chris-regnier/termcal/internal/event"
)

// Synchronized wraps s so that every call is serialized by a mutex. Use it
// when a backend is shared between goroutines, as the MCP server does.
func Synchronized(s Storage) Storage {
	if _, ok := s.(*synchronized); ok {
		return s
	}
	return &synchronized{s: s}
}

type synchronized struct {
	mu sync.Mutex
	s  Storage
}

func (l *synchronized) Add(e event.Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Add(e)
}

func (l *synchronized) Update(e event.Event) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Update(e)
}

func (l *synchronized) Delete(id string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Delete(id)
}

func (l *synchronized) Get(id string) (event.Event, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Get(id)
}

func (l *synchronized) All() []event.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.All()
}

func (l *synchronized) ByDate(d time.Time) []event.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.ByDate(d)
}

func (l *synchronized) Upcoming(from time.Time, days int) []event.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Upcoming(from, days)
}

func (l *synchronized) HasEvents(d time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.HasEvents(d)
}

func (l *synchronized) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Close()
}
