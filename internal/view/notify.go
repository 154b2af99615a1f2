package view

import "time"

// Notification is delivered to subscribers when the state changes.
type Notification interface {
	notification()
}

// DateSelected reports a new month selection.
type DateSelected struct{ Date time.Time }

// MonthChanged reports a new displayed month.
type MonthChanged struct{ Month time.Time }

// ViewChanged reports a screen switch.
type ViewChanged struct{ Mode Mode }

// EventsChanged reports that the stored events changed.
type EventsChanged struct{}

func (DateSelected) notification()  {}
func (MonthChanged) notification()  {}
func (ViewChanged) notification()   {}
func (EventsChanged) notification() {}

// Subscribe registers fn. Notifications are delivered synchronously, in
// registration order, before the mutating call returns.
func (s *State) Subscribe(fn func(Notification)) {
	s.subscribers = append(s.subscribers, fn)
}

func (s *State) notify(n Notification) {
	for _, fn := range s.subscribers {
		fn(n)
	}
}
