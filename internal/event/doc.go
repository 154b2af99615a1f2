// Package event defines the calendar event entity, its validation rules, its
// persisted record form and its ordering.
package event
