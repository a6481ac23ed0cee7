package domain

import (
	"fmt"
	"time"
)

// EventType is the workshop audience.
type EventType string

const (
	EventTypeAdults   EventType = "adults"
	EventTypeKids     EventType = "kids"
	EventTypeTourists EventType = "tourists"
	EventTypeCouples  EventType = "couples"
)

// Valid reports whether t is one of the known workshop audiences.
func (t EventType) Valid() bool {
	switch t {
	case EventTypeAdults, EventTypeKids, EventTypeTourists, EventTypeCouples:
		return true
	}
	return false
}

// Event is a bookable studio workshop.
// swagger:model Event
type Event struct {
	ID              int           `json:"id"`
	Type            EventType     `json:"type"`
	Title           LocalizedText `json:"title"`
	Date            time.Time     `json:"date"`
	DurationMinutes int           `json:"duration"`
	Spots           int           `json:"spots"`
	Price           float64       `json:"price"`
	Level           string        `json:"level"`
	Langs           []string      `json:"langs"`
}

// Validate checks the catalog invariants of an event.
func (e *Event) Validate() error {
	if !e.Type.Valid() {
		return fmt.Errorf("%w: event %d has unknown type %q", ErrInvalidInput, e.ID, e.Type)
	}
	if e.DurationMinutes <= 0 {
		return fmt.Errorf("%w: event %d duration must be positive", ErrInvalidInput, e.ID)
	}
	if e.Spots < 0 {
		return fmt.Errorf("%w: event %d spots must not be negative", ErrInvalidInput, e.ID)
	}
	if e.Price < 0 {
		return fmt.Errorf("%w: event %d price must not be negative", ErrInvalidInput, e.ID)
	}
	return nil
}

// Day returns the calendar day the event starts on in the location of Date.
// The catalog loader puts Date in the studio's location.
func (e *Event) Day() Day {
	return DayOf(e.Date)
}
