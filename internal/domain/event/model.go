package event

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrEmptyTitle = errors.New("event title cannot be empty")
	ErrEmptyDate  = errors.New("event date cannot be empty")
)

// Event is a dated community event shown on the events grid.
// Date is a calendar date string (e.g. "2024-01-01"); no timezone semantics
// are attached to it.
type Event struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// RecordID returns the collection id of the event.
func (e Event) RecordID() int64 { return e.ID }

// Validate checks that the Event has the required fields.
// PRE: Event struct is populated
// POST: Returns nil if valid, error otherwise
func (e *Event) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(e.Date) == "" {
		return ErrEmptyDate
	}
	return nil
}
