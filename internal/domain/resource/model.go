package resource

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrEmptyTitle = errors.New("resource title cannot be empty")
	ErrEmptyURL   = errors.New("resource url cannot be empty")
)

// Resource is an external link shown on the resources grid.
type Resource struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// RecordID returns the collection id of the resource.
func (r Resource) RecordID() int64 { return r.ID }

// Validate checks that the Resource has the required fields.
// PRE: Resource struct is populated
// POST: Returns nil if valid, error otherwise
func (r *Resource) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(r.URL) == "" {
		return ErrEmptyURL
	}
	return nil
}
