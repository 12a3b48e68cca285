package announcement

import (
	"errors"
	"strings"
)

// ErrEmptyText is returned when an announcement has no text.
var ErrEmptyText = errors.New("announcement text cannot be empty")

// Announcement is a short admin-authored message shown on the announcements
// board, newest first. Text supports Markdown formatting.
type Announcement struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
}

// RecordID returns the collection id of the announcement.
func (a Announcement) RecordID() int64 { return a.ID }

// Validate checks that the Announcement has valid data.
// PRE: Announcement struct is populated
// POST: Returns nil if valid, error otherwise
func (a *Announcement) Validate() error {
	if strings.TrimSpace(a.Text) == "" {
		return ErrEmptyText
	}
	return nil
}
