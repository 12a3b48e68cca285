package member

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

// Source is stamped on every member created through the join form.
const Source = "locker-room-app"

// Domain errors
var (
	ErrEmptyName  = errors.New("member name cannot be empty")
	ErrEmptyEmail = errors.New("member email cannot be empty")
)

// Member represents someone who joined the community through the join form.
type Member struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Story     string `json:"story"` // Optional free text from the join form
	Timestamp string `json:"timestamp"`
	Source    string `json:"source"`
}

// RecordID returns the collection id of the member.
func (m Member) RecordID() int64 { return m.ID }

// Validate checks that the Member has the required join fields.
// PRE: Member struct is populated
// POST: Returns nil if valid, a domain error otherwise
func (m *Member) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(m.Email) == "" {
		return ErrEmptyEmail
	}
	return nil
}

// WebhookPayload returns the flat key/value form of the member for the
// outbound webhook POST.
func (m *Member) WebhookPayload() url.Values {
	return url.Values{
		"id":        {strconv.FormatInt(m.ID, 10)},
		"name":      {m.Name},
		"email":     {m.Email},
		"story":     {m.Story},
		"timestamp": {m.Timestamp},
		"source":    {m.Source},
	}
}
