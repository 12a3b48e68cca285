package application

import (
	"errors"
	"net/url"
	"strings"
)

// Type is the discriminator sent with every application webhook payload so
// the receiving endpoint can tell applications apart from joins.
const Type = "application"

// Domain errors
var (
	ErrEmptyName  = errors.New("application name cannot be empty")
	ErrEmptyEmail = errors.New("application email cannot be empty")
)

// Application is a program application submitted through the apply form.
// Applications are never persisted locally; they exist only long enough to be
// forwarded to the configured webhook.
type Application struct {
	Name      string
	Email     string
	Phone     string
	Goals     string
	Program   string // Title of the program being applied for
	Timestamp string
}

// Validate checks that the Application has the required fields.
// PRE: Application struct is populated
// POST: Returns nil if valid, a domain error otherwise
func (a *Application) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(a.Email) == "" {
		return ErrEmptyEmail
	}
	return nil
}

// WebhookPayload returns the flat key/value form of the application for the
// outbound webhook POST, including the type discriminator and program title.
func (a *Application) WebhookPayload() url.Values {
	return url.Values{
		"type":      {Type},
		"name":      {a.Name},
		"email":     {a.Email},
		"phone":     {a.Phone},
		"goals":     {a.Goals},
		"program":   {a.Program},
		"timestamp": {a.Timestamp},
	}
}
