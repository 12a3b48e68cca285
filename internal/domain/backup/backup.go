package backup

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"lockerroom/internal/domain/announcement"
	"lockerroom/internal/domain/event"
	"lockerroom/internal/domain/member"
	"lockerroom/internal/domain/product"
	"lockerroom/internal/domain/resource"
)

// ErrMalformed is returned when an uploaded backup document cannot be decoded.
// Decode is all-or-nothing: a malformed document replaces nothing.
var ErrMalformed = fmt.Errorf("malformed backup document")

// Document is the backup exchange format. Fields are pointers so import can
// tell "key absent, leave collection untouched" apart from "key present with
// an empty list, replace with nothing".
//
// Export writes members, announcements, events and resources. Products is
// never written by export — the asymmetry matches the long-observed behavior
// of the app — but import honors a products key when one is present.
type Document struct {
	Members       *[]member.Member             `json:"members,omitempty"`
	Announcements *[]announcement.Announcement `json:"announcements,omitempty"`
	Events        *[]event.Event               `json:"events,omitempty"`
	Resources     *[]resource.Resource         `json:"resources,omitempty"`
	Products      *[]product.Product           `json:"products,omitempty"`
}

// FileName returns the download name for an export taken at the given time,
// e.g. "locker-room-export-2024-01-01.json".
func FileName(now time.Time) string {
	return "locker-room-export-" + now.UTC().Format("2006-01-02") + ".json"
}

// Encode serializes the document as pretty-printed JSON.
// PRE: Document fields are populated
// POST: Returns the indented JSON bytes
func (d *Document) Encode() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Decode reads a backup document from r. Unknown top-level keys are ignored;
// any JSON error yields ErrMalformed and an empty document.
// PRE: r is the uploaded file contents
// POST: Returns the decoded document, or ErrMalformed with no partial data
func Decode(r io.Reader) (Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	var d Document
	if err := json.Unmarshal(raw, &d); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return d, nil
}
