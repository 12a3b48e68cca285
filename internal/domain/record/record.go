package record

import (
	"sync"
	"time"
)

// Identified is implemented by every record that lives in a collection.
type Identified interface {
	RecordID() int64
}

var (
	mu     sync.Mutex
	lastID int64
)

// NewID returns a fresh record id derived from the current clock tick
// (milliseconds since the Unix epoch). Ids issued by the same process are
// strictly increasing: two adds landing in the same millisecond get
// consecutive ids instead of colliding.
// PRE: now is the current time
// POST: Returned id is greater than any id previously returned by this process
func NewID(now time.Time) int64 {
	mu.Lock()
	defer mu.Unlock()
	id := now.UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return id
}
