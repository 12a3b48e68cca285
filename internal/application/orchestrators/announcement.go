package orchestrators

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"lockerroom/internal/adapters/storage/collection"
	"lockerroom/internal/domain/announcement"
	"lockerroom/internal/domain/record"
)

// CreateAnnouncementInput carries input for the create announcement orchestrator.
type CreateAnnouncementInput struct {
	Text string
}

// CreateAnnouncementDeps holds dependencies for CreateAnnouncement.
type CreateAnnouncementDeps struct {
	Announcements *collection.Collection[announcement.Announcement]
	Now           func() time.Time
}

// ExecuteCreateAnnouncement posts a new announcement at the head of the board.
// PRE: Text must be non-empty after trimming
// POST: Announcement created with a fresh id and prepended to the collection
func ExecuteCreateAnnouncement(ctx context.Context, input CreateAnnouncementInput, deps CreateAnnouncementDeps) (announcement.Announcement, error) {
	now := deps.Now()
	a := announcement.Announcement{
		ID:        record.NewID(now),
		Text:      strings.TrimSpace(input.Text),
		CreatedAt: now.UTC().Format(time.RFC3339),
	}

	if err := a.Validate(); err != nil {
		return announcement.Announcement{}, err
	}

	deps.Announcements.Add(ctx, a)
	slog.Info("board_event", "event", "announcement_created", "id", a.ID)
	return a, nil
}

// DeleteAnnouncementDeps holds dependencies for DeleteAnnouncement.
type DeleteAnnouncementDeps struct {
	Announcements *collection.Collection[announcement.Announcement]
}

// ExecuteDeleteAnnouncement removes an announcement by id.
// PRE: id is a record id
// POST: Returns true if a record was removed
func ExecuteDeleteAnnouncement(ctx context.Context, id int64, deps DeleteAnnouncementDeps) bool {
	removed := deps.Announcements.Delete(ctx, id)
	if removed {
		slog.Info("board_event", "event", "announcement_deleted", "id", id)
	}
	return removed
}
