package orchestrators

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"lockerroom/internal/adapters/storage/collection"
	"lockerroom/internal/domain/event"
	"lockerroom/internal/domain/record"
)

// CreateEventInput carries input for the create event orchestrator.
type CreateEventInput struct {
	Title       string
	Date        string
	Location    string
	Description string
}

// CreateEventDeps holds dependencies for CreateEvent.
type CreateEventDeps struct {
	Events *collection.Collection[event.Event]
	Now    func() time.Time
}

// ExecuteCreateEvent adds an event to the events grid.
// PRE: Title and Date must be non-empty after trimming
// POST: Event created with a fresh id and prepended to the collection
func ExecuteCreateEvent(ctx context.Context, input CreateEventInput, deps CreateEventDeps) (event.Event, error) {
	e := event.Event{
		ID:          record.NewID(deps.Now()),
		Title:       strings.TrimSpace(input.Title),
		Date:        strings.TrimSpace(input.Date),
		Location:    strings.TrimSpace(input.Location),
		Description: strings.TrimSpace(input.Description),
	}

	if err := e.Validate(); err != nil {
		return event.Event{}, err
	}

	deps.Events.Add(ctx, e)
	slog.Info("board_event", "event", "event_created", "id", e.ID, "title", e.Title)
	return e, nil
}

// DeleteEventDeps holds dependencies for DeleteEvent.
type DeleteEventDeps struct {
	Events *collection.Collection[event.Event]
}

// ExecuteDeleteEvent removes an event by id.
// PRE: id is a record id
// POST: Returns true if a record was removed
func ExecuteDeleteEvent(ctx context.Context, id int64, deps DeleteEventDeps) bool {
	removed := deps.Events.Delete(ctx, id)
	if removed {
		slog.Info("board_event", "event", "event_deleted", "id", id)
	}
	return removed
}
