package orchestrators

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"lockerroom/internal/adapters/storage/collection"
	"lockerroom/internal/domain/record"
	"lockerroom/internal/domain/resource"
)

// CreateResourceInput carries input for the create resource orchestrator.
type CreateResourceInput struct {
	Title string
	URL   string
}

// CreateResourceDeps holds dependencies for CreateResource.
type CreateResourceDeps struct {
	Resources *collection.Collection[resource.Resource]
	Now       func() time.Time
}

// ExecuteCreateResource adds an external link to the resources grid.
// PRE: Title and URL must be non-empty after trimming
// POST: Resource created with a fresh id and prepended to the collection
func ExecuteCreateResource(ctx context.Context, input CreateResourceInput, deps CreateResourceDeps) (resource.Resource, error) {
	r := resource.Resource{
		ID:    record.NewID(deps.Now()),
		Title: strings.TrimSpace(input.Title),
		URL:   strings.TrimSpace(input.URL),
	}

	if err := r.Validate(); err != nil {
		return resource.Resource{}, err
	}

	deps.Resources.Add(ctx, r)
	slog.Info("board_event", "event", "resource_created", "id", r.ID, "title", r.Title)
	return r, nil
}

// DeleteResourceDeps holds dependencies for DeleteResource.
type DeleteResourceDeps struct {
	Resources *collection.Collection[resource.Resource]
}

// ExecuteDeleteResource removes a resource by id.
// PRE: id is a record id
// POST: Returns true if a record was removed
func ExecuteDeleteResource(ctx context.Context, id int64, deps DeleteResourceDeps) bool {
	removed := deps.Resources.Delete(ctx, id)
	if removed {
		slog.Info("board_event", "event", "resource_deleted", "id", id)
	}
	return removed
}
