package orchestrators

import (
	"context"
	"io"
	"log/slog"

	"lockerroom/internal/adapters/storage/collection"
	"lockerroom/internal/domain/announcement"
	"lockerroom/internal/domain/backup"
	"lockerroom/internal/domain/event"
	"lockerroom/internal/domain/member"
	"lockerroom/internal/domain/product"
	"lockerroom/internal/domain/resource"
)

// BackupDeps holds every collection backup touches.
type BackupDeps struct {
	Members       *collection.Collection[member.Member]
	Announcements *collection.Collection[announcement.Announcement]
	Events        *collection.Collection[event.Event]
	Resources     *collection.Collection[resource.Resource]
	Products      *collection.Collection[product.Product]
}

// ExecuteExportBackup snapshots the exported collections into one document.
// Products is not part of the export; import still honors a products key when
// someone hand-crafts one.
// PRE: deps collections are wired
// POST: Returns a document with members, announcements, events and resources
func ExecuteExportBackup(ctx context.Context, deps BackupDeps) backup.Document {
	members := orEmpty(deps.Members.List(ctx))
	announcements := orEmpty(deps.Announcements.List(ctx))
	events := orEmpty(deps.Events.List(ctx))
	resources := orEmpty(deps.Resources.List(ctx))

	slog.Info("backup_event", "event", "export",
		"members", len(members), "announcements", len(announcements),
		"events", len(events), "resources", len(resources))

	return backup.Document{
		Members:       &members,
		Announcements: &announcements,
		Events:        &events,
		Resources:     &resources,
	}
}

// ExecuteImportBackup restores collections from an uploaded document. Decode
// is all-or-nothing: a malformed document replaces nothing. Only keys present
// in the document are replaced; absent keys leave their collections untouched.
// PRE: r is the uploaded file contents
// POST: Each present key's collection is wholesale-replaced, or nothing
// changes and backup.ErrMalformed is returned
func ExecuteImportBackup(ctx context.Context, r io.Reader, deps BackupDeps) error {
	doc, err := backup.Decode(r)
	if err != nil {
		slog.Warn("backup_event", "event", "import_rejected", "error", err)
		return err
	}

	replaced := 0
	if doc.Members != nil {
		deps.Members.Replace(ctx, *doc.Members)
		replaced++
	}
	if doc.Announcements != nil {
		deps.Announcements.Replace(ctx, *doc.Announcements)
		replaced++
	}
	if doc.Events != nil {
		deps.Events.Replace(ctx, *doc.Events)
		replaced++
	}
	if doc.Resources != nil {
		deps.Resources.Replace(ctx, *doc.Resources)
		replaced++
	}
	if doc.Products != nil {
		deps.Products.Replace(ctx, *doc.Products)
		replaced++
	}

	slog.Info("backup_event", "event", "import", "collections_replaced", replaced)
	return nil
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
