package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"lockerroom/internal/adapters/storage/collection"
	"lockerroom/internal/domain/announcement"
	"lockerroom/internal/domain/event"
	"lockerroom/internal/domain/member"
	"lockerroom/internal/domain/product"
	"lockerroom/internal/domain/record"
	"lockerroom/internal/domain/resource"
)

// SeedContentDeps holds every collection the seeder may populate.
type SeedContentDeps struct {
	Members       *collection.Collection[member.Member]
	Announcements *collection.Collection[announcement.Announcement]
	Events        *collection.Collection[event.Event]
	Resources     *collection.Collection[resource.Resource]
	Products      *collection.Collection[product.Product]
}

// ExecuteSeedContent writes example starter content into any collection that
// has never been persisted. Collections that already have a stored value —
// even an empty one — are left alone, so seeding runs safely on every startup.
// PRE: deps collections are wired
// POST: Every collection has a persisted value
func ExecuteSeedContent(ctx context.Context, deps SeedContentDeps) {
	now := time.Now()
	stamp := now.UTC().Format(time.RFC3339)
	date := now.UTC().Format("2006-01-02")
	seeded := 0

	if !deps.Announcements.Exists(ctx) {
		deps.Announcements.Replace(ctx, []announcement.Announcement{
			{
				ID:        record.NewID(now),
				Text:      "Welcome to **The Locker Room** — introduce yourself in the next call!",
				CreatedAt: stamp,
			},
		})
		seeded++
	}

	if !deps.Events.Exists(ctx) {
		deps.Events.Replace(ctx, []event.Event{
			{
				ID:          record.NewID(now),
				Title:       "Monthly Community Call",
				Date:        date,
				Location:    "Online",
				Description: "Open mic, wins of the month, and Q&A.",
			},
		})
		seeded++
	}

	if !deps.Resources.Exists(ctx) {
		deps.Resources.Replace(ctx, []resource.Resource{
			{
				ID:    record.NewID(now),
				Title: "Community Guidelines",
				URL:   "https://lockerroom.club/guidelines",
			},
			{
				ID:    record.NewID(now),
				Title: "Getting Started Checklist",
				URL:   "https://lockerroom.club/start",
			},
		})
		seeded++
	}

	if !deps.Products.Exists(ctx) {
		deps.Products.Replace(ctx, []product.Product{
			{
				ID:          record.NewID(now),
				Kind:        product.KindDigital,
				Title:       "Starter Guide",
				Price:       0,
				Description: "Everything you need for your first month.",
				CTA:         "Download",
				Link:        "https://lockerroom.club/guide",
			},
			{
				ID:          record.NewID(now),
				Kind:        product.KindCoaching,
				Title:       "1:1 Coaching Block",
				Price:       150,
				Description: "Four weekly sessions with a coach.",
				CTA:         "Book a call",
				Link:        "https://lockerroom.club/coaching",
			},
		})
		seeded++
	}

	if !deps.Members.Exists(ctx) {
		deps.Members.Replace(ctx, []member.Member{
			{
				ID:        record.NewID(now),
				Name:      "Sam Harper",
				Email:     "sam@lockerroom.club",
				Story:     "Founding member.",
				Timestamp: stamp,
				Source:    member.Source,
			},
		})
		seeded++
	}

	if seeded > 0 {
		slog.Info("seed_event", "event", "starter_content", "collections_seeded", seeded)
	}
}
