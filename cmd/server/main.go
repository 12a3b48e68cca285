package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	emailPkg "lockerroom/internal/adapters/email"
	web "lockerroom/internal/adapters/http"
	"lockerroom/internal/adapters/storage"
	"lockerroom/internal/adapters/storage/collection"
	"lockerroom/internal/adapters/storage/kv"
	"lockerroom/internal/adapters/storage/settings"
	"lockerroom/internal/adapters/webhook"
	"lockerroom/internal/application/orchestrators"
	"lockerroom/internal/domain/announcement"
	"lockerroom/internal/domain/event"
	"lockerroom/internal/domain/member"
	"lockerroom/internal/domain/product"
	"lockerroom/internal/domain/resource"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

// Namespace prefixing every stored key; a second app could share the same
// database file without key collisions.
const storeNamespace = "locker-room"

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	// Initialize database with WAL mode and busy timeout
	dbPath := envOrDefault("LOCKERROOM_DB", "lockerroom.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	// Health check
	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	// Run database migrations
	if err := storage.MigrateDB(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	log.Println("Database initialized successfully!")

	// Wrap DB with slow-query logging
	timedDB := storage.NewTimedDB(db)

	store := kv.NewSQLiteStore(timedDB, storeNamespace)
	stores := &web.Stores{
		Members:       collection.New[member.Member](store, "members"),
		Announcements: collection.New[announcement.Announcement](store, "announcements"),
		Events:        collection.New[event.Event](store, "events"),
		Resources:     collection.New[resource.Resource](store, "resources"),
		Products:      collection.New[product.Product](store, "products"),
		Settings:      settings.NewStore(store),
	}

	// Seed starter content on first run only
	orchestrators.ExecuteSeedContent(context.Background(), orchestrators.SeedContentDeps{
		Members:       stores.Members,
		Announcements: stores.Announcements,
		Events:        stores.Events,
		Resources:     stores.Resources,
		Products:      stores.Products,
	})

	// Configure email sender for new-member notifications
	resendKey := os.Getenv("LOCKERROOM_RESEND_KEY")
	emailFrom := envOrDefault("LOCKERROOM_RESEND_FROM", "The Locker Room <noreply@lockerroom.club>")
	notifyTo := os.Getenv("LOCKERROOM_NOTIFY_TO")
	if resendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), notifyTo)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), notifyTo)
		if os.Getenv("LOCKERROOM_ENV") == "production" {
			log.Println("WARNING: LOCKERROOM_RESEND_KEY is not set — email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set LOCKERROOM_RESEND_KEY for real delivery)")
		}
	}

	// Outbound webhook forwards share the default HTTP client
	web.SetForwarder(webhook.NewHTTPForwarder(nil))

	// Create HTTP handler with middleware
	mux := web.NewMux("static", stores)

	// Start server
	addr := envOrDefault("LOCKERROOM_ADDR", ":8080")
	log.Printf("Locker Room %s starting on %s (env=%s, schema=%d)", version, addr, envOrDefault("LOCKERROOM_ENV", "development"), storage.LatestSchemaVersion())

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
