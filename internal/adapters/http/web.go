package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"lockerroom/internal/adapters/email"
	"lockerroom/internal/adapters/http/middleware"
	"lockerroom/internal/adapters/storage/collection"
	"lockerroom/internal/adapters/storage/settings"
	"lockerroom/internal/adapters/webhook"
	"lockerroom/internal/domain/announcement"
	"lockerroom/internal/domain/event"
	"lockerroom/internal/domain/member"
	"lockerroom/internal/domain/product"
	"lockerroom/internal/domain/resource"
)

// Stores holds all storage dependencies.
type Stores struct {
	Members       *collection.Collection[member.Member]
	Announcements *collection.Collection[announcement.Announcement]
	Events        *collection.Collection[event.Event]
	Resources     *collection.Collection[resource.Resource]
	Products      *collection.Collection[product.Product]
	Settings      *settings.Store
}

// loadCSRFKey reads the CSRF secret from LOCKERROOM_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("LOCKERROOM_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("LOCKERROOM_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("LOCKERROOM_ENV") == "production" {
		log.Fatal("LOCKERROOM_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (tokens won't survive restart). Set LOCKERROOM_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global admin session store instance
var adminSessions *middleware.AdminSessions

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global webhook forwarder instance (set by SetForwarder)
var forwarder webhook.Forwarder = webhook.NewNoopForwarder()

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// Address that receives new-member notifications
var emailNotifyTo string

// SetEmailSender sets the global email sender and the operator address that
// receives new-member notifications.
func SetEmailSender(sender email.Sender, notifyTo string) {
	emailSender = sender
	emailNotifyTo = notifyTo
}

// SetForwarder sets the global webhook forwarder for the application.
func SetForwarder(f webhook.Forwarder) {
	forwarder = f
}

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, s *Stores) http.Handler {
	stores = s
	adminSessions = middleware.NewAdminSessions()

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: RateLimit -> Admin -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Admin(adminSessions),
		middleware.RateLimit(limiter),
	)
}
