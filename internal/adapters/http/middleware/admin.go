package middleware

import (
	"context"
	"net/http"
	"sync"

	"github.com/google/uuid"
)

// contextKey is an unexported type for context keys in this package.
type contextKey string

const adminContextKey contextKey = "admin"

// AdminSessions is an in-memory store of unlocked admin sessions. The admin
// gate is a UI convenience, not authentication: any 4-digit pin opens it, and
// sessions live exactly as long as the process — no expiry, no persistence,
// a restart locks everyone out.
type AdminSessions struct {
	mu       sync.RWMutex
	unlocked map[string]struct{}
}

// NewAdminSessions creates an empty admin session store.
func NewAdminSessions() *AdminSessions {
	return &AdminSessions{
		unlocked: make(map[string]struct{}),
	}
}

// PinUnlocks reports whether the submitted pin opens the gate. Any string of
// exactly four ASCII digits counts.
// PRE: pin is the raw form value
// POST: Returns true for exactly four digits, false otherwise
func PinUnlocks(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Unlock creates a new admin session and returns the token.
// POST: Token is stored and returned
func (as *AdminSessions) Unlock() string {
	token := uuid.NewString()
	as.mu.Lock()
	defer as.mu.Unlock()
	as.unlocked[token] = struct{}{}
	return token
}

// Valid reports whether a token belongs to a live admin session.
// PRE: token is non-empty
// POST: Returns true if the session exists
func (as *AdminSessions) Valid(token string) bool {
	as.mu.RLock()
	defer as.mu.RUnlock()
	_, ok := as.unlocked[token]
	return ok
}

// Exit removes an admin session.
// PRE: token is non-empty
// POST: Session with given token is removed
func (as *AdminSessions) Exit(token string) {
	as.mu.Lock()
	defer as.mu.Unlock()
	delete(as.unlocked, token)
}

const adminCookieName = "lockerroom_admin"

// Admin returns middleware that flags the request context as admin when a
// valid session cookie is present. It never blocks requests — handlers decide
// what the flag changes.
func Admin(sessions *AdminSessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(adminCookieName)
			if err == nil && cookie.Value != "" && sessions.Valid(cookie.Value) {
				ctx := context.WithValue(r.Context(), adminContextKey, true)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IsAdmin reports whether the request context carries an unlocked admin session.
func IsAdmin(ctx context.Context) bool {
	flag, ok := ctx.Value(adminContextKey).(bool)
	return ok && flag
}

// SetAdminCookie sets the admin session cookie on the response. No MaxAge:
// the cookie is session-scoped, matching the in-memory session lifetime.
func SetAdminCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     adminCookieName,
		Value:    token,
		HttpOnly: true,
		Secure:   false, // Allow HTTP for local development
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
	})
}

// ClearAdminCookie removes the admin session cookie.
func ClearAdminCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     adminCookieName,
		Value:    "",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   -1,
	})
}

// AdminCookie extracts the admin session token from the request, if any.
func AdminCookie(r *http.Request) string {
	cookie, err := r.Cookie(adminCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// ContextWithAdmin returns a context flagged as admin.
// Intended for use in tests.
func ContextWithAdmin(ctx context.Context) context.Context {
	return context.WithValue(ctx, adminContextKey, true)
}
