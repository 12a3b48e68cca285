package web

import (
	"net/http"

	"lockerroom/internal/adapters/http/middleware"
)

// handleAdmin renders the admin panel. Locked visitors see the pin form;
// unlocked visitors see the webhook settings and member roster.
func handleAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !middleware.IsAdmin(ctx) {
		renderTemplate(w, r, "admin.html", map[string]any{"Unlocked": false})
		return
	}

	renderTemplate(w, r, "admin.html", map[string]any{
		"Unlocked":   true,
		"WebhookURL": stores.Settings.WebhookURL(ctx),
		"Members":    stores.Members.List(ctx),
	})
}

// handleAdminUnlock opens the admin gate for a 4-digit pin. Any four digits
// unlock it; the gate hides the editing chrome from casual visitors and is
// not an authentication boundary.
func handleAdminUnlock(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	if !middleware.PinUnlocks(r.FormValue("pin")) {
		renderTemplate(w, r, "admin.html", map[string]any{"Unlocked": false, "BadPin": true})
		return
	}

	token := adminSessions.Unlock()
	middleware.SetAdminCookie(w, token)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// handleAdminExit closes the admin session and clears the cookie.
func handleAdminExit(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	if token := middleware.AdminCookie(r); token != "" {
		adminSessions.Exit(token)
	}
	middleware.ClearAdminCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleAdminWebhook saves the shared webhook endpoint.
func handleAdminWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" || !middleware.IsAdmin(r.Context()) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	stores.Settings.SetWebhookURL(r.Context(), r.FormValue("url"))
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
