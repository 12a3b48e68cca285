package web

import (
	"net/http"
	"strconv"

	"lockerroom/internal/adapters/http/middleware"
	"lockerroom/internal/application/orchestrators"
)

// requireAdminForm gates a board mutation. Non-admin or non-POST requests are
// redirected back to the board without a hint that the mutation exists.
func requireAdminForm(w http.ResponseWriter, r *http.Request, backTo string) bool {
	if r.Method != "POST" {
		http.Redirect(w, r, backTo, http.StatusSeeOther)
		return false
	}
	if !middleware.IsAdmin(r.Context()) {
		http.Redirect(w, r, backTo, http.StatusSeeOther)
		return false
	}
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, backTo, http.StatusSeeOther)
		return false
	}
	return true
}

// handleAnnouncements handles GET (board) and POST (create) for /announcements.
func handleAnnouncements(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		renderTemplate(w, r, "announcements.html", map[string]any{
			"Announcements": stores.Announcements.List(r.Context()),
		})
		return
	}
	if !requireAdminForm(w, r, "/announcements") {
		return
	}

	// Invalid input falls through to the same redirect; the board re-renders
	// unchanged.
	orchestrators.ExecuteCreateAnnouncement(r.Context(), orchestrators.CreateAnnouncementInput{
		Text: r.FormValue("text"),
	}, orchestrators.CreateAnnouncementDeps{Announcements: stores.Announcements, Now: timeNow})
	http.Redirect(w, r, "/announcements", http.StatusSeeOther)
}

func handleAnnouncementDelete(w http.ResponseWriter, r *http.Request) {
	if !requireAdminForm(w, r, "/announcements") {
		return
	}
	orchestrators.ExecuteDeleteAnnouncement(r.Context(), parseID(r.FormValue("id")),
		orchestrators.DeleteAnnouncementDeps{Announcements: stores.Announcements})
	http.Redirect(w, r, "/announcements", http.StatusSeeOther)
}

// handleEvents handles GET (board) and POST (create) for /events.
func handleEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		renderTemplate(w, r, "events.html", map[string]any{
			"Events": stores.Events.List(r.Context()),
		})
		return
	}
	if !requireAdminForm(w, r, "/events") {
		return
	}

	orchestrators.ExecuteCreateEvent(r.Context(), orchestrators.CreateEventInput{
		Title:       r.FormValue("title"),
		Date:        r.FormValue("date"),
		Location:    r.FormValue("location"),
		Description: r.FormValue("description"),
	}, orchestrators.CreateEventDeps{Events: stores.Events, Now: timeNow})
	http.Redirect(w, r, "/events", http.StatusSeeOther)
}

func handleEventDelete(w http.ResponseWriter, r *http.Request) {
	if !requireAdminForm(w, r, "/events") {
		return
	}
	orchestrators.ExecuteDeleteEvent(r.Context(), parseID(r.FormValue("id")),
		orchestrators.DeleteEventDeps{Events: stores.Events})
	http.Redirect(w, r, "/events", http.StatusSeeOther)
}

// handleProducts handles GET (grid) and POST (create) for /products.
func handleProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		renderTemplate(w, r, "products.html", map[string]any{
			"Products": stores.Products.List(r.Context()),
		})
		return
	}
	if !requireAdminForm(w, r, "/products") {
		return
	}

	price, _ := strconv.Atoi(r.FormValue("price"))
	orchestrators.ExecuteCreateProduct(r.Context(), orchestrators.CreateProductInput{
		Kind:        r.FormValue("kind"),
		Title:       r.FormValue("title"),
		Price:       price,
		Description: r.FormValue("description"),
		CTA:         r.FormValue("cta"),
		Link:        r.FormValue("link"),
	}, orchestrators.CreateProductDeps{Products: stores.Products, Now: timeNow})
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

func handleProductDelete(w http.ResponseWriter, r *http.Request) {
	if !requireAdminForm(w, r, "/products") {
		return
	}
	orchestrators.ExecuteDeleteProduct(r.Context(), parseID(r.FormValue("id")),
		orchestrators.DeleteProductDeps{Products: stores.Products})
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

// handleResources handles GET (grid) and POST (create) for /resources.
func handleResources(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		renderTemplate(w, r, "resources.html", map[string]any{
			"Resources": stores.Resources.List(r.Context()),
		})
		return
	}
	if !requireAdminForm(w, r, "/resources") {
		return
	}

	orchestrators.ExecuteCreateResource(r.Context(), orchestrators.CreateResourceInput{
		Title: r.FormValue("title"),
		URL:   r.FormValue("url"),
	}, orchestrators.CreateResourceDeps{Resources: stores.Resources, Now: timeNow})
	http.Redirect(w, r, "/resources", http.StatusSeeOther)
}

func handleResourceDelete(w http.ResponseWriter, r *http.Request) {
	if !requireAdminForm(w, r, "/resources") {
		return
	}
	orchestrators.ExecuteDeleteResource(r.Context(), parseID(r.FormValue("id")),
		orchestrators.DeleteResourceDeps{Resources: stores.Resources})
	http.Redirect(w, r, "/resources", http.StatusSeeOther)
}
