package web

import "net/http"

// registerRoutes attaches every page and form handler to the mux.
func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", handleHome)

	mux.HandleFunc("/join", handleJoin)
	mux.HandleFunc("/apply", handleApply)

	mux.HandleFunc("/announcements", handleAnnouncements)
	mux.HandleFunc("/announcements/delete", handleAnnouncementDelete)
	mux.HandleFunc("/events", handleEvents)
	mux.HandleFunc("/events/delete", handleEventDelete)
	mux.HandleFunc("/products", handleProducts)
	mux.HandleFunc("/products/delete", handleProductDelete)
	mux.HandleFunc("/resources", handleResources)
	mux.HandleFunc("/resources/delete", handleResourceDelete)

	mux.HandleFunc("/admin", handleAdmin)
	mux.HandleFunc("/admin/unlock", handleAdminUnlock)
	mux.HandleFunc("/admin/exit", handleAdminExit)
	mux.HandleFunc("/admin/webhook", handleAdminWebhook)
	mux.HandleFunc("/backup/export", handleBackupExport)
	mux.HandleFunc("/backup/import", handleBackupImport)
}
