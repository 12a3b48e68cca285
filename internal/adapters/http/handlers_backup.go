package web

import (
	"net/http"

	"lockerroom/internal/adapters/http/middleware"
	"lockerroom/internal/application/orchestrators"
	"lockerroom/internal/domain/backup"
)

func backupDeps() orchestrators.BackupDeps {
	return orchestrators.BackupDeps{
		Members:       stores.Members,
		Announcements: stores.Announcements,
		Events:        stores.Events,
		Resources:     stores.Resources,
		Products:      stores.Products,
	}
}

// handleBackupExport streams the current store as a JSON download.
func handleBackupExport(w http.ResponseWriter, r *http.Request) {
	if !middleware.IsAdmin(r.Context()) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	doc := orchestrators.ExecuteExportBackup(r.Context(), backupDeps())
	raw, err := doc.Encode()
	if err != nil {
		internalError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+backup.FileName(timeNow())+`"`)
	w.Write(raw)
}

// maxBackupUpload caps the accepted import size at 10 MB.
const maxBackupUpload = 10 << 20

// handleBackupImport restores collections from an uploaded export file. A
// malformed file changes nothing; either way the visitor lands back on the
// admin panel.
func handleBackupImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" || !middleware.IsAdmin(r.Context()) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	if err := r.ParseMultipartForm(maxBackupUpload); err != nil {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	file, _, err := r.FormFile("backup")
	if err != nil {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	defer file.Close()

	orchestrators.ExecuteImportBackup(r.Context(), file, backupDeps())
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
