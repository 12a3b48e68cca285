package web

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"lockerroom/internal/adapters/http/middleware"
	"lockerroom/internal/application/orchestrators"
	"lockerroom/internal/domain/product"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

//go:embed templates/*.html
var templatesFS embed.FS

// internalError logs the real error and returns a generic message to the client.
// This prevents leaking internal details per OWASP A05.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	funcMap := template.FuncMap{
		"isAdmin":   func() bool { return middleware.IsAdmin(r.Context()) },
		"csrfToken": func() string { return csrf.Token(r) },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
		"priceLabel": func(p product.Product) string { return p.PriceLabel() },
	}

	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFS(templatesFS,
		"templates/layout.html", "templates/"+templateName)
	if err != nil {
		internalError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		internalError(w, err)
		return
	}
}

// parseID reads a record id from a form value. Returns 0 when the value is
// missing or not a number; no record ever has id 0.
func parseID(raw string) int64 {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// handleHome renders the landing page with the member count and a preview of
// the latest announcements and events.
func handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	ctx := r.Context()

	announcements := stores.Announcements.List(ctx)
	if len(announcements) > 3 {
		announcements = announcements[:3]
	}
	events := stores.Events.List(ctx)
	if len(events) > 3 {
		events = events[:3]
	}

	renderTemplate(w, r, "home.html", map[string]any{
		"MemberCount":   len(stores.Members.List(ctx)),
		"Announcements": announcements,
		"Events":        events,
	})
}

// handleJoin handles GET (form) and POST (submission) for /join.
func handleJoin(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		renderTemplate(w, r, "join.html", map[string]any{"State": "idle"})
		return
	}
	if r.Method != "POST" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		renderTemplate(w, r, "join.html", map[string]any{"State": "error"})
		return
	}

	result, err := orchestrators.ExecuteJoin(r.Context(), orchestrators.JoinInput{
		Name:  r.FormValue("name"),
		Email: r.FormValue("email"),
		Story: r.FormValue("story"),
	}, orchestrators.JoinDeps{
		Members:   stores.Members,
		Settings:  stores.Settings,
		Forwarder: forwarder,
		Notifier:  emailSender,
		NotifyTo:  emailNotifyTo,
		Now:       timeNow,
	})
	if err != nil {
		// Missing name or email. Show the form again rather than an error page.
		renderTemplate(w, r, "join.html", map[string]any{"State": "idle"})
		return
	}

	state := "done"
	if result.ForwardErr != nil {
		// The member is saved locally regardless; the visible error covers
		// the forward that never reached the community inbox.
		state = "error"
	}
	renderTemplate(w, r, "join.html", map[string]any{"State": state, "Name": result.Member.Name})
}

// handleApply handles GET (form) and POST (submission) for /apply.
func handleApply(w http.ResponseWriter, r *http.Request) {
	programs := stores.Products.List(r.Context())

	if r.Method == "GET" {
		renderTemplate(w, r, "apply.html", map[string]any{
			"State": "idle", "Programs": programs, "Program": r.URL.Query().Get("program"),
		})
		return
	}
	if r.Method != "POST" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		renderTemplate(w, r, "apply.html", map[string]any{"State": "error", "Programs": programs})
		return
	}

	result, err := orchestrators.ExecuteApply(r.Context(), orchestrators.ApplyInput{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Phone:   r.FormValue("phone"),
		Goals:   r.FormValue("goals"),
		Program: r.FormValue("program"),
	}, orchestrators.ApplyDeps{
		Settings:  stores.Settings,
		Forwarder: forwarder,
		Now:       timeNow,
	})
	if err != nil {
		renderTemplate(w, r, "apply.html", map[string]any{
			"State": "idle", "Programs": programs, "Program": r.FormValue("program"),
		})
		return
	}

	state := "done"
	if result.ForwardErr != nil {
		state = "error"
	}
	renderTemplate(w, r, "apply.html", map[string]any{"State": state, "Programs": programs})
}
