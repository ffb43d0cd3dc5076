// Package render provides HTML template rendering for all server-rendered
// pages. Templates are embedded at compile time; every page template is
// paired with the base layout.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"blogapp/internal/middleware"
	"blogapp/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData holds all data passed to page templates.
type PageData struct {
	Title     string          // Page title for the <title> tag
	Session   *session.Data   // Current user session (nil if unauthenticated)
	CSRFToken string          // Token for hidden form fields
	Errors    []string        // Validation errors re-rendered inline on forms
	Flashes   []session.Flash // One-time notification messages
	Data      map[string]any  // Page-specific data
}

// Renderer handles template parsing and execution. It pops pending flash
// messages at render time so each message is shown exactly once; the
// session store may be nil in tests, which simply disables flashes.
type Renderer struct {
	templates map[string]*template.Template
	sessions  *session.Store
}

// New creates a Renderer by parsing all templates from the embedded
// filesystem. Each page template is paired with the base layout.
func New(sessions *session.Store) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
		sessions:  sessions,
	}

	funcMap := template.FuncMap{
		// fmtDate renders timestamps the way the site displays them.
		"fmtDate": func(t time.Time) string {
			return t.Format("02/01/2006 15:04")
		},
	}

	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" {
			continue
		}

		// Strip .html extension for the template name.
		tmplName := name[:len(name)-len(filepath.Ext(name))]

		tmpl, err := template.New("base.html").Funcs(funcMap).ParseFS(
			templateFS, "templates/base.html", "templates/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}

		r.templates[tmplName] = tmpl
	}

	return r, nil
}

// Page renders a full page with the base layout, injecting the session,
// CSRF token and pending flash messages from the request.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	tmpl, ok := rn.templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	if data == nil {
		data = &PageData{}
	}

	data.CSRFToken = middleware.GetCSRFToken(r)

	if data.Session == nil {
		data.Session = middleware.SessionFromCtx(r.Context())
	}

	if rn.sessions != nil {
		data.Flashes = rn.sessions.PopFlashes(r.Context(), r)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := executeTemplate(w, tmpl, "base.html", data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// executeTemplate wraps template execution with error handling.
func executeTemplate(w io.Writer, tmpl *template.Template, name string, data any) error {
	return tmpl.ExecuteTemplate(w, name, data)
}
