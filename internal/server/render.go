package server

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	log "github.com/sirupsen/logrus"

	"blinds/storefront/internal/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const layoutFile = "templates/base.tmpl"

// view is the data passed to the base layout. Data holds the page-specific model.
type view struct {
	Title  string
	APIURL string
	Nav    []domain.FrontendCategory
	Data   any
}

// parseTemplates builds one template set per page, each sharing the base layout.
func parseTemplates() (map[string]*template.Template, error) {
	funcMap := template.FuncMap{
		"join": strings.Join,
	}

	base, err := template.New("base").Funcs(funcMap).ParseFS(templateFS, layoutFile)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	pages, err := fs.Glob(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}

	out := make(map[string]*template.Template, len(pages))
	for _, p := range pages {
		if p == layoutFile {
			continue
		}
		t, err := template.Must(base.Clone()).ParseFS(templateFS, p)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		out[strings.TrimSuffix(path.Base(p), ".tmpl")] = t
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no page templates found")
	}
	return out, nil
}

// render executes the base layout into a buffer so a template failure never leaves a
// half-written page behind.
func (s *Server) render(w http.ResponseWriter, status int, page, title string, data any) {
	t, ok := s.templates[page]
	if !ok {
		log.WithField("page", page).Error("❌ Unknown template")
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	err := t.ExecuteTemplate(&buf, "base", view{
		Title:  title,
		APIURL: s.apiURL,
		Nav:    s.service.Categories(),
		Data:   data,
	})
	if err != nil {
		log.WithError(err).WithField("page", page).Error("❌ Template execution failed")
		http.Error(w, "template exec error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
