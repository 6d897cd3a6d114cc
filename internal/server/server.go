// Package server serves the storefront pages and their JSON counterparts.
package server

import (
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMid "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"blinds/storefront/internal/service"
	"blinds/storefront/internal/sizing"
)

type Options struct {
	// APIURL is the catalog endpoint handed to browser scripts.
	APIURL         string
	RequestTimeout time.Duration
	AllowedOrigins []string
}

type Server struct {
	router    chi.Router
	service   *service.Service
	sizes     *sizing.Validator
	templates map[string]*template.Template
	apiURL    string
}

func New(svc *service.Service, sizes *sizing.Validator, opts Options) (*Server, error) {
	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 30 * time.Second
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	s := &Server{
		service:   svc,
		sizes:     sizes,
		templates: templates,
		apiURL:    opts.APIURL,
	}
	s.router = s.routes(opts)
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes(opts Options) chi.Router {
	r := chi.NewRouter()
	r.Use(chiMid.RequestID)
	r.Use(chiMid.RealIP)
	r.Use(requestLogger)
	r.Use(chiMid.Recoverer)
	r.Use(chiMid.Compress(5))
	r.Use(chiMid.Timeout(opts.RequestTimeout))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/collections", http.StatusFound)
	})
	r.Get("/collections", s.handleCollectionsIndex)
	r.Get("/collections/{category}", s.handleCollection)
	r.Get("/products/{slug}", s.handleProduct)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.AllowedOrigins,
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			ExposedHeaders: []string{degradedHeader},
			MaxAge:         300,
		}))
		r.Get("/collections/counts", s.handleCountsAPI)
		r.Get("/collections/{category}", s.handleCollectionAPI)
		r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
			writeJSONError(w, http.StatusNotFound, "not found")
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.render(w, http.StatusNotFound, "not_found", "Page not found", nil)
	})

	return r
}
