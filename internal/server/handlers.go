package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"blinds/storefront/internal/domain"
	"blinds/storefront/internal/filter"
	"blinds/storefront/internal/service"
	"blinds/storefront/internal/sizing"
)

type indexView struct {
	Categories      []filter.PanelCategory
	CountsAvailable bool
}

type collectionView struct {
	Page            service.CollectionPage
	Panel           filter.Panel
	CountsAvailable bool
}

type productView struct {
	Product      domain.Product
	Request      sizing.Request
	Size         *sizing.Size
	Errors       sizing.FieldErrors
	Fractions    []string
	WidthLimits  sizing.Limits
	HeightLimits sizing.Limits
}

type errorView struct {
	Message string
}

// collectionJSON is the machine-readable form of a collection page.
type collectionJSON struct {
	Category string           `json:"category"`
	Name     string           `json:"name"`
	Known    bool             `json:"known"`
	Filters  domain.Filters   `json:"filters"`
	Tags     []string         `json:"tags"`
	Products []domain.Product `json:"products"`
	Degraded bool             `json:"degraded"`
}

func (s *Server) handleCollectionsIndex(w http.ResponseWriter, r *http.Request) {
	counts, ok := s.service.CategoryCounts(r.Context(), "")
	markDegraded(w, !ok)

	panel := filter.BuildPanel("", nil, counts)
	s.render(w, http.StatusOK, "collections", "All Blinds", indexView{
		Categories:      panel.Categories,
		CountsAvailable: ok,
	})
}

func (s *Server) handleCollection(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "category")
	q := r.URL.Query()

	var (
		page     service.CollectionPage
		counts   []domain.CategoryCount
		countsOK bool
	)

	// Neither call fails; degraded results are reported through their flags.
	var g errgroup.Group
	g.Go(func() error {
		page = s.service.Collection(r.Context(), slug, q)
		return nil
	})
	g.Go(func() error {
		counts, countsOK = s.service.CategoryCounts(r.Context(), slug)
		return nil
	})
	_ = g.Wait()

	markDegraded(w, page.Degraded || !countsOK)
	s.render(w, http.StatusOK, "collection", page.CategoryName, collectionView{
		Page:            page,
		Panel:           filter.BuildPanel(page.CategorySlug, q, counts),
		CountsAvailable: countsOK,
	})
}

func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	product, err := s.service.Product(r.Context(), slug)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			s.render(w, http.StatusNotFound, "not_found", "Product not found", nil)
			return
		}
		log.WithError(err).WithField("slug", slug).Error("❌ Failed to load product")
		s.render(w, http.StatusBadGateway, "error", "Something went wrong", errorView{
			Message: "We could not load this product right now. Please try again shortly.",
		})
		return
	}

	q := r.URL.Query()
	req := sizing.ParseRequest(q)
	widthLimits, heightLimits := sizing.LimitsFor(req.Unit)
	vm := productView{
		Product:      product,
		Request:      req,
		Fractions:    sizing.Fractions,
		WidthLimits:  widthLimits,
		HeightLimits: heightLimits,
	}
	if req.Unit == sizing.UnitCentimeters {
		vm.Fractions = sizing.Millimeters
	}

	if q.Has("width") || q.Has("height") {
		size, err := s.sizes.Validate(req)
		var fields sizing.FieldErrors
		switch {
		case err == nil:
			vm.Size = &size
		case errors.As(err, &fields):
			vm.Errors = fields
		default:
			log.WithError(err).Warn("⚠️ Size validation failed")
		}
	}

	s.render(w, http.StatusOK, "product", product.Title, vm)
}

func (s *Server) handleCountsAPI(w http.ResponseWriter, r *http.Request) {
	counts, ok := s.service.CategoryCounts(r.Context(), r.URL.Query().Get("active"))
	markDegraded(w, !ok)
	writeJSON(w, http.StatusOK, counts)
}

func (s *Server) handleCollectionAPI(w http.ResponseWriter, r *http.Request) {
	page := s.service.Collection(r.Context(), chi.URLParam(r, "category"), r.URL.Query())
	markDegraded(w, page.Degraded)

	if page.TagSlugs == nil {
		page.TagSlugs = []string{}
	}
	writeJSON(w, http.StatusOK, collectionJSON{
		Category: page.CategorySlug,
		Name:     page.CategoryName,
		Known:    page.Category != nil,
		Filters:  page.Filters,
		Tags:     page.TagSlugs,
		Products: page.Products,
		Degraded: page.Degraded,
	})
}
