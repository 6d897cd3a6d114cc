package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"blinds/storefront/internal/category"
	"blinds/storefront/internal/client"
	"blinds/storefront/internal/domain"
	"blinds/storefront/internal/filter"
	"blinds/storefront/internal/mapper"
)

var ErrProductNotFound = errors.New("product not found")

// CollectionPage is everything a collection view needs.
type CollectionPage struct {
	// Category is nil when the route slug is not a canonical category.
	Category     *domain.FrontendCategory
	CategorySlug string
	CategoryName string
	Filters      domain.Filters
	TagSlugs     []string
	Products     []domain.Product
	// Degraded is set when the catalog could not be read and Products is empty because of it.
	Degraded bool
}

type Service struct {
	client     client.CatalogClient
	categories *category.Table
	mapper     *mapper.ProductMapper
	listLimit  int
}

func NewService(
	client client.CatalogClient,
	categories *category.Table,
	mapper *mapper.ProductMapper,
	listLimit int,
) *Service {
	return &Service{
		client:     client,
		categories: categories,
		mapper:     mapper,
		listLimit:  listLimit,
	}
}

func (s *Service) Categories() []domain.FrontendCategory {
	return s.categories.All()
}

// Collection composes the product list for a collection route. Selected filter axes are
// unioned into one tag set; the category narrows the result. A catalog failure degrades
// to an empty list and never fails the page.
func (s *Service) Collection(ctx context.Context, categorySlug string, q url.Values) CollectionPage {
	slug := strings.ToLower(strings.TrimSpace(categorySlug))
	page := CollectionPage{
		CategorySlug: slug,
		CategoryName: displayName(slug),
		Filters:      filter.ParseQuery(q),
		Products:     []domain.Product{},
	}
	if c, ok := s.categories.BySlug(slug); ok {
		page.Category = &c
		page.CategoryName = c.Name
	}
	page.TagSlugs = filter.ResolveAll(page.Filters)

	products, err := s.listProducts(ctx, page.TagSlugs)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"category": slug,
			"tags":     page.TagSlugs,
			"degraded": true,
		}).Warn("⚠️ Catalog unavailable, rendering empty collection")
		page.Degraded = true
		return page
	}

	kept := products
	if page.Category != nil {
		kept = make([]domain.ProductData, 0, len(products))
		for _, raw := range products {
			if s.categories.Matches(raw.Categories, page.Category.Slug) {
				kept = append(kept, raw)
			}
		}
	}
	page.Products = s.mapper.MapAll(kept)

	log.WithFields(log.Fields{
		"category": slug,
		"tags":     len(page.TagSlugs),
		"fetched":  len(products),
		"kept":     len(page.Products),
	}).Debug("Collection composed")

	return page
}

// CategoryCounts tallies products per canonical category over an unfiltered listing.
// Each product counts once per category. On failure every count is zero.
func (s *Service) CategoryCounts(ctx context.Context, activeSlug string) ([]domain.CategoryCount, bool) {
	all := s.categories.All()
	counts := make([]domain.CategoryCount, len(all))
	index := make(map[string]int, len(all))
	for i, c := range all {
		counts[i] = domain.CategoryCount{FrontendCategory: c, Active: c.Slug == activeSlug}
		index[c.Slug] = i
	}

	products, err := s.listProducts(ctx, nil)
	if err != nil {
		log.WithError(err).Warn("⚠️ Catalog unavailable, category counts set to zero")
		return counts, false
	}

	for _, p := range products {
		for _, slug := range s.categories.NormalizeAll(p.Categories) {
			counts[index[slug]].Count++
		}
	}
	return counts, true
}

// Product returns the view model of one product. ErrProductNotFound is returned when the
// catalog has no such product; other failures are passed through.
func (s *Service) Product(ctx context.Context, slug string) (domain.Product, error) {
	resp, err := s.client.GetProductBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return domain.Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, slug)
		}
		return domain.Product{}, fmt.Errorf("failed to get product %s: %w", slug, err)
	}
	if resp.Data.Slug == "" && resp.Data.ID == "" {
		return domain.Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, slug)
	}
	return s.mapper.Map(resp.Data), nil
}

func (s *Service) listProducts(ctx context.Context, tags []string) ([]domain.ProductData, error) {
	resp, err := s.client.ListProducts(ctx, client.ListOptions{
		Limit: s.listLimit,
		Tags:  tags,
	})
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func displayName(slug string) string {
	if slug == "" {
		return "All Blinds"
	}
	return cases.Title(language.BritishEnglish).String(strings.ReplaceAll(slug, "-", " "))
}
