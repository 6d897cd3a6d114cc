package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Tag is a backend product attribute used for cross-cutting filters like pattern or color.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ProductData is a product as returned by the catalog service.
type ProductData struct {
	ID          string            `json:"id"`
	Slug        string            `json:"slug"`
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	Images      []string          `json:"images"`
	OldPrice    Price             `json:"oldPrice"`
	BasePrice   Price             `json:"basePrice"`
	CreatedAt   string            `json:"createdAt"`
	UpdatedAt   string            `json:"updatedAt"`
	Categories  []BackendCategory `json:"categories"`
	Tags        []Tag             `json:"tags"`
}

type Pagination struct {
	Page            int  `json:"page"`
	Limit           int  `json:"limit"`
	Total           int  `json:"total"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// ProductsResponse is the envelope of GET /api/products.
type ProductsResponse struct {
	Success    bool          `json:"success"`
	Data       []ProductData `json:"data"`
	Pagination *Pagination   `json:"pagination,omitempty"`
}

// ProductResponse is the envelope of GET /api/products/{slug}.
type ProductResponse struct {
	Success bool        `json:"success"`
	Data    ProductData `json:"data"`
}

// Price accepts both JSON numbers and numeric strings. Anything else, including NaN and
// infinities, decodes to zero.
type Price float64

func (p *Price) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*p = 0
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		*p = 0
		return nil
	}
	*p = Price(v)
	return nil
}

func (p Price) Float64() float64 {
	return float64(p)
}

// Product is the view model rendered by storefront pages.
type Product struct {
	ID            string    `json:"id"`
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	Summary       string    `json:"summary,omitempty"`
	Description   string    `json:"description,omitempty"`
	Images        []string  `json:"images"`
	Image         string    `json:"image,omitempty"`
	Price         float64   `json:"price"`
	OldPrice      float64   `json:"oldPrice,omitempty"`
	OnSale        bool      `json:"onSale"`
	PriceLabel    string    `json:"priceLabel"`
	OldPriceLabel string    `json:"oldPriceLabel,omitempty"`
	CategorySlugs []string  `json:"categories"`
	TagSlugs      []string  `json:"tags"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// HasTag reports whether the product carries the given tag slug.
func (p Product) HasTag(slug string) bool {
	for _, t := range p.TagSlugs {
		if t == slug {
			return true
		}
	}
	return false
}
