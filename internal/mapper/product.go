// Package mapper turns raw catalog products into storefront view models.
package mapper

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"

	"blinds/storefront/internal/category"
	"blinds/storefront/internal/domain"
	"blinds/storefront/internal/format"
)

const (
	currency      = "GBP"
	summaryLength = 160
)

type ProductMapper struct {
	categories *category.Table
}

func NewProductMapper(categories *category.Table) *ProductMapper {
	return &ProductMapper{categories: categories}
}

// Map builds the view model of data. Categories the table does not know are dropped.
func (m *ProductMapper) Map(data domain.ProductData) domain.Product {
	p := domain.Product{
		ID:            data.ID,
		Slug:          data.Slug,
		Title:         strings.TrimSpace(data.Title),
		Images:        nonEmpty(data.Images),
		Price:         data.BasePrice.Float64(),
		OldPrice:      data.OldPrice.Float64(),
		CategorySlugs: m.categories.NormalizeAll(data.Categories),
		TagSlugs:      tagSlugs(data.Tags),
		CreatedAt:     parseTime(data.CreatedAt),
		UpdatedAt:     parseTime(data.UpdatedAt),
	}

	if len(p.Images) > 0 {
		p.Image = p.Images[0]
	}
	if data.Description != nil {
		p.Description = strings.TrimSpace(*data.Description)
		p.Summary = summarize(p.Description, summaryLength)
	}

	p.PriceLabel = format.Currency(p.Price, currency)
	if p.OldPrice > p.Price {
		p.OnSale = true
		p.OldPriceLabel = format.Currency(p.OldPrice, currency)
	}
	return p
}

// MapAll maps every product in order.
func (m *ProductMapper) MapAll(data []domain.ProductData) []domain.Product {
	out := make([]domain.Product, 0, len(data))
	for _, d := range data {
		out = append(out, m.Map(d))
	}
	return out
}

// summarize extracts the visible text of an HTML (or plain text) description and
// shortens it to at most n runes on a word boundary.
func summarize(description string, n int) string {
	text := description
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(description))
	if err != nil {
		log.Debugf("Failed to parse product description: %v", err)
	} else {
		doc.Find("script, style").Remove()
		text = doc.Text()
	}

	text = strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(text) <= n {
		return text
	}

	runes := []rune(text)
	cut := string(runes[:n])
	if i := strings.LastIndex(cut, " "); i > n/2 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}

func tagSlugs(tags []domain.Tag) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		slug := strings.ToLower(strings.TrimSpace(t.Slug))
		if slug == "" {
			continue
		}
		if _, dup := seen[slug]; dup {
			continue
		}
		seen[slug] = struct{}{}
		out = append(out, slug)
	}
	return out
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func parseTime(val string) time.Time {
	val = strings.TrimSpace(val)
	if val == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if ts, err := time.Parse(layout, val); err == nil {
			return ts
		}
	}
	return time.Time{}
}
