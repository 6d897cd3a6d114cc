package mapper

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blinds/storefront/internal/category"
	"blinds/storefront/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestMap(t *testing.T) {
	m := NewProductMapper(category.Default())

	p := m.Map(domain.ProductData{
		ID:          "p1",
		Slug:        "striped-roller",
		Title:       "  Striped Roller ",
		Description: strPtr("<p>A <strong>striped</strong> roller blind.</p><script>track()</script>"),
		Images:      []string{"", "a.jpg", "b.jpg"},
		OldPrice:    59.99,
		BasePrice:   39.5,
		CreatedAt:   "2025-01-02T03:04:05Z",
		Categories: []domain.BackendCategory{
			{Name: "Roller Blind", Slug: "roller"},
			{Name: "Curtains", Slug: "curtains"},
			{Name: "Blackout", Slug: "blackout"},
		},
		Tags: []domain.Tag{{Slug: "Striped"}, {Slug: "striped"}, {Slug: ""}, {Slug: "grey"}},
	})

	assert.Equal(t, "Striped Roller", p.Title)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, p.Images)
	assert.Equal(t, "a.jpg", p.Image)
	assert.Equal(t, []string{"roller-blinds", "complete-blackout-blinds"}, p.CategorySlugs)
	assert.Equal(t, []string{"striped", "grey"}, p.TagSlugs)
	assert.True(t, p.HasTag("striped"))
	assert.Equal(t, "A striped roller blind.", p.Summary)
	assert.Equal(t, "£39.50", p.PriceLabel)
	assert.True(t, p.OnSale)
	assert.Equal(t, "£59.99", p.OldPriceLabel)
	assert.Equal(t, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), p.CreatedAt)
	assert.True(t, p.UpdatedAt.IsZero())
}

func TestMapWithoutSale(t *testing.T) {
	p := NewProductMapper(category.Default()).Map(domain.ProductData{BasePrice: 20, OldPrice: 0})
	assert.False(t, p.OnSale)
	assert.Empty(t, p.OldPriceLabel)
	assert.Empty(t, p.Summary)
	assert.Empty(t, p.Image)
	assert.NotNil(t, p.CategorySlugs)
	assert.NotNil(t, p.TagSlugs)
}

func TestSummarizeTruncates(t *testing.T) {
	long := strings.Repeat("word ", 100)
	got := summarize(long, 40)
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.LessOrEqual(t, len([]rune(got)), 41)
	assert.NotContains(t, got, "  ")

	require.Equal(t, "plain text", summarize("plain   text", 40))
}

func TestMapAll(t *testing.T) {
	out := NewProductMapper(category.Default()).MapAll([]domain.ProductData{{Slug: "a"}, {Slug: "b"}})
	require.Len(t, out, 2)
	assert.Equal(t, "b", out[1].Slug)
}
