package filter

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blinds/storefront/internal/domain"
)

func TestResolveTagsKnownValues(t *testing.T) {
	for _, axis := range []domain.FilterAxis{domain.FilterAxisPattern, domain.FilterAxisColor} {
		vocab, ok := VocabularyFor(axis)
		require.True(t, ok)
		for _, opt := range vocab.Options {
			t.Run(axis.String()+"/"+opt.Value, func(t *testing.T) {
				assert.NotEmpty(t, ResolveTags(axis, opt.Value))
				assert.Equal(t, ResolveTags(axis, opt.Value), ResolveTags(axis, opt.Label))
			})
		}
	}
}

func TestResolveTagsUnpopulatedAxes(t *testing.T) {
	for _, axis := range []domain.FilterAxis{domain.FilterAxisWindow, domain.FilterAxisRoom, domain.FilterAxisSolution} {
		vocab, ok := VocabularyFor(axis)
		require.True(t, ok)
		for _, opt := range vocab.Options {
			assert.Empty(t, ResolveTags(axis, opt.Value), "%s=%s", axis, opt.Value)
		}
		assert.Empty(t, ResolveTags(axis, "anything"))
	}
}

func TestResolveTagsUnknown(t *testing.T) {
	got := ResolveTags(domain.FilterAxisPattern, "polka-dot")
	assert.NotNil(t, got)
	assert.Empty(t, got)

	assert.Empty(t, ResolveTags(domain.FilterAxis("material"), "striped"))
}

func TestResolveTagsReturnsCopy(t *testing.T) {
	got := ResolveTags(domain.FilterAxisPattern, "striped")
	require.NotEmpty(t, got)
	got[0] = "mutated"
	assert.Equal(t, "striped", ResolveTags(domain.FilterAxisPattern, "striped")[0])
}

func TestResolveAllUnionsAndDedupes(t *testing.T) {
	got := ResolveAll(domain.Filters{
		domain.FilterAxisPattern: "light-wood",
		domain.FilterAxisColor:   "grey",
		domain.FilterAxisRoom:    "kitchen",
	})
	assert.Equal(t, []string{"light-wood", "wood-effect", "grey", "gray", "silver"}, got)

	assert.Empty(t, ResolveAll(domain.Filters{}))
	assert.Empty(t, ResolveAll(nil))
}

func TestParseQuery(t *testing.T) {
	q, err := url.ParseQuery("pattern=Striped&color=red&color=blue&room=&window=bay&page=2")
	require.NoError(t, err)

	got := ParseQuery(q)
	assert.Equal(t, domain.Filters{
		domain.FilterAxisPattern: "striped",
		domain.FilterAxisWindow:  "bay",
	}, got)
	assert.True(t, got.Active())
	assert.False(t, ParseQuery(url.Values{}).Active())
}

func TestToggleURL(t *testing.T) {
	q := url.Values{"color": {"red"}, "sort": {"new"}}

	// selecting a new value adds it
	assert.Equal(t, "/collections/roller-blinds?color=red&pattern=striped&sort=new",
		ToggleURL("roller-blinds", q, domain.FilterAxisPattern, "striped"))

	// selecting a different value replaces it
	assert.Equal(t, "/collections/roller-blinds?color=blue&sort=new",
		ToggleURL("roller-blinds", q, domain.FilterAxisColor, "blue"))

	// selecting the active value removes it
	assert.Equal(t, "/collections/roller-blinds?sort=new",
		ToggleURL("roller-blinds", q, domain.FilterAxisColor, "red"))

	// the input is untouched
	assert.Equal(t, "red", q.Get("color"))
}

func TestToggleTwiceRemovesParameter(t *testing.T) {
	first := ToggleURL("roman-blinds", url.Values{}, domain.FilterAxisPattern, "geometric")
	u, err := url.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, "geometric", u.Query().Get("pattern"))

	second := ToggleURL("roman-blinds", u.Query(), domain.FilterAxisPattern, "geometric")
	assert.Equal(t, "/collections/roman-blinds", second)
}

func TestClearURL(t *testing.T) {
	q := url.Values{"pattern": {"striped"}, "color": {"red"}, "solution": {"thermal"}, "utm_source": {"mail"}}
	assert.Equal(t, "/collections/roller-blinds?utm_source=mail", ClearURL("roller-blinds", q))
	assert.Equal(t, "/collections/roller-blinds", ClearURL("roller-blinds", url.Values{"room": {"office"}}))
}

func TestBuildPanel(t *testing.T) {
	q := url.Values{"pattern": {"striped"}}
	counts := []domain.CategoryCount{
		{FrontendCategory: domain.FrontendCategory{Name: "Roller Blinds", Slug: "roller-blinds"}, Count: 3},
		{FrontendCategory: domain.FrontendCategory{Name: "Roman Blinds", Slug: "roman-blinds"}, Count: 0},
	}

	p := BuildPanel("roller-blinds", q, counts)

	require.Len(t, p.Categories, 2)
	assert.True(t, p.Categories[0].Active)
	assert.False(t, p.Categories[1].Active)
	assert.Equal(t, "/collections/roman-blinds", p.Categories[1].Href)
	assert.Equal(t, 3, p.Categories[0].Count)

	require.Len(t, p.Sections, 2)
	assert.Equal(t, domain.FilterAxisPattern, p.Sections[0].Axis)
	assert.Equal(t, domain.FilterAxisColor, p.Sections[1].Axis)

	for _, opt := range p.Sections[0].Options {
		if opt.Value == "striped" {
			assert.True(t, opt.Active)
			assert.Equal(t, "/collections/roller-blinds", opt.Href)
		} else {
			assert.False(t, opt.Active)
		}
	}
	assert.Equal(t, "/collections/roller-blinds", p.ClearHref)

	empty := BuildPanel("roller-blinds", url.Values{}, counts)
	assert.Empty(t, empty.ClearHref)
}
