package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blinds/storefront/internal/domain"
)

func TestDefaultTableIsValid(t *testing.T) {
	table := Default()
	require.NotNil(t, table)
	assert.Len(t, table.All(), 14)

	for _, a := range DefaultAliases {
		_, ok := table.BySlug(a.Slug)
		assert.True(t, ok, "alias %q targets %q", a.Key, a.Slug)
	}
}

func TestNormalizeSpellingVariants(t *testing.T) {
	table := Default()

	tests := []struct {
		name string
		slug string
		want string
	}{
		{"Roller Blind", "", "roller-blinds"},
		{"  ROLLER   blind ", "", "roller-blinds"},
		{"roller blind", "", "roller-blinds"},
		{"Day & Night Blinds", "", "day-and-night-blinds"},
		{"day and night blinds", "", "day-and-night-blinds"},
		{"DAY &  NIGHT", "", "day-and-night-blinds"},
		{"Motorized Day & Night", "", "motorized-day-and-night-blinds"},
		{"Faux Wood", "whatever", "faux-wooden-blinds"},
		{"", "Metal-Venetian-Blinds", "metal-venetian-blinds"},
		{"Something Else", " no-drill-blinds ", "no-drill-blinds"},
	}

	for _, tt := range tests {
		t.Run(tt.name+"|"+tt.slug, func(t *testing.T) {
			got, ok := table.Normalize(tt.name, tt.slug)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeNamePrecedesSlug(t *testing.T) {
	got, ok := Default().Normalize("Roman Blind", "roller-blinds")
	require.True(t, ok)
	assert.Equal(t, "roman-blinds", got)
}

func TestNormalizeUnknown(t *testing.T) {
	table := Default()

	for _, in := range [][2]string{
		{"", ""},
		{"Curtains", "curtains"},
		{"roller blinds extra", "roller blinds"},
	} {
		got, ok := table.Normalize(in[0], in[1])
		assert.False(t, ok, "%v", in)
		assert.Empty(t, got)
	}
}

func TestNormalizeSlugKeepsWhitespace(t *testing.T) {
	// names collapse internal whitespace, slugs do not
	_, ok := Default().Normalize("", "roller   blind")
	assert.False(t, ok)

	got, ok := Default().Normalize("roller   blind", "")
	require.True(t, ok)
	assert.Equal(t, "roller-blinds", got)
}

func TestDayNightSlugResolves(t *testing.T) {
	got, ok := Default().Normalize("Day Night Collection", "day-night")
	require.True(t, ok)
	assert.Equal(t, "day-and-night-blinds", got)

	got, ok = Default().Normalize("Day & Night Blind", "day-night")
	require.True(t, ok)
	assert.Equal(t, "day-and-night-blinds", got)
}

func TestNewTableRejectsUnknownTarget(t *testing.T) {
	_, err := NewTable(Categories, []Alias{{Key: "shutters", Slug: "plantation-shutters"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plantation-shutters")
}

func TestNewTableRejectsCollision(t *testing.T) {
	_, err := NewTable(Categories, []Alias{
		{Key: "Day & Night", Slug: "day-and-night-blinds"},
		{Key: "day and night", Slug: "motorized-day-and-night-blinds"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "day and night")
}

func TestNewTableAcceptsEquivalentDuplicates(t *testing.T) {
	table, err := NewTable(Categories, []Alias{
		{Key: "Day & Night", Slug: "day-and-night-blinds"},
		{Key: "day and night", Slug: "day-and-night-blinds"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
}

func TestNewTableRejectsDuplicateCategory(t *testing.T) {
	_, err := NewTable([]domain.FrontendCategory{
		{Name: "Roller Blinds", Slug: "roller-blinds"},
		{Name: "Rollers", Slug: "roller-blinds"},
	}, nil)
	assert.Error(t, err)
}

func TestWithAliases(t *testing.T) {
	table, err := Default().WithAliases(map[string]string{"Pleated": "roller-blinds"})
	require.NoError(t, err)

	got, ok := table.Normalize("pleated", "")
	require.True(t, ok)
	assert.Equal(t, "roller-blinds", got)

	_, ok = Default().Normalize("pleated", "")
	assert.False(t, ok, "default table must stay untouched")

	_, err = Default().WithAliases(map[string]string{"roller": "roman-blinds"})
	assert.Error(t, err)
}

func TestMatchesAndNormalizeAll(t *testing.T) {
	cats := []domain.BackendCategory{
		{Name: "Roller Blind", Slug: "roller"},
		{Name: "Roller", Slug: "roller-blinds"},
		{Name: "Mystery", Slug: "mystery"},
		{Name: "Blackout", Slug: "blackout"},
	}

	assert.Equal(t, []string{"roller-blinds", "complete-blackout-blinds"}, Default().NormalizeAll(cats))
	assert.True(t, Default().Matches(cats, "complete-blackout-blinds"))
	assert.False(t, Default().Matches(cats, "roman-blinds"))
}

func TestLookups(t *testing.T) {
	c, ok := Default().BySlug("skylight-blinds")
	require.True(t, ok)
	assert.Equal(t, "Skylight Blinds", c.Name)

	c, ok = Default().ByName("Roman Blinds")
	require.True(t, ok)
	assert.Equal(t, "roman-blinds", c.Slug)

	_, ok = Default().BySlug("curtains")
	assert.False(t, ok)

	all := Default().All()
	all[0].Name = "changed"
	assert.Equal(t, "Vertical Blinds", Default().All()[0].Name)
}
