package category

import "blinds/storefront/internal/domain"

// Categories is the curated list of navigable collections, in navigation order.
var Categories = []domain.FrontendCategory{
	{Name: "Vertical Blinds", Slug: "vertical-blinds"},
	{Name: "Replacement Vertical Slats", Slug: "replacement-vertical-slats"},
	{Name: "Roller Blinds", Slug: "roller-blinds"},
	{Name: "Motorized Blinds", Slug: "motorized-blinds"},
	{Name: "Motorized Roller Blinds", Slug: "motorized-roller-blinds"},
	{Name: "Complete Blackout Blinds", Slug: "complete-blackout-blinds"},
	{Name: "Metal Venetian Blinds", Slug: "metal-venetian-blinds"},
	{Name: "Roman Blinds", Slug: "roman-blinds"},
	{Name: "No Drill Blinds", Slug: "no-drill-blinds"},
	{Name: "Skylight Blinds", Slug: "skylight-blinds"},
	{Name: "Faux Wooden Blinds", Slug: "faux-wooden-blinds"},
	{Name: "Day and Night Blinds", Slug: "day-and-night-blinds"},
	{Name: "Blinds Accessories", Slug: "blinds-accessories"},
	{Name: "Motorized Day and Night Blinds", Slug: "motorized-day-and-night-blinds"},
}

// Alias maps one spelling of a backend category name or slug to a canonical slug.
type Alias struct {
	Key  string
	Slug string
}

// DefaultAliases is the built-in backend-to-frontend mapping. Keys are normalized
// when the table is built, so "&" and "and" spellings may both appear.
var DefaultAliases = []Alias{
	{"vertical-blinds", "vertical-blinds"},
	{"vertical blind", "vertical-blinds"},
	{"vertical", "vertical-blinds"},

	{"roller-blinds", "roller-blinds"},
	{"roller blind", "roller-blinds"},
	{"roller", "roller-blinds"},

	{"venetian-blinds", "metal-venetian-blinds"},
	{"venetian blind", "metal-venetian-blinds"},
	{"venetian", "metal-venetian-blinds"},
	{"metal venetian", "metal-venetian-blinds"},
	{"metal-venetian-blinds", "metal-venetian-blinds"},
	{"metal venetian blinds", "metal-venetian-blinds"},

	{"roman-blinds", "roman-blinds"},
	{"roman blind", "roman-blinds"},
	{"roman", "roman-blinds"},

	{"blackout-blinds", "complete-blackout-blinds"},
	{"blackout blind", "complete-blackout-blinds"},
	{"blackout", "complete-blackout-blinds"},
	{"complete blackout", "complete-blackout-blinds"},
	{"complete-blackout-blinds", "complete-blackout-blinds"},
	{"complete blackout blinds", "complete-blackout-blinds"},

	{"day-and-night-blinds", "day-and-night-blinds"},
	{"day-night-blinds", "day-and-night-blinds"},
	{"day-night", "day-and-night-blinds"},
	{"day & night blinds", "day-and-night-blinds"},
	{"day & night blind", "day-and-night-blinds"},
	{"day and night blinds", "day-and-night-blinds"},
	{"day and night blind", "day-and-night-blinds"},
	{"day and night", "day-and-night-blinds"},
	{"day & night", "day-and-night-blinds"},

	{"motorized", "motorized-blinds"},
	{"motorized blind", "motorized-blinds"},
	{"motorized-blinds", "motorized-blinds"},
	{"motorized roller", "motorized-roller-blinds"},
	{"motorized-roller-blinds", "motorized-roller-blinds"},
	{"motorized day and night", "motorized-day-and-night-blinds"},
	{"motorized day & night", "motorized-day-and-night-blinds"},
	{"motorized-day-and-night-blinds", "motorized-day-and-night-blinds"},
	{"motorized-day-night-blinds", "motorized-day-and-night-blinds"},

	{"skylight", "skylight-blinds"},
	{"skylight blind", "skylight-blinds"},
	{"skylight-blinds", "skylight-blinds"},

	{"faux wood", "faux-wooden-blinds"},
	{"faux wooden", "faux-wooden-blinds"},
	{"faux-wooden-blinds", "faux-wooden-blinds"},

	{"no drill", "no-drill-blinds"},
	{"no-drill-blinds", "no-drill-blinds"},

	{"accessories", "blinds-accessories"},
	{"blinds accessories", "blinds-accessories"},
	{"blinds-accessories", "blinds-accessories"},

	{"replacement vertical slats", "replacement-vertical-slats"},
	{"replacement-vertical-slats", "replacement-vertical-slats"},
}
