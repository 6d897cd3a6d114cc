package filter

import (
	"net/url"

	"blinds/storefront/internal/domain"
)

// PanelOption is a rendered filter link.
type PanelOption struct {
	Label  string
	Value  string
	Hex    string
	Href   string
	Active bool
}

// PanelSection groups the options of one displayed axis.
type PanelSection struct {
	Axis    domain.FilterAxis
	Label   string
	Options []PanelOption
}

// PanelCategory is a category link with its product count.
type PanelCategory struct {
	domain.CategoryCount
	Href string
}

// Panel is the view model of the filter control surface.
type Panel struct {
	Categories []PanelCategory
	Sections   []PanelSection
	Active     domain.Filters
	ClearHref  string
}

// BuildPanel derives every panel link from the current route and query string. The
// query string is the only source of selection state.
func BuildPanel(categorySlug string, q url.Values, counts []domain.CategoryCount) Panel {
	active := ParseQuery(q)
	p := Panel{Active: active}

	for _, c := range counts {
		c.Active = c.Slug == categorySlug
		p.Categories = append(p.Categories, PanelCategory{
			CategoryCount: c,
			Href:          CollectionURL(c.Slug, nil),
		})
	}

	for _, vocab := range Vocabularies {
		if !vocab.Displayed {
			continue
		}
		section := PanelSection{Axis: vocab.Axis, Label: vocab.Axis.Label()}
		for _, opt := range vocab.Options {
			section.Options = append(section.Options, PanelOption{
				Label:  opt.Label,
				Value:  opt.Value,
				Hex:    opt.Hex,
				Href:   ToggleURL(categorySlug, q, vocab.Axis, opt.Value),
				Active: active.Get(vocab.Axis) == opt.Value,
			})
		}
		p.Sections = append(p.Sections, section)
	}

	if active.Active() {
		p.ClearHref = ClearURL(categorySlug, q)
	}
	return p
}
