package domain

// FrontendCategory is one of the curated, navigable collections shown in site navigation.
type FrontendCategory struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// BackendCategory is category data as stored by the catalog service. Name and slug are
// free text and are not guaranteed to match the frontend vocabulary.
type BackendCategory struct {
	ID          string  `json:"id"`
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CategoryCount is a canonical category with the number of catalog products mapped to it.
type CategoryCount struct {
	FrontendCategory
	Count  int  `json:"count"`
	Active bool `json:"active,omitempty"`
}
