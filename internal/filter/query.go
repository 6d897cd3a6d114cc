package filter

import (
	"net/url"
	"strings"

	"blinds/storefront/internal/domain"
)

// ParseQuery reads the five filter axes from q. A key repeated in the query is treated
// as a list and ignored, as are empty values.
func ParseQuery(q url.Values) domain.Filters {
	filters := make(domain.Filters)
	for _, axis := range domain.FilterAxes {
		vals, ok := q[axis.String()]
		if !ok || len(vals) != 1 {
			continue
		}
		v := NormalizeValue(vals[0])
		if v == "" {
			continue
		}
		filters[axis] = v
	}
	return filters
}

// ToggleURL returns the collection link that selects value on axis, or clears the axis
// when value is already selected. Other query parameters are kept.
func ToggleURL(categorySlug string, q url.Values, axis domain.FilterAxis, value string) string {
	params := cloneValues(q)
	key := axis.String()
	if NormalizeValue(params.Get(key)) == NormalizeValue(value) {
		params.Del(key)
	} else {
		params.Set(key, value)
	}
	return CollectionURL(categorySlug, params)
}

// ClearURL removes every filter axis from q and keeps the rest.
func ClearURL(categorySlug string, q url.Values) string {
	params := cloneValues(q)
	for _, axis := range domain.FilterAxes {
		params.Del(axis.String())
	}
	return CollectionURL(categorySlug, params)
}

// CollectionURL is the route of a collection page with the encoded query appended.
func CollectionURL(categorySlug string, params url.Values) string {
	u := "/collections/" + url.PathEscape(strings.TrimSpace(categorySlug))
	if enc := params.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}

func cloneValues(q url.Values) url.Values {
	out := make(url.Values, len(q))
	for k, v := range q {
		out[k] = append([]string(nil), v...)
	}
	return out
}
