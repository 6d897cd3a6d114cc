// Package filter turns collection query parameters into backend tag constraints and
// builds the links of the filter panel.
package filter

import (
	"strings"

	"blinds/storefront/internal/domain"
)

// ResolveTags maps one selected value of an axis to backend tag slugs. Unknown axes and
// values resolve to an empty slice, meaning "no constraint".
func ResolveTags(axis domain.FilterAxis, value string) []string {
	vocab, ok := VocabularyFor(axis)
	if !ok {
		return []string{}
	}
	value = NormalizeValue(value)
	for _, opt := range vocab.Options {
		if opt.Value == value {
			out := make([]string, len(opt.Tags))
			copy(out, opt.Tags)
			return out
		}
	}
	return []string{}
}

// ResolveAll resolves every selected axis and returns the union of their tags with
// duplicates removed, in axis order. Axes are OR-ed together; narrowing happens only
// through the collection category.
func ResolveAll(filters domain.Filters) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, axis := range domain.FilterAxes {
		v := filters.Get(axis)
		if v == "" {
			continue
		}
		for _, tag := range ResolveTags(axis, v) {
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	return out
}

// NormalizeValue lowercases and trims v and turns spaces into dashes, so "Medium Wood"
// and "medium-wood" select the same option.
func NormalizeValue(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	return strings.Join(strings.Fields(v), "-")
}
