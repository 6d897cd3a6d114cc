// Package category maps free-text backend categories onto the fixed set of
// storefront collections.
package category

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"blinds/storefront/internal/domain"
)

// Table is an immutable, validated mapping from normalized backend category text to
// canonical frontend slugs. It is safe for concurrent use.
type Table struct {
	categories []domain.FrontendCategory
	bySlug     map[string]domain.FrontendCategory
	aliases    map[string]string
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the built-in table. It panics if the built-in data is inconsistent.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := NewTable(Categories, DefaultAliases)
		if err != nil {
			panic(fmt.Sprintf("category: invalid built-in table: %v", err))
		}
		defaultTable = t
	})
	return defaultTable
}

// NewTable builds a table and checks that every alias points at a known category and
// that no two aliases normalize to the same key with different targets.
func NewTable(categories []domain.FrontendCategory, aliases []Alias) (*Table, error) {
	if len(categories) == 0 {
		return nil, errors.New("no categories defined")
	}

	t := &Table{
		categories: make([]domain.FrontendCategory, 0, len(categories)),
		bySlug:     make(map[string]domain.FrontendCategory, len(categories)),
		aliases:    make(map[string]string, len(aliases)),
	}

	for _, c := range categories {
		if c.Slug == "" || c.Name == "" {
			return nil, fmt.Errorf("category %q has an empty name or slug", c.Name+c.Slug)
		}
		if _, dup := t.bySlug[c.Slug]; dup {
			return nil, fmt.Errorf("duplicate category slug %q", c.Slug)
		}
		t.bySlug[c.Slug] = c
		t.categories = append(t.categories, c)
	}

	var problems []string
	for _, a := range aliases {
		key := normalizeName(a.Key)
		if key == "" {
			problems = append(problems, fmt.Sprintf("alias for %q has an empty key", a.Slug))
			continue
		}
		if _, ok := t.bySlug[a.Slug]; !ok {
			problems = append(problems, fmt.Sprintf("alias %q targets unknown category %q", a.Key, a.Slug))
			continue
		}
		if prev, ok := t.aliases[key]; ok && prev != a.Slug {
			problems = append(problems, fmt.Sprintf("alias %q maps to both %q and %q", key, prev, a.Slug))
			continue
		}
		t.aliases[key] = a.Slug
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("invalid category aliases: %s", strings.Join(problems, "; "))
	}

	return t, nil
}

// WithAliases returns a new table with extra aliases merged on top of t's.
func (t *Table) WithAliases(extra map[string]string) (*Table, error) {
	if len(extra) == 0 {
		return t, nil
	}

	merged := make([]Alias, 0, len(t.aliases)+len(extra))
	for k, v := range t.aliases {
		merged = append(merged, Alias{Key: k, Slug: v})
	}
	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		merged = append(merged, Alias{Key: k, Slug: strings.TrimSpace(extra[k])})
	}
	return NewTable(t.categories, merged)
}

// Normalize maps a backend category to a canonical slug. The normalized name is looked
// up first, then the normalized slug. ok is false when neither is known.
func (t *Table) Normalize(name, slug string) (string, bool) {
	if s, ok := t.aliases[normalizeName(name)]; ok {
		return s, true
	}
	if s, ok := t.aliases[normalizeSlug(slug)]; ok {
		return s, true
	}
	return "", false
}

// NormalizeAll maps every category, dropping unknown ones and duplicates.
func (t *Table) NormalizeAll(cats []domain.BackendCategory) []string {
	out := make([]string, 0, len(cats))
	seen := make(map[string]struct{}, len(cats))
	for _, c := range cats {
		s, ok := t.Normalize(c.Name, c.Slug)
		if !ok {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Matches reports whether any of cats normalizes to slug.
func (t *Table) Matches(cats []domain.BackendCategory, slug string) bool {
	for _, c := range cats {
		if s, ok := t.Normalize(c.Name, c.Slug); ok && s == slug {
			return true
		}
	}
	return false
}

func (t *Table) BySlug(slug string) (domain.FrontendCategory, bool) {
	c, ok := t.bySlug[slug]
	return c, ok
}

func (t *Table) ByName(name string) (domain.FrontendCategory, bool) {
	for _, c := range t.categories {
		if c.Name == name {
			return c, true
		}
	}
	return domain.FrontendCategory{}, false
}

// All returns the categories in navigation order. The slice is a copy.
func (t *Table) All() []domain.FrontendCategory {
	out := make([]domain.FrontendCategory, len(t.categories))
	copy(out, t.categories)
	return out
}

// Len is the number of alias keys.
func (t *Table) Len() int {
	return len(t.aliases)
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "&", "and")
	return strings.Join(strings.Fields(s), " ")
}

// slugs are not whitespace-collapsed
func normalizeSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, "&", "and")
}
