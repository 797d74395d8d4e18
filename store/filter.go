package store

import "strings"

// FilterOptions are the three independent predicates applied to the
// store collection. They compose with logical AND and never mutate
// their input.
type FilterOptions struct {
	InStockOnly   bool
	Query         string
	FavoritesOnly bool
	Favorites     map[int]bool
}

func (o FilterOptions) matches(s AnnotatedStore) bool {
	if o.InStockOnly && !s.InStock() {
		return false
	}
	if o.Query != "" {
		q := strings.ToLower(o.Query)
		name := strings.ToLower(s.Name)
		address := strings.ToLower(s.AddressText())
		if !strings.Contains(name, q) && !strings.Contains(address, q) {
			return false
		}
	}
	if o.FavoritesOnly && !o.Favorites[s.ID] {
		return false
	}
	return true
}

// Filter returns the stores matching all predicates, preserving input
// order. An empty query matches everything.
func Filter(stores []AnnotatedStore, opts FilterOptions) []AnnotatedStore {
	filtered := make([]AnnotatedStore, 0, len(stores))
	for _, s := range stores {
		if opts.matches(s) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
