package store

import "sort"

// SortKey selects the list ordering.
type SortKey string

const (
	SortByDistance SortKey = "distance"
	SortByPrice    SortKey = "price"
)

// ParseSortKey maps a query value to a SortKey, defaulting to distance.
func ParseSortKey(value string) SortKey {
	if value == string(SortByPrice) {
		return SortByPrice
	}
	return SortByDistance
}

// Sort orders stores by the given key, in place, with a stable sort.
//
// Price sorts ascending; stores with no price set sort after every
// priced store, keeping their original relative order.
//
// Distance sorts ascending by the annotated distance. When no user
// coordinate was available (nil DistanceKm) the key degenerates to a
// stable sort by id ascending.
func Sort(stores []AnnotatedStore, key SortKey) {
	switch key {
	case SortByPrice:
		sort.SliceStable(stores, func(i, j int) bool {
			a, b := stores[i], stores[j]
			if a.HasPrice() != b.HasPrice() {
				return a.HasPrice()
			}
			if !a.HasPrice() {
				return false
			}
			return a.Price() < b.Price()
		})
	case SortByDistance:
		annotated := len(stores) > 0 && stores[0].DistanceKm != nil
		if !annotated {
			sort.SliceStable(stores, func(i, j int) bool {
				return stores[i].ID < stores[j].ID
			})
			return
		}
		sort.SliceStable(stores, func(i, j int) bool {
			return *stores[i].DistanceKm < *stores[j].DistanceKm
		})
	}
}
