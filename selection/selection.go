// Package selection holds the shared UI state observed by the map and
// list surfaces: the current selection, the detail panel, and
// user-scoped preferences.
package selection

import (
	"sync"

	"github.com/choco-radar/site/store"
)

// ViewMode selects the active surface.
type ViewMode string

const (
	ViewMap  ViewMode = "map"
	ViewList ViewMode = "list"
)

// State is the single shared mutable state container. Construct one
// per UI scope and pass it explicitly; all writes are serialized so
// the mutual exclusion between SelectedStore and SelectedStores holds
// even with concurrent callers.
type State struct {
	mu sync.Mutex

	selectedStore  *store.AnnotatedStore
	selectedStores []store.AnnotatedStore
	detailOpen     bool

	favorites     map[int]bool
	notifications map[int]bool

	searchQuery string
	inStockOnly bool
	sortKey     store.SortKey
	viewMode    ViewMode
}

// New creates a state container with the given persisted preferences.
// Favorites, notification subscriptions, and the in-stock-only toggle
// survive restarts; everything else starts fresh.
func New(favorites, notifications []int, inStockOnly bool) *State {
	s := &State{
		favorites:     make(map[int]bool),
		notifications: make(map[int]bool),
		inStockOnly:   inStockOnly,
		sortKey:       store.SortByDistance,
		viewMode:      ViewMap,
	}
	for _, id := range favorites {
		s.favorites[id] = true
	}
	for _, id := range notifications {
		s.notifications[id] = true
	}
	return s
}

// SelectStore sets the single selected store, clears any candidate
// list, and opens the detail panel.
func (s *State) SelectStore(st store.AnnotatedStore) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedStore = &st
	s.selectedStores = nil
	s.detailOpen = true
}

// SelectStores sets a candidate list (cluster or area tap), clearing
// the single selection.
func (s *State) SelectStores(stores []store.AnnotatedStore) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedStore = nil
	s.selectedStores = stores
	s.detailOpen = true
}

// CloseDetail closes the panel and clears both selections.
func (s *State) CloseDetail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedStore = nil
	s.selectedStores = nil
	s.detailOpen = false
}

// SelectedStore returns the single selected store, if any.
func (s *State) SelectedStore() *store.AnnotatedStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedStore
}

// SelectedStores returns the candidate list, if any.
func (s *State) SelectedStores() []store.AnnotatedStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedStores
}

// DetailOpen reports whether the detail panel is open.
func (s *State) DetailOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.detailOpen
}

// ToggleFavorite flips favorite membership for a store id and returns
// the new membership. Toggling twice restores the original state.
func (s *State) ToggleFavorite(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.favorites[id] {
		delete(s.favorites, id)
		return false
	}
	s.favorites[id] = true
	return true
}

// ToggleNotification flips notification subscription for a store id
// and returns the new membership.
func (s *State) ToggleNotification(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.notifications[id] {
		delete(s.notifications, id)
		return false
	}
	s.notifications[id] = true
	return true
}

// IsFavorite reports favorite membership.
func (s *State) IsFavorite(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites[id]
}

// IsSubscribed reports notification membership.
func (s *State) IsSubscribed(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notifications[id]
}

// Favorites returns the favorite store ids as a set copy.
func (s *State) Favorites() map[int]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int]bool, len(s.favorites))
	for id := range s.favorites {
		out[id] = true
	}
	return out
}

// Notifications returns the subscribed store ids as a set copy.
func (s *State) Notifications() map[int]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int]bool, len(s.notifications))
	for id := range s.notifications {
		out[id] = true
	}
	return out
}

// SetSearchQuery stores the session search text.
func (s *State) SetSearchQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = q
}

// SearchQuery returns the session search text.
func (s *State) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchQuery
}

// SetInStockOnly stores the in-stock-only toggle.
func (s *State) SetInStockOnly(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inStockOnly = v
}

// InStockOnly returns the in-stock-only toggle.
func (s *State) InStockOnly() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inStockOnly
}

// SetSortKey stores the active sort key.
func (s *State) SetSortKey(key store.SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortKey = key
}

// SortKey returns the active sort key.
func (s *State) SortKey() store.SortKey {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortKey
}

// SetViewMode stores the active surface.
func (s *State) SetViewMode(mode ViewMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewMode = mode
}

// ViewMode returns the active surface.
func (s *State) ViewMode() ViewMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewMode
}

// FilterOptions builds the filter predicates from the current state.
func (s *State) FilterOptions(favoritesOnly bool) store.FilterOptions {
	s.mu.Lock()
	defer s.mu.Unlock()
	favorites := make(map[int]bool, len(s.favorites))
	for id := range s.favorites {
		favorites[id] = true
	}
	return store.FilterOptions{
		InStockOnly:   s.inStockOnly,
		Query:         s.searchQuery,
		FavoritesOnly: favoritesOnly,
		Favorites:     favorites,
	}
}
