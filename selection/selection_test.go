package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/choco-radar/site/store"
)

func testStore(id int) store.AnnotatedStore {
	return store.AnnotatedStore{Store: store.Store{ID: id, Name: "Store"}}
}

func TestSelectStoreOpensDetail(t *testing.T) {
	s := New(nil, nil, false)

	s.SelectStore(testStore(1))

	if assert.NotNil(t, s.SelectedStore()) {
		assert.Equal(t, 1, s.SelectedStore().ID)
	}
	assert.Nil(t, s.SelectedStores())
	assert.True(t, s.DetailOpen())
}

func TestSelectionMutualExclusion(t *testing.T) {
	s := New(nil, nil, false)

	s.SelectStore(testStore(1))
	s.SelectStores([]store.AnnotatedStore{testStore(2), testStore(3)})

	assert.Nil(t, s.SelectedStore())
	if assert.Len(t, s.SelectedStores(), 2) {
		assert.Equal(t, 2, s.SelectedStores()[0].ID)
		assert.Equal(t, 3, s.SelectedStores()[1].ID)
	}

	s.SelectStore(testStore(4))

	assert.Nil(t, s.SelectedStores())
	assert.Equal(t, 4, s.SelectedStore().ID)
}

func TestCloseDetailClearsBothSelections(t *testing.T) {
	s := New(nil, nil, false)
	s.SelectStores([]store.AnnotatedStore{testStore(1)})

	s.CloseDetail()

	assert.Nil(t, s.SelectedStore())
	assert.Nil(t, s.SelectedStores())
	assert.False(t, s.DetailOpen())
}

func TestToggleFavoriteTwiceIsIdentity(t *testing.T) {
	s := New([]int{7}, nil, false)

	assert.True(t, s.IsFavorite(7))
	assert.False(t, s.IsFavorite(8))

	s.ToggleFavorite(8)
	s.ToggleFavorite(8)

	assert.False(t, s.IsFavorite(8))
	assert.True(t, s.IsFavorite(7))
}

func TestToggleNotificationTwiceIsIdentity(t *testing.T) {
	s := New(nil, nil, false)

	assert.True(t, s.ToggleNotification(3))
	assert.True(t, s.IsSubscribed(3))
	assert.False(t, s.ToggleNotification(3))
	assert.False(t, s.IsSubscribed(3))
}

func TestPersistedPreferencesSeedState(t *testing.T) {
	s := New([]int{1, 2}, []int{3}, true)

	assert.Equal(t, map[int]bool{1: true, 2: true}, s.Favorites())
	assert.Equal(t, map[int]bool{3: true}, s.Notifications())
	assert.True(t, s.InStockOnly())
}

func TestStateSurvivesViewSwitch(t *testing.T) {
	s := New(nil, nil, false)
	s.SelectStore(testStore(1))
	s.SetSearchQuery("choco")

	s.SetViewMode(ViewList)

	assert.Equal(t, ViewList, s.ViewMode())
	assert.Equal(t, 1, s.SelectedStore().ID)
	assert.Equal(t, "choco", s.SearchQuery())
}

func TestFilterOptionsSnapshot(t *testing.T) {
	s := New([]int{5}, nil, true)
	s.SetSearchQuery("mart")

	opts := s.FilterOptions(true)

	assert.True(t, opts.InStockOnly)
	assert.Equal(t, "mart", opts.Query)
	assert.True(t, opts.FavoritesOnly)
	assert.True(t, opts.Favorites[5])
}

func TestDefaults(t *testing.T) {
	s := New(nil, nil, false)

	assert.Equal(t, ViewMap, s.ViewMode())
	assert.Equal(t, store.SortByDistance, s.SortKey())
	assert.False(t, s.DetailOpen())
	assert.Empty(t, s.Favorites())
}
