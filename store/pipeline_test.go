package store

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/choco-radar/site/geo"
)

func makeStore(id int, name, address string) AnnotatedStore {
	return AnnotatedStore{
		Store: Store{
			ID:      id,
			Name:    name,
			Address: sql.NullString{String: address, Valid: address != ""},
			Lat:     37.5 + float64(id)*0.01,
			Lng:     127.0,
		},
	}
}

func withStock(s AnnotatedStore, status string, count int, price float64) AnnotatedStore {
	s.Snapshot = &ProductSnapshot{
		Status:     sql.NullString{String: status, Valid: status != ""},
		StockCount: count,
		Price:      sql.NullFloat64{Float64: price, Valid: price > 0},
	}
	return s
}

func TestFilterInStockOnly(t *testing.T) {
	stores := []AnnotatedStore{
		withStock(makeStore(1, "Sweet Mart", ""), StatusAvailable, 10, 0),
		withStock(makeStore(2, "Corner Shop", ""), StatusSoldOut, 0, 0),
		makeStore(3, "No Data Store", ""),
	}

	filtered := Filter(stores, FilterOptions{InStockOnly: true})

	assert.Len(t, filtered, 1)
	assert.Equal(t, 1, filtered[0].ID)
}

func TestFilterQueryMatchesNameOrAddress(t *testing.T) {
	stores := []AnnotatedStore{
		makeStore(1, "Choco House", "Gangnam-daero 123"),
		makeStore(2, "Sweet Mart", "Chocolate Street 5"),
		makeStore(3, "Corner Shop", "Mapo-gu"),
	}

	filtered := Filter(stores, FilterOptions{Query: "choco"})

	assert.Len(t, filtered, 2)
	assert.Equal(t, 1, filtered[0].ID)
	assert.Equal(t, 2, filtered[1].ID)
}

func TestFilterEmptyQueryMatchesEverything(t *testing.T) {
	stores := []AnnotatedStore{
		makeStore(1, "A", ""),
		makeStore(2, "B", ""),
	}
	assert.Len(t, Filter(stores, FilterOptions{}), 2)
}

func TestFilterFavoritesOnly(t *testing.T) {
	stores := []AnnotatedStore{
		makeStore(1, "A", ""),
		makeStore(2, "B", ""),
		makeStore(3, "C", ""),
	}

	filtered := Filter(stores, FilterOptions{
		FavoritesOnly: true,
		Favorites:     map[int]bool{2: true},
	})

	assert.Len(t, filtered, 1)
	assert.Equal(t, 2, filtered[0].ID)
}

func TestFilterIsIdempotent(t *testing.T) {
	stores := []AnnotatedStore{
		withStock(makeStore(1, "Choco House", ""), StatusAvailable, 5, 0),
		withStock(makeStore(2, "Sweet Mart", ""), StatusSoldOut, 0, 0),
		makeStore(3, "Choco Corner", ""),
	}
	opts := FilterOptions{InStockOnly: true, Query: "choco"}

	once := Filter(stores, opts)
	twice := Filter(once, opts)

	assert.Equal(t, once, twice)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	stores := []AnnotatedStore{
		withStock(makeStore(1, "A", ""), StatusAvailable, 5, 0),
		withStock(makeStore(2, "B", ""), StatusSoldOut, 0, 0),
	}

	Filter(stores, FilterOptions{InStockOnly: true})

	assert.Len(t, stores, 2)
	assert.Equal(t, 1, stores[0].ID)
	assert.Equal(t, 2, stores[1].ID)
}

func TestSortByPricePlacesUnpricedLast(t *testing.T) {
	stores := []AnnotatedStore{
		withStock(makeStore(1, "A", ""), StatusAvailable, 5, 0),     // no price
		withStock(makeStore(2, "B", ""), StatusAvailable, 5, 12000), // priced
		makeStore(3, "C", ""),                                       // no snapshot
		withStock(makeStore(4, "D", ""), StatusAvailable, 5, 9000),  // priced
	}

	Sort(stores, SortByPrice)

	assert.Equal(t, []int{4, 2, 1, 3}, storeIDs(stores))
}

func TestSortByPriceIsStable(t *testing.T) {
	stores := []AnnotatedStore{
		withStock(makeStore(3, "A", ""), StatusAvailable, 5, 9000),
		withStock(makeStore(1, "B", ""), StatusAvailable, 5, 9000),
		withStock(makeStore(2, "C", ""), StatusAvailable, 5, 9000),
	}

	Sort(stores, SortByPrice)

	assert.Equal(t, []int{3, 1, 2}, storeIDs(stores))
}

func TestSortByDistance(t *testing.T) {
	stores := []AnnotatedStore{
		makeStore(1, "Far", ""),
		makeStore(2, "Near", ""),
	}
	stores[0].Lat, stores[0].Lng = 37.7, 127.0
	stores[1].Lat, stores[1].Lng = 37.51, 127.0

	Annotate(stores, &geo.Point{Lat: 37.5, Lng: 127.0})
	Sort(stores, SortByDistance)

	assert.Equal(t, []int{2, 1}, storeIDs(stores))
}

func TestSortByDistanceWithoutCoordinateFallsBackToID(t *testing.T) {
	stores := []AnnotatedStore{
		makeStore(5, "E", ""),
		makeStore(2, "B", ""),
		makeStore(9, "I", ""),
		makeStore(1, "A", ""),
	}

	Annotate(stores, nil)
	Sort(stores, SortByDistance)

	assert.Equal(t, []int{1, 2, 5, 9}, storeIDs(stores))
}

func TestAnnotateWithoutCoordinateLeavesDistanceAbsent(t *testing.T) {
	stores := []AnnotatedStore{makeStore(1, "A", "")}

	Annotate(stores, nil)

	assert.Nil(t, stores[0].DistanceKm)
}

func TestAnnotateSetsDistance(t *testing.T) {
	stores := []AnnotatedStore{makeStore(1, "A", "")}
	stores[0].Lat, stores[0].Lng = 37.5, 127.0

	Annotate(stores, &geo.Point{Lat: 37.5, Lng: 127.0})

	if assert.NotNil(t, stores[0].DistanceKm) {
		assert.Equal(t, 0.0, *stores[0].DistanceKm)
	}
}

func TestSnapshotDefaults(t *testing.T) {
	s := makeStore(1, "A", "")

	assert.Equal(t, 0, s.StockCount())
	assert.Equal(t, "", s.Status())
	assert.False(t, s.HasPrice())
	assert.False(t, s.InStock())
}

func TestZeroPriceMeansNoPrice(t *testing.T) {
	s := makeStore(1, "A", "")
	s.Snapshot = &ProductSnapshot{Price: sql.NullFloat64{Float64: 0, Valid: true}}

	assert.False(t, s.HasPrice())
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortByPrice, ParseSortKey("price"))
	assert.Equal(t, SortByDistance, ParseSortKey("distance"))
	assert.Equal(t, SortByDistance, ParseSortKey(""))
	assert.Equal(t, SortByDistance, ParseSortKey("bogus"))
}

func storeIDs(stores []AnnotatedStore) []int {
	ids := make([]int, len(stores))
	for i, s := range stores {
		ids[i] = s.ID
	}
	return ids
}
