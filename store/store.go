package store

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"github.com/choco-radar/site/db"
	"github.com/choco-radar/site/geo"
)

// Product status constants
const (
	StatusAvailable = "AVAILABLE"
	StatusSoldOut   = "SOLD_OUT"
)

// Table name constants
const (
	TableStore   = "Store"
	TableProduct = "Product"
)

// Store represents a physical retail location
type Store struct {
	ID      int            `json:"id" db:"id"`
	Name    string         `json:"name" db:"name"`
	Address sql.NullString `json:"address,omitempty" db:"address"`
	Lat     float64        `json:"lat" db:"lat"`
	Lng     float64        `json:"lng" db:"lng"`
}

// ProductSnapshot is the latest known stock/availability fact for one
// store. Each store exposes at most one current snapshot; the
// repository enforces this with a unique index on store_id.
type ProductSnapshot struct {
	Status        sql.NullString  `json:"status,omitempty" db:"status"`
	StockCount    int             `json:"stock_count" db:"stock_count"`
	Price         sql.NullFloat64 `json:"price,omitempty" db:"price"`
	LastCheckTime sql.NullTime    `json:"last_check_time,omitempty" db:"last_check_time"`
	OwnerID       sql.NullInt64   `json:"owner_id,omitempty" db:"owner_id"`
}

// AnnotatedStore is a Store joined with zero-or-one ProductSnapshot
// plus a derived distance from the user. It is recomputed per render,
// never persisted. A nil DistanceKm means "no user coordinate", which
// is distinct from a computed distance of zero.
type AnnotatedStore struct {
	Store
	Snapshot   *ProductSnapshot `json:"snapshot,omitempty"`
	DistanceKm *float64         `json:"distance_km,omitempty"`
}

// StockCount returns the current stock count, defaulting to 0 when no
// snapshot exists.
func (s AnnotatedStore) StockCount() int {
	if s.Snapshot == nil {
		return 0
	}
	return s.Snapshot.StockCount
}

// Status returns the snapshot status, or empty string when unknown.
func (s AnnotatedStore) Status() string {
	if s.Snapshot == nil || !s.Snapshot.Status.Valid {
		return ""
	}
	return s.Snapshot.Status.String
}

// HasPrice reports whether the store has a price set. A price of 0 or
// an absent snapshot both mean "no price set".
func (s AnnotatedStore) HasPrice() bool {
	return s.Snapshot != nil && s.Snapshot.Price.Valid && s.Snapshot.Price.Float64 > 0
}

// Price returns the set price, or 0 when no price is set.
func (s AnnotatedStore) Price() float64 {
	if !s.HasPrice() {
		return 0
	}
	return s.Snapshot.Price.Float64
}

// InStock reports whether the store currently has stock.
func (s AnnotatedStore) InStock() bool {
	return s.StockCount() > 0
}

// AddressText returns the address, or empty string when unknown.
func (s AnnotatedStore) AddressText() string {
	if !s.Address.Valid {
		return ""
	}
	return s.Address.String
}

const storeJoinQuery = `SELECT s.id, s.name, s.address, s.lat, s.lng,
	p.status, p.stock_count, p.price, p.last_check_time, p.owner_id
	FROM Store s LEFT JOIN Product p ON p.store_id = s.id`

// scanAnnotatedStore scans one row of the store/product join. Missing
// or malformed snapshot columns degrade to an absent snapshot, never
// an error.
func scanAnnotatedStore(rows interface{ Scan(...interface{}) error }) (AnnotatedStore, error) {
	var s AnnotatedStore
	var status sql.NullString
	var stockCount sql.NullInt64
	var price sql.NullFloat64
	var lastCheck sql.NullTime
	var ownerID sql.NullInt64

	err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.Lat, &s.Lng,
		&status, &stockCount, &price, &lastCheck, &ownerID)
	if err != nil {
		return AnnotatedStore{}, err
	}

	// A store with no product row has all join columns NULL
	if status.Valid || stockCount.Valid || price.Valid || lastCheck.Valid || ownerID.Valid {
		s.Snapshot = &ProductSnapshot{
			Status:        status,
			StockCount:    int(stockCount.Int64),
			Price:         price,
			LastCheckTime: lastCheck,
			OwnerID:       ownerID,
		}
	}

	return s, nil
}

// GetAllStores returns every store joined with its current product
// snapshot, ordered by id ascending.
func GetAllStores() ([]AnnotatedStore, error) {
	rows, err := db.Query(storeJoinQuery + " ORDER BY s.id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stores []AnnotatedStore
	for rows.Next() {
		s, err := scanAnnotatedStore(rows)
		if err != nil {
			continue
		}
		stores = append(stores, s)
	}
	return stores, rows.Err()
}

// GetStore returns one store with its current snapshot.
func GetStore(id int) (AnnotatedStore, error) {
	row := db.QueryRow(storeJoinQuery+" WHERE s.id = ?", id)
	return scanAnnotatedStore(row)
}

// SuggestLimit caps autocomplete results.
const SuggestLimit = 5

// SuggestStores returns up to SuggestLimit stores whose name or
// address contains the query, case-insensitively. Used by the
// debounced search box.
func SuggestStores(query string) ([]AnnotatedStore, error) {
	pattern := "%" + query + "%"
	rows, err := db.Query(storeJoinQuery+
		" WHERE s.name LIKE ? COLLATE NOCASE OR s.address LIKE ? COLLATE NOCASE ORDER BY s.id LIMIT ?",
		pattern, pattern, SuggestLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stores []AnnotatedStore
	for rows.Next() {
		s, err := scanAnnotatedStore(rows)
		if err != nil {
			continue
		}
		stores = append(stores, s)
	}
	return stores, rows.Err()
}

// Annotate computes the distance from the user coordinate to each
// store. A nil user coordinate leaves every DistanceKm nil.
func Annotate(stores []AnnotatedStore, user *geo.Point) {
	if user == nil {
		for i := range stores {
			stores[i].DistanceKm = nil
		}
		return
	}
	for i := range stores {
		d := geo.Distance(user.Lat, user.Lng, stores[i].Lat, stores[i].Lng)
		stores[i].DistanceKm = &d
	}
}

// Points returns the coordinates of the given stores, for extent
// calculations.
func Points(stores []AnnotatedStore) []geo.Point {
	points := make([]geo.Point, len(stores))
	for i, s := range stores {
		points[i] = geo.Point{Lat: s.Lat, Lng: s.Lng}
	}
	return points
}
