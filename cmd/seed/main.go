// Seed tool: loads a starter set of stores so the map has something to
// show on a fresh database. Safe to re-run; existing rows are kept.
package main

import (
	"log"

	"github.com/choco-radar/site/config"
	"github.com/choco-radar/site/db"
	"github.com/choco-radar/site/store"
)

type seedStore struct {
	id      int
	name    string
	address string
	lat     float64
	lng     float64
	status  string
	count   int
	price   float64
}

var seedStores = []seedStore{
	{1, "CU Pangyo Station", "235 Pangyoyeok-ro, Bundang-gu, Seongnam-si", 37.394776, 127.111209, store.StatusAvailable, 120, 4500},
	{2, "GS25 Pangyo Techno Valley", "242 Pangyo-ro, Bundang-gu, Seongnam-si", 37.400710, 127.112345, store.StatusAvailable, 35, 4200},
	{3, "Emart24 Baekhyeon", "340 Baekhyeon-ro, Bundang-gu, Seongnam-si", 37.386120, 127.120011, store.StatusAvailable, 8, 4800},
	{4, "7-Eleven Sunae", "51 Sunae-ro, Bundang-gu, Seongnam-si", 37.378445, 127.114890, store.StatusSoldOut, 0, 4500},
	{5, "CU Jeongja Riverside", "178 Jeongja-dong, Bundang-gu, Seongnam-si", 37.367020, 127.108211, store.StatusAvailable, 64, 0},
	{6, "GS25 Seohyeon Plaza", "18 Seohyeon-ro, Bundang-gu, Seongnam-si", 37.384991, 127.123456, store.StatusSoldOut, 0, 0},
}

func main() {
	if err := db.Init(config.DatabaseURL); err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	defer db.Close()

	for _, s := range seedStores {
		if _, err := db.Exec(
			`INSERT OR IGNORE INTO Store (id, name, address, lat, lng) VALUES (?, ?, ?, ?, ?)`,
			s.id, s.name, s.address, s.lat, s.lng,
		); err != nil {
			log.Fatalf("Failed to seed store %q: %v", s.name, err)
		}

		if _, err := db.Exec(
			`INSERT INTO Product (store_id, status, stock_count, price, last_check_time)
			 VALUES (?, ?, ?, NULLIF(?, 0), CURRENT_TIMESTAMP)
			 ON CONFLICT(store_id) DO NOTHING`,
			s.id, s.status, s.count, s.price,
		); err != nil {
			log.Fatalf("Failed to seed snapshot for %q: %v", s.name, err)
		}
	}

	log.Printf("[seed] %d stores ready", len(seedStores))
}
