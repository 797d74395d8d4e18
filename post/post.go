// Package post manages store announcements. A store carries at most
// one live announcement; publishing a new one replaces whatever the
// owner posted before.
package post

import (
	"database/sql"
	"time"

	"github.com/choco-radar/site/db"
)

type Post struct {
	ID        int
	StoreID   int
	Title     string
	Body      sql.NullString
	ImageKey  sql.NullString
	CreatedAt time.Time
}

const postColumns = "id, store_id, title, body, image_key, created_at"

func scanPost(row interface{ Scan(...interface{}) error }) (Post, error) {
	var p Post
	err := row.Scan(&p.ID, &p.StoreID, &p.Title, &p.Body, &p.ImageKey, &p.CreatedAt)
	return p, err
}

// Publish replaces the store's announcement with a new one. The delete
// and insert share a transaction so readers never see two posts for
// the same store.
func Publish(storeID int, title, body, imageKey string) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM StorePost WHERE store_id = ?", storeID); err != nil {
		return 0, err
	}

	res, err := tx.Exec(`INSERT INTO StorePost (store_id, title, body, image_key)
		VALUES (?, ?, ?, ?)`,
		storeID, title, nullable(body), nullable(imageKey))
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), tx.Commit()
}

// GetForStore returns the store's current announcement, if any.
func GetForStore(storeID int) (Post, bool, error) {
	row := db.QueryRow("SELECT "+postColumns+
		" FROM StorePost WHERE store_id = ? ORDER BY created_at DESC LIMIT 1", storeID)
	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return Post{}, false, nil
	}
	if err != nil {
		return Post{}, false, err
	}
	return p, true, nil
}

// Recent returns the newest announcements across all stores, for the
// home page gallery.
func Recent(limit int) ([]Post, error) {
	rows, err := db.Query("SELECT "+postColumns+
		" FROM StorePost ORDER BY created_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// Delete removes the store's announcement.
func Delete(storeID int) error {
	_, err := db.Exec("DELETE FROM StorePost WHERE store_id = ?", storeID)
	return err
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
