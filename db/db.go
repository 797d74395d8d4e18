package db

import (
	"database/sql"
	"log"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

var (
	db   *sql.DB
	once sync.Once
)

// Init initializes the database connection and applies the schema.
func Init(databaseURL string) error {
	var err error
	once.Do(func() {
		db, err = sql.Open("sqlite3", databaseURL)
		if err != nil {
			log.Printf("Failed to open database: %v", err)
			return
		}

		if err = db.Ping(); err != nil {
			log.Printf("Failed to ping database: %v", err)
			return
		}

		if err = Migrate(); err != nil {
			log.Printf("Failed to migrate database: %v", err)
			return
		}

		log.Printf("Database initialized successfully: %s", databaseURL)
	})
	return err
}

// Migrate applies the schema. Idempotent; safe to run on every start.
func Migrate() error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS Store (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			address TEXT,
			lat REAL NOT NULL,
			lng REAL NOT NULL
		)`,
		// Each store exposes at most one current snapshot; the unique
		// index is what makes the "read the current snapshot" join
		// well defined.
		`CREATE TABLE IF NOT EXISTS Product (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			store_id INTEGER NOT NULL UNIQUE REFERENCES Store(id),
			status TEXT,
			stock_count INTEGER NOT NULL DEFAULT 0,
			price REAL,
			last_check_time TIMESTAMP,
			owner_id INTEGER REFERENCES User(id),
			business_reg_no TEXT,
			contact_email TEXT,
			contact_phone TEXT,
			is_verified INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS StockReport (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			store_id INTEGER NOT NULL REFERENCES Store(id),
			report_type TEXT NOT NULL,
			description TEXT,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS StorePost (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			store_id INTEGER NOT NULL REFERENCES Store(id),
			title TEXT NOT NULL,
			body TEXT,
			image_key TEXT,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS User (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			phone TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			password_salt TEXT NOT NULL,
			password_algo TEXT NOT NULL,
			phone_verified INTEGER NOT NULL DEFAULT 0,
			verification_code TEXT,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			deleted_at TIMESTAMP
		)`,
	}

	for _, stmt := range schema {
		if _, err := Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the database connection
func Get() *sql.DB {
	if db == nil {
		panic("Database not initialized. Call db.Init() first.")
	}
	return db
}

// SetForTesting sets the database connection for testing
func SetForTesting(database *sql.DB) {
	db = database
}

// Close closes the database connection
func Close() error {
	if db != nil {
		return db.Close()
	}
	return nil
}

// Convenience methods that wrap common database operations

// Query executes a query that returns rows
func Query(query string, args ...interface{}) (*sql.Rows, error) {
	return Get().Query(query, args...)
}

// QueryRow executes a query that returns a single row
func QueryRow(query string, args ...interface{}) *sql.Row {
	return Get().QueryRow(query, args...)
}

// Exec executes a query that doesn't return rows
func Exec(query string, args ...interface{}) (sql.Result, error) {
	return Get().Exec(query, args...)
}

// Begin starts a new transaction
func Begin() (*sql.Tx, error) {
	return Get().Begin()
}
