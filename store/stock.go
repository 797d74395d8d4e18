package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/choco-radar/site/db"
)

// Stock report type constants
const (
	ReportHave   = "HAVE"
	ReportNoHave = "NO_HAVE"
)

// UpdateStock upserts the current product snapshot for a store and
// writes a StockReport audit row. A count of zero forces the status to
// SOLD_OUT regardless of the requested status.
func UpdateStock(storeID int, status string, count int) error {
	if count == 0 {
		status = StatusSoldOut
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	_, err = tx.Exec(`INSERT INTO Product (store_id, status, stock_count, last_check_time)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(store_id) DO UPDATE SET
			status = excluded.status,
			stock_count = excluded.stock_count,
			last_check_time = excluded.last_check_time`,
		storeID, status, count, now)
	if err != nil {
		return fmt.Errorf("failed to upsert product snapshot: %w", err)
	}

	reportType := ReportHave
	if status == StatusSoldOut {
		reportType = ReportNoHave
	}
	_, err = tx.Exec(`INSERT INTO StockReport (store_id, report_type, description) VALUES (?, ?, ?)`,
		storeID, reportType, fmt.Sprintf("Owner update: %d items", count))
	if err != nil {
		return fmt.Errorf("failed to insert stock report: %w", err)
	}

	return tx.Commit()
}

// SetPrice updates the price on a store's current snapshot.
func SetPrice(storeID int, price float64) error {
	_, err := db.Exec(`UPDATE Product SET price = ? WHERE store_id = ?`, price, storeID)
	return err
}

// ReportSighting records a visitor report of seen or missing stock.
func ReportSighting(storeID int, reportType, description string) error {
	if reportType != ReportHave && reportType != ReportNoHave {
		return fmt.Errorf("invalid report type: %s", reportType)
	}
	_, err := db.Exec(`INSERT INTO StockReport (store_id, report_type, description) VALUES (?, ?, ?)`,
		storeID, reportType, description)
	return err
}

// GetOwnerID returns the owner of a store's product listing, if any.
func GetOwnerID(storeID int) (int, bool, error) {
	row := db.QueryRow(`SELECT owner_id FROM Product WHERE store_id = ?`, storeID)
	var ownerID sql.NullInt64
	err := row.Scan(&ownerID)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return int(ownerID.Int64), ownerID.Valid, nil
}

// ClaimStore assigns ownership of a store's listing to a user after the
// instant-approval verification stub. It fails when another owner
// already holds the listing.
func ClaimStore(storeID, ownerID int, businessRegNo, contactEmail, contactPhone string) error {
	existing, claimed, err := GetOwnerID(storeID)
	if err != nil {
		return err
	}
	if claimed && existing != ownerID {
		return fmt.Errorf("store %d is already claimed by another owner", storeID)
	}

	_, err = db.Exec(`INSERT INTO Product (store_id, owner_id, business_reg_no, contact_email, contact_phone, is_verified, stock_count)
		VALUES (?, ?, ?, ?, ?, 1, 0)
		ON CONFLICT(store_id) DO UPDATE SET
			owner_id = excluded.owner_id,
			business_reg_no = excluded.business_reg_no,
			contact_email = excluded.contact_email,
			contact_phone = excluded.contact_phone,
			is_verified = 1`,
		storeID, ownerID, businessRegNo, contactEmail, contactPhone)
	if err != nil {
		return fmt.Errorf("failed to claim store: %w", err)
	}
	return nil
}
