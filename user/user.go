// Package user manages owner accounts: an owner is an authenticated
// identity that has claimed update rights over one store's listing.
package user

import (
	"database/sql"
	"time"

	"github.com/choco-radar/site/db"
)

// Table name constants
const (
	TableUser = "User"
)

// UserStatus represents the status of a user
type UserStatus string

const (
	StatusActive   UserStatus = "active"
	StatusArchived UserStatus = "archived"
)

type User struct {
	ID               int
	Name             string
	Phone            string
	PasswordHash     string
	PasswordSalt     string
	PasswordAlgo     string
	PhoneVerified    bool
	VerificationCode *string
	CreatedAt        time.Time
	DeletedAt        *time.Time
}

// IsArchived returns true if the user has been archived
func (u User) IsArchived() bool {
	return u.DeletedAt != nil
}

// CreateUser inserts a new owner account
func CreateUser(name, phone, passwordHash, passwordSalt, passwordAlgo string) (int, error) {
	res, err := db.Exec(`INSERT INTO User (name, phone, password_hash, password_salt, password_algo, phone_verified)
		VALUES (?, ?, ?, ?, ?, 0)`,
		name, phone, passwordHash, passwordSalt, passwordAlgo)
	if err != nil {
		return 0, err
	}
	id, _ := res.LastInsertId()
	return int(id), nil
}

func scanUser(row *sql.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Name, &u.Phone, &u.PasswordHash,
		&u.PasswordSalt, &u.PasswordAlgo, &u.PhoneVerified,
		&u.VerificationCode, &u.CreatedAt, &u.DeletedAt)
	return u, err
}

const userColumns = `id, name, phone, password_hash, password_salt,
	password_algo, phone_verified, verification_code, created_at, deleted_at`

// GetUser retrieves a user by ID
func GetUser(id int) (User, error) {
	row := db.QueryRow(`SELECT `+userColumns+` FROM User WHERE id = ?`, id)
	return scanUser(row)
}

// GetUserByID retrieves a user by ID along with its status.
// Returns the user, its status, and whether it was found.
func GetUserByID(id int) (User, UserStatus, bool) {
	u, err := GetUser(id)
	if err != nil {
		return User{}, StatusActive, false
	}
	if u.IsArchived() {
		return u, StatusArchived, true
	}
	return u, StatusActive, true
}

// GetUserByPhone retrieves a user by phone number
func GetUserByPhone(phone string) (User, error) {
	row := db.QueryRow(`SELECT `+userColumns+` FROM User WHERE phone = ?`, phone)
	return scanUser(row)
}

// SetVerificationCode stores the pending SMS verification code
func SetVerificationCode(id int, code string) error {
	_, err := db.Exec(`UPDATE User SET verification_code = ? WHERE id = ?`, code, id)
	return err
}

// MarkPhoneVerified clears the pending code and marks the phone verified
func MarkPhoneVerified(id int) error {
	_, err := db.Exec(`UPDATE User SET phone_verified = 1, verification_code = NULL WHERE id = ?`, id)
	return err
}

// ArchiveUser soft-deletes an owner account
func ArchiveUser(id int) error {
	_, err := db.Exec(`UPDATE User SET deleted_at = CURRENT_TIMESTAMP WHERE id = ?`, id)
	return err
}
