package user

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/choco-radar/site/db"
)

func userColumnList() []string {
	return []string{"id", "name", "phone", "password_hash", "password_salt",
		"password_algo", "phone_verified", "verification_code", "created_at", "deleted_at"}
}

func TestGetUserByIDActive(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	db.SetForTesting(mockDB)

	rows := sqlmock.NewRows(userColumnList()).
		AddRow(7, "Kim", "01012345678", "hash", "salt", "argon2id", true, nil, time.Now(), nil)

	mock.ExpectQuery("SELECT (.+) FROM User WHERE id = \\?").
		WithArgs(7).
		WillReturnRows(rows)

	u, status, found := GetUserByID(7)

	assert.True(t, found)
	assert.Equal(t, StatusActive, status)
	assert.Equal(t, "Kim", u.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByIDArchived(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	db.SetForTesting(mockDB)

	deleted := time.Now()
	rows := sqlmock.NewRows(userColumnList()).
		AddRow(7, "Kim", "01012345678", "hash", "salt", "argon2id", true, nil, time.Now(), deleted)

	mock.ExpectQuery("SELECT (.+) FROM User WHERE id = \\?").
		WithArgs(7).
		WillReturnRows(rows)

	u, status, found := GetUserByID(7)

	assert.True(t, found)
	assert.Equal(t, StatusArchived, status)
	assert.True(t, u.IsArchived())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByIDMissing(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	db.SetForTesting(mockDB)

	mock.ExpectQuery("SELECT (.+) FROM User WHERE id = \\?").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows(userColumnList()))

	_, _, found := GetUserByID(99)

	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}
