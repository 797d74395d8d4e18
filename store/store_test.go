package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/choco-radar/site/db"
)

func storeColumns() []string {
	return []string{"id", "name", "address", "lat", "lng",
		"status", "stock_count", "price", "last_check_time", "owner_id"}
}

func TestGetAllStores(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	db.SetForTesting(mockDB)

	now := time.Now().UTC()
	rows := sqlmock.NewRows(storeColumns()).
		AddRow(1, "Choco House", "Gangnam-daero 123", 37.50, 127.00, "AVAILABLE", 35, 15000.0, now, nil).
		AddRow(2, "Sweet Mart", nil, 37.51, 127.01, nil, nil, nil, nil, nil)

	mock.ExpectQuery("SELECT s.id, s.name, s.address, s.lat, s.lng").
		WillReturnRows(rows)

	stores, err := GetAllStores()

	require.NoError(t, err)
	require.Len(t, stores, 2)

	assert.Equal(t, "Choco House", stores[0].Name)
	require.NotNil(t, stores[0].Snapshot)
	assert.Equal(t, 35, stores[0].StockCount())
	assert.Equal(t, StatusAvailable, stores[0].Status())
	assert.Equal(t, 15000.0, stores[0].Price())

	// No product row: default-filled projection, never an error
	assert.Nil(t, stores[1].Snapshot)
	assert.Equal(t, 0, stores[1].StockCount())
	assert.Equal(t, "", stores[1].Status())
	assert.False(t, stores[1].HasPrice())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllStoresEmpty(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	db.SetForTesting(mockDB)

	mock.ExpectQuery("SELECT s.id, s.name, s.address, s.lat, s.lng").
		WillReturnRows(sqlmock.NewRows(storeColumns()))

	stores, err := GetAllStores()

	assert.NoError(t, err)
	assert.Empty(t, stores)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSuggestStoresCapsResults(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	db.SetForTesting(mockDB)

	rows := sqlmock.NewRows(storeColumns()).
		AddRow(1, "Choco House", "Gangnam-daero 123", 37.50, 127.00, "AVAILABLE", 12, nil, nil, nil)

	mock.ExpectQuery("WHERE s.name LIKE \\? COLLATE NOCASE OR s.address LIKE \\? COLLATE NOCASE ORDER BY s.id LIMIT \\?").
		WithArgs("%choco%", "%choco%", SuggestLimit).
		WillReturnRows(rows)

	stores, err := SuggestStores("choco")

	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, "Choco House", stores[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStock(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	db.SetForTesting(mockDB)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO Product").
		WithArgs(1, StatusAvailable, 30, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO StockReport").
		WithArgs(1, ReportHave, "Owner update: 30 items").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err = UpdateStock(1, StatusAvailable, 30)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStockZeroCountForcesSoldOut(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	db.SetForTesting(mockDB)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO Product").
		WithArgs(1, StatusSoldOut, 0, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO StockReport").
		WithArgs(1, ReportNoHave, "Owner update: 0 items").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err = UpdateStock(1, StatusAvailable, 0)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimStoreRejectsForeignOwner(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	db.SetForTesting(mockDB)

	mock.ExpectQuery("SELECT owner_id FROM Product WHERE store_id = \\?").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"owner_id"}).AddRow(99))

	err = ClaimStore(1, 2, "1234567890", "owner@example.com", "010-1234-5678")

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimStoreUnclaimed(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	db.SetForTesting(mockDB)

	mock.ExpectQuery("SELECT owner_id FROM Product WHERE store_id = \\?").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"owner_id"}))

	mock.ExpectExec("INSERT INTO Product").
		WithArgs(1, 2, "1234567890", "owner@example.com", "010-1234-5678").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = ClaimStore(1, 2, "1234567890", "owner@example.com", "010-1234-5678")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportSightingRejectsUnknownType(t *testing.T) {
	err := ReportSighting(1, "MAYBE", "")
	assert.Error(t, err)
}
