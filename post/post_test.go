package post

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/choco-radar/site/db"
)

func setupMock(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db.SetForTesting(mockDB)
	t.Cleanup(func() { mockDB.Close() })
	return mock
}

func TestPublishReplacesPreviousPost(t *testing.T) {
	mock := setupMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM StorePost WHERE store_id = ?").
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO StorePost").
		WithArgs(7, "Restock today", sql.NullString{String: "Fresh batch at 2pm", Valid: true}, sql.NullString{}).
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectCommit()

	id, err := Publish(7, "Restock today", "Fresh batch at 2pm", "")
	require.NoError(t, err)
	assert.Equal(t, 42, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetForStoreMissing(t *testing.T) {
	mock := setupMock(t)

	mock.ExpectQuery("SELECT (.+) FROM StorePost WHERE store_id = ?").
		WithArgs(7).
		WillReturnError(sql.ErrNoRows)

	_, found, err := GetForStore(7)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetForStore(t *testing.T) {
	mock := setupMock(t)

	created := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "store_id", "title", "body", "image_key", "created_at"}).
		AddRow(3, 7, "Restock today", "Fresh batch", "7/1712.webp", created)
	mock.ExpectQuery("SELECT (.+) FROM StorePost WHERE store_id = ?").
		WithArgs(7).
		WillReturnRows(rows)

	p, found, err := GetForStore(7)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Restock today", p.Title)
	assert.Equal(t, "7/1712.webp", p.ImageKey.String)
	assert.Equal(t, created, p.CreatedAt)
}

func TestRecentOrdering(t *testing.T) {
	mock := setupMock(t)

	rows := sqlmock.NewRows([]string{"id", "store_id", "title", "body", "image_key", "created_at"}).
		AddRow(9, 2, "Newest", nil, nil, time.Now()).
		AddRow(3, 7, "Older", nil, nil, time.Now().Add(-time.Hour))
	mock.ExpectQuery("SELECT (.+) FROM StorePost ORDER BY created_at DESC LIMIT ?").
		WithArgs(10).
		WillReturnRows(rows)

	posts, err := Recent(10)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "Newest", posts[0].Title)
}
