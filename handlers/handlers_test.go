package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/choco-radar/site/db"
	"github.com/choco-radar/site/store"
)

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

func TestSetToIDs(t *testing.T) {
	ids := setToIDs(map[int]bool{1: true, 2: false, 5: true})
	sort.Ints(ids)
	assert.Equal(t, []int{1, 5}, ids)

	assert.Empty(t, setToIDs(nil))
}

func TestToggleFavoriteRoundTrip(t *testing.T) {
	app := fiber.New()
	app.Post("/api/favorite/:id", HandleToggleFavorite)

	// 7 not in the set yet: toggling adds it
	req := httptest.NewRequest("POST", "/api/favorite/7", nil)
	req.Header.Set("Cookie", "favorites=1,2")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "★")

	cookies := resp.Header.Values("Set-Cookie")
	require.NotEmpty(t, cookies)
	assert.Contains(t, cookies[0], "favorites=")
	assert.Contains(t, cookies[0], "7")
}

func TestToggleFavoriteRemoves(t *testing.T) {
	app := fiber.New()
	app.Post("/api/favorite/:id", HandleToggleFavorite)

	req := httptest.NewRequest("POST", "/api/favorite/2", nil)
	req.Header.Set("Cookie", "favorites=2")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "☆")
}

func TestRedirectToLoginForHTMX(t *testing.T) {
	app := fiber.New()
	app.Get("/protected", func(c *fiber.Ctx) error {
		return redirectToLogin(c)
	})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("HX-Request", "true")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("HX-Redirect"))
}

func TestRedirectToLoginForBrowser(t *testing.T) {
	app := fiber.New()
	app.Get("/protected", func(c *fiber.Ctx) error {
		return redirectToLogin(c)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestShareLocationValidation(t *testing.T) {
	app := fiber.New()
	app.Post("/api/location", HandleShareLocation)

	req := httptest.NewRequest("POST", "/api/location",
		jsonBody(`{"lat": 137.0, "lng": 127.0}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestMapClusters(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db.SetForTesting(mockDB)
	t.Cleanup(func() { mockDB.Close() })
	require.NoError(t, store.InitCollectionCache())
	store.InvalidateCollection()

	rows := sqlmock.NewRows([]string{
		"id", "name", "address", "lat", "lng",
		"status", "stock_count", "price", "last_check_time", "owner_id",
	}).
		AddRow(1, "Chocolate House", "1 Cocoa St", 37.5000, 127.0000, store.StatusAvailable, 120, 4500.0, nil, nil).
		AddRow(2, "Sweet Corner", "2 Cocoa St", 37.5001, 127.0001, store.StatusAvailable, 8, nil, nil, nil).
		AddRow(3, "Far Away", nil, 38.2, 128.0, store.StatusSoldOut, 0, nil, nil, nil)
	mock.ExpectQuery("SELECT (.+) FROM Store s LEFT JOIN Product p").
		WillReturnRows(rows)

	app := fiber.New()
	app.Get("/api/map-clusters", HandleMapClusters)

	req := httptest.NewRequest("GET", "/api/map-clusters?zoom=10", nil)
	req.Header.Set("Cookie", "location=37.5,127.0")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var payload struct {
		Zoom     int           `json:"zoom"`
		Clusters []clusterJSON `json:"clusters"`
		Singles  []singleJSON  `json:"singles"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))

	assert.Equal(t, 10, payload.Zoom)
	// The two adjacent stores share a grid cell at zoom 10; the third
	// renders alone.
	require.Len(t, payload.Clusters, 1)
	assert.Equal(t, 2, payload.Clusters[0].Count)
	assert.Equal(t, 128, payload.Clusters[0].Stock)
	assert.Greater(t, payload.Clusters[0].ClickZoom, 10)
	require.Len(t, payload.Singles, 1)
	assert.Equal(t, "sold-out", payload.Singles[0].Tier)
}
