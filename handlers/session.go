package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/choco-radar/site/cookie"
	"github.com/choco-radar/site/geo"
	"github.com/choco-radar/site/geoip"
	"github.com/choco-radar/site/selection"
	"github.com/choco-radar/site/store"
	"github.com/choco-radar/site/user"
)

// The logged-in owner's identity travels through request locals, set
// once by JWTMiddleware.

func getUserID(c *fiber.Ctx) int {
	userID, _ := c.Locals("userID").(int)
	return userID
}

func setUserID(c *fiber.Ctx, userID int) {
	c.Locals("userID", userID)
}

func getUserName(c *fiber.Ctx) string {
	userName, _ := c.Locals("userName").(string)
	return userName
}

func setUserName(c *fiber.Ctx, userName string) {
	c.Locals("userName", userName)
}

// getUser returns the logged-in owner, or nil for anonymous visitors.
func getUser(c *fiber.Ctx) *user.User {
	userID := getUserID(c)
	if userID == 0 {
		return nil
	}
	u, err := user.GetUser(userID)
	if err != nil || u.IsArchived() {
		return nil
	}
	return &u
}

func redirectToLogin(c *fiber.Ctx) error {
	if c.Get("HX-Request") == "true" {
		c.Set("HX-Redirect", "/login")
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	return c.Redirect("/login")
}

// sessionState rebuilds the per-visitor UI state from cookies and the
// current request's query parameters.
func sessionState(c *fiber.Ctx) *selection.State {
	state := selection.New(
		cookie.GetFavorites(c),
		cookie.GetNotifications(c),
		cookie.GetInStockOnly(c),
	)
	state.SetViewMode(selection.ViewMode(cookie.GetViewMode(c)))
	state.SetSearchQuery(c.Query("q"))
	state.SetSortKey(store.ParseSortKey(c.Query("sort")))
	if c.Query("in_stock") != "" {
		state.SetInStockOnly(c.Query("in_stock") == "1")
	}
	return state
}

// userLocation resolves the visitor's position: an explicitly shared
// GPS position wins, otherwise the client IP is geolocated. Returns
// nil when neither works; distance sorting then falls back to a
// deterministic order.
func userLocation(c *fiber.Ctx) *geo.Point {
	if lat, lng, ok := cookie.GetLocation(c); ok {
		return &geo.Point{Lat: lat, Lng: lng}
	}
	point, err := geoip.Lookup(c.IP())
	if err != nil {
		return nil
	}
	return &point
}

// resultStores runs the full pipeline: fetch, annotate with distance,
// filter, sort. The cached collection is copied first so concurrent
// requests with different locations never see each other's distances.
func resultStores(c *fiber.Ctx, state *selection.State, favoritesOnly bool) []store.AnnotatedStore {
	stores := append([]store.AnnotatedStore(nil), store.FetchStores()...)
	store.Annotate(stores, userLocation(c))
	stores = store.Filter(stores, state.FilterOptions(favoritesOnly))
	store.Sort(stores, state.SortKey())
	return stores
}
