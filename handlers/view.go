package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/choco-radar/site/cookie"
	"github.com/choco-radar/site/selection"
	"github.com/choco-radar/site/ui"
)

// HandleListView switches to the list rendering of the current
// results. Only the presentation changes; query, filters, and sort
// carry over untouched.
func HandleListView(c *fiber.Ctx) error {
	return switchView(c, selection.ViewList)
}

// HandleMapView switches to the map rendering of the current results.
func HandleMapView(c *fiber.Ctx) error {
	return switchView(c, selection.ViewMap)
}

func switchView(c *fiber.Ctx, mode selection.ViewMode) error {
	cookie.SetViewMode(c, string(mode))

	state := sessionState(c)
	state.SetViewMode(mode)
	favoritesOnly := c.Query("favorites") == "1"
	stores := resultStores(c, state, favoritesOnly)

	if mode == selection.ViewMap {
		return render(c, ui.MapViewResults(stores, state, favoritesOnly))
	}
	return render(c, ui.ListViewResults(stores, state, favoritesOnly))
}
