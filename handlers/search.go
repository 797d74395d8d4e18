package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/choco-radar/site/cookie"
	"github.com/choco-radar/site/selection"
	"github.com/choco-radar/site/store"
	"github.com/choco-radar/site/ui"
)

// HandleSearch renders the result panel for the current query, filter
// chips, and sort. The view mode cookie decides between map and list.
func HandleSearch(c *fiber.Ctx) error {
	state := sessionState(c)
	favoritesOnly := c.Query("favorites") == "1"
	stores := resultStores(c, state, favoritesOnly)

	if state.ViewMode() == selection.ViewMap {
		return render(c, ui.MapViewResults(stores, state, favoritesOnly))
	}
	return render(c, ui.ListViewResults(stores, state, favoritesOnly))
}

// HandleSuggest returns the autocomplete dropdown for the search box.
// The client debounces keystrokes; an empty query clears the dropdown.
func HandleSuggest(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return render(c, ui.SuggestionList(nil))
	}

	stores, err := store.SuggestStores(query)
	if err != nil {
		return err
	}
	return render(c, ui.SuggestionList(stores))
}

// HandleToggleInStock flips the in-stock-only filter chip and
// re-renders the results.
func HandleToggleInStock(c *fiber.Ctx) error {
	next := !cookie.GetInStockOnly(c)
	cookie.SetInStockOnly(c, next)

	state := sessionState(c)
	state.SetInStockOnly(next)
	favoritesOnly := c.Query("favorites") == "1"
	stores := resultStores(c, state, favoritesOnly)

	if state.ViewMode() == selection.ViewMap {
		return render(c, ui.MapViewResults(stores, state, favoritesOnly))
	}
	return render(c, ui.ListViewResults(stores, state, favoritesOnly))
}
