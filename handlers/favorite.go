package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/choco-radar/site/cookie"
	"github.com/choco-radar/site/ui"
)

// HandleToggleFavorite flips a store's favorite membership, persists
// the new set, and returns the updated toggle button.
func HandleToggleFavorite(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid store id")
	}

	state := sessionState(c)
	nowFavorite := state.ToggleFavorite(id)
	cookie.SetFavorites(c, setToIDs(state.Favorites()))

	return render(c, ui.FavoriteButton(id, nowFavorite))
}

// HandleToggleNotification flips a store's availability subscription.
func HandleToggleNotification(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid store id")
	}

	state := sessionState(c)
	nowSubscribed := state.ToggleNotification(id)
	cookie.SetNotifications(c, setToIDs(state.Notifications()))

	return render(c, ui.NotificationButton(id, nowSubscribed))
}

func setToIDs(set map[int]bool) []int {
	ids := make([]int, 0, len(set))
	for id, on := range set {
		if on {
			ids = append(ids, id)
		}
	}
	return ids
}
