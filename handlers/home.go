package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/choco-radar/site/ui"
)

func HandleHome(c *fiber.Ctx) error {
	state := sessionState(c)
	return render(c, ui.HomePage(getUser(c), state))
}
