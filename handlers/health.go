package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/choco-radar/site/db"
)

// HandleHealth reports process and database liveness.
func HandleHealth(c *fiber.Ctx) error {
	if err := db.Get().Ping(); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unhealthy",
			"error":  err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
