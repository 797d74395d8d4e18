package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/choco-radar/site/cookie"
)

// HandleShareLocation stores the browser-reported GPS position so
// distance sorting uses it instead of the IP estimate.
func HandleShareLocation(c *fiber.Ctx) error {
	var body struct {
		Lat float64 `json:"lat" form:"lat"`
		Lng float64 `json:"lng" form:"lng"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid location")
	}
	if body.Lat < -90 || body.Lat > 90 || body.Lng < -180 || body.Lng > 180 {
		return fiber.NewError(fiber.StatusBadRequest, "coordinates out of range")
	}

	cookie.SetLocation(c, body.Lat, body.Lng)
	return c.JSON(fiber.Map{"ok": true})
}

// HandleMyLocation resolves the visitor's best-known position for map
// centering: shared GPS first, IP geolocation second, city default
// last.
func HandleMyLocation(c *fiber.Ctx) error {
	point := userLocation(c)
	if point == nil {
		return c.JSON(fiber.Map{"located": false})
	}
	return c.JSON(fiber.Map{
		"located": true,
		"lat":     point.Lat,
		"lng":     point.Lng,
	})
}
