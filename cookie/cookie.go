// Package cookie persists the user-scoped preferences that must
// survive an application restart: favorites, notification
// subscriptions, and the in-stock-only filter. The view mode cookie is
// a convenience; everything else about the UI state is session-only.
package cookie

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const prefMaxAge = 365 * 24 * 60 * 60 // 1 year

func setPref(c *fiber.Ctx, name, value string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		MaxAge:   prefMaxAge,
		HTTPOnly: true,
		Secure:   true,
		Path:     "/",
		SameSite: "Strict",
	})
}

// encodeIDs joins store ids as "1,5,12".
func encodeIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// decodeIDs parses "1,5,12" back to ids, skipping malformed entries.
func decodeIDs(value string) []int {
	if value == "" {
		return nil
	}
	var ids []int
	for _, part := range strings.Split(value, ",") {
		id, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func GetFavorites(c *fiber.Ctx) []int {
	return decodeIDs(c.Cookies("favorites"))
}

func SetFavorites(c *fiber.Ctx, ids []int) {
	setPref(c, "favorites", encodeIDs(ids))
}

func GetNotifications(c *fiber.Ctx) []int {
	return decodeIDs(c.Cookies("notifications"))
}

func SetNotifications(c *fiber.Ctx, ids []int) {
	setPref(c, "notifications", encodeIDs(ids))
}

func GetInStockOnly(c *fiber.Ctx) bool {
	return c.Cookies("in_stock_only") == "1"
}

func SetInStockOnly(c *fiber.Ctx, v bool) {
	value := "0"
	if v {
		value = "1"
	}
	setPref(c, "in_stock_only", value)
}

func GetViewMode(c *fiber.Ctx) string {
	return c.Cookies("view_mode", "map") // default to map
}

func SetViewMode(c *fiber.Ctx, mode string) {
	setPref(c, "view_mode", mode)
}

// GetLocation returns the stored user location as "lat,lng" parts.
func GetLocation(c *fiber.Ctx) (lat, lng float64, ok bool) {
	value := c.Cookies("location")
	parts := strings.SplitN(value, ",", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	lat, err1 := strconv.ParseFloat(parts[0], 64)
	lng, err2 := strconv.ParseFloat(parts[1], 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return lat, lng, true
}

func SetLocation(c *fiber.Ctx, lat, lng float64) {
	setPref(c, "location", strconv.FormatFloat(lat, 'f', -1, 64)+","+strconv.FormatFloat(lng, 'f', -1, 64))
}

func SetJWT(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "auth_token",
		Value:    token,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Strict",
		MaxAge:   24 * 60 * 60, // 24 hours
	})
}

func ClearJWT(c *fiber.Ctx) {
	c.ClearCookie("auth_token")
}

func GetJWT(c *fiber.Ctx) string {
	return c.Cookies("auth_token")
}
