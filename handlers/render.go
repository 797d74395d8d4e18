package handlers

import (
	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"
)

// render writes a gomponents node as the HTML response body. Every
// page and HTMX partial in this package goes out through here.
func render(c *fiber.Ctx, node g.Node) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTML)
	return node.Render(c.Response().BodyWriter())
}
