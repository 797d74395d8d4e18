package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/choco-radar/site/ui"
)

// CustomErrorHandler renders application errors as a full page with
// the visitor's session context intact.
func CustomErrorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	ctx.Status(code)
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTML)
	return ui.ErrorPage(code, err.Error(), getUserName(ctx)).Render(ctx.Response().BodyWriter())
}
