package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/choco-radar/site/cookie"
	"github.com/choco-radar/site/jwt"
	"github.com/choco-radar/site/password"
	"github.com/choco-radar/site/redis"
	"github.com/choco-radar/site/ui"
	"github.com/choco-radar/site/user"
)

// HandleLogin renders the owner login form.
func HandleLogin(c *fiber.Ctx) error {
	return render(c, ui.LoginPage(getUser(c)))
}

// HandleLoginSubmission checks the credentials and starts a session.
func HandleLoginSubmission(c *fiber.Ctx) error {
	phone := c.FormValue("phone")
	pass := c.FormValue("password")

	u, err := user.GetUserByPhone(phone)
	if err != nil || u.IsArchived() {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid phone number or password")
	}
	if !password.VerifyPassword(pass, u.PasswordHash, u.PasswordSalt) {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid phone number or password")
	}
	if !u.PhoneVerified {
		return fiber.NewError(fiber.StatusForbidden, "phone number not verified yet")
	}

	return loginUser(c, u)
}

// loginUser issues the session token and redirects home.
func loginUser(c *fiber.Ctx, u user.User) error {
	token, err := jwt.GenerateToken(&u)
	if err != nil {
		return err
	}

	cookie.SetJWT(c, token)
	redis.SetUserValid(u.ID)

	if c.Get("HX-Request") == "true" {
		c.Set("HX-Redirect", "/")
		return c.SendStatus(fiber.StatusOK)
	}
	return c.Redirect("/")
}

// HandleLogout ends the session.
func HandleLogout(c *fiber.Ctx) error {
	if userID := getUserID(c); userID != 0 {
		redis.ClearUserValid(userID)
	}
	cookie.ClearJWT(c)

	if c.Get("HX-Request") == "true" {
		c.Set("HX-Redirect", "/")
		return c.SendStatus(fiber.StatusOK)
	}
	return c.Redirect("/")
}
