package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/choco-radar/site/cookie"
	"github.com/choco-radar/site/jwt"
	"github.com/choco-radar/site/redis"
	"github.com/choco-radar/site/user"
)

// JWTMiddleware validates the session token and sets the user in the
// request context.
func JWTMiddleware(c *fiber.Ctx) error {
	tokenString := cookie.GetJWT(c)
	if tokenString == "" {
		setUserID(c, 0)
		setUserName(c, "")
		return c.Next()
	}

	claims, err := jwt.ValidateToken(tokenString)
	if err != nil {
		cookie.ClearJWT(c)
		setUserID(c, 0)
		setUserName(c, "")
		return c.Next()
	}

	setUserID(c, jwt.GetUserID(claims))
	setUserName(c, jwt.GetUserName(claims))
	return c.Next()
}

// AuthRequired requires a logged-in owner. The redis validity marker
// avoids hitting the database on every request; when it is missing the
// account is rechecked and the marker refreshed.
func AuthRequired(c *fiber.Ctx) error {
	userID := getUserID(c)
	if userID == 0 {
		return redirectToLogin(c)
	}

	if redis.UserInvalid(userID) {
		_, status, found := user.GetUserByID(userID)
		if !found || status == user.StatusArchived {
			cookie.ClearJWT(c)
			setUserID(c, 0)
			setUserName(c, "")
			return redirectToLogin(c)
		}
		redis.SetUserValid(userID)
	}

	return c.Next()
}
