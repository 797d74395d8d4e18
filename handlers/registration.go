package handlers

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"

	"github.com/gofiber/fiber/v2"

	"github.com/choco-radar/site/password"
	"github.com/choco-radar/site/sms"
	"github.com/choco-radar/site/ui"
	"github.com/choco-radar/site/user"
)

// HandleRegister renders the owner registration form.
func HandleRegister(c *fiber.Ctx) error {
	return render(c, ui.RegisterPage(getUser(c)))
}

// HandleRegisterSubmission creates the account and sends the SMS
// verification code.
func HandleRegisterSubmission(c *fiber.Ctx) error {
	name := c.FormValue("name")
	phone := c.FormValue("phone")
	pass := c.FormValue("password")
	confirm := c.FormValue("password_confirm")

	if name == "" || phone == "" || pass == "" {
		return fiber.NewError(fiber.StatusBadRequest, "all fields are required")
	}
	if pass != confirm {
		return fiber.NewError(fiber.StatusBadRequest, "passwords do not match")
	}
	if _, err := user.GetUserByPhone(phone); err == nil {
		return fiber.NewError(fiber.StatusConflict, "an account with this phone number already exists")
	}

	hash, salt, err := password.HashPassword(pass)
	if err != nil {
		return err
	}

	userID, err := user.CreateUser(name, phone, hash, salt, password.Algo)
	if err != nil {
		return err
	}

	code, err := verificationCode()
	if err != nil {
		return err
	}
	if err := user.SetVerificationCode(userID, code); err != nil {
		return err
	}

	if service, err := sms.NewSMSService(); err == nil {
		if err := service.SendVerificationCode(phone, code); err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "could not send verification SMS")
		}
	} else {
		// No SMS configured (development); the code lands in the log.
		log.Printf("[registration] verification code for %s: %s", phone, code)
	}

	return render(c, ui.VerifyPage(phone))
}

// HandleVerifySubmission checks the SMS code and activates the
// account.
func HandleVerifySubmission(c *fiber.Ctx) error {
	phone := c.FormValue("phone")
	code := c.FormValue("code")

	u, err := user.GetUserByPhone(phone)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "no pending registration for this phone number")
	}
	if u.VerificationCode == nil || *u.VerificationCode != code {
		return fiber.NewError(fiber.StatusBadRequest, "incorrect verification code")
	}

	if err := user.MarkPhoneVerified(u.ID); err != nil {
		return err
	}

	return loginUser(c, u)
}

func verificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
