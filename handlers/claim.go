package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/choco-radar/site/email"
	"github.com/choco-radar/site/store"
	"github.com/choco-radar/site/ui"
)

// HandleClaimForm renders the self-claim form for a store.
func HandleClaimForm(c *fiber.Ctx) error {
	storeID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid store id")
	}
	s, err := store.GetStore(storeID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "store not found")
	}
	return render(c, ui.ClaimForm(s))
}

// HandleClaimStore processes an owner's self-claim. Verification is
// immediate: the claim succeeds unless another owner already holds the
// store.
func HandleClaimStore(c *fiber.Ctx) error {
	storeID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid store id")
	}

	businessRegNo := c.FormValue("business_reg_no")
	contactEmail := c.FormValue("contact_email")
	contactPhone := c.FormValue("contact_phone")
	if businessRegNo == "" {
		return fiber.NewError(fiber.StatusBadRequest, "business registration number is required")
	}

	if err := store.ClaimStore(storeID, getUserID(c), businessRegNo, contactEmail, contactPhone); err != nil {
		return fiber.NewError(fiber.StatusConflict, err.Error())
	}

	if contactEmail != "" {
		go confirmClaim(storeID, contactEmail)
	}

	return HandleStoreDetail(c)
}

func confirmClaim(storeID int, to string) {
	s, err := store.GetStore(storeID)
	if err != nil {
		return
	}
	service, err := email.NewEmailService()
	if err != nil {
		return
	}
	if err := service.SendClaimConfirmation(to, s.Name, storeID); err != nil {
		log.Printf("[claim] confirmation email for store %d failed: %v", storeID, err)
	}
}
