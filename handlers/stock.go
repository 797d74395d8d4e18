package handlers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/choco-radar/site/redis"
	"github.com/choco-radar/site/sms"
	"github.com/choco-radar/site/store"
	"github.com/choco-radar/site/user"
)

// requireStoreOwner checks that the logged-in user owns the store.
func requireStoreOwner(c *fiber.Ctx, storeID int) error {
	ownerID, claimed, err := store.GetOwnerID(storeID)
	if err != nil {
		return err
	}
	if !claimed || ownerID != getUserID(c) {
		return fiber.NewError(fiber.StatusForbidden, "not the owner of this store")
	}
	return nil
}

// HandleUpdateStock applies an owner's stock update, publishes the
// change event, and re-renders the detail panel.
func HandleUpdateStock(c *fiber.Ctx) error {
	storeID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid store id")
	}
	if err := requireStoreOwner(c, storeID); err != nil {
		return err
	}

	status := c.FormValue("status")
	if status != store.StatusAvailable && status != store.StatusSoldOut {
		return fiber.NewError(fiber.StatusBadRequest, "invalid status")
	}
	count, err := strconv.Atoi(c.FormValue("stock_count"))
	if err != nil || count < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid stock count")
	}

	if err := store.UpdateStock(storeID, status, count); err != nil {
		return err
	}

	if priceValue := c.FormValue("price"); priceValue != "" {
		price, err := strconv.ParseFloat(priceValue, 64)
		if err != nil || price < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid price")
		}
		if err := store.SetPrice(storeID, price); err != nil {
			return err
		}
	}

	// Zero count forces sold-out regardless of the submitted status;
	// publish what was actually stored.
	if count == 0 {
		status = store.StatusSoldOut
	}
	redis.PublishProductChange(redis.ProductChange{
		StoreID:    storeID,
		Status:     status,
		StockCount: count,
	})
	store.InvalidateCollection()

	return HandleStoreDetail(c)
}

// HandleReportSighting records a community stock report. A "they have
// it" report against a sold-out listing also nudges the owner by SMS.
func HandleReportSighting(c *fiber.Ctx) error {
	storeID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid store id")
	}

	reportType := c.FormValue("type")
	description := c.FormValue("description")
	if err := store.ReportSighting(storeID, reportType, description); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if reportType == store.ReportHave {
		go nudgeOwner(storeID)
	}

	return HandleStoreDetail(c)
}

// nudgeOwner sends a best-effort SMS to a claimed store's owner when
// customer reports contradict a sold-out listing.
func nudgeOwner(storeID int) {
	s, err := store.GetStore(storeID)
	if err != nil || s.InStock() {
		return
	}
	ownerID, claimed, err := store.GetOwnerID(storeID)
	if err != nil || !claimed {
		return
	}
	owner, err := user.GetUser(ownerID)
	if err != nil || owner.IsArchived() {
		return
	}

	service, err := sms.NewSMSService()
	if err != nil {
		return
	}
	if err := service.SendSightingAlert(owner.Phone, s.Name); err != nil {
		log.Printf("[stock] sighting alert for store %d failed: %v", storeID, err)
	}
}
