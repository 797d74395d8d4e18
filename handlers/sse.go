package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/choco-radar/site/cookie"
	"github.com/choco-radar/site/notification"
)

var eventHub *notification.Hub

// SetEventHub wires the availability hub into the SSE endpoint. Called
// once at startup before routes are served.
func SetEventHub(hub *notification.Hub) {
	eventHub = hub
}

// HandleEvents streams availability alerts to the browser. Only events
// for stores in the visitor's notification set are forwarded.
func HandleEvents(c *fiber.Ctx) error {
	if eventHub == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "events unavailable")
	}

	subscribed := make(map[int]bool)
	for _, id := range cookie.GetNotifications(c) {
		subscribed[id] = true
	}

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")

	events, cancel := eventHub.Subscribe()
	defer cancel()

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case e, ok := <-events:
			if !ok {
				return nil
			}
			if !subscribed[e.StoreID] {
				continue
			}
			c.WriteString(fmt.Sprintf(
				"event: availability\ndata: <div class=\"bg-green-100 border border-green-400 rounded p-3 mb-2\">%s is back in stock (%d items)</div>\n\n",
				e.StoreName, e.StockCount))

		case <-ticker.C:
			c.WriteString(": keep-alive\n\n")

		case <-c.Context().Done():
			return nil
		}
	}
}
