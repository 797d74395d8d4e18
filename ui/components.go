package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/choco-radar/site/cluster"
	"github.com/choco-radar/site/store"
)

// statusBadge renders the stock state pill, colored by icon tier.
func statusBadge(s store.AnnotatedStore) g.Node {
	tier := cluster.Tier(s)

	var cls, label string
	switch tier {
	case cluster.TierSoldOut:
		cls, label = "bg-gray-200 text-gray-600", "Sold out"
	case cluster.TierPlenty:
		cls, label = "bg-green-100 text-green-700", fmt.Sprintf("Plenty (%d)", s.StockCount())
	case cluster.TierLow:
		cls, label = "bg-orange-100 text-orange-700", fmt.Sprintf("Running low (%d)", s.StockCount())
	default:
		cls, label = "bg-blue-100 text-blue-700", fmt.Sprintf("In stock (%d)", s.StockCount())
	}

	return Span(
		Class("px-2 py-0.5 rounded-full text-xs font-medium "+cls),
		g.Text(label),
	)
}

func distanceText(s store.AnnotatedStore) string {
	if s.DistanceKm == nil {
		return ""
	}
	if *s.DistanceKm < 1 {
		return fmt.Sprintf("%.0f m", *s.DistanceKm*1000)
	}
	return fmt.Sprintf("%.1f km", *s.DistanceKm)
}

func priceText(s store.AnnotatedStore) string {
	if !s.HasPrice() {
		return ""
	}
	return fmt.Sprintf("₩%.0f", s.Price())
}

// FavoriteButton is the star toggle; the handler swaps it in place.
func FavoriteButton(storeID int, active bool) g.Node {
	label := "☆"
	cls := "text-gray-400 hover:text-yellow-500"
	if active {
		label = "★"
		cls = "text-yellow-500"
	}
	return Button(
		ID(fmt.Sprintf("favorite-%d", storeID)),
		Type("button"),
		Class("text-xl "+cls),
		hx.Post(fmt.Sprintf("/api/favorite/%d", storeID)),
		hx.Swap("outerHTML"),
		g.Attr("aria-label", "Toggle favorite"),
		g.Text(label),
	)
}

// NotificationButton toggles the availability subscription for a
// store.
func NotificationButton(storeID int, active bool) g.Node {
	label := "Notify me"
	cls := "border-gray-300 text-gray-600 hover:bg-gray-100"
	if active {
		label = "Notifying"
		cls = "border-blue-500 bg-blue-100 text-blue-700"
	}
	return Button(
		ID(fmt.Sprintf("notify-%d", storeID)),
		Type("button"),
		Class("px-3 py-1 rounded-full border text-sm "+cls),
		hx.Post(fmt.Sprintf("/api/notify/%d", storeID)),
		hx.Swap("outerHTML"),
		g.Text(label),
	)
}
