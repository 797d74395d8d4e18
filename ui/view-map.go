package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/choco-radar/site/config"
	"github.com/choco-radar/site/geo"
	"github.com/choco-radar/site/selection"
	"github.com/choco-radar/site/store"
)

func MapViewResults(stores []store.AnnotatedStore, state *selection.State, favoritesOnly bool) g.Node {
	var content g.Node = NoResultsMessage()
	if len(stores) > 0 {
		content = mapNode(stores)
	}

	return Div(
		ID("searchResults"),
		ViewToggleButtons("map"),
		content,
	)
}

func mapNode(stores []store.AnnotatedStore) g.Node {
	// Start centered on the result extent; the city default covers the
	// degenerate case.
	center := geo.Point{Lat: config.MapDefaultLat, Lng: config.MapDefaultLng}
	if bounds, ok := geo.CalculateExtent(store.Points(stores)); ok {
		center = bounds.Center()
	}

	initScript := fmt.Sprintf(
		"initMap({lat: %f, lng: %f, zoom: %d, minZoom: %d, maxZoom: %d});",
		center.Lat, center.Lng,
		config.MapDefaultZoom, config.MapMinZoom, config.MapMaxZoom,
	)

	return Div(
		ID("map-view"),
		Class("w-full"),
		Div(
			Class("h-96 w-full rounded border bg-gray-50"),
			Div(
				ID("map-container"),
				Class("h-full w-full"),
				Style("border-radius: inherit; overflow: hidden;"),
			),
			Script(
				Type("text/javascript"),
				g.Raw(initScript),
			),
		),
	)
}
