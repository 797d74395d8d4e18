package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/choco-radar/site/selection"
	"github.com/choco-radar/site/store"
)

func ListViewResults(stores []store.AnnotatedStore, state *selection.State, favoritesOnly bool) g.Node {
	var content g.Node = NoResultsMessage()
	if len(stores) > 0 {
		var cards []g.Node
		for _, s := range stores {
			cards = append(cards, storeCard(s, state))
		}
		content = Div(Class("flex flex-col gap-2"), g.Group(cards))
	}

	return Div(
		ID("searchResults"),
		ViewToggleButtons("list"),
		content,
	)
}

// storeCard is one list row; clicking it loads the detail panel.
func storeCard(s store.AnnotatedStore, state *selection.State) g.Node {
	return Div(
		Class("border rounded-lg p-3 hover:bg-gray-50 cursor-pointer flex justify-between items-start"),
		hx.Get(fmt.Sprintf("/store/%d", s.ID)),
		hx.Target("#store-detail"),
		hx.Swap("innerHTML"),
		Div(
			Div(
				Class("flex items-center gap-2"),
				Span(Class("font-medium"), g.Text(s.Name)),
				statusBadge(s),
			),
			g.If(s.AddressText() != "",
				Div(Class("text-sm text-gray-500"), g.Text(s.AddressText()))),
			Div(
				Class("text-sm text-gray-600 flex gap-3 mt-1"),
				g.If(distanceText(s) != "", Span(g.Text(distanceText(s)))),
				g.If(priceText(s) != "", Span(g.Text(priceText(s)))),
			),
		),
		FavoriteButton(s.ID, state.IsFavorite(s.ID)),
	)
}
