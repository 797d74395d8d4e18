package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/choco-radar/site/config"
	"github.com/choco-radar/site/selection"
	"github.com/choco-radar/site/store"
	"github.com/choco-radar/site/user"
)

// HomePage is the single-page entry: search widget, result panel, and
// the announcement gallery.
func HomePage(currentUser *user.User, state *selection.State) g.Node {
	return Page("Choco Radar", currentUser, []g.Node{
		SearchContainer(state),
		Div(
			ID("posts-gallery"),
			hx.Get("/posts"),
			hx.Trigger("load"),
			hx.Swap("outerHTML"),
		),
	})
}

func SearchContainer(state *selection.State) g.Node {
	return Div(
		ID("searchContainer"),
		SearchWidget(state),
		SearchResults(),
		// Detail panel target; store clicks load into it
		Div(ID("store-detail")),
	)
}

func SearchWidget(state *selection.State) g.Node {
	return Form(
		ID("searchWidget"),
		Class("flex flex-col gap-3"),
		hx.Get("/search"),
		hx.Target("#searchResults"),
		hx.Swap("outerHTML"),
		hx.Include("form"),
		Div(
			Class("relative"),
			searchBox(state.SearchQuery()),
			Div(ID("suggestions"), Class("absolute z-10 w-full")),
		),
		filterChips(state),
	)
}

func searchBox(q string) g.Node {
	debounce := fmt.Sprintf("input changed delay:%dms, search", config.SearchDebounce.Milliseconds())
	return Input(
		Class("w-full p-2 border rounded"),
		Type("search"),
		ID("searchBox"),
		Name("q"),
		Value(q),
		Placeholder("Search stores or neighborhoods"),
		AutoComplete("off"),
		hx.Get("/api/suggest"),
		hx.Trigger(debounce),
		hx.Target("#suggestions"),
		hx.Swap("innerHTML"),
	)
}

// SuggestionList renders the autocomplete dropdown under the search
// box. Picking a suggestion fills the box and fires the search.
func SuggestionList(stores []store.AnnotatedStore) g.Node {
	if len(stores) == 0 {
		return g.Text("")
	}

	var items []g.Node
	for _, s := range stores {
		name := s.Name
		items = append(items, Div(
			Class("p-2 bg-white border-b hover:bg-gray-50 cursor-pointer"),
			g.Attr("onclick", fmt.Sprintf(
				"document.getElementById('searchBox').value=%q;"+
					"document.getElementById('suggestions').innerHTML='';"+
					"htmx.trigger('#searchBox','search');", name)),
			Div(Class("font-medium"), g.Text(name)),
			g.If(s.AddressText() != "",
				Div(Class("text-sm text-gray-500"), g.Text(s.AddressText()))),
		))
	}
	return Div(Class("border rounded shadow bg-white"), g.Group(items))
}

func filterChips(state *selection.State) g.Node {
	return Div(
		Class("flex flex-wrap gap-2 items-center"),
		chip("In stock only", state.InStockOnly(), hx.Post("/api/filter/in-stock")),
		sortChip("Nearest", store.SortByDistance, state.SortKey()),
		sortChip("Cheapest", store.SortByPrice, state.SortKey()),
		favoritesChip(),
		locateButton(),
	)
}

func chip(label string, active bool, action g.Node) g.Node {
	cls := "px-3 py-1 rounded-full border text-sm "
	if active {
		cls += "border-blue-500 bg-blue-100"
	} else {
		cls += "border-gray-300 hover:bg-gray-100"
	}
	return Button(
		Type("button"),
		Class(cls),
		action,
		hx.Target("#searchResults"),
		hx.Swap("outerHTML"),
		hx.Include("#searchWidget"),
		g.Text(label),
	)
}

func sortChip(label string, key store.SortKey, active store.SortKey) g.Node {
	cls := "px-3 py-1 rounded-full border text-sm "
	if key == active {
		cls += "border-blue-500 bg-blue-100"
	} else {
		cls += "border-gray-300 hover:bg-gray-100"
	}
	return Button(
		Type("button"),
		Class(cls),
		hx.Get("/search"),
		hx.Target("#searchResults"),
		hx.Swap("outerHTML"),
		hx.Include("#searchWidget"),
		g.Attr("hx-vals", fmt.Sprintf(`{"sort": %q}`, string(key))),
		g.Text(label),
	)
}

func favoritesChip() g.Node {
	return Button(
		Type("button"),
		Class("px-3 py-1 rounded-full border border-gray-300 text-sm hover:bg-gray-100"),
		hx.Get("/search"),
		hx.Target("#searchResults"),
		hx.Swap("outerHTML"),
		hx.Include("#searchWidget"),
		g.Attr("hx-vals", `{"favorites": "1"}`),
		g.Text("Favorites"),
	)
}

// locateButton asks the browser for GPS and stores the result before
// refreshing, so distances switch from the IP estimate to the real
// position.
func locateButton() g.Node {
	return Button(
		Type("button"),
		Class("px-3 py-1 rounded-full border border-gray-300 text-sm hover:bg-gray-100 ml-auto"),
		g.Attr("onclick", "shareLocation()"),
		g.Text("Near me"),
	)
}

func SearchResults() g.Node {
	return Div(
		ID("searchResults"),
		hx.Get("/search"),
		hx.Trigger("load"),
		hx.Target("this"),
		hx.Swap("outerHTML"),
	)
}

// ViewToggleButtons switches between map and list renderings; state
// other than the presentation carries over.
func ViewToggleButtons(activeView string) g.Node {
	button := func(view, label string) g.Node {
		active := activeView == view
		cls := "px-4 py-1 rounded-full border-2 text-sm "
		if active {
			cls += "border-blue-500 bg-blue-100"
		} else {
			cls += "border-transparent hover:bg-gray-100"
		}
		return Button(
			Class(cls),
			hx.Post("/view/"+view),
			hx.Target("#searchResults"),
			hx.Swap("outerHTML"),
			hx.Include("#searchWidget"),
			g.Text(label),
		)
	}
	return Div(
		Class("flex justify-end gap-2 mb-3"),
		button("map", "Map"),
		button("list", "List"),
	)
}

func NoResultsMessage() g.Node {
	return Div(
		Class("text-center text-gray-500 py-12"),
		g.Text("No stores match your search."),
	)
}
