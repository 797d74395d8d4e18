package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/choco-radar/site/config"
	"github.com/choco-radar/site/user"
)

// ---- Page Layout ----

func Page(title string, currentUser *user.User, content []g.Node) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:    title,
		Language: "en",
		Head: []g.Node{
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			Link(
				Rel("stylesheet"),
				Href(config.TailwindCSSURL),
			),
			// Leaflet CSS for map functionality
			Link(
				Rel("stylesheet"),
				Href(config.LeafletCSSURL),
			),
			Script(
				Type("text/javascript"),
				Src(config.HTMXURL),
				Defer(),
			),
			Script(
				Type("text/javascript"),
				Src(config.HTMXSSEURL),
				Defer(),
			),
			// Leaflet JS for map functionality
			Script(
				Type("text/javascript"),
				Src(config.LeafletJSURL),
				Defer(),
			),
			// Custom map functionality
			Script(
				Type("text/javascript"),
				Src("/js/map.js"),
				Defer(),
			),
		},
		Body: []g.Node{
			Div(
				Class("container mx-auto px-4 py-6 max-w-3xl"),
				navigation(currentUser),
				g.Group(content),
				availabilityToasts(),
			),
		},
	})
}

func navigation(currentUser *user.User) g.Node {
	return Div(
		Class("flex justify-between items-center mb-6"),
		A(Href("/"), Class("text-2xl font-bold"), g.Text("Choco Radar")),
		Div(
			Class("flex gap-3 items-center"),
			g.If(currentUser == nil,
				g.Group([]g.Node{
					A(Href("/login"), Class("text-blue-600 hover:underline"), g.Text("Owner login")),
					A(Href("/register"), Class("text-blue-600 hover:underline"), g.Text("Register")),
				}),
			),
			g.If(currentUser != nil,
				g.Group([]g.Node{
					Span(Class("text-gray-700"), g.Text(userName(currentUser))),
					Button(
						Class("text-blue-600 hover:underline"),
						hx.Post("/logout"),
						g.Text("Log out"),
					),
				}),
			),
		),
	)
}

func userName(u *user.User) string {
	if u == nil {
		return ""
	}
	return u.Name
}

// availabilityToasts holds the SSE connection for restock alerts; new
// events render as toast rows at the bottom of the page.
func availabilityToasts() g.Node {
	return Div(
		Class("fixed bottom-4 right-4 w-72"),
		g.Attr("hx-ext", "sse"),
		g.Attr("sse-connect", "/events"),
		Div(
			ID("availability-toasts"),
			g.Attr("sse-swap", "availability"),
			hx.Swap("afterbegin"),
		),
	)
}

func pageHeader(text string) g.Node {
	return H1(Class("text-3xl font-bold mb-6"), g.Text(text))
}

// ErrorPage renders an application error with navigation intact.
func ErrorPage(code int, message, userName string) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:    "Error",
		Language: "en",
		Head: []g.Node{
			Link(Rel("stylesheet"), Href(config.TailwindCSSURL)),
		},
		Body: []g.Node{
			Div(
				Class("container mx-auto px-4 py-16 max-w-xl text-center"),
				H1(Class("text-5xl font-bold mb-4"), g.Textf("%d", code)),
				P(Class("text-gray-600 mb-8"), g.Text(message)),
				g.If(userName != "", P(Class("text-gray-400 mb-4"), g.Textf("Signed in as %s", userName))),
				A(Href("/"), Class("text-blue-600 hover:underline"), g.Text("Back to the map")),
			),
		},
	})
}
