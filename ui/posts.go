package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/choco-radar/site/post"
)

// PostsGallery shows the newest owner announcements across all stores.
func PostsGallery(posts []post.Post, storeNames map[int]string) g.Node {
	if len(posts) == 0 {
		return Div(ID("posts-gallery"))
	}

	var cards []g.Node
	for _, p := range posts {
		cards = append(cards, galleryCard(p, storeNames[p.StoreID]))
	}

	return Div(
		ID("posts-gallery"),
		Class("mt-8"),
		H2(Class("text-lg font-bold mb-3"), g.Text("Store announcements")),
		Div(Class("flex flex-col gap-2"), g.Group(cards)),
	)
}

func galleryCard(p post.Post, storeName string) g.Node {
	return Div(
		Class("border rounded p-3"),
		Div(
			Class("flex justify-between items-baseline"),
			Span(Class("font-medium"), g.Text(p.Title)),
			g.If(storeName != "",
				Span(Class("text-sm text-gray-500"), g.Text(storeName))),
		),
		g.If(p.Body.Valid,
			P(Class("text-sm text-gray-700 mt-1"), g.Text(p.Body.String))),
		announcementImage(p),
		Div(Class("text-xs text-gray-400 mt-1"), g.Text(p.CreatedAt.Format("Jan 2"))),
	)
}
