package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/choco-radar/site/photo"
	"github.com/choco-radar/site/post"
	"github.com/choco-radar/site/selection"
	"github.com/choco-radar/site/store"
)

type StoreDetailProps struct {
	Store        store.AnnotatedStore
	State        *selection.State
	Announcement post.Post
	HasPost      bool
	IsOwner      bool
	IsClaimed    bool
	LoggedIn     bool
}

// StoreDetail is the bottom-sheet panel shown for the selected store.
func StoreDetail(props StoreDetailProps) g.Node {
	s := props.Store

	return Div(
		Class("border rounded-lg p-4 mt-4 bg-white shadow"),
		Div(
			Class("flex justify-between items-start"),
			Div(
				Class("flex items-center gap-2"),
				H2(Class("text-xl font-bold"), g.Text(s.Name)),
				statusBadge(s),
			),
			Button(
				Type("button"),
				Class("text-gray-400 hover:text-gray-600 text-xl"),
				hx.Get("/store/close"),
				hx.Target("#store-detail"),
				hx.Swap("innerHTML"),
				g.Attr("aria-label", "Close"),
				g.Text("✕"),
			),
		),
		g.If(s.AddressText() != "",
			P(Class("text-gray-500"), g.Text(s.AddressText()))),
		Div(
			Class("flex gap-3 text-sm text-gray-600 mt-1"),
			g.If(distanceText(s) != "", Span(g.Text(distanceText(s)))),
			g.If(priceText(s) != "", Span(g.Text(priceText(s)))),
			lastChecked(s),
		),
		Div(
			Class("flex gap-2 items-center mt-3"),
			FavoriteButton(s.ID, props.State.IsFavorite(s.ID)),
			NotificationButton(s.ID, props.State.IsSubscribed(s.ID)),
		),
		g.If(props.HasPost, announcementCard(props.Announcement)),
		reportButtons(s.ID),
		g.If(props.IsOwner, ownerPanel(s)),
		g.If(!props.IsClaimed && props.LoggedIn, claimLink(s.ID)),
	)
}

// EmptyDetail clears the panel.
func EmptyDetail() g.Node {
	return g.Text("")
}

func lastChecked(s store.AnnotatedStore) g.Node {
	if s.Snapshot == nil || !s.Snapshot.LastCheckTime.Valid {
		return g.Text("")
	}
	return Span(g.Textf("checked %s", s.Snapshot.LastCheckTime.Time.Format("Jan 2 15:04")))
}

func announcementCard(p post.Post) g.Node {
	return Div(
		Class("border rounded p-3 mt-4 bg-amber-50"),
		Div(Class("font-medium"), g.Text(p.Title)),
		g.If(p.Body.Valid, P(Class("text-sm text-gray-700 mt-1"), g.Text(p.Body.String))),
		announcementImage(p),
		Div(Class("text-xs text-gray-400 mt-2"), g.Text(p.CreatedAt.Format("Jan 2, 2006"))),
	)
}

func announcementImage(p post.Post) g.Node {
	if !p.ImageKey.Valid {
		return g.Text("")
	}
	url := photo.SignedURL(p.ImageKey.String)
	if url == "" {
		return g.Text("")
	}
	return Img(
		Src(url),
		Alt("Announcement photo"),
		Class("rounded mt-2 max-h-48 object-cover"),
	)
}

// reportButtons let anyone report what they saw in the store.
func reportButtons(storeID int) g.Node {
	button := func(reportType, label string) g.Node {
		return Button(
			Type("button"),
			Class("px-3 py-1 rounded border border-gray-300 text-sm hover:bg-gray-100"),
			hx.Post(fmt.Sprintf("/api/store/%d/report", storeID)),
			hx.Target("#store-detail"),
			hx.Swap("innerHTML"),
			g.Attr("hx-vals", fmt.Sprintf(`{"type": %q}`, reportType)),
			g.Text(label),
		)
	}
	return Div(
		Class("mt-4"),
		P(Class("text-sm text-gray-500 mb-1"), g.Text("Were you just there?")),
		Div(
			Class("flex gap-2"),
			button(store.ReportHave, "They have it"),
			button(store.ReportNoHave, "Sold out"),
		),
	)
}

// ownerPanel bundles the stock update and announcement forms for the
// verified owner.
func ownerPanel(s store.AnnotatedStore) g.Node {
	return Div(
		Class("border-t mt-4 pt-4"),
		H3(Class("font-bold mb-2"), g.Text("Manage your listing")),
		stockForm(s),
		postForm(s.ID),
	)
}

func stockForm(s store.AnnotatedStore) g.Node {
	return Form(
		Class("flex flex-wrap gap-2 items-end mb-4"),
		hx.Post(fmt.Sprintf("/api/store/%d/stock", s.ID)),
		hx.Target("#store-detail"),
		hx.Swap("innerHTML"),
		Div(
			Label(Class("block text-sm text-gray-600"), g.Text("Status")),
			Select(
				Name("status"),
				Class("border rounded p-1"),
				Option(Value(store.StatusAvailable), g.Text("Available"),
					g.If(s.InStock(), Selected())),
				Option(Value(store.StatusSoldOut), g.Text("Sold out"),
					g.If(!s.InStock(), Selected())),
			),
		),
		Div(
			Label(Class("block text-sm text-gray-600"), g.Text("Count")),
			Input(Type("number"), Name("stock_count"), Min("0"),
				Value(fmt.Sprintf("%d", s.StockCount())),
				Class("border rounded p-1 w-20")),
		),
		Div(
			Label(Class("block text-sm text-gray-600"), g.Text("Price")),
			Input(Type("number"), Name("price"), Min("0"), Step("100"),
				g.If(s.HasPrice(), Value(fmt.Sprintf("%.0f", s.Price()))),
				Class("border rounded p-1 w-24")),
		),
		Button(
			Type("submit"),
			Class("px-4 py-1 rounded bg-blue-600 text-white hover:bg-blue-700"),
			g.Text("Update"),
		),
	)
}

func postForm(storeID int) g.Node {
	return Form(
		Class("flex flex-col gap-2"),
		hx.Post(fmt.Sprintf("/api/store/%d/post", storeID)),
		hx.Target("#store-detail"),
		hx.Swap("innerHTML"),
		hx.Encoding("multipart/form-data"),
		Label(Class("text-sm text-gray-600"), g.Text("New announcement (replaces the current one)")),
		Input(Type("text"), Name("title"), Placeholder("Title"), Required(),
			Class("border rounded p-1")),
		Textarea(Name("body"), Placeholder("Details"), Rows("2"),
			Class("border rounded p-1")),
		Input(Type("file"), Name("photo"), Accept("image/*"), Class("text-sm")),
		Button(
			Type("submit"),
			Class("px-4 py-1 rounded bg-blue-600 text-white hover:bg-blue-700 self-start"),
			g.Text("Publish"),
		),
	)
}

func claimLink(storeID int) g.Node {
	return Div(
		Class("border-t mt-4 pt-4"),
		A(
			Href(fmt.Sprintf("/store/%d/claim", storeID)),
			Class("text-blue-600 hover:underline text-sm"),
			g.Text("Is this your store? Claim it."),
		),
	)
}
