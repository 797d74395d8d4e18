package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/choco-radar/site/cluster"
	"github.com/choco-radar/site/config"
	"github.com/choco-radar/site/post"
	"github.com/choco-radar/site/store"
	"github.com/choco-radar/site/ui"
)

// Logical viewport used to approximate the zoom that fits a cluster's
// bounds; the map container renders at roughly this size.
const (
	mapViewportW = 640
	mapViewportH = 384
)

// HandleStoreDetail renders the bottom-sheet detail panel for one
// store.
func HandleStoreDetail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid store id")
	}

	s, err := store.GetStore(id)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "store not found")
	}

	annotated := []store.AnnotatedStore{s}
	store.Annotate(annotated, userLocation(c))
	s = annotated[0]

	state := sessionState(c)
	state.SelectStore(s)

	announcement, hasPost, err := post.GetForStore(id)
	if err != nil {
		return err
	}

	ownerID, _, err := store.GetOwnerID(id)
	if err != nil {
		return err
	}
	isOwner := ownerID != 0 && ownerID == getUserID(c)

	return render(c, ui.StoreDetail(ui.StoreDetailProps{
		Store:        s,
		State:        state,
		Announcement: announcement,
		HasPost:      hasPost,
		IsOwner:      isOwner,
		IsClaimed:    ownerID != 0,
		LoggedIn:     getUserID(c) != 0,
	}))
}

// HandleCloseDetail clears the detail panel.
func HandleCloseDetail(c *fiber.Ctx) error {
	return render(c, ui.EmptyDetail())
}

type singleJSON struct {
	ID         int     `json:"id"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Name       string  `json:"name"`
	Tier       string  `json:"tier"`
	StockCount int     `json:"stock_count"`
	Favorite   bool    `json:"favorite"`
}

type clusterJSON struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Count     int     `json:"count"`
	Stock     int     `json:"stock"`
	ClickZoom int     `json:"click_zoom"`
}

// HandleMapClusters returns the marker set for the current zoom as
// JSON: cluster bubbles carrying member count, aggregate stock, and a
// precomputed click-through zoom, plus individual markers with their
// icon tier.
func HandleMapClusters(c *fiber.Ctx) error {
	zoom := c.QueryInt("zoom", config.MapDefaultZoom)
	if zoom < config.MapMinZoom {
		zoom = config.MapMinZoom
	}
	if zoom > config.MapMaxZoom {
		zoom = config.MapMaxZoom
	}

	state := sessionState(c)
	favoritesOnly := c.Query("favorites") == "1"
	stores := resultStores(c, state, favoritesOnly)

	result := cluster.Build(stores, zoom)

	singles := make([]singleJSON, 0, len(result.Singles))
	for _, s := range result.Singles {
		singles = append(singles, singleJSON{
			ID:         s.ID,
			Lat:        s.Lat,
			Lng:        s.Lng,
			Name:       s.Name,
			Tier:       string(cluster.Tier(s)),
			StockCount: s.StockCount(),
			Favorite:   state.IsFavorite(s.ID),
		})
	}

	clusters := make([]clusterJSON, 0, len(result.Clusters))
	for _, cl := range result.Clusters {
		center := cl.Bounds.Center()
		fitting := cluster.FitZoom(cl.Bounds, mapViewportW, mapViewportH, config.MapMaxZoom)
		clusters = append(clusters, clusterJSON{
			Lat:       center.Lat,
			Lng:       center.Lng,
			Count:     len(cl.Members),
			Stock:     cl.AggregateStock,
			ClickZoom: cluster.ClickZoom(zoom, fitting),
		})
	}

	return c.JSON(fiber.Map{
		"zoom":     zoom,
		"clusters": clusters,
		"singles":  singles,
	})
}
