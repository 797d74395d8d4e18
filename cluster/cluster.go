// Package cluster groups nearby map markers into aggregate clusters
// and derives per-store marker icon tiers from stock counts.
package cluster

import (
	"math"

	"github.com/choco-radar/site/geo"
	"github.com/choco-radar/site/store"
)

// Clustering policy constants
const (
	// GridSizePx is the pixel grid cell size used to bucket markers.
	GridSizePx = 220
	// MaxClusteringZoom is the zoom level at and above which every
	// store renders as its own marker.
	MaxClusteringZoom = 17
	// MinClusterSize is the minimum member count for a cluster
	// bubble; a cell with one candidate renders as a plain marker.
	MinClusterSize = 2

	tileSize = 256
)

// IconTier is the discrete visual category of a single store marker.
type IconTier string

const (
	TierSoldOut IconTier = "sold-out"
	TierPlenty  IconTier = "plenty"
	TierLow     IconTier = "low"
	TierNormal  IconTier = "normal"
)

// TierFor picks the marker icon tier for a store. Evaluated in
// priority order; the sold-out rule wins even when the status field
// contradicts a zero count.
func TierFor(status string, stockCount int) IconTier {
	switch {
	case status == store.StatusSoldOut || stockCount == 0:
		return TierSoldOut
	case stockCount >= 50:
		return TierPlenty
	case stockCount >= 1 && stockCount < 20:
		return TierLow
	default:
		return TierNormal
	}
}

// Tier returns the icon tier for an annotated store.
func Tier(s store.AnnotatedStore) IconTier {
	return TierFor(s.Status(), s.StockCount())
}

// Cluster is a transient grouping of stores that fall into the same
// pixel grid cell at the current zoom.
type Cluster struct {
	Members        []store.AnnotatedStore
	Bounds         geo.Bounds
	AggregateStock int
}

// Result holds one clustering pass: cluster bubbles plus the stores
// that render as individual markers.
type Result struct {
	Clusters []Cluster
	Singles  []store.AnnotatedStore
}

type cellKey struct {
	x int
	y int
}

// project converts a coordinate to web-mercator world pixels at the
// given zoom.
func project(lat, lng float64, zoom int) (x, y float64) {
	world := float64(tileSize * (int(1) << zoom))
	x = (lng + 180) / 360 * world

	latRad := lat * math.Pi / 180
	y = (1 - math.Log(math.Tan(latRad)+1/math.Cos(latRad))/math.Pi) / 2 * world
	return x, y
}

// Build groups the stores into grid clusters at the given zoom level.
// The whole result is recomputed on every call; with a citywide store
// count correctness-by-recomputation beats incremental bookkeeping.
// Cluster order follows the first member's position in the input.
func Build(stores []store.AnnotatedStore, zoom int) Result {
	if zoom >= MaxClusteringZoom {
		return Result{Singles: stores}
	}

	cells := make(map[cellKey][]store.AnnotatedStore)
	var order []cellKey
	for _, s := range stores {
		x, y := project(s.Lat, s.Lng, zoom)
		key := cellKey{
			x: int(math.Floor(x / GridSizePx)),
			y: int(math.Floor(y / GridSizePx)),
		}
		if _, seen := cells[key]; !seen {
			order = append(order, key)
		}
		cells[key] = append(cells[key], s)
	}

	var result Result
	for _, key := range order {
		members := cells[key]
		if len(members) < MinClusterSize {
			result.Singles = append(result.Singles, members...)
			continue
		}
		bounds, _ := geo.CalculateExtent(store.Points(members))
		result.Clusters = append(result.Clusters, Cluster{
			Members:        members,
			Bounds:         bounds,
			AggregateStock: sumStock(members),
		})
	}
	return result
}

func sumStock(members []store.AnnotatedStore) int {
	total := 0
	for _, m := range members {
		total += m.StockCount()
	}
	return total
}

// FitZoom returns the highest zoom (capped at maxZoom) at which the
// bounds fit inside a viewport of the given pixel size.
func FitZoom(b geo.Bounds, viewportW, viewportH, maxZoom int) int {
	for zoom := maxZoom; zoom > 0; zoom-- {
		x0, y0 := project(b.MaxLat, b.MinLng, zoom)
		x1, y1 := project(b.MinLat, b.MaxLng, zoom)
		if x1-x0 <= float64(viewportW) && y1-y0 <= float64(viewportH) {
			return zoom
		}
	}
	return 1
}

// ClickZoom applies the graduated zoom-step policy for a cluster
// click. fittingZoom is the zoom that would naturally fit the cluster
// bounds; the result always moves at least two and at most three
// levels deeper than the current zoom when the natural fit would not.
func ClickZoom(currentZoom, fittingZoom int) int {
	if fittingZoom <= currentZoom {
		return currentZoom + 2
	}
	if fittingZoom > currentZoom+3 {
		return currentZoom + 3
	}
	return fittingZoom
}
