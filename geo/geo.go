package geo

import "math"

// EarthRadiusKm is the mean Earth radius used for haversine distances.
const EarthRadiusKm = 6371.0

// Point is a WGS84 coordinate in degrees.
type Point struct {
	Lat float64
	Lng float64
}

// Distance computes the great-circle distance in kilometers between two
// coordinates using the haversine formula. Invalid inputs propagate as
// NaN; the function never panics.
func Distance(lat0, lng0, lat1, lng1 float64) float64 {
	lat0Rad := degreesToRadians(lat0)
	lat1Rad := degreesToRadians(lat1)
	deltaLat := degreesToRadians(lat1 - lat0)
	deltaLng := degreesToRadians(lng1 - lng0)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat0Rad)*math.Cos(lat1Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// Bounds is a geographic bounding box.
type Bounds struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// Extend grows the bounds to include the given point.
func (b *Bounds) Extend(lat, lng float64) {
	if lat < b.MinLat {
		b.MinLat = lat
	}
	if lat > b.MaxLat {
		b.MaxLat = lat
	}
	if lng < b.MinLng {
		b.MinLng = lng
	}
	if lng > b.MaxLng {
		b.MaxLng = lng
	}
}

// Center returns the midpoint of the bounds.
func (b Bounds) Center() Point {
	return Point{
		Lat: (b.MinLat + b.MaxLat) / 2,
		Lng: (b.MinLng + b.MaxLng) / 2,
	}
}

// CalculateExtent calculates the geographic bounding box for a list of
// points. Returns the bounds and a boolean indicating if any points
// were given.
func CalculateExtent(points []Point) (Bounds, bool) {
	bounds := Bounds{
		MinLat: math.MaxFloat64,
		MaxLat: -math.MaxFloat64,
		MinLng: math.MaxFloat64,
		MaxLng: -math.MaxFloat64,
	}

	for _, p := range points {
		bounds.Extend(p.Lat, p.Lng)
	}

	return bounds, len(points) > 0
}
