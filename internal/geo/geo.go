// Package geo holds the coordinate math behind distance annotation and
// map viewport fitting.
package geo

import (
	"math"

	"github.com/PrairieAster-Ai/nearest-nice-weather/internal/models"
)

// EarthRadiusMiles is the mean Earth radius in statute miles.
const EarthRadiusMiles = 3959.0

// Distance returns the great-circle distance between two points in miles
// (haversine). Inputs are not validated; out-of-range coordinates produce
// mathematically defined but geographically meaningless results.
func Distance(a, b models.Coordinates) float64 {
	lat1 := degToRad(a.Lat)
	lat2 := degToRad(b.Lat)
	dLat := degToRad(b.Lat - a.Lat)
	dLng := degToRad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMiles * c
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Bounds is the min/max rectangle enclosing a set of points.
type Bounds struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// ComputeBounds returns nil for an empty input: the explicit empty-set
// signal, not an error.
func ComputeBounds(points []models.Coordinates) *Bounds {
	if len(points) == 0 {
		return nil
	}

	b := &Bounds{
		MinLat: points[0].Lat,
		MaxLat: points[0].Lat,
		MinLng: points[0].Lng,
		MaxLng: points[0].Lng,
	}
	for _, p := range points[1:] {
		b.MinLat = math.Min(b.MinLat, p.Lat)
		b.MaxLat = math.Max(b.MaxLat, p.Lat)
		b.MinLng = math.Min(b.MinLng, p.Lng)
		b.MaxLng = math.Max(b.MaxLng, p.Lng)
	}
	return b
}

func (b Bounds) Center() models.Coordinates {
	return models.Coordinates{
		Lat: (b.MinLat + b.MaxLat) / 2,
		Lng: (b.MinLng + b.MaxLng) / 2,
	}
}

func (b Bounds) LatRange() float64 { return b.MaxLat - b.MinLat }
func (b Bounds) LngRange() float64 { return b.MaxLng - b.MinLng }
