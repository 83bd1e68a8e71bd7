// Package mapview derives the map viewport (center + zoom) from the
// current result set and the user's position. All functions are pure;
// the UI holds the returned value between recomputations.
package mapview

import (
	"sort"

	"github.com/PrairieAster-Ai/nearest-nice-weather/internal/geo"
	"github.com/PrairieAster-Ai/nearest-nice-weather/internal/models"
)

// DefaultCenter is downtown St. Paul / Minneapolis metro, the fallback
// when there is nothing else to center on.
var DefaultCenter = models.Coordinates{Lat: 44.9537, Lng: -93.0900}

const (
	// DefaultZoom shows the metro region when no locations exist.
	DefaultZoom = 8.0
	// userOnlyZoom centers tightly on the user when locations are
	// missing but their position is known.
	userOnlyZoom = 11.0
	// closestCount is how many nearby POIs the personal view fits
	// alongside the user.
	closestCount = 5
)

// ViewForLocations fits the whole dataset in a regional overview.
func ViewForLocations(locations []models.WeatherLocation) models.MapView {
	bounds := geo.ComputeBounds(coordinatesOf(locations))
	if bounds == nil {
		return models.MapView{Center: DefaultCenter, Zoom: DefaultZoom}
	}
	return models.MapView{
		Center: bounds.Center(),
		Zoom:   geo.RegionalZoom(*bounds),
	}
}

// ViewForLocationsWithUser fits the user plus their closest locations in
// a close-up personal view.
func ViewForLocationsWithUser(locations []models.WeatherLocation, userLocation models.Coordinates) models.MapView {
	if len(locations) == 0 {
		return models.MapView{Center: userLocation, Zoom: userOnlyZoom}
	}

	closest := closestByDegrees(locations, userLocation, closestCount)
	points := append(coordinatesOf(closest), userLocation)

	bounds := geo.ComputeBounds(points)
	return models.MapView{
		Center: bounds.Center(),
		Zoom:   geo.PersonalZoom(*bounds),
	}
}

// ComputeMapView picks the right strategy for the available inputs.
func ComputeMapView(locations []models.WeatherLocation, userLocation *models.Coordinates) models.MapView {
	if userLocation == nil {
		return ViewForLocations(locations)
	}
	return ViewForLocationsWithUser(locations, *userLocation)
}

// closestByDegrees orders by squared lat/lng degree deltas, not
// haversine. Only the relative order matters here, and at Minnesota's
// latitude the planar approximation keeps the same order; changing it
// would change which locations get fitted.
func closestByDegrees(locations []models.WeatherLocation, from models.Coordinates, n int) []models.WeatherLocation {
	sorted := make([]models.WeatherLocation, len(locations))
	copy(sorted, locations)

	sort.SliceStable(sorted, func(i, j int) bool {
		return squaredDegreeDistance(sorted[i], from) < squaredDegreeDistance(sorted[j], from)
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func squaredDegreeDistance(loc models.WeatherLocation, from models.Coordinates) float64 {
	dLat := loc.Latitude - from.Lat
	dLng := loc.Longitude - from.Lng
	return dLat*dLat + dLng*dLng
}

func coordinatesOf(locations []models.WeatherLocation) []models.Coordinates {
	points := make([]models.Coordinates, 0, len(locations))
	for i := range locations {
		points = append(points, locations[i].Coordinates())
	}
	return points
}
