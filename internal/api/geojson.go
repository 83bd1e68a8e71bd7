package api

import (
	"github.com/PrairieAster-Ai/nearest-nice-weather/internal/models"
)

// GeoJSON output for map tooling that prefers it over the flat list
// (served when the client asks with format=geojson).

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}
type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

func toGeoJSON(locations []models.WeatherLocation) FeatureCollection {
	features := make([]Feature, 0, len(locations))

	for _, loc := range locations {
		f := Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type:        "Point",
				Coordinates: []float64{loc.Longitude, loc.Latitude},
			},
			Properties: map[string]any{
				"id":            loc.ID,
				"name":          loc.Name,
				"temperature":   loc.Temperature,
				"condition":     loc.Condition,
				"description":   loc.Description,
				"precipitation": loc.Precipitation,
				"windSpeed":     loc.WindSpeed,
				"observedAt":    loc.ObservedAt,
			},
		}
		features = append(features, f)
	}

	return FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}
