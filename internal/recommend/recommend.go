// Package recommend is the facade the API layer calls: it chains the
// relative filter engine, the contextual scoring engine, and the map
// view calculator into one deterministic pipeline over in-memory
// records. No I/O, no state, no mutation of inputs.
package recommend

import (
	"github.com/PrairieAster-Ai/nearest-nice-weather/internal/mapview"
	"github.com/PrairieAster-Ai/nearest-nice-weather/internal/models"
	"github.com/PrairieAster-Ai/nearest-nice-weather/internal/relfilter"
	"github.com/PrairieAster-Ai/nearest-nice-weather/internal/scoring"
)

// RankedResult is a weather location annotated with its scores and the
// explanation text shown to the user.
type RankedResult struct {
	Location         models.WeatherLocation
	DistanceFromUser float64 // miles; zero when the user location is unknown
	OverallScore     float64
	NearnessFit      float64
	NicenessFit      float64
	Reasoning        []string
	Comparison       scoring.ComparisonContext
}

// FilterAndRank runs filter -> score over the candidate set. The user
// location passed here wins over any location already on the context.
// Empty input yields an empty result; otherwise the relative filter's
// closest-N guarantee keeps the output non-empty.
func FilterAndRank(
	locations []models.WeatherLocation,
	filters models.WeatherFilter,
	uctx models.UserContext,
	userLocation *models.Coordinates,
) []RankedResult {
	uctx.CurrentLocation = userLocation

	filtered := relfilter.Apply(locations, filters)
	ranked := scoring.Rank(filtered, uctx)

	results := make([]RankedResult, 0, len(ranked))
	for _, a := range ranked {
		results = append(results, RankedResult{
			Location:         a.Location,
			DistanceFromUser: a.DistanceFromUser,
			OverallScore:     a.OverallScore,
			NearnessFit:      a.NearnessFit,
			NicenessFit:      a.NicenessFit,
			Reasoning:        a.Reasoning,
			Comparison:       a.Comparison,
		})
	}
	return results
}

// ComputeMapView derives the viewport for a ranked result set.
func ComputeMapView(results []RankedResult, userLocation *models.Coordinates) models.MapView {
	locations := make([]models.WeatherLocation, 0, len(results))
	for _, r := range results {
		locations = append(locations, r.Location)
	}
	return mapview.ComputeMapView(locations, userLocation)
}
