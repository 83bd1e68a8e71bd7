package geo

import "math"

// zoomStep maps a coordinate-degree range threshold to a Leaflet zoom
// level. Tables are walked in order; the first step whose threshold the
// padded range exceeds wins, so entries must stay sorted by descending
// range. The stepped mapping is deliberate: users compare zoom behavior
// across sessions, so it must stay reproducible rather than continuous.
type zoomStep struct {
	rangeAbove float64
	zoom       float64
}

// personalZoomTable is the fine-grained half-step table used when a user
// location is present and the view fits the user plus their closest POIs.
var personalZoomTable = []zoomStep{
	{8.0, 6},
	{5.0, 6.5},
	{3.5, 7},
	{2.5, 7.5},
	{1.8, 8},
	{1.2, 8.5},
	{0.8, 9},
	{0.5, 9.5},
	{0.35, 10},
	{0.25, 10.5},
	{0.15, 11},
	{0.1, 11.5},
	{0.05, 12},
}

// personalZoomMax is the closest-in branch: everything within ~0.05
// degrees, including a degenerate single-point spread.
const personalZoomMax = 12.5

// regionalZoomTable is the coarser table used for dataset-wide fitting
// (statewide overview rather than a close-up personal view). Kept as a
// separate strategy from the personal table on purpose.
var regionalZoomTable = []zoomStep{
	{7.0, 6},
	{5.0, 6.5},
	{3.0, 7},
	{2.0, 7.5},
	{1.0, 8},
	{0.5, 9},
	{0.25, 10},
}

const regionalZoomMax = 11

// PersonalZoomPadding and RegionalZoomPadding widen the fitted range so
// edge markers don't sit on the viewport border.
const (
	PersonalZoomPadding = 1.1
	RegionalZoomPadding = 1.2
)

// PersonalZoom fits bounds using the fine-grained close-up table.
func PersonalZoom(b Bounds) float64 {
	return zoomFor(personalZoomTable, personalZoomMax, b, PersonalZoomPadding)
}

// RegionalZoom fits bounds using the coarse overview table.
func RegionalZoom(b Bounds) float64 {
	return zoomFor(regionalZoomTable, regionalZoomMax, b, RegionalZoomPadding)
}

func zoomFor(table []zoomStep, maxZoom float64, b Bounds, padding float64) float64 {
	maxRange := math.Max(b.LatRange(), b.LngRange()) * padding
	for _, step := range table {
		if maxRange > step.rangeAbove {
			return step.zoom
		}
	}
	return maxZoom
}
