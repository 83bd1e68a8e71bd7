package mapview

import (
	"fmt"
	"testing"

	"github.com/PrairieAster-Ai/nearest-nice-weather/internal/models"
)

func TestComputeMapView_EmptyNoUserFallsBackToDefault(t *testing.T) {
	view := ComputeMapView(nil, nil)

	if view.Center != DefaultCenter {
		t.Errorf("expected default center %+v, got %+v", DefaultCenter, view.Center)
	}
	if view.Zoom != DefaultZoom {
		t.Errorf("expected default zoom %f, got %f", DefaultZoom, view.Zoom)
	}
}

func TestComputeMapView_EmptyWithUserCentersOnUser(t *testing.T) {
	user := models.Coordinates{Lat: 46.7867, Lng: -92.1005}
	view := ComputeMapView(nil, &user)

	if view.Center != user {
		t.Errorf("expected center on user, got %+v", view.Center)
	}
	if view.Zoom != 11 {
		t.Errorf("expected fixed medium zoom 11, got %f", view.Zoom)
	}
}

func TestViewForLocations_SingleLocationMaxZoom(t *testing.T) {
	locs := []models.WeatherLocation{
		{ID: "solo", Latitude: 47.0, Longitude: -91.67},
	}

	view := ComputeMapView(locs, nil)
	if view.Center.Lat != 47.0 || view.Center.Lng != -91.67 {
		t.Errorf("expected center on the single location, got %+v", view.Center)
	}
	// Zero spread resolves to the regional table's closest-in branch.
	if view.Zoom != 11 {
		t.Errorf("expected regional max zoom 11 for zero spread, got %f", view.Zoom)
	}
}

func TestViewForLocations_RegionalFit(t *testing.T) {
	locs := []models.WeatherLocation{
		{ID: "mpls", Latitude: 44.98, Longitude: -93.27},
		{ID: "duluth", Latitude: 46.79, Longitude: -92.10},
		{ID: "intl-falls", Latitude: 48.60, Longitude: -93.40},
	}

	view := ComputeMapView(locs, nil)
	if view.Center.Lat <= 44.98 || view.Center.Lat >= 48.60 {
		t.Errorf("center latitude outside bounds: %+v", view.Center)
	}
	// 3.62 degrees of latitude padded by 1.2 lands on the statewide step.
	if view.Zoom != 7 {
		t.Errorf("expected statewide zoom 7, got %f", view.Zoom)
	}
}

func TestViewWithUser_FitsOnlyClosestFive(t *testing.T) {
	user := models.Coordinates{Lat: 44.9778, Lng: -93.2650}

	// Five clustered near the user, one far outlier up north.
	locs := make([]models.WeatherLocation, 0, 6)
	for i := 0; i < 5; i++ {
		locs = append(locs, models.WeatherLocation{
			ID:       fmt.Sprintf("near_%d", i),
			Latitude: 45.0 + float64(i)*0.02, Longitude: -93.2 + float64(i)*0.02,
		})
	}
	locs = append(locs, models.WeatherLocation{ID: "outlier", Latitude: 48.6, Longitude: -93.4})

	view := ComputeMapView(locs, &user)

	// The outlier must not drag the viewport: center stays near the
	// cluster, zoom stays close-in.
	if view.Center.Lat > 45.2 {
		t.Errorf("outlier pulled the center north: %+v", view.Center)
	}
	if view.Zoom < 10 {
		t.Errorf("expected a close-in personal zoom, got %f", view.Zoom)
	}
}

func TestClosestByDegrees_OrderAndTruncation(t *testing.T) {
	from := models.Coordinates{Lat: 45.0, Lng: -93.0}
	locs := []models.WeatherLocation{
		{ID: "far", Latitude: 47.0, Longitude: -95.0},
		{ID: "nearest", Latitude: 45.01, Longitude: -93.01},
		{ID: "mid", Latitude: 45.5, Longitude: -93.5},
	}

	got := closestByDegrees(locs, from, 2)
	if len(got) != 2 {
		t.Fatalf("expected truncation to 2, got %d", len(got))
	}
	if got[0].ID != "nearest" || got[1].ID != "mid" {
		t.Errorf("wrong order: %s, %s", got[0].ID, got[1].ID)
	}

	// Input must be left untouched.
	if locs[0].ID != "far" {
		t.Error("input slice reordered")
	}
}
