package scoring

import (
	"fmt"
	"testing"

	"github.com/PrairieAster-Ai/nearest-nice-weather/internal/models"
)

var duluth = models.Coordinates{Lat: 46.7867, Lng: -92.1005}

func testContext(activity models.Activity) models.UserContext {
	return models.UserContext{
		IntendedActivity:  activity,
		Season:            models.SeasonSummer,
		TravelWillingness: models.DefaultTravelWillingness,
	}
}

func sampleLocations(n int) []models.WeatherLocation {
	locs := make([]models.WeatherLocation, n)
	for i := range locs {
		locs[i] = models.WeatherLocation{
			ID:            fmt.Sprintf("loc_%d", i),
			Name:          fmt.Sprintf("Location %d", i),
			Latitude:      44.0 + float64(i)*0.4,
			Longitude:     -94.0 + float64(i)*0.3,
			Temperature:   35 + i*7,
			Condition:     "Partly Cloudy",
			Precipitation: (i * 13) % 100,
			WindSpeed:     float64((i * 5) % 28),
		}
	}
	return locs
}

func TestScoreNearness_NoUserLocationIsNeutralMax(t *testing.T) {
	fit := ScoreNearness(nil, duluth, testContext(models.ActivityGeneral))
	if fit.Score != 1.0 {
		t.Errorf("expected neutral max 1.0 without user location, got %f", fit.Score)
	}
	if len(fit.Reasoning) == 0 {
		t.Error("expected reasoning even for the neutral case")
	}
}

func TestScoreNearness_DecaysWithDistance(t *testing.T) {
	user := &models.Coordinates{Lat: 44.9778, Lng: -93.2650}
	near := models.Coordinates{Lat: 45.0, Lng: -93.3}  // a few miles
	far := models.Coordinates{Lat: 47.75, Lng: -90.33} // north shore, ~200mi

	ctx := testContext(models.ActivityGeneral)
	nearFit := ScoreNearness(user, near, ctx)
	farFit := ScoreNearness(user, far, ctx)

	if nearFit.Score <= farFit.Score {
		t.Errorf("expected nearer destination to score higher: %f vs %f", nearFit.Score, farFit.Score)
	}
}

func TestScoreNearness_CampingLeniency(t *testing.T) {
	// Same ~70 mile trip scores higher for camping than for general use.
	user := &models.Coordinates{Lat: 44.9778, Lng: -93.2650}
	dest := models.Coordinates{Lat: 45.98, Lng: -93.27} // ~69 miles due north

	camping := ScoreNearness(user, dest, testContext(models.ActivityCamping))
	general := ScoreNearness(user, dest, testContext(models.ActivityGeneral))

	if camping.Score <= general.Score {
		t.Errorf("expected camping leniency bonus: camping %f <= general %f", camping.Score, general.Score)
	}
}

func TestScoreNearness_LongHaulPenalty(t *testing.T) {
	user := &models.Coordinates{Lat: 44.9778, Lng: -93.2650}
	inside := models.Coordinates{Lat: 46.5, Lng: -93.26}  // ~105 miles
	outside := models.Coordinates{Lat: 47.3, Lng: -93.26} // ~160 miles

	ctx := testContext(models.ActivityGeneral)
	insideFit := ScoreNearness(user, inside, ctx)
	outsideFit := ScoreNearness(user, outside, ctx)

	if outsideFit.Score >= insideFit.Score {
		t.Errorf("expected long-haul penalty beyond 120mi: %f >= %f", outsideFit.Score, insideFit.Score)
	}
}

func TestScoreNiceness_IdealConditions(t *testing.T) {
	perfect := models.WeatherLocation{
		ID: "perfect", Temperature: 68, Condition: "Sunny",
		Precipitation: 5, WindSpeed: 4,
	}
	awful := models.WeatherLocation{
		ID: "awful", Temperature: 15, Condition: "Heavy Rain",
		Precipitation: 90, WindSpeed: 35,
	}
	all := []models.WeatherLocation{perfect, awful}

	ctx := testContext(models.ActivityHiking)
	good := ScoreNiceness(perfect, ctx, all)
	bad := ScoreNiceness(awful, ctx, all)

	if good.Score <= bad.Score {
		t.Errorf("expected perfect weather to beat awful: %f vs %f", good.Score, bad.Score)
	}
	if good.Score > 1 || good.Score < 0 || bad.Score > 1 || bad.Score < 0 {
		t.Errorf("scores out of [0,1]: %f, %f", good.Score, bad.Score)
	}
	if len(good.Reasoning) == 0 || len(bad.Reasoning) == 0 {
		t.Error("expected reasoning strings for both assessments")
	}
}

func TestScoreBounds_AcrossInputGrid(t *testing.T) {
	activities := []models.Activity{
		models.ActivityHiking, models.ActivityFishing, models.ActivityPhotography,
		models.ActivityCamping, models.ActivitySightseeing, models.ActivityGeneral,
		models.Activity("unknown"),
	}
	locs := sampleLocations(12)
	user := &models.Coordinates{Lat: 44.9778, Lng: -93.2650}

	for _, act := range activities {
		ctx := testContext(act)
		ctx.CurrentLocation = user
		for _, a := range Rank(locs, ctx) {
			if a.NearnessFit < 0 || a.NearnessFit > 1 {
				t.Errorf("%s: nearness out of bounds: %f", act, a.NearnessFit)
			}
			if a.NicenessFit < 0 || a.NicenessFit > 1 {
				t.Errorf("%s: niceness out of bounds: %f", act, a.NicenessFit)
			}
			if a.OverallScore < 0 || a.OverallScore > 1 {
				t.Errorf("%s: overall out of bounds: %f", act, a.OverallScore)
			}
		}
	}
}

func TestRank_SortedDescendingAndStable(t *testing.T) {
	locs := sampleLocations(10)
	ctx := testContext(models.ActivityGeneral)
	ctx.CurrentLocation = &models.Coordinates{Lat: 44.9778, Lng: -93.2650}

	ranked := Rank(locs, ctx)
	if len(ranked) != len(locs) {
		t.Fatalf("expected %d assessments, got %d", len(locs), len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].OverallScore > ranked[i-1].OverallScore {
			t.Errorf("not sorted descending at %d: %f > %f", i, ranked[i].OverallScore, ranked[i-1].OverallScore)
		}
	}

	// Identical inputs tie and must keep input order.
	twins := []models.WeatherLocation{
		{ID: "first", Temperature: 70, Precipitation: 10, WindSpeed: 5, Latitude: 45, Longitude: -93},
		{ID: "second", Temperature: 70, Precipitation: 10, WindSpeed: 5, Latitude: 45, Longitude: -93},
	}
	tied := Rank(twins, testContext(models.ActivityGeneral))
	if tied[0].Location.ID != "first" || tied[1].Location.ID != "second" {
		t.Errorf("stable sort violated for ties: %s, %s", tied[0].Location.ID, tied[1].Location.ID)
	}
}

func TestComparisonContext_PercentAndAdvantages(t *testing.T) {
	best := models.WeatherLocation{ID: "best", Temperature: 70, Precipitation: 0, WindSpeed: 1}
	locs := []models.WeatherLocation{best}
	for i := 0; i < 9; i++ {
		locs = append(locs, models.WeatherLocation{
			ID:            fmt.Sprintf("meh_%d", i),
			Temperature:   30 + i,
			Precipitation: 60 + i,
			WindSpeed:     20 + float64(i),
		})
	}

	ranked := Rank(locs, testContext(models.ActivityGeneral))
	top := ranked[0]
	if top.Location.ID != "best" {
		t.Fatalf("expected 'best' to rank first, got %s", top.Location.ID)
	}
	if top.Comparison.BetterThanPercent != 100 {
		t.Errorf("expected betterThanPercent 100, got %d", top.Comparison.BetterThanPercent)
	}
	if len(top.Comparison.UniqueAdvantages) != 3 {
		t.Errorf("expected all three advantage dimensions, got %v", top.Comparison.UniqueAdvantages)
	}

	for _, a := range ranked {
		if a.Comparison.BetterThanPercent < 0 || a.Comparison.BetterThanPercent > 100 {
			t.Errorf("betterThanPercent out of range: %d", a.Comparison.BetterThanPercent)
		}
	}
}

func TestProfileFor_UnknownDefaultsToGeneral(t *testing.T) {
	unknown := ProfileFor("snowshoeing")
	general := ProfileFor(models.ActivityGeneral)
	if unknown.TempMinF != general.TempMinF || unknown.MaxWindMph != general.MaxWindMph {
		t.Error("unknown activity should fall back to the general profile")
	}
}
