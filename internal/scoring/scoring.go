// Package scoring ranks candidate locations by "nearness x niceness":
// a distance-decay score and an activity-conditioned weather suitability
// score, combined with niceness weighted higher. Every contribution
// emits a reasoning string; the product surfaces them to end users as
// explanation text, so they are part of the contract.
package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/PrairieAster-Ai/nearest-nice-weather/internal/geo"
	"github.com/PrairieAster-Ai/nearest-nice-weather/internal/models"
)

// Overall weighting: weather quality matters more than proximity once a
// place is within travel tolerance.
const (
	nearnessWeight = 0.4
	nicenessWeight = 0.6
)

// Nearness heuristics layered on the base linear decay. Order matters:
// base first, then bonuses, then the long-haul penalty multiplies the
// adjusted score.
const (
	veryCloseMiles     = 30.0
	veryCloseBonus     = 0.1
	longDriveMiles     = 50.0
	longDriveBonus     = 0.1
	longHaulMiles      = 120.0
	longHaulMultiplier = 0.7
)

// Niceness contributions, applied to a neutral 0.5 baseline.
const (
	tempInRangeBonus    = 0.3
	tempNearRangeBonus  = 0.1
	tempNearRangeMargin = 10.0
	precipOKBonus       = 0.25
	precipOverPenalty   = 0.2
	windOKBonus         = 0.2
	windOverPenalty     = 0.15
	conditionBonus      = 0.15
	standoutBonus       = 0.1
	standoutPercentile  = 0.7 // top 30% by absolute comfort
)

// FitScore is a [0,1] score plus the human-readable reasons behind it.
type FitScore struct {
	Score     float64
	Reasoning []string
}

// ComparisonContext tells the user how a location stacks up against the
// rest of the current candidate set.
type ComparisonContext struct {
	BetterThanPercent int      `json:"betterThanPercent"`
	UniqueAdvantages  []string `json:"uniqueAdvantages"`
}

// Assessment is one ranked candidate with its component scores.
type Assessment struct {
	Location         models.WeatherLocation
	DistanceFromUser float64 // miles; meaningful only when the user location was known
	NearnessFit      float64
	NicenessFit      float64
	OverallScore     float64
	Reasoning        []string
	Comparison       ComparisonContext
}

// ScoreNearness computes the distance-decay desirability of a destination.
// Without a user location it returns the neutral maximum: we cannot
// penalize distance we cannot measure.
func ScoreNearness(userLocation *models.Coordinates, destination models.Coordinates, uctx models.UserContext) FitScore {
	if userLocation == nil {
		return FitScore{
			Score:     1.0,
			Reasoning: []string{"Your location is unknown, so distance isn't held against any destination"},
		}
	}

	distance := geo.Distance(*userLocation, destination)
	willingness := uctx.TravelWillingness
	if willingness <= 0 {
		willingness = models.DefaultTravelWillingness
	}

	score := clamp01(1 - distance/willingness)
	reasons := []string{fmt.Sprintf("About %.0f miles from you", distance)}

	if distance < veryCloseMiles {
		score += veryCloseBonus
		reasons = append(reasons, "Very close by, an easy trip")
	}

	profile := ProfileFor(uctx.IntendedActivity)
	if profile.LongDriveTolerant && distance >= longDriveMiles {
		score += longDriveBonus
		reasons = append(reasons, fmt.Sprintf("A longer drive is normal for %s", uctx.IntendedActivity))
	}

	if distance > longHaulMiles {
		score *= longHaulMultiplier
		reasons = append(reasons, "Beyond comfortable day-trip range")
	}

	return FitScore{Score: clamp01(score), Reasoning: reasons}
}

// ScoreNiceness computes activity-conditioned weather suitability,
// independent of distance. allLocations is the full candidate set, used
// for the comparative standout bonus.
func ScoreNiceness(weather models.WeatherLocation, uctx models.UserContext, allLocations []models.WeatherLocation) FitScore {
	profile := ProfileFor(uctx.IntendedActivity)
	activity := uctx.IntendedActivity
	if activity == "" {
		activity = models.ActivityGeneral
	}

	score := 0.5
	var reasons []string

	temp := float64(weather.Temperature)
	switch {
	case temp >= profile.TempMinF && temp <= profile.TempMaxF:
		score += tempInRangeBonus
		reasons = append(reasons, fmt.Sprintf("%dF is ideal for %s", weather.Temperature, activity))
	case math.Abs(temp-profile.tempMidpoint()) <= tempNearRangeMargin:
		score += tempNearRangeBonus
		reasons = append(reasons, fmt.Sprintf("%dF is close to ideal for %s", weather.Temperature, activity))
	}

	if float64(weather.Precipitation) <= profile.MaxPrecipPct {
		score += precipOKBonus
		reasons = append(reasons, fmt.Sprintf("Low chance of rain (%d%%)", weather.Precipitation))
	} else {
		score -= precipOverPenalty
		reasons = append(reasons, fmt.Sprintf("%d%% chance of precipitation may interfere with %s", weather.Precipitation, activity))
	}

	if weather.WindSpeed <= profile.MaxWindMph {
		score += windOKBonus
		reasons = append(reasons, fmt.Sprintf("Winds at %.0f mph are manageable", weather.WindSpeed))
	} else {
		score -= windOverPenalty
		reasons = append(reasons, fmt.Sprintf("Winds at %.0f mph are stronger than %s usually wants", weather.WindSpeed, activity))
	}

	if conditionPreferred(weather.Condition, profile.PreferredConditions) {
		score += conditionBonus
		reasons = append(reasons, fmt.Sprintf("%s skies suit %s well", weather.Condition, activity))
	}

	if len(allLocations) > 1 && comfortPercentile(weather, allLocations) >= standoutPercentile {
		score += standoutBonus
		reasons = append(reasons, "Among the nicest conditions anywhere on the map right now")
	}

	return FitScore{Score: clamp01(score), Reasoning: reasons}
}

// Rank scores every candidate and returns assessments sorted descending
// by overall score. The sort is stable: ties keep input order. Input is
// never mutated.
func Rank(locations []models.WeatherLocation, uctx models.UserContext) []Assessment {
	assessments := make([]Assessment, 0, len(locations))

	for _, loc := range locations {
		nearness := ScoreNearness(uctx.CurrentLocation, loc.Coordinates(), uctx)
		niceness := ScoreNiceness(loc, uctx, locations)

		a := Assessment{
			Location:     loc,
			NearnessFit:  nearness.Score,
			NicenessFit:  niceness.Score,
			OverallScore: nearnessWeight*nearness.Score + nicenessWeight*niceness.Score,
			Reasoning:    append(nearness.Reasoning, niceness.Reasoning...),
			Comparison:   compareAgainstAll(loc, uctx, locations),
		}
		if uctx.CurrentLocation != nil {
			a.DistanceFromUser = geo.Distance(*uctx.CurrentLocation, loc.Coordinates())
		}
		assessments = append(assessments, a)
	}

	sort.SliceStable(assessments, func(i, j int) bool {
		return assessments[i].OverallScore > assessments[j].OverallScore
	})

	return assessments
}

// comfortScore is the simplified absolute-comfort composite used for
// comparative reporting. It is deliberately not the same as the overall
// score: comparison text should reflect raw conditions, not the user's
// travel situation.
func comfortScore(loc models.WeatherLocation) float64 {
	tempTerm := clamp01(1 - math.Abs(float64(loc.Temperature)-70)/40)
	precipTerm := clamp01(1 - float64(loc.Precipitation)/100)
	windTerm := clamp01(1 - loc.WindSpeed/30)
	return 0.5*tempTerm + 0.3*precipTerm + 0.2*windTerm
}

// comfortPercentile is the fraction of other candidates this location's
// comfort score beats.
func comfortPercentile(loc models.WeatherLocation, all []models.WeatherLocation) float64 {
	if len(all) <= 1 {
		return 0
	}
	mine := comfortScore(loc)
	beaten := 0
	for _, other := range all {
		if other.ID == loc.ID {
			continue
		}
		if comfortScore(other) < mine {
			beaten++
		}
	}
	return float64(beaten) / float64(len(all)-1)
}

// advantageThreshold: a dimension counts as a unique advantage when the
// location beats more than 60% of alternatives on it.
const advantageThreshold = 0.6

func compareAgainstAll(loc models.WeatherLocation, uctx models.UserContext, all []models.WeatherLocation) ComparisonContext {
	cc := ComparisonContext{
		BetterThanPercent: int(math.Round(comfortPercentile(loc, all) * 100)),
		UniqueAdvantages:  []string{},
	}
	if len(all) <= 1 {
		return cc
	}

	profile := ProfileFor(uctx.IntendedActivity)
	mid := profile.tempMidpoint()

	var tempBeats, dryBeats, calmBeats int
	others := 0
	for _, other := range all {
		if other.ID == loc.ID {
			continue
		}
		others++
		if math.Abs(float64(loc.Temperature)-mid) < math.Abs(float64(other.Temperature)-mid) {
			tempBeats++
		}
		if loc.Precipitation < other.Precipitation {
			dryBeats++
		}
		if loc.WindSpeed < other.WindSpeed {
			calmBeats++
		}
	}

	n := float64(others)
	if float64(tempBeats)/n > advantageThreshold {
		cc.UniqueAdvantages = append(cc.UniqueAdvantages, "Temperature closest to ideal for your plans")
	}
	if float64(dryBeats)/n > advantageThreshold {
		cc.UniqueAdvantages = append(cc.UniqueAdvantages, "Drier than most alternatives")
	}
	if float64(calmBeats)/n > advantageThreshold {
		cc.UniqueAdvantages = append(cc.UniqueAdvantages, "Calmer winds than most alternatives")
	}
	return cc
}

func conditionPreferred(condition string, preferred []string) bool {
	for _, p := range preferred {
		if strings.EqualFold(condition, p) || strings.Contains(strings.ToLower(condition), strings.ToLower(p)) {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
