package scoring

import "github.com/PrairieAster-Ai/nearest-nice-weather/internal/models"

// ActivityProfile is configuration data, not behavior: adding a new
// activity means adding a row here.
type ActivityProfile struct {
	TempMinF            float64
	TempMaxF            float64
	MaxPrecipPct        float64
	MaxWindMph          float64
	PreferredConditions []string

	// LongDriveTolerant marks activities where people routinely accept a
	// longer drive (an overnight or a full-day outing).
	LongDriveTolerant bool
}

var activityProfiles = map[models.Activity]ActivityProfile{
	models.ActivityHiking: {
		TempMinF:            55,
		TempMaxF:            75,
		MaxPrecipPct:        30,
		MaxWindMph:          15,
		PreferredConditions: []string{"Sunny", "Partly Cloudy"},
	},
	models.ActivityFishing: {
		TempMinF:            50,
		TempMaxF:            80,
		MaxPrecipPct:        40,
		MaxWindMph:          12,
		PreferredConditions: []string{"Overcast", "Partly Cloudy"},
		LongDriveTolerant:   true,
	},
	models.ActivityPhotography: {
		TempMinF:            40,
		TempMaxF:            80,
		MaxPrecipPct:        20,
		MaxWindMph:          20,
		PreferredConditions: []string{"Partly Cloudy", "Clear"},
	},
	models.ActivityCamping: {
		TempMinF:            55,
		TempMaxF:            80,
		MaxPrecipPct:        20,
		MaxWindMph:          18,
		PreferredConditions: []string{"Sunny", "Clear"},
		LongDriveTolerant:   true,
	},
	models.ActivitySightseeing: {
		TempMinF:            60,
		TempMaxF:            85,
		MaxPrecipPct:        25,
		MaxWindMph:          25,
		PreferredConditions: []string{"Sunny", "Partly Cloudy"},
	},
	models.ActivityGeneral: {
		TempMinF:            50,
		TempMaxF:            80,
		MaxPrecipPct:        35,
		MaxWindMph:          20,
		PreferredConditions: []string{"Sunny", "Partly Cloudy", "Clear"},
	},
}

// ProfileFor returns the profile for an activity, defaulting to the
// general profile for unknown or unset activities.
func ProfileFor(a models.Activity) ActivityProfile {
	if p, ok := activityProfiles[a]; ok {
		return p
	}
	return activityProfiles[models.ActivityGeneral]
}

func (p ActivityProfile) tempMidpoint() float64 {
	return (p.TempMinF + p.TempMaxF) / 2
}
