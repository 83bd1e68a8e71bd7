package models

import "time"

type Activity string

const (
	ActivityHiking      Activity = "hiking"
	ActivityFishing     Activity = "fishing"
	ActivityPhotography Activity = "photography"
	ActivityCamping     Activity = "camping"
	ActivitySightseeing Activity = "sightseeing"
	ActivityGeneral     Activity = "general"
)

type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

// SeasonOf maps a calendar date to the meteorological season.
func SeasonOf(t time.Time) Season {
	switch t.Month() {
	case time.March, time.April, time.May:
		return SeasonSpring
	case time.June, time.July, time.August:
		return SeasonSummer
	case time.September, time.October, time.November:
		return SeasonFall
	default:
		return SeasonWinter
	}
}

// DefaultTravelWillingness is how far (miles) a user is assumed willing
// to drive when they haven't said otherwise.
const DefaultTravelWillingness = 200.0

// UserContext is ephemeral, in-memory session state. Never persisted.
type UserContext struct {
	CurrentLocation   *Coordinates // nil when the user's position is unknown
	IntendedActivity  Activity
	Season            Season
	TravelWillingness float64 // miles

	// Advisory refinement fields; read but not yet scored.
	WeatherSensitivity string
	Infrastructure     string
}

// DefaultUserContext returns the context assumed for anonymous visitors.
func DefaultUserContext() UserContext {
	return UserContext{
		IntendedActivity:  ActivityGeneral,
		Season:            SeasonOf(time.Now()),
		TravelWillingness: DefaultTravelWillingness,
	}
}

type TemperaturePreference string

const (
	TempCold TemperaturePreference = "cold"
	TempMild TemperaturePreference = "mild"
	TempHot  TemperaturePreference = "hot"
)

type PrecipitationPreference string

const (
	PrecipNone  PrecipitationPreference = "none"
	PrecipLight PrecipitationPreference = "light"
	PrecipHeavy PrecipitationPreference = "heavy"
)

type WindPreference string

const (
	WindCalm   WindPreference = "calm"
	WindBreezy WindPreference = "breezy"
	WindWindy  WindPreference = "windy"
)

// WeatherFilter is the user's bucket selection. Empty fields mean "no
// preference" on that axis.
type WeatherFilter struct {
	Temperature   TemperaturePreference
	Precipitation PrecipitationPreference
	Wind          WindPreference
}

// MapView is a derived viewport: recomputed from the current result set
// on every filter or location change, never stored.
type MapView struct {
	Center Coordinates `json:"center"`
	Zoom   float64     `json:"zoom"`
}
