package relfilter

import (
	"sort"

	"github.com/PrairieAster-Ai/nearest-nice-weather/internal/models"
)

// MinResults is the floor on non-empty filter output: filtering never
// returns fewer than this many locations while the unfiltered input has
// at least this many. An empty map actively harms the "always show
// something nice nearby" product goal.
const MinResults = 3

// axisBands holds the per-location band assignment on each filtered axis.
type axisBands struct {
	temp   Band
	precip Band
	wind   Band
}

// Apply buckets the visible dataset and returns the locations matching
// the selected buckets on every chosen axis (AND semantics). Empty
// filter fields match everything on that axis.
//
// An empty input yields an empty result with no fallback; a non-empty
// input whose intersection comes up short is padded to MinResults with
// the candidates closest to the requested buckets (summed normalized
// deviation from each selected band's value center, stable on input
// order). The input slice is never mutated.
func Apply(locations []models.WeatherLocation, filter models.WeatherFilter) []models.WeatherLocation {
	if len(locations) == 0 {
		return []models.WeatherLocation{}
	}
	if filter.Temperature == "" && filter.Precipitation == "" && filter.Wind == "" {
		out := make([]models.WeatherLocation, len(locations))
		copy(out, locations)
		return out
	}

	temps := make([]float64, len(locations))
	precips := make([]float64, len(locations))
	winds := make([]float64, len(locations))
	for i, loc := range locations {
		temps[i] = float64(loc.Temperature)
		precips[i] = float64(loc.Precipitation)
		winds[i] = loc.WindSpeed
	}

	tempThresholds, _ := ComputeThresholds(temps, TemperatureSplit)
	precipThresholds, _ := ComputeThresholds(precips, PrecipitationSplit)
	windThresholds, _ := ComputeThresholds(winds, WindSplit)

	wantTemp, filterTemp := temperatureBand(filter.Temperature)
	wantPrecip, filterPrecip := precipitationBand(filter.Precipitation)
	wantWind, filterWind := windBand(filter.Wind)

	matched := make([]models.WeatherLocation, 0, len(locations))
	var rest []models.WeatherLocation
	for i, loc := range locations {
		bands := axisBands{
			temp:   tempThresholds.BandOf(temps[i]),
			precip: precipThresholds.BandOf(precips[i]),
			wind:   windThresholds.BandOf(winds[i]),
		}
		ok := (!filterTemp || bands.temp == wantTemp) &&
			(!filterPrecip || bands.precip == wantPrecip) &&
			(!filterWind || bands.wind == wantWind)
		if ok {
			matched = append(matched, loc)
		} else {
			rest = append(rest, loc)
		}
	}

	want := MinResults
	if len(locations) < want {
		want = len(locations)
	}
	if len(matched) >= want {
		return matched
	}

	// Fallback: pad with the candidates that came closest to the
	// requested buckets across the selected axes.
	sort.SliceStable(rest, func(i, j int) bool {
		return bucketDeviation(rest[i], filter, tempThresholds, precipThresholds, windThresholds) <
			bucketDeviation(rest[j], filter, tempThresholds, precipThresholds, windThresholds)
	})
	for _, loc := range rest {
		if len(matched) >= want {
			break
		}
		matched = append(matched, loc)
	}
	return matched
}

func bucketDeviation(loc models.WeatherLocation, filter models.WeatherFilter, temp, precip, wind Thresholds) float64 {
	var dev float64
	if band, ok := temperatureBand(filter.Temperature); ok {
		dev += temp.normalizedDeviation(float64(loc.Temperature), band)
	}
	if band, ok := precipitationBand(filter.Precipitation); ok {
		dev += precip.normalizedDeviation(float64(loc.Precipitation), band)
	}
	if band, ok := windBand(filter.Wind); ok {
		dev += wind.normalizedDeviation(loc.WindSpeed, band)
	}
	return dev
}

func temperatureBand(p models.TemperaturePreference) (Band, bool) {
	switch p {
	case models.TempCold:
		return BandLow, true
	case models.TempMild:
		return BandMid, true
	case models.TempHot:
		return BandHigh, true
	default:
		return BandMid, false
	}
}

func precipitationBand(p models.PrecipitationPreference) (Band, bool) {
	switch p {
	case models.PrecipNone:
		return BandLow, true
	case models.PrecipLight:
		return BandMid, true
	case models.PrecipHeavy:
		return BandHigh, true
	default:
		return BandMid, false
	}
}

func windBand(p models.WindPreference) (Band, bool) {
	switch p {
	case models.WindCalm:
		return BandLow, true
	case models.WindBreezy:
		return BandMid, true
	case models.WindWindy:
		return BandHigh, true
	default:
		return BandMid, false
	}
}
