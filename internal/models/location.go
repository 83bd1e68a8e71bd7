package models

import "time"

// WeatherLocation is a point-in-time weather observation tied to a place.
// Coordinates are WGS84 degrees; the app expects (but does not enforce) a
// Minnesota region of roughly 43-49N, -97..-89W.
type WeatherLocation struct {
	ID            string    // stable per place (e.g., "mn-duluth")
	Name          string    // display label
	Latitude      float64
	Longitude     float64
	Temperature   int     // degrees F
	Condition     string  // open label: "Sunny", "Partly Cloudy", "Overcast", "Heavy Rain", ...
	Description   string
	Precipitation int     // 0-100, probability percent
	WindSpeed     float64 // mph
	ObservedAt    time.Time
	CreatedAt     time.Time // when we ingested it
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (l *WeatherLocation) Coordinates() Coordinates {
	return Coordinates{
		Lat: l.Latitude,
		Lng: l.Longitude,
	}
}
