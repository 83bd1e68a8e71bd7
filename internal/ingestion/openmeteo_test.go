package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenMeteoSource_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("latitude") == "" || q.Get("longitude") == "" {
			t.Error("expected latitude and longitude query params")
		}
		if q.Get("temperature_unit") != "fahrenheit" || q.Get("wind_speed_unit") != "mph" {
			t.Error("expected imperial units requested")
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"current": {
				"time": "2026-09-01T14:00",
				"temperature_2m": 71.6,
				"precipitation_probability": 15,
				"weather_code": 2,
				"wind_speed_10m": 8.3
			}
		}`))
	}))
	defer srv.Close()

	source := NewOpenMeteoSource(srv.URL)
	defer source.client.CloseIdleConnections()
	place := Place{ID: "mn-duluth", Name: "Duluth", Description: "Lake Superior shoreline", Lat: 46.7867, Lng: -92.1005}

	loc, err := source.Fetch(context.Background(), place)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if loc.ID != "mn-duluth" || loc.Name != "Duluth" {
		t.Errorf("place identity not carried over: %s / %s", loc.ID, loc.Name)
	}
	if loc.Temperature != 72 {
		t.Errorf("expected rounded 72F, got %d", loc.Temperature)
	}
	if loc.Condition != "Partly Cloudy" {
		t.Errorf("expected 'Partly Cloudy' for code 2, got %s", loc.Condition)
	}
	if loc.Precipitation != 15 {
		t.Errorf("expected precipitation 15, got %d", loc.Precipitation)
	}
	if loc.WindSpeed != 8.3 {
		t.Errorf("expected wind 8.3, got %f", loc.WindSpeed)
	}
	if loc.ObservedAt.IsZero() {
		t.Error("expected parsed observation time")
	}
}

func TestOpenMeteoSource_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	source := NewOpenMeteoSource(srv.URL)
	defer source.client.CloseIdleConnections()
	_, err := source.Fetch(context.Background(), MinnesotaPlaces[0])
	if err == nil {
		t.Error("expected error for upstream 500")
	}
}

func TestConditionFromCode(t *testing.T) {
	cases := []struct {
		code int
		want string
	}{
		{0, "Sunny"},
		{2, "Partly Cloudy"},
		{3, "Overcast"},
		{45, "Fog"},
		{53, "Light Rain"},
		{65, "Heavy Rain"},
		{73, "Snow"},
		{95, "Thunderstorm"},
	}

	for _, tc := range cases {
		if got := conditionFromCode(tc.code); got != tc.want {
			t.Errorf("code %d: expected %s, got %s", tc.code, tc.want, got)
		}
	}
}

func TestMinnesotaPlaces_WithinExpectedRegion(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range MinnesotaPlaces {
		if seen[p.ID] {
			t.Errorf("duplicate place id %s", p.ID)
		}
		seen[p.ID] = true

		if p.Lat < 43 || p.Lat > 49 || p.Lng < -97 || p.Lng > -89 {
			t.Errorf("%s outside the Minnesota region: %f, %f", p.ID, p.Lat, p.Lng)
		}
	}
}
