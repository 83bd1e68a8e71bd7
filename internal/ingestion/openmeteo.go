package ingestion

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/PrairieAster-Ai/nearest-nice-weather/internal/models"
)

// Source fetches a current observation for a place.
type Source interface {
	Fetch(ctx context.Context, place Place) (*models.WeatherLocation, error)
}

// OpenMeteoSource pulls current weather from the Open-Meteo forecast
// API, already converted to the units the app speaks (F, mph, percent).
// A shared rate limiter paces the roster refresh and a circuit breaker
// keeps a flapping upstream from hammering every cycle.
type OpenMeteoSource struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
}

func NewOpenMeteoSource(baseURL string) *OpenMeteoSource {
	if baseURL == "" {
		baseURL = "https://api.open-meteo.com/v1/forecast"
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openmeteo",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenMeteoSource{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(4), 4),
		breaker: cb,
	}
}

type openMeteoResponse struct {
	Current struct {
		Time                     string  `json:"time"`
		Temperature2m            float64 `json:"temperature_2m"`
		PrecipitationProbability int     `json:"precipitation_probability"`
		WeatherCode              int     `json:"weather_code"`
		WindSpeed10m             float64 `json:"wind_speed_10m"`
	} `json:"current"`
}

func (s *OpenMeteoSource) Fetch(ctx context.Context, place Place) (*models.WeatherLocation, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}

	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(place.Lat, 'f', 4, 64))
	values.Set("longitude", strconv.FormatFloat(place.Lng, 'f', 4, 64))
	values.Set("current", "temperature_2m,precipitation_probability,weather_code,wind_speed_10m")
	values.Set("temperature_unit", "fahrenheit")
	values.Set("wind_speed_unit", "mph")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+values.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	result, err := s.breaker.Execute(func() (any, error) {
		resp, err := s.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("error while doing request: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status code: %d - status: %s", resp.StatusCode, resp.Status)
		}

		var data openMeteoResponse
		if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
			return nil, fmt.Errorf("error decoding resp.Body: %w", err)
		}
		return &data, nil
	})
	if err != nil {
		return nil, err
	}

	data := result.(*openMeteoResponse)

	observedAt, err := time.Parse("2006-01-02T15:04", data.Current.Time)
	if err != nil {
		observedAt = time.Now().UTC()
	}

	return &models.WeatherLocation{
		ID:            place.ID,
		Name:          place.Name,
		Latitude:      place.Lat,
		Longitude:     place.Lng,
		Temperature:   int(math.Round(data.Current.Temperature2m)),
		Condition:     conditionFromCode(data.Current.WeatherCode),
		Description:   place.Description,
		Precipitation: data.Current.PrecipitationProbability,
		WindSpeed:     data.Current.WindSpeed10m,
		ObservedAt:    observedAt,
		CreatedAt:     time.Now(),
	}, nil
}

// conditionFromCode maps WMO weather codes to the display labels the
// scoring profiles match against.
func conditionFromCode(code int) string {
	switch {
	case code == 0:
		return "Sunny"
	case code == 1 || code == 2:
		return "Partly Cloudy"
	case code == 3:
		return "Overcast"
	case code >= 45 && code <= 48:
		return "Fog"
	case (code >= 51 && code <= 57) || code == 61 || code == 80:
		return "Light Rain"
	case (code >= 63 && code <= 67) || code == 81 || code == 82:
		return "Heavy Rain"
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return "Snow"
	case code >= 95:
		return "Thunderstorm"
	default:
		return "Cloudy"
	}
}
