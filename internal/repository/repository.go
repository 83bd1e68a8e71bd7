package repository

import (
	"context"

	"github.com/PrairieAster-Ai/nearest-nice-weather/internal/models"
)

// Filter narrows location listings. Near orders results nearest-first by
// planar degree distance; that metric only has to preserve relative
// order at Minnesota latitudes, it is never reported to users.
type Filter struct {
	Near  *models.Coordinates
	Limit int
}

type LocationRepository interface {
	Upsert(ctx context.Context, loc *models.WeatherLocation) error
	GetByID(ctx context.Context, id string) (*models.WeatherLocation, error)
	ListLocations(ctx context.Context, opts Filter) ([]models.WeatherLocation, error)
}

type FeedbackRepository interface {
	AddFeedback(ctx context.Context, fb *models.Feedback) error
}
