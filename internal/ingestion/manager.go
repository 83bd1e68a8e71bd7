package ingestion

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/PrairieAster-Ai/nearest-nice-weather/internal/config"
	"github.com/PrairieAster-Ai/nearest-nice-weather/internal/models"
	"github.com/PrairieAster-Ai/nearest-nice-weather/internal/repository"
	"github.com/PrairieAster-Ai/nearest-nice-weather/internal/worker"
)

// Manager keeps the stored observations fresh: a scheduled refresh
// fetches every place on the roster and fans the results through a
// worker pool into the repository.
type Manager struct {
	cfg       *config.Config
	repo      repository.LocationRepository
	source    Source
	places    []Place
	scheduler *gocron.Scheduler
	pool      *worker.Pool[*models.WeatherLocation]
}

func NewManager(cfg *config.Config, repo repository.LocationRepository, source Source, places []Place) *Manager {
	return &Manager{
		cfg:    cfg,
		repo:   repo,
		source: source,
		places: places,
	}
}

func (m *Manager) Start(ctx context.Context) error {
	process := func(ctx context.Context, loc *models.WeatherLocation) error {
		if err := m.repo.Upsert(ctx, loc); err != nil {
			slog.Error("error storing observation", "id", loc.ID, "error", err)
			return err
		}
		slog.Debug("stored observation", "id", loc.ID, "temperature", loc.Temperature, "condition", loc.Condition)
		return nil
	}

	m.pool = worker.NewPool(m.cfg.Worker.Count, m.cfg.Worker.BufferSize, process)
	m.pool.Start(ctx)

	// Refresh once up front so the API has data before the first tick.
	m.Refresh(ctx)

	m.scheduler = gocron.NewScheduler(time.UTC)
	_, err := m.scheduler.Every(m.cfg.Ingestion.RefreshInterval).Do(func() {
		m.Refresh(ctx)
	})
	if err != nil {
		return err
	}
	m.scheduler.StartAsync()

	slog.Info("ingestion started", "places", len(m.places), "interval", m.cfg.Ingestion.RefreshInterval)
	return nil
}

// Refresh fetches the whole roster once and submits results for storage.
// Fetch failures are logged and skipped; partial refreshes are fine.
func (m *Manager) Refresh(ctx context.Context) {
	slog.Debug("refreshing observations", "places", len(m.places))

	var fetched int
	for _, place := range m.places {
		if ctx.Err() != nil {
			return
		}

		loc, err := m.source.Fetch(ctx, place)
		if err != nil {
			slog.Error("fetch failed", "place", place.ID, "error", err)
			continue
		}
		m.pool.Submit(loc)
		fetched++
	}

	slog.Info("refresh complete", "fetched", fetched, "total", len(m.places))
}

func (m *Manager) Stop() {
	if m.scheduler != nil {
		m.scheduler.Stop()
	}
	if m.pool != nil {
		m.pool.Stop()
	}
	slog.Info("ingestion stopped")
}
