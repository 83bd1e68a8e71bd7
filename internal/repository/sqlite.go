package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/PrairieAster-Ai/nearest-nice-weather/internal/models"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

type SQLiteDB struct {
	db *sql.DB
}

func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error while pinging database: %w", err)
	}

	s := &SQLiteDB{
		db: db,
	}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("error while migrating database: %w", err)
	}

	return s, nil
}

func (s *SQLiteDB) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS weather_locations (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			temperature INTEGER NOT NULL,
			condition TEXT NOT NULL,
			description TEXT,
			precipitation INTEGER NOT NULL,
			wind_speed REAL NOT NULL,
			observed_at DATETIME NOT NULL,
			created_at DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS feedback (
			id TEXT PRIMARY KEY,
			email TEXT,
			comment TEXT NOT NULL,
			rating INTEGER,
			category TEXT,
			created_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_weather_locations_observed_at ON weather_locations(observed_at);
		CREATE INDEX IF NOT EXISTS idx_weather_locations_coords ON weather_locations(latitude, longitude);
  	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

// Upsert inserts a location observation or refreshes the existing row.
// Refreshing keeps the place id stable across requests within a session.
func (s *SQLiteDB) Upsert(ctx context.Context, loc *models.WeatherLocation) error {
	query := `
		INSERT INTO weather_locations
			(id, name, latitude, longitude, temperature, condition, description, precipitation, wind_speed, observed_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			temperature = excluded.temperature,
			condition = excluded.condition,
			description = excluded.description,
			precipitation = excluded.precipitation,
			wind_speed = excluded.wind_speed,
			observed_at = excluded.observed_at
	`
	_, err := s.db.ExecContext(ctx, query,
		loc.ID, loc.Name, loc.Latitude, loc.Longitude, loc.Temperature,
		loc.Condition, loc.Description, loc.Precipitation, loc.WindSpeed,
		loc.ObservedAt, loc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error upserting location %s: %w", loc.ID, err)
	}
	return nil
}

func (s *SQLiteDB) GetByID(ctx context.Context, id string) (*models.WeatherLocation, error) {
	query := `
		SELECT id, name, latitude, longitude, temperature, condition, description, precipitation, wind_speed, observed_at, created_at
		FROM weather_locations
		WHERE id = ?
	`
	var loc models.WeatherLocation
	var description sql.NullString
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&loc.ID, &loc.Name, &loc.Latitude, &loc.Longitude, &loc.Temperature,
		&loc.Condition, &description, &loc.Precipitation, &loc.WindSpeed,
		&loc.ObservedAt, &loc.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching location %s: %w", id, err)
	}
	loc.Description = description.String
	return &loc, nil
}

// ListLocations returns stored observations, nearest-first when a
// reference point is given, alphabetical otherwise.
func (s *SQLiteDB) ListLocations(ctx context.Context, opts Filter) ([]models.WeatherLocation, error) {
	query := `
		SELECT id, name, latitude, longitude, temperature, condition, description, precipitation, wind_speed, observed_at, created_at
		FROM weather_locations
	`
	var args []any

	if opts.Near != nil {
		query += ` ORDER BY (latitude - ?) * (latitude - ?) + (longitude - ?) * (longitude - ?) ASC`
		args = append(args, opts.Near.Lat, opts.Near.Lat, opts.Near.Lng, opts.Near.Lng)
	} else {
		query += ` ORDER BY name ASC`
	}

	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing locations: %w", err)
	}
	defer rows.Close()

	var locations []models.WeatherLocation
	for rows.Next() {
		var loc models.WeatherLocation
		var description sql.NullString
		if err := rows.Scan(
			&loc.ID, &loc.Name, &loc.Latitude, &loc.Longitude, &loc.Temperature,
			&loc.Condition, &description, &loc.Precipitation, &loc.WindSpeed,
			&loc.ObservedAt, &loc.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning location row: %w", err)
		}
		loc.Description = description.String
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating location rows: %w", err)
	}

	return locations, nil
}

func (s *SQLiteDB) AddFeedback(ctx context.Context, fb *models.Feedback) error {
	query := `
		INSERT INTO feedback (id, email, comment, rating, category, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		fb.ID, fb.Email, fb.Comment, fb.Rating, fb.Category, fb.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error inserting feedback: %w", err)
	}
	return nil
}
