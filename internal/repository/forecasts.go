package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/OldAlexhub/AI-Schedule-Recommender/internal/domain"
)

func (r *Repository) CreateForecast(forecast *domain.Forecast) error {
	query := `
		INSERT INTO forecasts (name, day_date, is_weekend, entries)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version
	`

	entries, err := json.Marshal(forecast.Entries)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{forecast.Name, forecast.DayDate, forecast.IsWeekend, entries}
	dst := []any{&forecast.ID, &forecast.CreatedAt, &forecast.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllForecasts() ([]*domain.Forecast, error) {
	query := `
		SELECT id, name, day_date, is_weekend, entries, created_at, version
		FROM forecasts
		ORDER BY day_date DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	forecasts := []*domain.Forecast{}
	for rows.Next() {
		var forecast domain.Forecast
		var entries []byte
		dst := []any{
			&forecast.ID,
			&forecast.Name,
			&forecast.DayDate,
			&forecast.IsWeekend,
			&entries,
			&forecast.CreatedAt,
			&forecast.Version,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(entries, &forecast.Entries); err != nil {
			return nil, err
		}
		forecasts = append(forecasts, &forecast)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return forecasts, nil
}

func (r *Repository) GetForecastByID(id int64) (*domain.Forecast, error) {
	query := `
		SELECT name, day_date, is_weekend, entries, created_at, version
		FROM forecasts
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	forecast := &domain.Forecast{
		ID: id,
	}

	var entries []byte
	dst := []any{
		&forecast.Name,
		&forecast.DayDate,
		&forecast.IsWeekend,
		&entries,
		&forecast.CreatedAt,
		&forecast.Version,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(entries, &forecast.Entries); err != nil {
		return nil, err
	}

	return forecast, nil
}

func (r *Repository) DeleteForecast(id int64) error {
	query := `
		DELETE FROM forecasts WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
