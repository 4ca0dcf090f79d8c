package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/OldAlexhub/AI-Schedule-Recommender/internal/domain"
)

func (r *Repository) CreateSchedulePlan(plan *domain.SchedulePlan) error {
	query := `
		INSERT INTO plans (forecast_id, name, artifacts)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, version
	`

	artifacts, err := json.Marshal(plan.Artifacts)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{plan.ForecastID, plan.Name, artifacts}
	dst := []any{&plan.ID, &plan.CreatedAt, &plan.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllSchedulePlans() ([]*domain.SchedulePlan, error) {
	query := `
		SELECT id, forecast_id, name, artifacts, created_at, version
		FROM plans
		ORDER BY created_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := []*domain.SchedulePlan{}
	for rows.Next() {
		var plan domain.SchedulePlan
		var artifacts []byte
		dst := []any{
			&plan.ID,
			&plan.ForecastID,
			&plan.Name,
			&artifacts,
			&plan.CreatedAt,
			&plan.Version,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(artifacts, &plan.Artifacts); err != nil {
			return nil, err
		}
		plans = append(plans, &plan)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return plans, nil
}

func (r *Repository) GetSchedulePlanByID(id int64) (*domain.SchedulePlan, error) {
	query := `
		SELECT forecast_id, name, artifacts, created_at, version
		FROM plans
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	plan := &domain.SchedulePlan{
		ID: id,
	}

	var artifacts []byte
	dst := []any{
		&plan.ForecastID,
		&plan.Name,
		&artifacts,
		&plan.CreatedAt,
		&plan.Version,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(artifacts, &plan.Artifacts); err != nil {
		return nil, err
	}

	return plan, nil
}

func (r *Repository) DeleteSchedulePlan(id int64) error {
	query := `
		DELETE FROM plans WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, id); err != nil {
		return err
	}

	return nil
}
