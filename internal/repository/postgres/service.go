package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/injoybeauty/salon-api/internal/model"
	apperrors "github.com/injoybeauty/salon-api/pkg/errors"
)

func (r *serviceRepository) List(ctx context.Context, activeOnly bool) ([]*model.Service, error) {
	query := `
		SELECT id, category, name, description, duration, price, is_active, created_at
		FROM services
	`
	if activeOnly {
		query += " WHERE is_active"
	}
	query += " ORDER BY category, name"

	var services []*model.Service
	if err := r.db.SelectContext(ctx, &services, query); err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (r *serviceRepository) ListByCategory(ctx context.Context, category string) ([]*model.Service, error) {
	query := `
		SELECT id, category, name, description, duration, price, is_active, created_at
		FROM services
		WHERE category = $1 AND is_active
		ORDER BY name
	`
	var services []*model.Service
	if err := r.db.SelectContext(ctx, &services, query, category); err != nil {
		return nil, fmt.Errorf("failed to list services by category: %w", err)
	}
	return services, nil
}

func (r *serviceRepository) ListCategories(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT category
		FROM services
		WHERE is_active
		ORDER BY category
	`
	var categories []string
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("failed to list service categories: %w", err)
	}
	return categories, nil
}

func (r *serviceRepository) Get(ctx context.Context, id int64) (*model.Service, error) {
	query := `
		SELECT id, category, name, description, duration, price, is_active, created_at
		FROM services
		WHERE id = $1
	`
	var service model.Service
	err := r.db.GetContext(ctx, &service, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFound("service", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return &service, nil
}
