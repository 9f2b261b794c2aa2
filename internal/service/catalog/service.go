package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/injoybeauty/salon-api/internal/model"
	"github.com/injoybeauty/salon-api/internal/repository"
)

const (
	durationCacheTTL     = 5 * time.Minute
	durationCacheCleanup = 10 * time.Minute
)

type Service struct {
	repo      repository.ServiceRepository
	durations *cache.Cache
}

func NewService(repo repository.ServiceRepository) *Service {
	return &Service{
		repo:      repo,
		durations: cache.New(durationCacheTTL, durationCacheCleanup),
	}
}

func (s *Service) ListServices(ctx context.Context, category string) ([]*model.Service, error) {
	if category != "" {
		services, err := s.repo.ListByCategory(ctx, category)
		if err != nil {
			return nil, fmt.Errorf("failed to list services: %w", err)
		}
		return services, nil
	}

	services, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (s *Service) GetService(ctx context.Context, id int64) (*model.Service, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// DurationMinutes resolves a service's duration with a short TTL cache. The
// availability path hits this on every query; the catalog is seed data that
// changes rarely enough for staleness not to matter.
func (s *Service) DurationMinutes(ctx context.Context, serviceID int64) (int, error) {
	key := fmt.Sprintf("%d", serviceID)
	if cached, ok := s.durations.Get(key); ok {
		return cached.(int), nil
	}

	service, err := s.repo.Get(ctx, serviceID)
	if err != nil {
		return 0, err
	}

	s.durations.SetDefault(key, service.Duration)
	return service.Duration, nil
}
