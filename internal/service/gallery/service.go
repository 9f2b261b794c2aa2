package gallery

import (
	"context"

	"github.com/injoybeauty/salon-api/internal/model"
	"github.com/injoybeauty/salon-api/internal/repository"
)

const featuredLimit = 4

type Service struct {
	repo repository.GalleryRepository
}

func NewService(repo repository.GalleryRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListImages(ctx context.Context, category string) ([]*model.GalleryImage, error) {
	if category != "" {
		return s.repo.ListByCategory(ctx, category)
	}
	return s.repo.List(ctx)
}

func (s *Service) ListFeatured(ctx context.Context) ([]*model.GalleryImage, error) {
	return s.repo.ListFeatured(ctx, featuredLimit)
}

func (s *Service) ListCategories(ctx context.Context) ([]string, error) {
	return s.repo.ListCategories(ctx)
}
