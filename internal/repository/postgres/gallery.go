package postgres

import (
	"context"
	"fmt"

	"github.com/injoybeauty/salon-api/internal/model"
)

func (r *galleryRepository) List(ctx context.Context) ([]*model.GalleryImage, error) {
	query := `
		SELECT id, filename, alt_text, category, is_featured, sort_order, created_at
		FROM gallery_images
		ORDER BY sort_order
	`
	var images []*model.GalleryImage
	if err := r.db.SelectContext(ctx, &images, query); err != nil {
		return nil, fmt.Errorf("failed to list gallery images: %w", err)
	}
	return images, nil
}

func (r *galleryRepository) ListByCategory(ctx context.Context, category string) ([]*model.GalleryImage, error) {
	query := `
		SELECT id, filename, alt_text, category, is_featured, sort_order, created_at
		FROM gallery_images
		WHERE category = $1
		ORDER BY sort_order
	`
	var images []*model.GalleryImage
	if err := r.db.SelectContext(ctx, &images, query, category); err != nil {
		return nil, fmt.Errorf("failed to list gallery images by category: %w", err)
	}
	return images, nil
}

func (r *galleryRepository) ListFeatured(ctx context.Context, limit int) ([]*model.GalleryImage, error) {
	query := `
		SELECT id, filename, alt_text, category, is_featured, sort_order, created_at
		FROM gallery_images
		WHERE is_featured
		ORDER BY sort_order
		LIMIT $1
	`
	var images []*model.GalleryImage
	if err := r.db.SelectContext(ctx, &images, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list featured gallery images: %w", err)
	}
	return images, nil
}

func (r *galleryRepository) ListCategories(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT category
		FROM gallery_images
		WHERE category <> ''
		ORDER BY category
	`
	var categories []string
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("failed to list gallery categories: %w", err)
	}
	return categories, nil
}
