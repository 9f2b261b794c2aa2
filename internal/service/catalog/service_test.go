package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/injoybeauty/salon-api/internal/model"
	apperrors "github.com/injoybeauty/salon-api/pkg/errors"
)

type fakeServiceRepo struct {
	services map[int64]*model.Service
	getCalls int
}

func (r *fakeServiceRepo) List(ctx context.Context, activeOnly bool) ([]*model.Service, error) {
	var out []*model.Service
	for _, s := range r.services {
		if !activeOnly || s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeServiceRepo) ListByCategory(ctx context.Context, category string) ([]*model.Service, error) {
	var out []*model.Service
	for _, s := range r.services {
		if s.Category == category && s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeServiceRepo) ListCategories(ctx context.Context) ([]string, error) {
	return []string{"braids", "color"}, nil
}

func (r *fakeServiceRepo) Get(ctx context.Context, id int64) (*model.Service, error) {
	r.getCalls++
	s, ok := r.services[id]
	if !ok {
		return nil, apperrors.NewNotFound("service", nil)
	}
	return s, nil
}

func newFakeRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: map[int64]*model.Service{
		1: {ID: 1, Category: "braids", Name: "Box Braids", Duration: 240, IsActive: true},
		2: {ID: 2, Category: "color", Name: "Full Color", Duration: 120, IsActive: true},
		3: {ID: 3, Category: "color", Name: "Retired Treatment", Duration: 45, IsActive: false},
	}}
}

func TestListServices_FiltersByCategory(t *testing.T) {
	svc := NewService(newFakeRepo())

	services, err := svc.ListServices(context.Background(), "braids")
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Box Braids", services[0].Name)
}

func TestListServices_ActiveOnly(t *testing.T) {
	svc := NewService(newFakeRepo())

	services, err := svc.ListServices(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, services, 2)
}

func TestDurationMinutes(t *testing.T) {
	svc := NewService(newFakeRepo())

	d, err := svc.DurationMinutes(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 240, d)
}

func TestDurationMinutes_CachesLookups(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	_, err := svc.DurationMinutes(context.Background(), 2)
	require.NoError(t, err)
	_, err = svc.DurationMinutes(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.getCalls)
}

func TestDurationMinutes_UnknownService(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.DurationMinutes(context.Background(), 404)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
