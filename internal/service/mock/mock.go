package mock_service

import (
	"context"

	"github.com/greenpoint/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type Items struct {
	mock.Mock
}

func (m *Items) GetAll(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]domain.Item)
	return items, args.Error(1)
}

func (m *Items) Create(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *Items) Seed(ctx context.Context, items []domain.Item) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *Items) ImageURL(item domain.Item) string {
	args := m.Called(item)
	return args.String(0)
}

type Points struct {
	mock.Mock
}

func (m *Points) Register(ctx context.Context, payload domain.PointPayload) (*domain.Point, error) {
	args := m.Called(ctx, payload)
	point, _ := args.Get(0).(*domain.Point)
	return point, args.Error(1)
}

func (m *Points) GetByID(ctx context.Context, id uuid.UUID) (*domain.Point, error) {
	args := m.Called(ctx, id)
	point, _ := args.Get(0).(*domain.Point)
	return point, args.Error(1)
}

type Regions struct {
	mock.Mock
}

func (m *Regions) ListRegions(ctx context.Context) ([]domain.RegionCode, error) {
	args := m.Called(ctx)
	regions, _ := args.Get(0).([]domain.RegionCode)
	return regions, args.Error(1)
}

func (m *Regions) ListCities(ctx context.Context, uf domain.RegionCode) ([]domain.SubRegionName, error) {
	args := m.Called(ctx, uf)
	cities, _ := args.Get(0).([]domain.SubRegionName)
	return cities, args.Error(1)
}
