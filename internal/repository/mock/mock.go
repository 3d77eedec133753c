package mock_repository

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

func (m *Items) GetByIDs(ctx context.Context, ids []int) ([]domain.Item, error) {
	args := m.Called(ctx, ids)
	items, _ := args.Get(0).([]domain.Item)
	return items, args.Error(1)
}

func (m *Items) Create(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *Items) Upsert(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

type Points struct {
	mock.Mock
}

func (m *Points) Create(ctx context.Context, point *domain.Point) error {
	args := m.Called(ctx, point)
	return args.Error(0)
}

func (m *Points) GetByID(ctx context.Context, id uuid.UUID) (*domain.Point, error) {
	args := m.Called(ctx, id)
	point, _ := args.Get(0).(*domain.Point)
	return point, args.Error(1)
}
