package repository

import (
	"context"

	"github.com/greenpoint/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Items  Items
	Points Points
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Items:  newItemRepository(db),
		Points: newPointRepository(db),
	}
}

type Items interface {
	GetAll(ctx context.Context) ([]domain.Item, error)
	GetByIDs(ctx context.Context, ids []int) ([]domain.Item, error)
	Create(ctx context.Context, item *domain.Item) error
	Upsert(ctx context.Context, item *domain.Item) error
}

type Points interface {
	Create(ctx context.Context, point *domain.Point) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Point, error)
}
