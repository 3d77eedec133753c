package repository

import (
	"context"
	"fmt"

	"github.com/greenpoint/backend/internal/db"
	"github.com/greenpoint/backend/internal/domain"

	"github.com/jmoiron/sqlx"
)

type itemRepository struct {
	db *sqlx.DB
}

func newItemRepository(db *sqlx.DB) *itemRepository {
	return &itemRepository{
		db: db,
	}
}

func (r *itemRepository) GetAll(ctx context.Context) ([]domain.Item, error) {
	const query = `
	SELECT id, title, image, created_at FROM item ORDER BY id ASC;
	`
	var items []domain.Item
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("select from item failed: %w", err)
	}
	return items, nil
}

func (r *itemRepository) GetByIDs(ctx context.Context, ids []int) ([]domain.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT id, title, image, created_at FROM item WHERE id IN (?);`, ids)
	if err != nil {
		return nil, fmt.Errorf("build item in query failed: %w", err)
	}

	var items []domain.Item
	if err := r.db.SelectContext(ctx, &items, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select from item by ids failed: %w", err)
	}
	return items, nil
}

func (r *itemRepository) Create(ctx context.Context, item *domain.Item) error {
	const query = `
	INSERT INTO item (id, title, image, created_at) VALUES (?, ?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, query, item.ID, item.Title, item.Image, item.CreatedAt)
	if err != nil {
		if db.IsDuplicateEntry(err) {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("db insert item: %w", err)
	}
	return nil
}

func (r *itemRepository) Upsert(ctx context.Context, item *domain.Item) error {
	const query = `
	INSERT INTO item (id, title, image, created_at) VALUES (?, ?, ?, ?)
	ON DUPLICATE KEY UPDATE title = VALUES(title), image = VALUES(image);
	`
	_, err := r.db.ExecContext(ctx, query, item.ID, item.Title, item.Image, item.CreatedAt)
	if err != nil {
		return fmt.Errorf("db upsert item: %w", err)
	}
	return nil
}
