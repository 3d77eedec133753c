package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/greenpoint/backend/internal/domain"
	"github.com/greenpoint/backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type pointRepository struct {
	db *sqlx.DB
}

func newPointRepository(db *sqlx.DB) *pointRepository {
	return &pointRepository{
		db: db,
	}
}

// Create stores the point and its items in one transaction.
func (r *pointRepository) Create(ctx context.Context, point *domain.Point) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin point tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.Error("point tx rollback failed", zap.Error(rbErr), zap.String("point_id", point.ID.String()))
			}
		}
	}()

	const query = `
	INSERT INTO point (id, name, email, whatsapp, uf, city, latitude, longitude, created_at)
	VALUES (uuid_to_bin(?), ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err = tx.ExecContext(ctx, query, point.ID, point.Name, point.Email, point.Whatsapp, point.UF, point.City, point.Latitude, point.Longitude, point.CreatedAt)
	if err != nil {
		return fmt.Errorf("db insert point: %w", err)
	}

	const itemQuery = `
	INSERT INTO point_item (point_id, item_id, position) VALUES (uuid_to_bin(?), ?, ?);
	`
	for i, itemID := range point.Items {
		if _, err = tx.ExecContext(ctx, itemQuery, point.ID, itemID, i); err != nil {
			return fmt.Errorf("db insert point item %d: %w", itemID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit point tx: %w", err)
	}
	return nil
}

func (r *pointRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Point, error) {
	const query = `
	SELECT
		BIN_TO_UUID(id) as id,
		name,
		email,
		whatsapp,
		uf,
		city,
		latitude,
		longitude,
		created_at
	FROM point
	WHERE id = uuid_to_bin(?)
	`
	var point domain.Point
	if err := r.db.GetContext(ctx, &point, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from point by id failed: %w", err)
	}

	const itemsQuery = `
	SELECT item_id FROM point_item WHERE point_id = uuid_to_bin(?) ORDER BY position ASC
	`
	if err := r.db.SelectContext(ctx, &point.Items, itemsQuery, id); err != nil {
		return nil, fmt.Errorf("select point items failed: %w", err)
	}

	return &point, nil
}
