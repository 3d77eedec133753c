package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/greenpoint/backend/internal/domain"
	"github.com/greenpoint/backend/internal/queue/task"
	"github.com/greenpoint/backend/internal/repository"
	"github.com/greenpoint/backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type pointService struct {
	pointRepository repository.Points
	itemRepository  repository.Items
	enqueuer        Enqueuer
}

func newPointService(pointRepository repository.Points, itemRepository repository.Items, enqueuer Enqueuer) *pointService {
	return &pointService{
		pointRepository: pointRepository,
		itemRepository:  itemRepository,
		enqueuer:        enqueuer,
	}
}

// Register stores a collection point. Every item must exist in the catalog.
func (s *pointService) Register(ctx context.Context, payload domain.PointPayload) (*domain.Point, error) {
	itemIDs := lo.Uniq(payload.Items)

	known, err := s.itemRepository.GetByIDs(ctx, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("get items by ids failed: %w", err)
	}
	if missing := lo.Without(itemIDs, lo.Map(known, func(item domain.Item, _ int) int { return item.ID })...); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnknownItem, missing)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate point id failed: %w", err)
	}

	point := domain.NewPointFromPayload(id, payload, time.Now())
	point.Items = itemIDs

	if err := s.pointRepository.Create(ctx, point); err != nil {
		return nil, fmt.Errorf("create point failed: %w", err)
	}

	s.enqueueRegistered(ctx, point)

	return point, nil
}

func (s *pointService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Point, error) {
	point, err := s.pointRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrPointNotFound
		}
		return nil, fmt.Errorf("get point failed: %w", err)
	}
	return point, nil
}

// enqueueRegistered queues the confirmation e-mail. The point is already
// stored, so a queue failure is only logged.
func (s *pointService) enqueueRegistered(ctx context.Context, point *domain.Point) {
	if s.enqueuer == nil {
		return
	}

	t, err := task.NewPointRegisteredTask(point.ID, point.Name, point.Email)
	if err != nil {
		logger.Error("build point registered task failed", zap.Error(err), zap.String("point_id", point.ID.String()))
		return
	}

	if _, err := s.enqueuer.EnqueueContext(ctx, t); err != nil {
		logger.Error("enqueue point registered task failed", zap.Error(err), zap.String("point_id", point.ID.String()))
	}
}
