package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/greenpoint/backend/internal/domain"
	"github.com/greenpoint/backend/internal/repository"
	"github.com/greenpoint/backend/pkg/logger"

	"go.uber.org/zap"
)

type itemService struct {
	itemRepository repository.Items
	imageBaseURL   string
}

func newItemService(itemRepository repository.Items, imageBaseURL string) *itemService {
	return &itemService{
		itemRepository: itemRepository,
		imageBaseURL:   strings.TrimSuffix(imageBaseURL, "/"),
	}
}

func (s *itemService) GetAll(ctx context.Context) ([]domain.Item, error) {
	return s.itemRepository.GetAll(ctx)
}

func (s *itemService) Create(ctx context.Context, item *domain.Item) error {
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	if err := s.itemRepository.Create(ctx, item); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return ErrItemAlreadyExist
		}
		return fmt.Errorf("create item failed: %w", err)
	}
	return nil
}

// Seed inserts the items or refreshes their title and image.
func (s *itemService) Seed(ctx context.Context, items []domain.Item) error {
	now := time.Now()
	for i := range items {
		if items[i].CreatedAt.IsZero() {
			items[i].CreatedAt = now
		}
		if err := s.itemRepository.Upsert(ctx, &items[i]); err != nil {
			return fmt.Errorf("seed item %d failed: %w", items[i].ID, err)
		}
	}
	logger.Info("catalog seeded", zap.Int("count", len(items)))
	return nil
}

// ImageURL resolves the stored image name against the public image location.
// Absolute URLs are returned untouched.
func (s *itemService) ImageURL(item domain.Item) string {
	if strings.HasPrefix(item.Image, "http://") || strings.HasPrefix(item.Image, "https://") {
		return item.Image
	}
	return s.imageBaseURL + "/" + strings.TrimPrefix(item.Image, "/")
}
