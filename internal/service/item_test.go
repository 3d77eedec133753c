package service

import (
	"context"
	"testing"

	"github.com/greenpoint/backend/internal/domain"
	mock_repository "github.com/greenpoint/backend/internal/repository/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestItemImageURL(t *testing.T) {
	s := newItemService(&mock_repository.Items{}, "http://localhost:8080/uploads/")

	tests := []struct {
		image string
		want  string
	}{
		{"lampadas.svg", "http://localhost:8080/uploads/lampadas.svg"},
		{"/oleo.svg", "http://localhost:8080/uploads/oleo.svg"},
		{"https://cdn.example.com/a.svg", "https://cdn.example.com/a.svg"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, s.ImageURL(domain.Item{Image: tt.image}))
	}
}

func TestItemCreateDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := &mock_repository.Items{}
	s := newItemService(repo, "")

	repo.On("Create", ctx, mock.Anything).Return(domain.ErrDuplicateEntry)

	err := s.Create(ctx, &domain.Item{ID: 1, Title: "Lâmpadas", Image: "lampadas.svg"})
	assert.ErrorIs(t, err, ErrItemAlreadyExist)
}

func TestItemSeed(t *testing.T) {
	ctx := context.Background()
	repo := &mock_repository.Items{}
	s := newItemService(repo, "")

	repo.On("Upsert", ctx, mock.MatchedBy(func(item *domain.Item) bool {
		return !item.CreatedAt.IsZero()
	})).Return(nil).Twice()

	err := s.Seed(ctx, []domain.Item{{ID: 1, Title: "a", Image: "a.svg"}, {ID: 2, Title: "b", Image: "b.svg"}})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
