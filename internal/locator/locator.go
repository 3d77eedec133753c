package locator

import (
	"context"
	"fmt"

	"github.com/greenpoint/backend/internal/domain"
	"github.com/greenpoint/backend/internal/pointform"
)

// Fixed reports a preset device position.
type Fixed struct {
	pos domain.Coordinate
}

func NewFixed(pos domain.Coordinate) *Fixed {
	return &Fixed{pos: pos}
}

func (f *Fixed) CurrentPosition(ctx context.Context) (domain.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return domain.Coordinate{}, fmt.Errorf("%w: %w", pointform.ErrLocationUnavailable, err)
	}
	if !f.pos.Valid() {
		return domain.Coordinate{}, fmt.Errorf("%w: position %s is off the globe", pointform.ErrLocationUnavailable, f.pos)
	}
	return f.pos, nil
}

// Unavailable stands for a device without a fix or without location permission.
type Unavailable struct {
	Reason string
}

func (u Unavailable) CurrentPosition(ctx context.Context) (domain.Coordinate, error) {
	if u.Reason == "" {
		return domain.Coordinate{}, pointform.ErrLocationUnavailable
	}
	return domain.Coordinate{}, fmt.Errorf("%w: %s", pointform.ErrLocationUnavailable, u.Reason)
}
