package service

import (
	"context"
	"fmt"

	"github.com/greenpoint/backend/internal/domain"
	"github.com/greenpoint/backend/pkg/logger"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

const regionsCacheKey = "regions"

type regionService struct {
	lookup RegionLookup
	cache  LookupCache
}

func newRegionService(lookup RegionLookup, cache LookupCache) *regionService {
	return &regionService{
		lookup: lookup,
		cache:  cache,
	}
}

func (s *regionService) ListRegions(ctx context.Context) ([]domain.RegionCode, error) {
	values, err := s.cached(ctx, regionsCacheKey, func() ([]string, error) {
		codes, err := s.lookup.ListRegions(ctx)
		if err != nil {
			return nil, err
		}
		return lo.Map(codes, func(c domain.RegionCode, _ int) string { return string(c) }), nil
	})
	if err != nil {
		return nil, fmt.Errorf("list regions failed: %w", err)
	}

	return lo.Map(values, func(v string, _ int) domain.RegionCode { return domain.RegionCode(v) }), nil
}

func (s *regionService) ListCities(ctx context.Context, uf domain.RegionCode) ([]domain.SubRegionName, error) {
	regions, err := s.ListRegions(ctx)
	if err != nil {
		return nil, err
	}
	if !lo.Contains(regions, uf) {
		return nil, ErrRegionNotFound
	}

	values, err := s.cached(ctx, "cities:"+string(uf), func() ([]string, error) {
		names, err := s.lookup.ListSubRegions(ctx, uf)
		if err != nil {
			return nil, err
		}
		return lo.Map(names, func(n domain.SubRegionName, _ int) string { return string(n) }), nil
	})
	if err != nil {
		return nil, fmt.Errorf("list cities of %s failed: %w", uf, err)
	}

	return lo.Map(values, func(v string, _ int) domain.SubRegionName { return domain.SubRegionName(v) }), nil
}

// cached reads key through the lookup cache. Cache errors fall back to the
// source so a redis outage only costs latency.
func (s *regionService) cached(ctx context.Context, key string, load func() ([]string, error)) ([]string, error) {
	if s.cache != nil {
		values, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			logger.Warn("lookup cache read failed", zap.Error(err), zap.String("key", key))
		} else if ok {
			return values, nil
		}
	}

	values, err := load()
	if err != nil {
		return nil, err
	}

	if s.cache != nil && len(values) > 0 {
		if err := s.cache.Set(ctx, key, values); err != nil {
			logger.Warn("lookup cache write failed", zap.Error(err), zap.String("key", key))
		}
	}

	return values, nil
}
