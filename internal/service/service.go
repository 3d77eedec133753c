package service

import (
	"context"

	"github.com/greenpoint/backend/internal/config"
	"github.com/greenpoint/backend/internal/domain"
	"github.com/greenpoint/backend/internal/repository"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

type Services struct {
	Items   Items
	Points  Points
	Regions Regions
}

type Deps struct {
	Config       *config.Config
	Repos        *repository.Repositories
	RegionLookup RegionLookup
	LookupCache  LookupCache
	Enqueuer     Enqueuer
}

func NewServices(deps Deps) *Services {
	return &Services{
		Items:   newItemService(deps.Repos.Items, deps.Config.Catalog.ImageBaseURL),
		Points:  newPointService(deps.Repos.Points, deps.Repos.Items, deps.Enqueuer),
		Regions: newRegionService(deps.RegionLookup, deps.LookupCache),
	}
}

type Items interface {
	GetAll(ctx context.Context) ([]domain.Item, error)
	Create(ctx context.Context, item *domain.Item) error
	Seed(ctx context.Context, items []domain.Item) error
	ImageURL(item domain.Item) string
}

type Points interface {
	Register(ctx context.Context, payload domain.PointPayload) (*domain.Point, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Point, error)
}

type Regions interface {
	ListRegions(ctx context.Context) ([]domain.RegionCode, error)
	ListCities(ctx context.Context, uf domain.RegionCode) ([]domain.SubRegionName, error)
}

// RegionLookup is the upstream administrative region source (IBGE).
type RegionLookup interface {
	ListRegions(ctx context.Context) ([]domain.RegionCode, error)
	ListSubRegions(ctx context.Context, region domain.RegionCode) ([]domain.SubRegionName, error)
}

type LookupCache interface {
	Get(ctx context.Context, key string) ([]string, bool, error)
	Set(ctx context.Context, key string, values []string) error
}

type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}
