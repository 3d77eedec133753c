package pointform

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/greenpoint/backend/internal/domain"
	"github.com/greenpoint/backend/pkg/logger"

	"go.uber.org/zap"
)

type RegionLookup interface {
	ListRegions(ctx context.Context) ([]domain.RegionCode, error)
	ListSubRegions(ctx context.Context, region domain.RegionCode) ([]domain.SubRegionName, error)
}

type Locator interface {
	CurrentPosition(ctx context.Context) (domain.Coordinate, error)
}

type CatalogSource interface {
	FetchCatalogItems(ctx context.Context) ([]domain.CatalogItem, error)
}

// PointSubmitter registers a collection point and returns its id.
type PointSubmitter interface {
	SubmitRegistrationPoint(ctx context.Context, payload domain.PointPayload) (string, error)
}

type Deps struct {
	Regions   RegionLookup
	Locator   Locator
	Catalog   CatalogSource
	Submitter PointSubmitter

	// OnFailure receives lookup and location failures. They never stop the form.
	OnFailure func(err error)
}

// Coordinator owns the registration form state. Fetch completions and user
// edits are applied one at a time under mu.
type Coordinator struct {
	regions   RegionLookup
	locator   Locator
	catalog   CatalogSource
	submitter PointSubmitter
	onFailure func(err error)

	mu         sync.Mutex
	state      State
	started    bool
	submitting bool

	inflight sync.WaitGroup
}

func New(deps Deps) *Coordinator {
	return &Coordinator{
		regions:   deps.Regions,
		locator:   deps.Locator,
		catalog:   deps.Catalog,
		submitter: deps.Submitter,
		onFailure: deps.OnFailure,
	}
}

// Start launches the region list, device position and catalog fetches. They
// run independently and only once; later calls do nothing.
func (c *Coordinator) Start(ctx context.Context) {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return
	}
	c.started = true
	c.mu.Unlock()

	c.launch(func() { c.loadRegions(ctx) })
	c.launch(func() { c.seedPosition(ctx) })
	c.launch(func() { c.loadCatalog(ctx) })
}

// Wait blocks until every fetch launched so far has been applied.
func (c *Coordinator) Wait() {
	c.inflight.Wait()
}

// Snapshot returns a copy of the current state.
func (c *Coordinator) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

func (c *Coordinator) SetName(v string) {
	c.mu.Lock()
	c.state.SetName(v)
	c.mu.Unlock()
}

func (c *Coordinator) SetEmail(v string) {
	c.mu.Lock()
	c.state.SetEmail(v)
	c.mu.Unlock()
}

func (c *Coordinator) SetPhone(v string) {
	c.mu.Lock()
	c.state.SetPhone(v)
	c.mu.Unlock()
}

// SelectRegion switches the region, drops the previous city choice and
// requests the cities of the new region.
func (c *Coordinator) SelectRegion(ctx context.Context, code domain.RegionCode) error {
	c.mu.Lock()
	tag, err := c.state.SelectRegion(code)
	c.mu.Unlock()
	if err != nil {
		return err
	}

	c.launch(func() { c.loadSubRegions(ctx, tag) })

	return nil
}

func (c *Coordinator) SelectSubRegion(name domain.SubRegionName) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.SelectSubRegion(name)
}

func (c *Coordinator) TapMap(pos domain.Coordinate) {
	c.mu.Lock()
	c.state.TapMap(pos)
	c.mu.Unlock()
}

// ToggleItem flips the selection of a catalog item and reports whether it is selected now.
func (c *Coordinator) ToggleItem(id int) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.ToggleItem(id)
}

// Submit validates the draft and sends it to the submitter. The draft is left
// untouched whatever the outcome so a failed attempt can be repeated.
func (c *Coordinator) Submit(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return "", ErrSubmitInProgress
	}
	payload, err := c.state.Payload()
	if err != nil {
		c.mu.Unlock()
		return "", err
	}
	c.submitting = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.submitting = false
		c.mu.Unlock()
	}()

	id, err := c.submitter.SubmitRegistrationPoint(ctx, payload)
	if err != nil {
		logger.Warn("collection point submission failed", zap.Error(err))
		return "", &SubmissionError{Err: err}
	}

	logger.Info("collection point registered", zap.String("point_id", id), zap.String("uf", payload.UF))

	return id, nil
}

func (c *Coordinator) launch(fn func()) {
	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		fn()
	}()
}

func (c *Coordinator) loadRegions(ctx context.Context) {
	codes, err := c.regions.ListRegions(ctx)
	if err != nil {
		c.fail(&LookupFailure{Source: SourceRegions, Err: err})
		return
	}

	c.mu.Lock()
	c.state.ApplyRegions(codes)
	c.mu.Unlock()

	logger.Debug("regions loaded", zap.Int("count", len(codes)))
}

func (c *Coordinator) loadSubRegions(ctx context.Context, tag domain.RegionCode) {
	names, err := c.regions.ListSubRegions(ctx, tag)

	c.mu.Lock()
	if err != nil {
		current := c.state.Draft.Region
		c.mu.Unlock()
		if current != tag {
			logger.Debug("stale city lookup failure dropped", zap.String("uf", string(tag)), zap.Error(err))
			return
		}
		c.fail(&LookupFailure{Source: SourceSubRegions, Err: err})
		return
	}
	applied := c.state.ApplySubRegions(tag, names)
	c.mu.Unlock()

	if !applied {
		logger.Debug("stale city list dropped", zap.String("uf", string(tag)))
		return
	}
	logger.Debug("cities loaded", zap.String("uf", string(tag)), zap.Int("count", len(names)))
}

func (c *Coordinator) seedPosition(ctx context.Context) {
	pos, err := c.locator.CurrentPosition(ctx)
	if err != nil {
		if !errors.Is(err, ErrLocationUnavailable) {
			err = fmt.Errorf("%w: %w", ErrLocationUnavailable, err)
		}
		c.fail(err)
		return
	}

	c.mu.Lock()
	applied := c.state.ApplySeed(pos)
	c.mu.Unlock()

	if !applied {
		logger.Debug("device position ignored after map tap", zap.Stringer("position", pos))
	}
}

func (c *Coordinator) loadCatalog(ctx context.Context) {
	items, err := c.catalog.FetchCatalogItems(ctx)
	if err != nil {
		c.fail(&LookupFailure{Source: SourceCatalog, Err: err})
		return
	}

	c.mu.Lock()
	c.state.ApplyCatalog(items)
	c.mu.Unlock()

	logger.Debug("catalog loaded", zap.Int("count", len(items)))
}

func (c *Coordinator) fail(err error) {
	logger.Warn("registration form lookup failed", zap.Error(err))
	if c.onFailure != nil {
		c.onFailure(err)
	}
}
