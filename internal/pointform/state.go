package pointform

import (
	"fmt"
	"strings"

	"github.com/greenpoint/backend/internal/domain"

	"github.com/samber/lo"
)

// PositionSource tells where the draft position came from.
type PositionSource int

const (
	PositionUnset PositionSource = iota
	PositionSeeded
	PositionManual
)

func (s PositionSource) String() string {
	switch s {
	case PositionSeeded:
		return "seeded"
	case PositionManual:
		return "manual"
	}
	return "unset"
}

// Draft is the in-progress registration. Position is nil until it is seeded
// from the device or set by a map tap.
type Draft struct {
	Name      string
	Email     string
	Phone     string
	Region    domain.RegionCode
	SubRegion domain.SubRegionName
	Position  *domain.Coordinate
	Items     ItemSet
}

// State is the draft together with the option lists the form offers.
// SubRegionsFor is the region SubRegions was loaded for; the list is only
// offered while it matches Draft.Region.
type State struct {
	Draft Draft

	Regions        []domain.RegionCode
	SubRegions     []domain.SubRegionName
	SubRegionsFor  domain.RegionCode
	Catalog        []domain.CatalogItem
	PositionSource PositionSource
}

// SetName writes Draft.Name.
func (s *State) SetName(v string) { s.Draft.Name = v }

// SetEmail writes Draft.Email.
func (s *State) SetEmail(v string) { s.Draft.Email = v }

// SetPhone writes Draft.Phone.
func (s *State) SetPhone(v string) { s.Draft.Phone = v }

// ApplyRegions writes Regions.
func (s *State) ApplyRegions(codes []domain.RegionCode) {
	s.Regions = append([]domain.RegionCode(nil), codes...)
}

// SelectRegion reads Regions and writes Draft.Region, Draft.SubRegion,
// SubRegions and SubRegionsFor. The returned code tags the city request that
// must follow.
func (s *State) SelectRegion(code domain.RegionCode) (domain.RegionCode, error) {
	if len(s.Regions) == 0 {
		return "", fmt.Errorf("%w: regions not loaded", ErrInvalidSelection)
	}
	if code.IsZero() || !lo.Contains(s.Regions, code) {
		return "", fmt.Errorf("%w: region %q is not listed", ErrInvalidSelection, code)
	}

	s.Draft.Region = code
	s.Draft.SubRegion = ""
	s.SubRegions = nil
	s.SubRegionsFor = ""

	return code, nil
}

// ApplySubRegions reads Draft.Region and writes SubRegions and SubRegionsFor.
// A list tagged for a region that is no longer selected is dropped and false is returned.
func (s *State) ApplySubRegions(tag domain.RegionCode, names []domain.SubRegionName) bool {
	if tag.IsZero() || tag != s.Draft.Region {
		return false
	}

	s.SubRegions = append([]domain.SubRegionName(nil), names...)
	s.SubRegionsFor = tag

	return true
}

// SelectSubRegion reads Draft.Region, SubRegions and SubRegionsFor and writes Draft.SubRegion.
func (s *State) SelectSubRegion(name domain.SubRegionName) error {
	if s.Draft.Region.IsZero() || s.SubRegionsFor != s.Draft.Region {
		return fmt.Errorf("%w: no cities loaded for region %q", ErrInvalidSelection, s.Draft.Region)
	}
	if !lo.Contains(s.SubRegions, name) {
		return fmt.Errorf("%w: city %q is not listed for region %q", ErrInvalidSelection, name, s.Draft.Region)
	}

	s.Draft.SubRegion = name

	return nil
}

// TapMap writes Draft.Position and PositionSource. A tapped position is never
// replaced by a seed.
func (s *State) TapMap(c domain.Coordinate) {
	s.Draft.Position = &c
	s.PositionSource = PositionManual
}

// ApplySeed reads PositionSource and writes Draft.Position and PositionSource
// unless the user already tapped the map.
func (s *State) ApplySeed(c domain.Coordinate) bool {
	if s.PositionSource == PositionManual {
		return false
	}

	s.Draft.Position = &c
	s.PositionSource = PositionSeeded

	return true
}

// ApplyCatalog writes Catalog.
func (s *State) ApplyCatalog(items []domain.CatalogItem) {
	s.Catalog = append([]domain.CatalogItem(nil), items...)
}

// ToggleItem reads Catalog and writes Draft.Items.
func (s *State) ToggleItem(id int) (bool, error) {
	_, ok := lo.Find(s.Catalog, func(item domain.CatalogItem) bool {
		return item.ID == id
	})
	if !ok {
		return false, fmt.Errorf("%w: item %d is not in the catalog", ErrInvalidSelection, id)
	}

	return s.Draft.Items.Toggle(id), nil
}

// Validate reads Draft and returns the first missing field.
func (s *State) Validate() error {
	d := s.Draft

	switch {
	case blank(d.Name):
		return &ValidationError{Field: FieldName}
	case blank(d.Email):
		return &ValidationError{Field: FieldEmail}
	case blank(d.Phone):
		return &ValidationError{Field: FieldPhone}
	case d.Region.IsZero():
		return &ValidationError{Field: FieldRegion}
	case d.SubRegion == "":
		return &ValidationError{Field: FieldSubRegion}
	case d.Position == nil:
		return &ValidationError{Field: FieldPosition}
	case d.Items.Len() == 0:
		return &ValidationError{Field: FieldItems}
	}

	return nil
}

// Payload reads Draft and projects it to the registration payload.
func (s *State) Payload() (domain.PointPayload, error) {
	if err := s.Validate(); err != nil {
		return domain.PointPayload{}, err
	}

	d := s.Draft

	return domain.PointPayload{
		Name:      d.Name,
		Email:     d.Email,
		Whatsapp:  d.Phone,
		UF:        string(d.Region),
		City:      string(d.SubRegion),
		Latitude:  d.Position.Latitude,
		Longitude: d.Position.Longitude,
		Items:     d.Items.IDs(),
	}, nil
}

func (s *State) clone() State {
	out := *s
	out.Regions = append([]domain.RegionCode(nil), s.Regions...)
	out.SubRegions = append([]domain.SubRegionName(nil), s.SubRegions...)
	out.Catalog = append([]domain.CatalogItem(nil), s.Catalog...)
	out.Draft.Items = s.Draft.Items.clone()
	if s.Draft.Position != nil {
		pos := *s.Draft.Position
		out.Draft.Position = &pos
	}
	return out
}

func blank(v string) bool {
	return strings.TrimSpace(v) == ""
}
