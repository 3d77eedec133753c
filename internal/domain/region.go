package domain

// RegionCode identifies a top-level administrative region (a state UF such as "PB").
// The empty code means no region is selected.
type RegionCode string

func (c RegionCode) IsZero() bool {
	return c == ""
}

// SubRegionName names a city. It is only meaningful relative to the RegionCode it was listed for.
type SubRegionName string
