package pointform

import "github.com/samber/lo"

// ItemSet is a set of catalog item ids that remembers the order ids were added in.
type ItemSet struct {
	ids []int
}

func NewItemSet(ids ...int) ItemSet {
	var s ItemSet
	for _, id := range lo.Uniq(ids) {
		s.ids = append(s.ids, id)
	}
	return s
}

// Toggle adds id when absent and removes it when present. It reports whether
// id is selected afterwards.
func (s *ItemSet) Toggle(id int) bool {
	if lo.Contains(s.ids, id) {
		s.ids = lo.Without(s.ids, id)
		return false
	}
	s.ids = append(s.ids, id)
	return true
}

func (s ItemSet) Has(id int) bool {
	return lo.Contains(s.ids, id)
}

func (s ItemSet) Len() int {
	return len(s.ids)
}

// IDs returns the selected ids in insertion order.
func (s ItemSet) IDs() []int {
	out := make([]int, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s ItemSet) clone() ItemSet {
	return ItemSet{ids: s.IDs()}
}
