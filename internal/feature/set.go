package feature

import (
	"maps"
	"slices"
)

// Slot is the chain position at which a feature became active.
type Slot = uint64

// Set records which catalog features are active and since which slot.
//
// Only catalog identifiers can become active: after Activate(id, slot),
// IsActive(id) holds for every id the catalog contains, while identifiers
// outside the catalog stay inactive.
//
// A Set has a single writer. Reads may run concurrently with each other but not
// with Activate or Deactivate. Forked contexts take their own copy via Clone.
type Set struct {
	catalog *Catalog
	active  map[ID]Slot
}

// NewSet returns a set in which every catalog feature is inactive.
func NewSet(catalog *Catalog) *Set {
	return &Set{
		catalog: catalog,
		active:  make(map[ID]Slot),
	}
}

// AllEnabled returns a set with every catalog feature active at slot 0.
// The activation slots are fabricated; use it only in tests and bootstrap tooling.
func AllEnabled(catalog *Catalog) *Set {
	s := &Set{
		catalog: catalog,
		active:  make(map[ID]Slot, catalog.Len()),
	}
	for _, id := range catalog.ids {
		s.active[id] = 0
	}
	return s
}

// Catalog returns the catalog the set is scoped to.
func (s *Set) Catalog() *Catalog {
	return s.catalog
}

// IsActive reports whether id is active. Identifiers unknown to the catalog
// are reported as inactive.
func (s *Set) IsActive(id ID) bool {
	_, ok := s.active[id]
	return ok
}

// ActivatedSlot returns the slot at which id became active.
func (s *Set) ActivatedSlot(id ID) (Slot, bool) {
	slot, ok := s.active[id]
	return slot, ok
}

// Activate marks id active at slot, overwriting any earlier activation slot.
// The caller is responsible for only replaying legitimate activations.
// Identifiers unknown to the catalog are ignored.
func (s *Set) Activate(id ID, slot Slot) {
	if !s.catalog.Contains(id) {
		return
	}
	s.active[id] = slot
}

// Deactivate marks id inactive. Identifiers unknown to the catalog are ignored.
func (s *Set) Deactivate(id ID) {
	delete(s.active, id)
}

// Active returns a copy of the active features and their activation slots.
func (s *Set) Active() map[ID]Slot {
	return maps.Clone(s.active)
}

// ActiveIDs returns the active identifiers in ascending order.
func (s *Set) ActiveIDs() []ID {
	ids := slices.Collect(maps.Keys(s.active))
	slices.SortFunc(ids, ID.Compare)
	return ids
}

// Inactive returns the catalog identifiers that are not active, in ascending order.
func (s *Set) Inactive() []ID {
	ids := make([]ID, 0, s.catalog.Len()-len(s.active))
	for _, id := range s.catalog.ids {
		if _, ok := s.active[id]; !ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// Len returns the number of active features.
func (s *Set) Len() int {
	return len(s.active)
}

// Identity returns the digest of the active identifiers. Activation slots do
// not contribute.
func (s *Set) Identity() Digest {
	return hashSorted(s.ActiveIDs())
}

// Clone returns an independent copy sharing only the immutable catalog.
func (s *Set) Clone() *Set {
	return &Set{
		catalog: s.catalog,
		active:  maps.Clone(s.active),
	}
}

// Equal reports whether both sets hold the same activations.
func (s *Set) Equal(other *Set) bool {
	return maps.Equal(s.active, other.active)
}
