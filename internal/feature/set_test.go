package feature

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSetIsInactive(t *testing.T) {
	t.Parallel()

	c := testCatalog(t, testID(1), testID(2), testID(3))
	s := NewSet(c)
	for _, id := range c.IDs() {
		require.False(t, s.IsActive(id))
		_, ok := s.ActivatedSlot(id)
		require.False(t, ok)
	}
	require.ElementsMatch(t, c.IDs(), s.Inactive())
	require.Zero(t, s.Len())
}

func TestAllEnabled(t *testing.T) {
	t.Parallel()

	c := testCatalog(t, testID(1), testID(2), testID(3))
	s := AllEnabled(c)
	for _, id := range c.IDs() {
		require.True(t, s.IsActive(id))
		slot, ok := s.ActivatedSlot(id)
		require.True(t, ok)
		require.Zero(t, slot)
	}
	require.Empty(t, s.Inactive())
}

func TestSetActivateDeactivate(t *testing.T) {
	t.Parallel()

	f1, f2, f3 := testID(1), testID(2), testID(3)
	s := NewSet(testCatalog(t, f1, f2, f3))

	s.Activate(f1, 100)
	require.True(t, s.IsActive(f1))
	slot, ok := s.ActivatedSlot(f1)
	require.True(t, ok)
	require.Equal(t, Slot(100), slot)
	digest := s.Identity()

	s.Activate(f1, 200)
	require.True(t, s.IsActive(f1))
	slot, _ = s.ActivatedSlot(f1)
	require.Equal(t, Slot(200), slot)
	require.Equal(t, digest, s.Identity())

	s.Deactivate(f1)
	require.False(t, s.IsActive(f1))
	require.ElementsMatch(t, []ID{f1, f2, f3}, s.Inactive())
}

func TestSetIgnoresUnknownFeatures(t *testing.T) {
	t.Parallel()

	c := testCatalog(t, testID(1))
	s := NewSet(c)
	unknown := testID(42)

	require.False(t, s.IsActive(unknown))
	s.Activate(unknown, 5)
	require.False(t, s.IsActive(unknown))
	s.Deactivate(unknown)
	require.Equal(t, []ID{testID(1)}, s.Inactive())
	require.Zero(t, s.Len())
}

func TestSetPartitionsCatalog(t *testing.T) {
	t.Parallel()

	ids := make([]ID, 0, 16)
	for i := byte(1); i <= 16; i++ {
		ids = append(ids, testID(i))
	}
	c := testCatalog(t, ids...)
	s := NewSet(c)
	r := rand.New(rand.NewPCG(1, 2))

	for step := 0; step < 1000; step++ {
		// Occasionally target an identifier outside the catalog.
		id := testID(byte(r.IntN(20) + 1))
		if r.IntN(2) == 0 {
			s.Activate(id, r.Uint64())
		} else {
			s.Deactivate(id)
		}

		active := s.ActiveIDs()
		inactive := s.Inactive()
		require.Len(t, append(active, inactive...), c.Len())
		seen := make(map[ID]bool, c.Len())
		for _, a := range active {
			require.True(t, c.Contains(a))
			seen[a] = true
		}
		for _, in := range inactive {
			require.False(t, seen[in], "feature %s is active and inactive", in)
			seen[in] = true
		}
		require.Len(t, seen, c.Len())
	}
}

func TestSetCloneIsIndependent(t *testing.T) {
	t.Parallel()

	f1, f2 := testID(1), testID(2)
	parent := NewSet(testCatalog(t, f1, f2))
	parent.Activate(f1, 10)

	fork := parent.Clone()
	require.True(t, fork.Equal(parent))

	fork.Activate(f2, 11)
	fork.Deactivate(f1)

	require.True(t, parent.IsActive(f1))
	require.False(t, parent.IsActive(f2))
	require.False(t, fork.IsActive(f1))
	require.True(t, fork.IsActive(f2))
	require.False(t, fork.Equal(parent))
	require.Same(t, parent.Catalog(), fork.Catalog())
}

func TestSetActiveIsCopy(t *testing.T) {
	t.Parallel()

	f1 := testID(1)
	s := NewSet(testCatalog(t, f1))
	s.Activate(f1, 3)

	active := s.Active()
	delete(active, f1)
	require.True(t, s.IsActive(f1))
}

func TestActivateThenIsActiveForCatalogIDs(t *testing.T) {
	t.Parallel()

	c := testCatalog(t, testID(1), testID(2), testID(3))
	s := NewSet(c)
	for i, id := range c.IDs() {
		s.Activate(id, Slot(i))
		require.True(t, s.IsActive(id))
	}
	require.Empty(t, s.Inactive())
}
