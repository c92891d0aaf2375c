package feature

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolverPairOrderIndependent(t *testing.T) {
	t.Parallel()

	candidate, grant := testID(2), testID(3)
	c := testCatalog(t, testID(1), candidate, grant)
	r, err := NewResolver(c, Pair(candidate, grant))
	require.NoError(t, err)

	forward := NewSet(c)
	require.Zero(t, r.Resolve(forward).Cardinality())
	forward.Activate(candidate, 42)
	require.Zero(t, r.Resolve(forward).Cardinality())
	forward.Activate(grant, 43)

	backward := NewSet(c)
	backward.Activate(grant, 43)
	require.Zero(t, r.Resolve(backward).Cardinality())
	backward.Activate(candidate, 42)

	require.True(t, r.Resolve(forward).Equal(r.Resolve(backward)))
	require.Equal(t, []ID{grant}, SortedIDs(r.Resolve(forward)))
}

func TestResolverStandaloneAndPair(t *testing.T) {
	t.Parallel()

	f1, f2, f3 := testID(1), testID(2), testID(3)
	c := testCatalog(t, f1, f2, f3)
	r, err := NewResolver(c, Pair(f2, f3), Standalone(f1))
	require.NoError(t, err)

	s := NewSet(c)
	require.Zero(t, r.Resolve(s).Cardinality())

	s.Activate(f1, 1)
	require.Equal(t, []ID{f1}, SortedIDs(r.Resolve(s)))
	require.True(t, r.IsResolved(s, f1))

	s.Deactivate(f1)
	s.Activate(f2, 2)
	require.Zero(t, r.Resolve(s).Cardinality())
	require.False(t, r.IsResolved(s, f3))

	s.Activate(f3, 3)
	require.Equal(t, []ID{f3}, SortedIDs(r.Resolve(s)))
	require.True(t, r.IsResolved(s, f3))
}

func TestResolverSharedOutcome(t *testing.T) {
	t.Parallel()

	f1, f2, f3 := testID(1), testID(2), testID(3)
	c := testCatalog(t, f1, f2, f3)
	r, err := NewResolver(c,
		Pair(f2, f3),
		Rule{Kind: RuleStandalone, Outcome: f3, Requires: []ID{f1}},
	)
	require.NoError(t, err)

	s := NewSet(c)
	s.Activate(f1, 1)
	require.Equal(t, []ID{f3}, SortedIDs(r.Resolve(s)))
}

func TestResolverResultNotCached(t *testing.T) {
	t.Parallel()

	f1 := testID(1)
	c := testCatalog(t, f1)
	r, err := NewResolver(c, Standalone(f1))
	require.NoError(t, err)

	s := NewSet(c)
	s.Activate(f1, 1)
	require.Equal(t, 1, r.Resolve(s).Cardinality())
	s.Deactivate(f1)
	require.Zero(t, r.Resolve(s).Cardinality())
}

func TestNewResolverValidation(t *testing.T) {
	t.Parallel()

	f1, f2 := testID(1), testID(2)
	c := testCatalog(t, f1, f2)

	tests := []struct {
		name string
		rule Rule
	}{
		{name: "unknown candidate", rule: Pair(testID(9), f2)},
		{name: "unknown standalone", rule: Standalone(testID(9))},
		{name: "pair with one requirement", rule: Rule{Kind: RuleAllOf, Outcome: f1, Requires: []ID{f1}}},
		{name: "standalone with two requirements", rule: Rule{Kind: RuleStandalone, Outcome: f1, Requires: []ID{f1, f2}}},
		{name: "unknown kind", rule: Rule{Outcome: f1, Requires: []ID{f1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewResolver(c, tt.rule)
			require.Error(t, err)
		})
	}

	_, err := NewResolver(c, Pair(testID(9), f2))
	require.ErrorIs(t, err, ErrUnknownFeature)
}
