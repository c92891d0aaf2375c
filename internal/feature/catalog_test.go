package feature

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCatalogRejectsDuplicates(t *testing.T) {
	t.Parallel()

	_, err := NewCatalog([]Entry{
		{ID: testID(1), Description: "one"},
		{ID: testID(1), Description: "again"},
	})
	require.ErrorIs(t, err, ErrDuplicateFeature)
}

func TestCatalogDescription(t *testing.T) {
	t.Parallel()

	c, err := NewCatalog([]Entry{{ID: testID(1), Description: "one"}})
	require.NoError(t, err)

	desc, err := c.Description(testID(1))
	require.NoError(t, err)
	require.Equal(t, "one", desc)

	_, err = c.Description(testID(2))
	require.ErrorIs(t, err, ErrUnknownFeature)
	require.False(t, c.Contains(testID(2)))
}

func TestCatalogIDsIsCopy(t *testing.T) {
	t.Parallel()

	c := testCatalog(t, testID(3), testID(1), testID(2))
	ids := c.IDs()
	require.ElementsMatch(t, []ID{testID(1), testID(2), testID(3)}, ids)

	ids[0] = testID(9)
	require.ElementsMatch(t, []ID{testID(1), testID(2), testID(3)}, c.IDs())
	require.Equal(t, 3, c.Len())
	require.Len(t, c.Entries(), 3)
}

func TestCatalogIdentityMatchesAllEnabled(t *testing.T) {
	t.Parallel()

	c := testCatalog(t, testID(3), testID(1), testID(2))
	require.Equal(t, AllEnabled(c).Identity(), c.Identity())
	require.NotEqual(t, NewSet(c).Identity(), c.Identity())
}
