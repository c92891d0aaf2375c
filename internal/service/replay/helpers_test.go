package replay

import (
	"testing"

	"github.com/goodnatureofminers/featuregate/internal/feature"
)

func testID(b byte) feature.ID {
	var id feature.ID
	for i := range id {
		id[i] = b
	}
	return id
}

func testCatalog(t *testing.T, ids ...feature.ID) *feature.Catalog {
	t.Helper()

	entries := make([]feature.Entry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, feature.Entry{ID: id, Description: id.String()})
	}
	c, err := feature.NewCatalog(entries)
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	return c
}
