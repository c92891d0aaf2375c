package feature

import "testing"

func testID(b byte) ID {
	var id ID
	for i := range id {
		id[i] = b
	}
	return id
}

func testCatalog(t *testing.T, ids ...ID) *Catalog {
	t.Helper()

	entries := make([]Entry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, Entry{ID: id, Description: "feature " + id.String()})
	}
	c, err := NewCatalog(entries)
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	return c
}
