// Package feature tracks which runtime features are active for a validation context
// and derives the values peers compare to detect incompatible builds.
package feature

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrUnknownFeature is returned when an identifier is not part of the catalog.
	// It usually means the data was produced by a different build.
	ErrUnknownFeature = errors.New("unknown feature")
	// ErrDuplicateFeature is returned when a catalog is built with the same identifier twice.
	ErrDuplicateFeature = errors.New("duplicate feature")
)

// Entry is one catalog record.
type Entry struct {
	ID          ID
	Description string
}

// Catalog maps every feature known to the build to its description.
// It is immutable once built and may be shared between goroutines.
type Catalog struct {
	descriptions map[ID]string
	ids          []ID
	identity     Digest
}

// NewCatalog builds a catalog from entries. Identifiers must be unique.
func NewCatalog(entries []Entry) (*Catalog, error) {
	c := &Catalog{
		descriptions: make(map[ID]string, len(entries)),
		ids:          make([]ID, 0, len(entries)),
	}
	for _, e := range entries {
		if _, ok := c.descriptions[e.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateFeature, e.ID)
		}
		c.descriptions[e.ID] = e.Description
		c.ids = append(c.ids, e.ID)
	}
	slices.SortFunc(c.ids, ID.Compare)
	c.identity = hashSorted(c.ids)
	return c, nil
}

// Description returns the human readable description of id.
func (c *Catalog) Description(id ID) (string, error) {
	desc, ok := c.descriptions[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownFeature, id)
	}
	return desc, nil
}

// Contains reports whether id is part of the catalog.
func (c *Catalog) Contains(id ID) bool {
	_, ok := c.descriptions[id]
	return ok
}

// IDs returns a copy of every identifier. Callers must not rely on the order.
func (c *Catalog) IDs() []ID {
	return slices.Clone(c.ids)
}

// Entries returns a copy of the catalog contents.
func (c *Catalog) Entries() []Entry {
	entries := make([]Entry, 0, len(c.ids))
	for _, id := range c.ids {
		entries = append(entries, Entry{ID: id, Description: c.descriptions[id]})
	}
	return entries
}

// Len returns the number of features in the catalog.
func (c *Catalog) Len() int {
	return len(c.ids)
}

// Identity returns the digest of every identifier the build knows about.
// Two builds shipping the same catalog report the same identity.
func (c *Catalog) Identity() Digest {
	return c.identity
}
