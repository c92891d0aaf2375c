package catalog

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/goodnatureofminers/featuregate/internal/feature"
)

type fileEntry struct {
	ID          string     `toml:"id"`
	Description string     `toml:"description"`
}

type file struct {
	Features []fileEntry `toml:"feature"`
}

// ParseFile decodes catalog entries from TOML:
//
//	[[feature]]
//	id = "<base58 id>"
//	description = "..."
func ParseFile(data []byte) ([]feature.Entry, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog file: %w", err)
	}
	out := make([]feature.Entry, 0, len(f.Features))
	for i, e := range f.Features {
		if e.ID == "" {
			return nil, fmt.Errorf("feature #%d: %w: missing id", i, feature.ErrInvalidID)
		}
		id, err := feature.ParseID(e.ID)
		if err != nil {
			return nil, fmt.Errorf("feature #%d: %w", i, err)
		}
		out = append(out, feature.Entry{ID: id, Description: e.Description})
	}
	return out, nil
}

// LoadFile reads extra entries from path and returns the shipped catalog
// extended with them.
func LoadFile(path string) (*feature.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	extra, err := ParseFile(data)
	if err != nil {
		return nil, err
	}
	return Extend(Default(), extra)
}

// Extend returns a new catalog holding base and extra. base is left untouched.
func Extend(base *feature.Catalog, extra []feature.Entry) (*feature.Catalog, error) {
	merged := append(base.Entries(), extra...)
	c, err := feature.NewCatalog(merged)
	if err != nil {
		return nil, fmt.Errorf("extend catalog: %w", err)
	}
	return c, nil
}

// Open returns the shipped catalog, or the shipped catalog extended with the
// entries of path when path is set.
func Open(path string) (*feature.Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
