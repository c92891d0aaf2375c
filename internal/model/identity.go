package model

import "github.com/goodnatureofminers/featuregate/internal/feature"

// Identity is what a node advertises to peers for compatibility checks.
type Identity struct {
	Network Network        `json:"network"`
	Catalog feature.Digest `json:"catalog"`
	Active  feature.Digest `json:"active"`
	Slot    uint64         `json:"slot"`
}
