// Package model defines records exchanged between the activation store and services.
package model

import "github.com/goodnatureofminers/featuregate/internal/feature"

// Network names a cluster whose activations are tracked.
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Devnet  Network = "devnet"
)

// Activation records that a feature became active on a network at a slot.
type Activation struct {
	Network   Network    `json:"network"`
	FeatureID feature.ID `json:"feature_id"`
	Slot      uint64     `json:"slot"`
}
