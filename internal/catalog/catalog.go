// Package catalog ships the runtime features known to this build and the
// composite rules declared over them.
package catalog

import (
	"sync"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/goodnatureofminers/featuregate/internal/feature"
)

// Default returns the catalog shipped with this build. It is built on first use
// and shared afterwards.
var Default = sync.OnceValue(func() *feature.Catalog {
	c, err := feature.NewCatalog(entries)
	if err != nil {
		panic("catalog: " + err.Error())
	}
	return c
})

// Entries returns a copy of the shipped catalog entries.
func Entries() []feature.Entry {
	out := make([]feature.Entry, len(entries))
	copy(out, entries)
	return out
}

// FullInflationRules lists the activations that switch the cluster to full inflation.
// On mainnet a candidate vote feature and its enable feature must both be active;
// development clusters use a single feature.
var FullInflationRules = []feature.Rule{
	feature.Pair(FullInflationMainnetCertusoneVote, FullInflationMainnetCertusoneEnable),
	feature.Standalone(FullInflationDevnetAndTestnet),
}

// NewFullInflationResolver returns a resolver for FullInflationRules over catalog.
func NewFullInflationResolver(catalog *feature.Catalog) (*feature.Resolver, error) {
	return feature.NewResolver(catalog, FullInflationRules...)
}

// FullInflationFeaturesEnabled returns the full inflation outcomes that hold for set.
func FullInflationFeaturesEnabled(set *feature.Set) mapset.Set[feature.ID] {
	r, err := NewFullInflationResolver(set.Catalog())
	if err != nil {
		// Catalogs without the rule features never resolve full inflation.
		return mapset.NewThreadUnsafeSet[feature.ID]()
	}
	return r.Resolve(set)
}

// NewWarmupCooldownRateEpoch returns the epoch from which the reduced stake
// warmup and cooldown rate applies, or false while the feature is inactive.
func NewWarmupCooldownRateEpoch(set *feature.Set, schedule feature.EpochSchedule) (uint64, bool) {
	return set.EpochOverride(ReduceStakeWarmupCooldown, schedule)
}
