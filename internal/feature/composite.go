package feature

import (
	"fmt"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// RuleKind is the closed set of composite rule variants.
type RuleKind uint8

const (
	// RuleAllOf resolves once every required feature is active, in any order.
	RuleAllOf RuleKind = iota + 1
	// RuleStandalone resolves once its single required feature is active.
	RuleStandalone
)

func (k RuleKind) String() string {
	switch k {
	case RuleAllOf:
		return "all_of"
	case RuleStandalone:
		return "standalone"
	default:
		return fmt.Sprintf("RuleKind(%d)", uint8(k))
	}
}

// Rule derives a composite outcome from primitive activations.
type Rule struct {
	Kind     RuleKind
	Outcome  ID
	Requires []ID
}

// Pair declares the two-party pattern: a candidate feature and a grant feature
// that must both be active. The outcome is reported under the grant identifier.
func Pair(candidate, grant ID) Rule {
	return Rule{Kind: RuleAllOf, Outcome: grant, Requires: []ID{candidate, grant}}
}

// Standalone declares a single feature that resolves its own outcome.
func Standalone(id ID) Rule {
	return Rule{Kind: RuleStandalone, Outcome: id, Requires: []ID{id}}
}

func (r Rule) validate(catalog *Catalog) error {
	switch r.Kind {
	case RuleAllOf:
		if len(r.Requires) < 2 {
			return fmt.Errorf("%s rule for %s needs at least two features", r.Kind, r.Outcome)
		}
	case RuleStandalone:
		if len(r.Requires) != 1 {
			return fmt.Errorf("%s rule for %s needs exactly one feature", r.Kind, r.Outcome)
		}
	default:
		return fmt.Errorf("unsupported rule kind %s", r.Kind)
	}
	if !catalog.Contains(r.Outcome) {
		return fmt.Errorf("rule outcome: %w: %s", ErrUnknownFeature, r.Outcome)
	}
	for _, id := range r.Requires {
		if !catalog.Contains(id) {
			return fmt.Errorf("rule requirement: %w: %s", ErrUnknownFeature, id)
		}
	}
	return nil
}

func (r Rule) resolved(s *Set) bool {
	for _, id := range r.Requires {
		if !s.IsActive(id) {
			return false
		}
	}
	return true
}

// Resolver evaluates a fixed list of composite rules. Results are derived
// from the set on every call and never stored on it.
type Resolver struct {
	rules []Rule
}

// NewResolver validates rules against catalog.
func NewResolver(catalog *Catalog, rules ...Rule) (*Resolver, error) {
	for _, r := range rules {
		if err := r.validate(catalog); err != nil {
			return nil, err
		}
	}
	return &Resolver{rules: slices.Clone(rules)}, nil
}

// Rules returns a copy of the configured rules.
func (r *Resolver) Rules() []Rule {
	return slices.Clone(r.rules)
}

// Resolve returns the outcomes whose rules hold for s.
func (r *Resolver) Resolve(s *Set) mapset.Set[ID] {
	outcomes := mapset.NewThreadUnsafeSet[ID]()
	for _, rule := range r.rules {
		if rule.resolved(s) {
			outcomes.Add(rule.Outcome)
		}
	}
	return outcomes
}

// IsResolved reports whether outcome is produced by any rule for s.
func (r *Resolver) IsResolved(s *Set, outcome ID) bool {
	for _, rule := range r.rules {
		if rule.Outcome == outcome && rule.resolved(s) {
			return true
		}
	}
	return false
}

// SortedIDs returns the members of ids in ascending order.
func SortedIDs(ids mapset.Set[ID]) []ID {
	out := ids.ToSlice()
	slices.SortFunc(out, ID.Compare)
	return out
}
