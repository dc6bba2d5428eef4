// SPDX-License-Identifier: MIT

package knowledge

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// AddVariable registers name as known. Wildcard specs are never registered.
func (k *Knowledge) AddVariable(name string) {
	if name == "" || isWildcard(name) || !k.acceptName(name) {
		return
	}
	k.known[name] = struct{}{}
}

// HasVariable reports whether name is known.
func (k *Knowledge) HasVariable(name string) bool {
	_, ok := k.known[name]
	return ok
}

// Variables returns the known names, sorted.
func (k *Knowledge) Variables() []string { return sortedSet(k.known) }

// RemoveVariable forgets name: it leaves every tier, every group, and every rule
// written with name as one side is dropped.
func (k *Knowledge) RemoveVariable(name string) {
	delete(k.known, name)
	k.RemoveFromTiers(name)
	k.forbidden = dropSpec(k.forbidden, name)
	k.required = dropSpec(k.required, name)
	for i := range k.groups {
		k.groups[i].From = without(k.groups[i].From, name)
		k.groups[i].To = without(k.groups[i].To, name)
	}
}

func dropSpec(rules []rule, name string) []rule {
	out := rules[:0]
	for _, r := range rules {
		if r.from != name && r.to != name {
			out = append(out, r)
		}
	}
	return out
}

func without(list []string, name string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s != name {
			out = append(out, s)
		}
	}
	return out
}

func (k *Knowledge) ensureTiers(tier int) {
	for len(k.tiers) <= tier {
		k.tiers = append(k.tiers, make(map[string]struct{}))
	}
}

// AddToTier places spec's extent into tier, removing each member from every other
// tier. A plain name is registered as known first. Tiers grow as needed.
func (k *Knowledge) AddToTier(tier int, spec string) error {
	if tier < 0 {
		return errors.Wrapf(ErrNegativeTier, "add %q to tier %d", spec, tier)
	}
	k.AddVariable(spec)
	k.ensureTiers(tier)
	for _, name := range k.Extent(spec) {
		k.RemoveFromTiers(name)
		k.tiers[tier][name] = struct{}{}
	}
	return nil
}

// AddToTiersByVarNames registers names and places each in the tier given by a
// ":t<N>" suffix (lagged variables), or tier 0 when there is none.
func (k *Knowledge) AddToTiersByVarNames(names []string) {
	for _, name := range names {
		tier := 0
		if i := strings.LastIndex(name, ":t"); i >= 0 {
			if n, err := strconv.Atoi(name[i+2:]); err == nil && n >= 0 {
				tier = n
			}
		}
		_ = k.AddToTier(tier, name)
	}
}

// RemoveFromTiers removes name from whichever tier holds it.
func (k *Knowledge) RemoveFromTiers(name string) {
	for _, t := range k.tiers {
		delete(t, name)
	}
}

// RemoveFromTier removes spec's extent from tier.
func (k *Knowledge) RemoveFromTier(tier int, spec string) {
	if tier < 0 || tier >= len(k.tiers) {
		return
	}
	for _, name := range k.Extent(spec) {
		delete(k.tiers[tier], name)
	}
}

// NumTiers returns the number of tiers, empty ones included.
func (k *Knowledge) NumTiers() int { return len(k.tiers) }

// Tier returns the sorted members of tier (nil when out of range).
func (k *Knowledge) Tier(tier int) []string {
	if tier < 0 || tier >= len(k.tiers) {
		return nil
	}
	return sortedSet(k.tiers[tier])
}

// TierOf returns the tier holding name, or -1.
func (k *Knowledge) TierOf(name string) int {
	for i, t := range k.tiers {
		if _, ok := t[name]; ok {
			return i
		}
	}
	return -1
}

// SetTierForbiddenWithin toggles the "no edges within this tier" rule.
func (k *Knowledge) SetTierForbiddenWithin(tier int, forbidden bool) error {
	if tier < 0 {
		return errors.Wrapf(ErrNegativeTier, "forbidden-within tier %d", tier)
	}
	k.ensureTiers(tier)
	if forbidden {
		k.forbiddenWithin[tier] = true
	} else {
		delete(k.forbiddenWithin, tier)
	}
	return nil
}

// IsTierForbiddenWithin reports the forbidden-within flag of a non-empty tier.
func (k *Knowledge) IsTierForbiddenWithin(tier int) bool {
	if tier < 0 || tier >= len(k.tiers) || len(k.tiers[tier]) == 0 {
		return false
	}
	return k.forbiddenWithin[tier]
}

// SetOnlyCanCauseNextTier restricts members of tier to causing the next tier only.
func (k *Knowledge) SetOnlyCanCauseNextTier(tier int, only bool) error {
	if tier < 0 {
		return errors.Wrapf(ErrNegativeTier, "only-can-cause-next tier %d", tier)
	}
	k.ensureTiers(tier)
	if only {
		k.onlyCanCauseNextTier[tier] = true
	} else {
		delete(k.onlyCanCauseNextTier, tier)
	}
	return nil
}

// IsOnlyCanCauseNextTier reports the flag for tier.
func (k *Knowledge) IsOnlyCanCauseNextTier(tier int) bool {
	return k.onlyCanCauseNextTier[tier]
}

// VariablesNotInTiers returns known names that belong to no tier, sorted.
func (k *Knowledge) VariablesNotInTiers() []string {
	var out []string
	for _, name := range k.Variables() {
		if k.TierOf(name) < 0 {
			out = append(out, name)
		}
	}
	return out
}

// IsForbiddenByTiers applies only the tier-derived rules to a -> b.
func (k *Knowledge) IsForbiddenByTiers(a, b string) bool {
	ta, tb := k.TierOf(a), k.TierOf(b)
	if ta < 0 || tb < 0 {
		return false
	}
	switch {
	case ta > tb:
		return true
	case ta == tb:
		return a != b && k.IsTierForbiddenWithin(ta)
	default:
		return k.onlyCanCauseNextTier[ta] && tb > ta+1
	}
}
