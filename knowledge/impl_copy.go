// SPDX-License-Identifier: MIT

package knowledge

import (
	"maps"
	"regexp"
	"slices"
)

// Copy returns an independent deep copy sharing only the logger and name checker.
func (k *Knowledge) Copy() *Knowledge {
	if k == nil {
		return New()
	}
	out := &Knowledge{
		known:                maps.Clone(k.known),
		forbiddenWithin:      maps.Clone(k.forbiddenWithin),
		onlyCanCauseNextTier: maps.Clone(k.onlyCanCauseNextTier),
		forbidden:            slices.Clone(k.forbidden),
		required:             slices.Clone(k.required),
		nameOK:               k.nameOK,
		logger:               k.logger,
		patterns:             make(map[string][]*regexp.Regexp),
	}
	out.tiers = make([]map[string]struct{}, len(k.tiers))
	for i, t := range k.tiers {
		out.tiers[i] = maps.Clone(t)
	}
	out.groups = make([]Group, len(k.groups))
	for i, g := range k.groups {
		out.groups[i] = copyGroup(g)
	}
	return out
}

// Clear resets k to empty, keeping its options.
func (k *Knowledge) Clear() {
	k.known = make(map[string]struct{})
	k.tiers = nil
	k.forbiddenWithin = make(map[int]bool)
	k.onlyCanCauseNextTier = make(map[int]bool)
	k.forbidden = nil
	k.required = nil
	k.groups = nil
	k.patternsMu.Lock()
	k.patterns = make(map[string][]*regexp.Regexp)
	k.patternsMu.Unlock()
}

// IsEmpty reports that no rule, group, flag or tier member is present.
// Known variables alone do not make knowledge non-empty.
func (k *Knowledge) IsEmpty() bool {
	if len(k.forbidden) > 0 || len(k.required) > 0 || len(k.groups) > 0 {
		return false
	}
	if len(k.forbiddenWithin) > 0 || len(k.onlyCanCauseNextTier) > 0 {
		return false
	}
	for _, t := range k.tiers {
		if len(t) > 0 {
			return false
		}
	}
	return true
}

// Equal compares known variables, tiers, tier flags, rules (as sets) and groups.
func (k *Knowledge) Equal(o *Knowledge) bool {
	if k == nil || o == nil {
		return k == o
	}
	if !maps.Equal(k.known, o.known) ||
		!maps.Equal(k.forbiddenWithin, o.forbiddenWithin) ||
		!maps.Equal(k.onlyCanCauseNextTier, o.onlyCanCauseNextTier) {
		return false
	}
	if !sameTiers(k.tiers, o.tiers) {
		return false
	}
	if !sameRuleSet(k.forbidden, o.forbidden) || !sameRuleSet(k.required, o.required) {
		return false
	}
	if len(k.groups) != len(o.groups) {
		return false
	}
	for i := range k.groups {
		a, b := k.groups[i], o.groups[i]
		if a.Kind != b.Kind || !slices.Equal(a.From, b.From) || !slices.Equal(a.To, b.To) {
			return false
		}
	}
	return true
}

// sameTiers ignores trailing empty tiers.
func sameTiers(a, b []map[string]struct{}) bool {
	trim := func(t []map[string]struct{}) []map[string]struct{} {
		for len(t) > 0 && len(t[len(t)-1]) == 0 {
			t = t[:len(t)-1]
		}
		return t
	}
	a, b = trim(a), trim(b)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !maps.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func sameRuleSet(a, b []rule) bool {
	if len(a) != len(b) {
		return false
	}
	for _, r := range a {
		if !slices.Contains(b, r) {
			return false
		}
	}
	return true
}
