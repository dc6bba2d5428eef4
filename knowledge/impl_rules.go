// SPDX-License-Identifier: MIT

package knowledge

import (
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvdata/core"
)

func addRule(rules []rule, r rule) []rule {
	for _, x := range rules {
		if x == r {
			return rules
		}
	}
	return append(rules, r)
}

func removeRule(rules []rule, r rule) []rule {
	out := rules[:0]
	for _, x := range rules {
		if x != r {
			out = append(out, x)
		}
	}
	return out
}

// SetForbidden forbids every edge from spec a's extent to spec b's extent.
func (k *Knowledge) SetForbidden(a, b string) {
	if !k.acceptName(a) || !k.acceptName(b) {
		return
	}
	k.AddVariable(a)
	k.AddVariable(b)
	k.forbidden = addRule(k.forbidden, rule{a, b})
}

// RemoveForbidden deletes the explicit forbidden rule written as (a, b).
func (k *Knowledge) RemoveForbidden(a, b string) {
	k.forbidden = removeRule(k.forbidden, rule{a, b})
}

// SetRequired requires every edge from spec a's extent to spec b's extent.
func (k *Knowledge) SetRequired(a, b string) {
	if !k.acceptName(a) || !k.acceptName(b) {
		return
	}
	k.AddVariable(a)
	k.AddVariable(b)
	k.required = addRule(k.required, rule{a, b})
}

// RemoveRequired deletes the explicit required rule written as (a, b).
func (k *Knowledge) RemoveRequired(a, b string) {
	k.required = removeRule(k.required, rule{a, b})
}

// IsRequired reports whether a -> b is required. Self-pairs never are.
func (k *Knowledge) IsRequired(a, b string) bool {
	if a == b {
		return false
	}
	for _, r := range k.required {
		if k.covers(r.from, a) && k.covers(r.to, b) {
			return true
		}
	}
	for _, g := range k.groups {
		if g.Kind == RequiredGroup && k.coversAny(g.From, a) && k.coversAny(g.To, b) {
			return true
		}
	}
	return false
}

// IsForbidden reports whether a -> b is forbidden. Required always wins.
func (k *Knowledge) IsForbidden(a, b string) bool {
	if k.IsRequired(a, b) {
		return false
	}
	if k.isExplicitlyForbidden(a, b) {
		return true
	}
	return k.IsForbiddenByTiers(a, b)
}

func (k *Knowledge) isExplicitlyForbidden(a, b string) bool {
	for _, r := range k.forbidden {
		if k.covers(r.from, a) && k.covers(r.to, b) {
			return true
		}
	}
	for _, g := range k.groups {
		if g.Kind == ForbiddenGroup && k.coversAny(g.From, a) && k.coversAny(g.To, b) {
			return true
		}
	}
	return false
}

// NoEdgeRequired reports that neither a -> b nor b -> a is required.
func (k *Knowledge) NoEdgeRequired(a, b string) bool {
	return !k.IsRequired(a, b) && !k.IsRequired(b, a)
}

// AddKnowledgeGroup appends g, registering its plain names.
func (k *Knowledge) AddKnowledgeGroup(g Group) {
	k.groups = append(k.groups, k.registerGroup(g))
}

// SetKnowledgeGroup replaces the group at index.
func (k *Knowledge) SetKnowledgeGroup(index int, g Group) error {
	if index < 0 || index >= len(k.groups) {
		return errors.Wrapf(ErrGroupIndex, "set group %d of %d", index, len(k.groups))
	}
	k.groups[index] = k.registerGroup(g)
	return nil
}

// RemoveKnowledgeGroup deletes the group at index.
func (k *Knowledge) RemoveKnowledgeGroup(index int) error {
	if index < 0 || index >= len(k.groups) {
		return errors.Wrapf(ErrGroupIndex, "remove group %d of %d", index, len(k.groups))
	}
	k.groups = append(k.groups[:index], k.groups[index+1:]...)
	return nil
}

// KnowledgeGroups returns copies of the groups in insertion order.
func (k *Knowledge) KnowledgeGroups() []Group {
	out := make([]Group, len(k.groups))
	for i, g := range k.groups {
		out[i] = copyGroup(g)
	}
	return out
}

func (k *Knowledge) registerGroup(g Group) Group {
	g = copyGroup(g)
	var from, to []string
	for _, n := range g.From {
		if k.acceptName(n) {
			k.AddVariable(n)
			from = append(from, n)
		}
	}
	for _, n := range g.To {
		if k.acceptName(n) {
			k.AddVariable(n)
			to = append(to, n)
		}
	}
	g.From, g.To = from, to
	return g
}

func copyGroup(g Group) Group {
	return Group{Kind: g.Kind, From: append([]string(nil), g.From...), To: append([]string(nil), g.To...)}
}

// ForbiddenEdges materializes every forbidden ordered pair among known variables:
// explicit rules, forbidden groups and tier-derived rules, minus required pairs and
// self-pairs. Sorted by (From, To).
// Complexity: O(V²·R).
func (k *Knowledge) ForbiddenEdges() []Edge {
	names := k.Variables()
	var out []Edge
	for _, a := range names {
		for _, b := range names {
			if a != b && k.IsForbidden(a, b) {
				out = append(out, Edge{a, b})
			}
		}
	}
	return out
}

// ExplicitlyForbiddenEdges is ForbiddenEdges without the tier-derived pairs.
func (k *Knowledge) ExplicitlyForbiddenEdges() []Edge {
	seen := map[Edge]struct{}{}
	add := func(from, to []string) {
		for _, a := range from {
			for _, b := range to {
				if a != b && !k.IsRequired(a, b) {
					seen[Edge{a, b}] = struct{}{}
				}
			}
		}
	}
	for _, r := range k.forbidden {
		add(k.Extent(r.from), k.Extent(r.to))
	}
	for _, g := range k.groups {
		if g.Kind == ForbiddenGroup {
			add(k.extentOf(g.From), k.extentOf(g.To))
		}
	}
	return sortedEdges(seen)
}

// RequiredEdges materializes every required ordered pair, excluding self-pairs.
func (k *Knowledge) RequiredEdges() []Edge {
	seen := map[Edge]struct{}{}
	add := func(from, to []string) {
		for _, a := range from {
			for _, b := range to {
				if a != b {
					seen[Edge{a, b}] = struct{}{}
				}
			}
		}
	}
	for _, r := range k.required {
		add(k.Extent(r.from), k.Extent(r.to))
	}
	for _, g := range k.groups {
		if g.Kind == RequiredGroup {
			add(k.extentOf(g.From), k.extentOf(g.To))
		}
	}
	return sortedEdges(seen)
}

func sortedEdges(m map[Edge]struct{}) []Edge {
	out := make([]Edge, 0, len(m))
	for e := range m {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}

// EdgeLister is the part of a graph that knowledge checks consume.
type EdgeLister interface {
	DirectedEdges() []core.Edge
}

var _ EdgeLister = (*core.Graph)(nil)

// IsViolatedBy reports whether any directed edge x -> y of g is forbidden.
func (k *Knowledge) IsViolatedBy(g EdgeLister) bool {
	return len(k.Violations(g)) > 0
}

// Violations lists the directed edges of g that are forbidden, in g's order.
func (k *Knowledge) Violations(g EdgeLister) []Edge {
	if g == nil {
		return nil
	}
	var out []Edge
	for _, e := range g.DirectedEdges() {
		if k.IsForbidden(e.From, e.To) {
			out = append(out, Edge{e.From, e.To})
		}
	}
	return out
}
