// SPDX-License-Identifier: MIT

// Package knowledge stores background-knowledge constraints over variable names and
// answers edge-admissibility queries for causal search.
//
// Model:
//   - Known variables: the set of names wildcard specs are resolved against.
//   - Tiers: ordered buckets of names; a name lives in at most one tier.
//   - Explicit rules: ordered pairs of specs (from, to), forbidden or required. A spec is a
//     variable name or a comma-separated list of fragments where "*" matches any run.
//   - Knowledge groups: legacy bundles of one forbidden or required from-set/to-set pair.
//
// Query semantics:
//
//	IsRequired(a, b)  = a != b and some required rule or group covers (a, b)
//	IsForbidden(a, b) = !IsRequired(a, b) and (
//	        some forbidden rule or group covers (a, b)
//	     or tier(a) > tier(b)
//	     or tier(a) == tier(b) and that tier is forbidden-within
//	     or tier(a) is only-can-cause-next-tier and tier(b) > tier(a)+1 )
//
// Rule specs are resolved against the known-variable set at query time, so a rule
// written as "X*" also covers variables registered after the rule. Tier membership is
// resolved when a spec is added to a tier.
//
// Malformed names never raise: by default every non-empty name is accepted
// (WithNameChecker(StrictNames) restores the character-class check); rejected names
// are skipped with a warning on the configured logger.
//
// Complexity:
//   - IsForbidden/IsRequired: O(R) for R rules plus O(1) tier lookups.
//   - ForbiddenEdges/RequiredEdges: O(R·V²) materialization, for display only.
package knowledge
