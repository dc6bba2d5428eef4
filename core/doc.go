// SPDX-License-Identifier: MIT

// Package core defines the graph collaborator consumed by knowledge checks: a
// thread-safe Graph of named nodes joined by directed or undirected edges.
//
// All APIs use separate sync.RWMutex locks internally (muNode for nodes, muEdge for
// edges and adjacency). Lock order is always muNode -> muEdge.
//
// Determinism:
//   - Nodes() is sorted by name; Edges() and DirectedEdges() are sorted by edge ID,
//     and edge IDs are monotonic ("e1", "e2", ...).
package core
