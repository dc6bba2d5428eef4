// SPDX-License-Identifier: MIT
// Role: edge lifecycle and queries.
// Determinism:
//   - Edges() returns edges sorted by numeric edge ID.
// Concurrency:
//   - Mutations under muEdge write lock; endpoints are created through AddNode first.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

const edgeIDPrefix = 'e'

// AddEdge creates an edge from -> to (or from -- to for undirected edges) and returns its ID.
//
// Steps:
//  1. Validate names and the loop constraint.
//  2. Ensure endpoints via AddNode.
//  3. Under muEdge, check the multi-edge constraint, assign an ID, link adjacency.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyNodeName
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if err := g.AddNode(from); err != nil {
		return "", err
	}
	if err := g.AddNode(to); err != nil {
		return "", err
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}
	e := &Edge{ID: nextEdgeID(g), From: from, To: to, Directed: g.directed}
	for _, opt := range opts {
		opt(e)
	}
	g.edges[e.ID] = e
	ensureAdjacency(g, from, to)
	g.adjacency[from][to][e.ID] = struct{}{}
	if !e.Directed && from != to {
		ensureAdjacency(g, to, from)
		g.adjacency[to][from][e.ID] = struct{}{}
	}
	return e.ID, nil
}

// AddDirectedEdge adds from -> to regardless of the default directedness.
func (g *Graph) AddDirectedEdge(from, to string) (string, error) {
	return g.AddEdge(from, to, WithEdgeDirected(true))
}

// AddUndirectedEdge adds from -- to regardless of the default directedness.
func (g *Graph) AddUndirectedEdge(from, to string) (string, error) {
	return g.AddEdge(from, to, WithEdgeDirected(false))
}

// RemoveEdge deletes one edge and its mirror.
func (g *Graph) RemoveEdge(id string) error {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, id)
	removeAdjacency(g, e)
	return nil
}

// HasEdge reports whether any edge leads from -> to (undirected edges count both ways).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return len(g.adjacency[from][to]) > 0
}

// HasDirectedEdge reports whether a directed edge from -> to exists.
func (g *Graph) HasDirectedEdge(from, to string) bool {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	for id := range g.adjacency[from][to] {
		if e := g.edges[id]; e.Directed && e.From == from {
			return true
		}
	}
	return false
}

// Edges returns copies of all edges sorted by ID.
func (g *Graph) Edges() []Edge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return sortedEdges(g, func(*Edge) bool { return true })
}

// DirectedEdges returns copies of the directed edges sorted by ID.
func (g *Graph) DirectedEdges() []Edge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return sortedEdges(g, func(e *Edge) bool { return e.Directed })
}

// Parents returns the sorted tails of directed edges into name.
func (g *Graph) Parents(name string) []string {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	seen := map[string]struct{}{}
	for _, e := range g.edges {
		if e.Directed && e.To == name {
			seen[e.From] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// Children returns the sorted heads of directed edges out of name.
func (g *Graph) Children(name string) []string {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	seen := map[string]struct{}{}
	for _, e := range g.edges {
		if e.Directed && e.From == name {
			seen[e.To] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return len(g.edges)
}

func sortedEdges(g *Graph, keep func(*Edge) bool) []Edge {
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		if keep(e) {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return edgeNum(out[i].ID) < edgeNum(out[j].ID) })
	return out
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func edgeNum(id string) uint64 {
	n, _ := strconv.ParseUint(id[1:], 10, 64)
	return n
}

// nextEdgeID returns "e<N>" with a monotonic N.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)
	return string(strconv.AppendUint(buf, n, 10))
}

func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]map[string]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
}

func removeAdjacency(g *Graph, e *Edge) {
	if inner := g.adjacency[e.From][e.To]; inner != nil {
		delete(inner, e.ID)
		if len(inner) == 0 {
			delete(g.adjacency[e.From], e.To)
		}
	}
	if !e.Directed {
		if inner := g.adjacency[e.To][e.From]; inner != nil {
			delete(inner, e.ID)
			if len(inner) == 0 {
				delete(g.adjacency[e.To], e.From)
			}
		}
	}
}
