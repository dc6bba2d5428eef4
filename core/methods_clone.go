// SPDX-License-Identifier: MIT

package core

// Clone returns a deep copy with the same configuration, nodes, edges and edge IDs.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	out := &Graph{
		directed:   g.directed,
		allowLoops: g.allowLoops,
		allowMulti: g.allowMulti,
		nextEdgeID: g.nextEdgeID,
		nodes:      make(map[string]*Node, len(g.nodes)),
		edges:      make(map[string]*Edge, len(g.edges)),
		adjacency:  make(map[string]map[string]map[string]struct{}, len(g.adjacency)),
	}
	for name := range g.nodes {
		out.nodes[name] = &Node{Name: name}
	}
	for id, e := range g.edges {
		cp := *e
		out.edges[id] = &cp
	}
	for from, inner := range g.adjacency {
		m := make(map[string]map[string]struct{}, len(inner))
		for to, ids := range inner {
			set := make(map[string]struct{}, len(ids))
			for id := range ids {
				set[id] = struct{}{}
			}
			m[to] = set
		}
		out.adjacency[from] = m
	}
	return out
}

// Clear removes all nodes and edges, keeping configuration.
func (g *Graph) Clear() {
	g.muNode.Lock()
	defer g.muNode.Unlock()
	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	g.nodes = make(map[string]*Node)
	g.edges = make(map[string]*Edge)
	g.adjacency = make(map[string]map[string]map[string]struct{})
	g.nextEdgeID = 0
}
