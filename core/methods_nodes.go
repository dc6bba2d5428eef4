// SPDX-License-Identifier: MIT

package core

import "sort"

// AddNode registers name. Adding an existing node is a no-op.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(name string) error {
	if name == "" {
		return ErrEmptyNodeName
	}
	g.muNode.Lock()
	defer g.muNode.Unlock()
	if _, ok := g.nodes[name]; ok {
		return nil
	}
	g.nodes[name] = &Node{Name: name}

	g.muEdge.Lock()
	if g.adjacency[name] == nil {
		g.adjacency[name] = make(map[string]map[string]struct{})
	}
	g.muEdge.Unlock()
	return nil
}

// HasNode reports whether name exists.
func (g *Graph) HasNode(name string) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.nodes[name]
	return ok
}

// RemoveNode deletes name and every incident edge.
// Complexity: O(deg(name) + E) in the worst case.
func (g *Graph) RemoveNode(name string) error {
	if name == "" {
		return ErrEmptyNodeName
	}
	g.muNode.Lock()
	defer g.muNode.Unlock()
	if _, ok := g.nodes[name]; !ok {
		return ErrNodeNotFound
	}
	delete(g.nodes, name)

	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	for id, e := range g.edges {
		if e.From == name || e.To == name {
			removeAdjacency(g, e)
			delete(g.edges, id)
		}
	}
	delete(g.adjacency, name)
	for _, inner := range g.adjacency {
		delete(inner, name)
	}
	return nil
}

// Nodes returns node names sorted ascending.
func (g *Graph) Nodes() []string {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	out := make([]string, 0, len(g.nodes))
	for name := range g.nodes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	return len(g.nodes)
}
