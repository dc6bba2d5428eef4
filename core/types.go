// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeName indicates that a node name is the empty string.
	ErrEmptyNodeName = errors.New("core: node name is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Node is a named graph vertex; in causal graphs the name is a variable name.
type Node struct {
	// Name uniquely identifies this Node within its Graph.
	Name string
}

// Edge connects two nodes. A directed edge points From -> To.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the tail node name.
	From string

	// To is the head node name.
	To string

	// Directed is true for From -> To and false for From -- To.
	Directed bool
}

// GraphOption configures a Graph before use.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness of AddEdge (default true).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same ordered pair.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// EdgeOption configures individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeDirected overrides the Graph's default directedness for this edge.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}

// Graph is an in-memory mixed graph.
// muNode protects nodes; muEdge protects edges and adjacency.
type Graph struct {
	muNode sync.RWMutex
	muEdge sync.RWMutex

	directed   bool
	allowLoops bool
	allowMulti bool

	nextEdgeID uint64
	nodes      map[string]*Node
	edges      map[string]*Edge

	// adjacency[from][to][edgeID]; undirected edges are mirrored.
	adjacency map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph. By default edges are directed, loops and
// multi-edges are rejected.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		directed:  true,
		nodes:     make(map[string]*Node),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
