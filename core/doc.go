// Package core provides a thread-safe, in-memory directed graph with a
// minimal API surface: the store the ancestry algorithms read from.
//
// The Graph G = (V,E) is directed and unweighted; every edge has unit cost.
//
//   - Vertices are identified by opaque, non-empty string IDs. Identity, not
//     payload, is what LCA queries compare.
//   - Edges get collision-free atomic IDs (“e1”, “e2”, …).
//   - Adjacency is indexed both ways: out[from][to][edgeID] and
//     in[to][from][edgeID], so successors, predecessors and in-degree are O(1)
//     lookups.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj); lock order is always muVert -> muEdgeAdj.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
//	– WithMultiEdges()
//	    Allows parallel edges; otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error              // O(1)
//	HasVertex(id string) bool               // O(1)
//	RemoveVertex(id string) error           // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to string) (edgeID string, err error) // O(1), creates endpoints
//	RemoveEdge(edgeID string) error         // O(1)
//	HasEdge(from, to string) bool           // O(1)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)   // outgoing edges, creation order
//	NeighborIDs(id string) ([]string, error)// successors, unique, sorted
//	Predecessors(id string) ([]string, error)
//	Vertices() []string                     // sorted
//	Sources() []string                      // vertices with in-degree 0, sorted
//	Edges() []*Edge                         // creation order
//	Degree(id string) (in, out int, err error)
//
//	// Snapshots
//	Clone() *Graph
//	InducedSubgraph(g *Graph, keep map[string]bool) *Graph
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//
// Graph methods are safe for concurrent use, but an algorithm walking a graph
// that another goroutine mutates observes a moving target. Share Clone()
// snapshots with concurrent readers instead.
package core
