// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edge/Edges/EdgeCount.
//       Also: nextEdgeID() and the linkEdge/unlinkEdge index helpers.
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc (numeric order of the counter).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix of generated edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates a new directed edge from -> to and returns its ID.
// Missing endpoints are created.
//
// Steps:
//  1. Validate IDs and the loop policy.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check the multi-edge policy.
//  4. Generate the edge ID, store the edge, index it in out and in.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && len(g.out[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	e := &Edge{ID: nextEdgeID(g), From: from, To: to}
	g.edges[e.ID] = e
	linkEdge(g, e)

	return e.ID, nil
}

// RemoveEdge deletes one edge by ID.
// Removing an absent edge returns ErrEdgeNotFound.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	unlinkEdge(g, e)
	delete(g.edges, eid)

	return nil
}

// HasEdge reports whether at least one edge from -> to exists.
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.out[from][to]) > 0
}

// Edge returns the live edge record for eid.
func (g *Graph) Edge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges sorted by creation order.
// The returned pointers are live; treat them as read-only.
//
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns a new unique textual edge ID.
// The counter is atomic, so the ID is unique even for concurrent callers.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeSeq extracts the numeric sequence of a generated edge ID.
// IDs not produced by nextEdgeID sort after generated ones.
func edgeSeq(eid string) uint64 {
	if len(eid) < 2 || eid[0] != edgeIDPrefix {
		return ^uint64(0)
	}
	n, err := strconv.ParseUint(eid[1:], 10, 64)
	if err != nil {
		return ^uint64(0)
	}

	return n
}

// sortEdges orders edges by creation sequence, so "e10" follows "e9".
func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool {
		si, sj := edgeSeq(es[i].ID), edgeSeq(es[j].ID)
		if si != sj {
			return si < sj
		}
		return es[i].ID < es[j].ID
	})
}

// linkEdge indexes e in both adjacency maps. Caller holds muEdgeAdj.
func linkEdge(g *Graph, e *Edge) {
	if g.out[e.From] == nil {
		g.out[e.From] = make(map[string]map[string]struct{})
	}
	if g.out[e.From][e.To] == nil {
		g.out[e.From][e.To] = make(map[string]struct{})
	}
	g.out[e.From][e.To][e.ID] = struct{}{}

	if g.in[e.To] == nil {
		g.in[e.To] = make(map[string]map[string]struct{})
	}
	if g.in[e.To][e.From] == nil {
		g.in[e.To][e.From] = make(map[string]struct{})
	}
	g.in[e.To][e.From][e.ID] = struct{}{}
}

// unlinkEdge removes e from both adjacency maps and prunes empty buckets,
// so len(g.in[v]) == 0 holds exactly for vertices without incoming edges.
// Caller holds muEdgeAdj.
func unlinkEdge(g *Graph, e *Edge) {
	if set := g.out[e.From][e.To]; set != nil {
		delete(set, e.ID)
		if len(set) == 0 {
			delete(g.out[e.From], e.To)
		}
		if len(g.out[e.From]) == 0 {
			delete(g.out, e.From)
		}
	}
	if set := g.in[e.To][e.From]; set != nil {
		delete(set, e.ID)
		if len(set) == 0 {
			delete(g.in[e.To], e.From)
		}
		if len(g.in[e.To]) == 0 {
			delete(g.in, e.To)
		}
	}
}
