// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, Predecessors).
// Determinism:
//   - Neighbors() sorts by edge creation order.
//   - NeighborIDs() and Predecessors() return unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.

package core

import "sort"

// Neighbors returns the outgoing edges of id, in edge creation order.
//
// Implementation:
//   - Stage 1: Validate id is non-empty (ErrEmptyVertexID).
//   - Stage 2: Acquire muVert and muEdgeAdj read locks (in that order).
//   - Stage 3: Validate vertex existence (ErrVertexNotFound).
//   - Stage 4: Collect edges from out[id] and sort them.
//
// Notes:
//   - Returned *Edge values are live catalog entries; treat them as immutable.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d is the out-degree.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, set := range g.out[id] {
		for eid := range set {
			if e := g.edges[eid]; e != nil {
				out = append(out, e)
			}
		}
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the unique IDs reachable from id over one forward edge,
// sorted lexicographically ascending. This is the expansion step of every
// traversal in bfs and dfs, so its order fixes their output.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(k log k), Space O(k), where k is the number of distinct successors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	return g.adjacentIDs(id, false)
}

// Predecessors returns the unique IDs with an edge into id, sorted lex asc.
func (g *Graph) Predecessors(id string) ([]string, error) {
	return g.adjacentIDs(id, true)
}

func (g *Graph) adjacentIDs(id string, reverse bool) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	index := g.out
	if reverse {
		index = g.in
	}
	ids := make([]string, 0, len(index[id]))
	for other := range index[id] {
		ids = append(ids, other)
	}
	sort.Strings(ids)

	return ids, nil
}
