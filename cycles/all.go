// SPDX-License-Identifier: MIT
//
// File: all.go
// Role: Enumeration of every elementary cycle of an undirected graph.

package cycles

import "fmt"

// DefaultLimit bounds the number of cycles All() enumerates. Fused polycyclic
// systems of practical size stay far below it; cage-like inorganic clusters
// exceed it quickly.
const DefaultLimit = 10000

type allFinder struct {
	limit int
}

// All returns a Finder enumerating every elementary cycle with DefaultLimit.
func All() Finder { return allFinder{limit: DefaultLimit} }

// AllWithLimit returns a Finder enumerating every elementary cycle, failing
// with ErrCycleLimitExceeded once more than limit cycles are found.
func AllWithLimit(limit int) (Finder, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("AllWithLimit(%d): %w", limit, ErrBadLimit)
	}
	return allFinder{limit: limit}, nil
}

func (f allFinder) Name() string { return "all" }

// Find enumerates the elementary cycles of g.
//
// Implementation:
//   - Restrict the search to ring edges (Membership): bridges cannot be on a
//     cycle and pruning them keeps chains and substituents out of the DFS.
//   - For each start vertex s (ascending), extend simple paths through
//     vertices greater than s only; reaching s again closes a cycle.
//   - Each cycle is met twice (once per direction); keep the traversal whose
//     second vertex is smaller than its last, which is also its canonical form.
//
// Complexity: O((V + E)·(C + 1)) for C cycles.
func (f allFinder) Find(g Graph) ([]Ring, error) {
	ringOnly := ringSubgraph(g)
	n := ringOnly.Order()

	var (
		rings  []Ring
		path   []int
		onPath = make([]bool, n)
		err    error
	)

	var extend func(s, v int) bool
	extend = func(s, v int) bool {
		for _, w := range ringOnly[v] {
			switch {
			case w == s:
				if len(path) >= 3 && path[1] < path[len(path)-1] {
					rings = append(rings, append(Ring(nil), path...))
					if len(rings) > f.limit {
						err = fmt.Errorf("more than %d cycles: %w", f.limit, ErrCycleLimitExceeded)
						return false
					}
				}
			case w > s && !onPath[w]:
				onPath[w] = true
				path = append(path, w)
				if !extend(s, w) {
					return false
				}
				path = path[:len(path)-1]
				onPath[w] = false
			}
		}
		return true
	}

	for s := 0; s < n; s++ {
		if len(ringOnly[s]) < 2 {
			continue
		}
		path = append(path[:0], s)
		onPath[s] = true
		ok := extend(s, s)
		onPath[s] = false
		if !ok {
			return nil, err
		}
	}

	sortRings(rings)

	return rings, nil
}

// ringSubgraph keeps only the edges of g that lie on a cycle.
func ringSubgraph(g Graph) AdjList {
	mem := NewMembership(g)
	n := g.Order()
	out := make(AdjList, n)
	for v := 0; v < n; v++ {
		for _, w := range g.Neighbors(v) {
			if mem.BondInRing(v, w) {
				out[v] = append(out[v], w)
			}
		}
	}
	return out
}
