// File: systems.go
// Role: Group rings into ring systems (maximal sets of rings sharing atoms).
// Determinism:
//   - Systems are ordered by their smallest atom; rings inside a system keep
//     the finder's order.

package aromaticity

import (
	"sort"

	"github.com/katalvlaran/lvchem/cycles"
)

// groupSystems partitions rings by shared atoms and returns, per system, the
// indices of its rings.
//
// Steps:
//  1. Disjoint-set over ring indices with path compression and union by rank.
//  2. For every atom remember the first ring that used it; union every later
//     ring through that atom with it.
//  3. Collect members per root and order systems by smallest atom.
//
// Complexity: O(R·L·α(R)) for R rings of length at most L.
func groupSystems(rings []cycles.Ring) [][]int {
	parent := make([]int, len(rings))
	rank := make([]int, len(rings))
	for i := range parent {
		parent[i] = i
	}

	find := func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(x, y int) {
		rx, ry := find(x), find(y)
		if rx == ry {
			return
		}
		if rank[rx] < rank[ry] {
			rx, ry = ry, rx
		}
		parent[ry] = rx
		if rank[rx] == rank[ry] {
			rank[rx]++
		}
	}

	owner := make(map[int]int)
	for ri, r := range rings {
		for _, a := range r {
			if first, ok := owner[a]; ok {
				union(first, ri)
			} else {
				owner[a] = ri
			}
		}
	}

	byRoot := make(map[int][]int)
	var roots []int
	for ri := range rings {
		root := find(ri)
		if _, ok := byRoot[root]; !ok {
			roots = append(roots, root)
		}
		byRoot[root] = append(byRoot[root], ri)
	}

	out := make([][]int, 0, len(roots))
	low := make([]int, 0, len(roots))
	for _, root := range roots {
		members := byRoot[root]
		m := -1
		for _, ri := range members {
			for _, a := range rings[ri] {
				if m < 0 || a < m {
					m = a
				}
			}
		}
		out = append(out, members)
		low = append(low, m)
	}
	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return low[idx[i]] < low[idx[j]] })

	sorted := make([][]int, len(out))
	for i, k := range idx {
		sorted[i] = out[k]
	}
	return sorted
}
