package cycles

// Graph is the read-only adjacency capability the finders need.
// Neighbors(v) must be safe to call for every 0 ≤ v < Order() and must not
// be modified by the caller.
type Graph interface {
	Order() int
	Neighbors(v int) []int
}

// AdjList is a Graph backed by a plain adjacency list.
type AdjList [][]int

// Order returns the number of vertices.
func (a AdjList) Order() int { return len(a) }

// Neighbors returns the neighbours of v.
func (a AdjList) Neighbors(v int) []int { return a[v] }

// Masked returns a view of g that hides every vertex v with keep[v] == false.
// Hidden vertices keep their index but have no neighbours, and no visible
// vertex lists them as a neighbour.
//
// Complexity: O(V + E) to build; lookups are O(1).
func Masked(g Graph, keep []bool) AdjList {
	n := g.Order()
	out := make(AdjList, n)
	for v := 0; v < n; v++ {
		if v >= len(keep) || !keep[v] {
			continue
		}
		for _, w := range g.Neighbors(v) {
			if w < len(keep) && keep[w] {
				out[v] = append(out[v], w)
			}
		}
	}

	return out
}

// adjacent reports whether u–v is an edge of g.
func adjacent(g Graph, u, v int) bool {
	for _, w := range g.Neighbors(u) {
		if w == v {
			return true
		}
	}
	return false
}
