// File: membership.go
// Role: Ring membership of atoms and bonds via bridge detection.
// An edge lies on some cycle iff it is not a bridge; an atom is a ring atom
// iff at least one of its edges lies on a cycle.

package cycles

// Membership records which vertices and edges of a graph lie on a cycle.
type Membership struct {
	atoms []bool
	bonds map[[2]int]struct{}
}

// NewMembership computes ring membership for g.
//
// Implementation:
//   - Iterative DFS with discovery times and low-links (Tarjan), so deep
//     chains cannot exhaust the goroutine stack.
//   - Tree edge (p,v) is a bridge iff low[v] > disc[p].
//   - Every non-bridge edge is recorded; its endpoints become ring atoms.
//
// Complexity: O(V + E) time and space.
func NewMembership(g Graph) *Membership {
	n := g.Order()
	disc := make([]int, n)
	low := make([]int, n)
	parent := make([]int, n)
	for i := range disc {
		disc[i] = -1
		parent[i] = -1
	}
	isBridge := make(map[[2]int]bool)

	type frame struct {
		v, next int
	}
	timer := 0
	for root := 0; root < n; root++ {
		if disc[root] >= 0 {
			continue
		}
		disc[root], low[root] = timer, timer
		timer++
		stack := []frame{{v: root}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			nbrs := g.Neighbors(top.v)
			if top.next < len(nbrs) {
				w := nbrs[top.next]
				top.next++
				switch {
				case disc[w] < 0:
					parent[w] = top.v
					disc[w], low[w] = timer, timer
					timer++
					stack = append(stack, frame{v: w})
				case w != parent[top.v]:
					low[top.v] = min(low[top.v], disc[w])
				}
				continue
			}
			// v finished: propagate low-link to the parent
			v := top.v
			stack = stack[:len(stack)-1]
			if p := parent[v]; p >= 0 {
				low[p] = min(low[p], low[v])
				if low[v] > disc[p] {
					isBridge[edgeKey(p, v)] = true
				}
			}
		}
	}

	m := &Membership{atoms: make([]bool, n), bonds: make(map[[2]int]struct{})}
	for v := 0; v < n; v++ {
		for _, w := range g.Neighbors(v) {
			if v < w && !isBridge[edgeKey(v, w)] {
				m.bonds[edgeKey(v, w)] = struct{}{}
				m.atoms[v], m.atoms[w] = true, true
			}
		}
	}

	return m
}

// AtomInRing reports whether vertex v lies on a cycle.
func (m *Membership) AtomInRing(v int) bool {
	return v >= 0 && v < len(m.atoms) && m.atoms[v]
}

// BondInRing reports whether edge u–v exists and lies on a cycle.
func (m *Membership) BondInRing(u, v int) bool {
	_, ok := m.bonds[edgeKey(u, v)]
	return ok
}

// RingBondCount returns the number of edges lying on a cycle.
func (m *Membership) RingBondCount() int { return len(m.bonds) }

func edgeKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}
	return [2]int{u, v}
}
