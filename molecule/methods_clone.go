// File: methods_clone.go
// Role: Cloning and fragment (connected component) queries.
// Determinism:
//   - Clone preserves atom and bond indices exactly.
//   - Fragments are ordered by their smallest atom index; atoms inside a
//     fragment are ascending.
// Concurrency:
//   - Read lock on the source; the clone is a fresh, independent instance.

package molecule

import "sort"

// Clone returns a deep copy: atoms, bonds, adjacency, title and flags.
// Complexity: O(A + B).
func (m *Molecule) Clone() *Molecule {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c := &Molecule{
		title:    m.title,
		atoms:    make([]Atom, len(m.atoms)),
		bonds:    make([]Bond, len(m.bonds)),
		adj:      make([][]adjEntry, len(m.adj)),
		aromatic: m.aromatic,
	}
	copy(c.atoms, m.atoms)
	copy(c.bonds, m.bonds)
	for i, row := range m.adj {
		c.adj[i] = append([]adjEntry(nil), row...)
	}

	return c
}

// Fragments returns the connected components of the molecule as atom index
// lists ("CCO.O" has two fragments).
//
// Implementation:
//   - Iterative BFS from every unvisited atom in ascending index order.
//
// Complexity: O(A + B) time, O(A) extra space.
func (m *Molecule) Fragments() [][]int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := make([]bool, len(m.atoms))
	var out [][]int
	for s := range m.atoms {
		if seen[s] {
			continue
		}
		seen[s] = true
		queue := []int{s}
		var comp []int
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			comp = append(comp, u)
			for _, e := range m.adj[u] {
				if !seen[e.atom] {
					seen[e.atom] = true
					queue = append(queue, e.atom)
				}
			}
		}
		sort.Ints(comp)
		out = append(out, comp)
	}

	return out
}
