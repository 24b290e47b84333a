// File: view.go
// Role: Read-only, lock-free snapshot of a molecule for algorithms.
// Determinism:
//   - Atom, bond and neighbour order equals the source molecule's order.
// Concurrency:
//   - Snapshot takes the read lock once; the View shares no memory with the source.

package molecule

// View is an immutable copy of a molecule's state at one instant.
//
// Adj[i] lists the neighbours of atom i; AdjBonds[i][k] is the bond joining
// i and Adj[i][k].
type View struct {
	Atoms    []Atom
	Bonds    []Bond
	Adj      [][]int
	AdjBonds [][]int
	Aromatic bool
}

// Snapshot copies the molecule into a View under a single read lock, so that
// all slices describe the same instant.
//
// Complexity: O(A + B).
func (m *Molecule) Snapshot() *View {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v := &View{
		Atoms:    make([]Atom, len(m.atoms)),
		Bonds:    make([]Bond, len(m.bonds)),
		Adj:      make([][]int, len(m.adj)),
		AdjBonds: make([][]int, len(m.adj)),
		Aromatic: m.aromatic,
	}
	copy(v.Atoms, m.atoms)
	copy(v.Bonds, m.bonds)
	for i, row := range m.adj {
		v.Adj[i] = make([]int, len(row))
		v.AdjBonds[i] = make([]int, len(row))
		for k, e := range row {
			v.Adj[i][k] = e.atom
			v.AdjBonds[i][k] = e.bond
		}
	}

	return v
}

// Order returns the number of atoms; with Neighbors it lets a View serve as
// a plain adjacency graph.
func (v *View) Order() int { return len(v.Atoms) }

// Neighbors returns the neighbours of atom i (shared slice, do not modify).
func (v *View) Neighbors(i int) []int { return v.Adj[i] }

// BondBetween returns the bond joining u and v, or -1.
// Complexity: O(d(u)).
func (v *View) BondBetween(u, w int) int {
	for k, x := range v.Adj[u] {
		if x == w {
			return v.AdjBonds[u][k]
		}
	}
	return -1
}
