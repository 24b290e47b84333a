// File: methods_atoms.go
// Role: Atom lifecycle & queries: AddAtom/Atom/Atoms/AtomCount/UpdateAtom,
//       plus adjacency queries Neighbors/BondsOf/Degree.
// Determinism:
//   - Atoms() returns atoms in index order.
//   - Neighbors()/BondsOf() return entries in bond insertion order.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package molecule

import "fmt"

// AddAtom appends a to the molecule and returns its index.
// The aromatic flag of a is kept as given (readers may pre-flag atoms).
// Complexity: O(1) amortized.
func (m *Molecule) AddAtom(a Atom) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.atoms = append(m.atoms, a)
	m.adj = append(m.adj, nil)

	return len(m.atoms) - 1
}

// Atom returns a copy of the atom at index i.
// Complexity: O(1).
func (m *Molecule) Atom(i int) (Atom, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i < 0 || i >= len(m.atoms) {
		return Atom{}, fmt.Errorf("Atom(%d): %w", i, ErrAtomNotFound)
	}

	return m.atoms[i], nil
}

// Atoms returns a copy of all atoms in index order.
// Complexity: O(A).
func (m *Molecule) Atoms() []Atom {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Atom, len(m.atoms))
	copy(out, m.atoms)

	return out
}

// AtomCount returns the number of atoms.
// Complexity: O(1).
func (m *Molecule) AtomCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.atoms)
}

// UpdateAtom applies fn to the atom at index i under the write lock.
// fn must not call back into m.
//
// Complexity: O(1) + cost of fn.
func (m *Molecule) UpdateAtom(i int, fn func(a *Atom)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i < 0 || i >= len(m.atoms) {
		return fmt.Errorf("UpdateAtom(%d): %w", i, ErrAtomNotFound)
	}
	fn(&m.atoms[i])

	return nil
}

// Neighbors returns the indices of atoms bonded to atom i.
// Complexity: O(d).
func (m *Molecule) Neighbors(i int) ([]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i < 0 || i >= len(m.atoms) {
		return nil, fmt.Errorf("Neighbors(%d): %w", i, ErrAtomNotFound)
	}
	out := make([]int, len(m.adj[i]))
	for k, e := range m.adj[i] {
		out[k] = e.atom
	}

	return out, nil
}

// BondsOf returns the indices of bonds incident to atom i.
// Complexity: O(d).
func (m *Molecule) BondsOf(i int) ([]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i < 0 || i >= len(m.atoms) {
		return nil, fmt.Errorf("BondsOf(%d): %w", i, ErrAtomNotFound)
	}
	out := make([]int, len(m.adj[i]))
	for k, e := range m.adj[i] {
		out[k] = e.bond
	}

	return out, nil
}

// Degree returns the number of explicit bonds of atom i (hydrogens not counted).
// Complexity: O(1).
func (m *Molecule) Degree(i int) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i < 0 || i >= len(m.atoms) {
		return 0, fmt.Errorf("Degree(%d): %w", i, ErrAtomNotFound)
	}

	return len(m.adj[i]), nil
}
