// File: methods_bonds.go
// Role: Bond lifecycle & queries: AddBond/Bond/Bonds/BondCount/BondBetween/SetBondOrder.
// Determinism:
//   - Bonds() returns bonds in index (insertion) order.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package molecule

import "fmt"

// AddBond connects atoms u and v with the given order and returns the new
// bond index.
//
// Steps:
//  1. Validate endpoints (range, u != v).
//  2. Reject a second bond between the same pair (molecules are simple graphs).
//  3. Append the bond and link both adjacency lists.
//
// Errors: ErrAtomNotFound, ErrSelfBond, ErrDuplicateBond.
// Complexity: O(d(u)) for the duplicate check.
func (m *Molecule) AddBond(u, v int, order Order) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(m.atoms)
	if u < 0 || u >= n || v < 0 || v >= n {
		return -1, fmt.Errorf("AddBond(%d,%d): %w", u, v, ErrAtomNotFound)
	}
	if u == v {
		return -1, fmt.Errorf("AddBond(%d,%d): %w", u, v, ErrSelfBond)
	}
	for _, e := range m.adj[u] {
		if e.atom == v {
			return -1, fmt.Errorf("AddBond(%d,%d): %w", u, v, ErrDuplicateBond)
		}
	}

	id := len(m.bonds)
	m.bonds = append(m.bonds, Bond{Begin: u, End: v, Order: order})
	m.adj[u] = append(m.adj[u], adjEntry{atom: v, bond: id})
	m.adj[v] = append(m.adj[v], adjEntry{atom: u, bond: id})

	return id, nil
}

// Bond returns a copy of the bond at index i.
// Complexity: O(1).
func (m *Molecule) Bond(i int) (Bond, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i < 0 || i >= len(m.bonds) {
		return Bond{}, fmt.Errorf("Bond(%d): %w", i, ErrBondNotFound)
	}

	return m.bonds[i], nil
}

// Bonds returns a copy of all bonds in index order.
// Complexity: O(B).
func (m *Molecule) Bonds() []Bond {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Bond, len(m.bonds))
	copy(out, m.bonds)

	return out
}

// BondCount returns the number of bonds.
// Complexity: O(1).
func (m *Molecule) BondCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.bonds)
}

// BondBetween returns the index of the bond joining u and v, if any.
// Complexity: O(d(u)).
func (m *Molecule) BondBetween(u, v int) (int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if u < 0 || u >= len(m.atoms) {
		return -1, false
	}
	for _, e := range m.adj[u] {
		if e.atom == v {
			return e.bond, true
		}
	}

	return -1, false
}

// SetBondOrder changes the order of bond i.
// Complexity: O(1).
func (m *Molecule) SetBondOrder(i int, order Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i < 0 || i >= len(m.bonds) {
		return fmt.Errorf("SetBondOrder(%d): %w", i, ErrBondNotFound)
	}
	m.bonds[i].Order = order

	return nil
}

// UpdateBond applies fn to the bond at index i under the write lock.
// fn must not change the endpoints and must not call back into m.
//
// Complexity: O(1) + cost of fn.
func (m *Molecule) UpdateBond(i int, fn func(b *Bond)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i < 0 || i >= len(m.bonds) {
		return fmt.Errorf("UpdateBond(%d): %w", i, ErrBondNotFound)
	}
	begin, end := m.bonds[i].Begin, m.bonds[i].End
	fn(&m.bonds[i])
	m.bonds[i].Begin, m.bonds[i].End = begin, end

	return nil
}
