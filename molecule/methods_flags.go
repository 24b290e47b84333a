// SPDX-License-Identifier: MIT
//
// File: methods_flags.go
// Role: Aromaticity flag application: ApplyAromaticity/ClearAromaticity and flag queries.
// Policy:
//   - Flags are never patched incrementally: every write clears all flags first.
//   - Index validation happens before the first write, so a rejected call
//     leaves the molecule untouched.
// Concurrency:
//   - The clear and set phases run inside one write-locked critical section.

package molecule

import "fmt"

// ApplyAromaticity replaces every aromaticity flag of the molecule.
//
// Implementation:
//   - Stage 1: Validate every atom and bond index (no mutation yet).
//   - Stage 2: Clear the molecule, atom and bond flags unconditionally.
//   - Stage 3: Set the flag on each listed atom and bond.
//   - Stage 4: Set the molecule-level flag iff bonds is non-empty.
//
// Behavior highlights:
//   - Empty inputs still clear: a molecule perceived as non-aromatic carries
//     no flags afterwards, whatever the previous state was.
//   - Duplicate indices are harmless.
//
// Errors:
//   - ErrAtomNotFound / ErrBondNotFound for out-of-range indices; the
//     molecule is not modified in that case.
//
// Complexity:
//   - Time O(A + B), Space O(1).
func (m *Molecule) ApplyAromaticity(atoms, bonds []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, i := range atoms {
		if i < 0 || i >= len(m.atoms) {
			return fmt.Errorf("ApplyAromaticity: atom %d: %w", i, ErrAtomNotFound)
		}
	}
	for _, i := range bonds {
		if i < 0 || i >= len(m.bonds) {
			return fmt.Errorf("ApplyAromaticity: bond %d: %w", i, ErrBondNotFound)
		}
	}

	m.clearFlagsLocked()
	for _, i := range atoms {
		m.atoms[i].Aromatic = true
	}
	for _, i := range bonds {
		m.bonds[i].Aromatic = true
	}
	m.aromatic = len(bonds) > 0

	return nil
}

// ClearAromaticity removes every aromaticity flag.
// Complexity: O(A + B).
func (m *Molecule) ClearAromaticity() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clearFlagsLocked()
}

// clearFlagsLocked resets all flags; caller holds the write lock.
func (m *Molecule) clearFlagsLocked() {
	m.aromatic = false
	for i := range m.atoms {
		m.atoms[i].Aromatic = false
	}
	for i := range m.bonds {
		m.bonds[i].Aromatic = false
	}
}

// IsAromatic reports the molecule-level aromatic flag.
func (m *Molecule) IsAromatic() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.aromatic
}

// AromaticAtoms returns the indices of flagged atoms in ascending order.
// Complexity: O(A).
func (m *Molecule) AromaticAtoms() []int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []int
	for i := range m.atoms {
		if m.atoms[i].Aromatic {
			out = append(out, i)
		}
	}

	return out
}

// AromaticBonds returns the indices of flagged bonds in ascending order.
// Complexity: O(B).
func (m *Molecule) AromaticBonds() []int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []int
	for i := range m.bonds {
		if m.bonds[i].Aromatic {
			out = append(out, i)
		}
	}

	return out
}
