// Package molecule provides the molecular graph used throughout lvchem:
// atoms and bonds addressed by dense integer indices, with the per-atom and
// per-bond state that structure readers, atom typers and perception
// algorithms read and write.
//
// The Molecule G = (A,B) stores:
//
//   - Atoms: element, formal charge, implicit hydrogen count, isotope,
//     perceived hybridisation and lone pairs, aromatic flag.
//   - Bonds: endpoints, order (unset/single/double/triple/quadruple),
//     aromatic flag.
//   - A molecule-level aromatic flag, set iff at least one bond is aromatic.
//
// Indices are assigned in insertion order (0,1,2,…) and never reused, so
// iteration is deterministic and results of algorithms can be reported as
// plain index slices.
//
// Concurrency:
//
//	A single sync.RWMutex guards all state. Queries take the read lock,
//	mutations take the write lock. Snapshot() returns a consistent,
//	lock-free View for algorithms that need many reads.
//
// Aromaticity flags:
//
//	ApplyAromaticity(atoms, bonds) clears every aromatic flag (atoms, bonds,
//	molecule) and then sets the supplied subset, as one critical section.
//	Flags therefore always reflect exactly the most recent call, never a
//	mixture with stale state from an earlier one.
//
// Errors:
//
//	ErrAtomNotFound    - atom index out of range.
//	ErrBondNotFound    - bond index out of range.
//	ErrSelfBond        - both endpoints of a bond are the same atom.
//	ErrDuplicateBond   - a bond between the two atoms already exists.
//	ErrNilMolecule     - a nil *Molecule was passed where one is required.
//	ErrSizeMismatch    - two molecules compared by FlagDiff differ in size.
package molecule
