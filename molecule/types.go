// Package molecule defines the central Molecule, Atom and Bond types and the
// sentinel errors shared by every method of the package.
//
// This file declares Order, Hybridization, Atom, Bond, Molecule, Option,
// sentinel errors, and the New constructor.
package molecule

import (
	"errors"
	"sync"
)

// Sentinel errors for molecule operations.
var (
	// ErrAtomNotFound indicates an atom index outside [0, AtomCount()).
	ErrAtomNotFound = errors.New("molecule: atom not found")

	// ErrBondNotFound indicates a bond index outside [0, BondCount()).
	ErrBondNotFound = errors.New("molecule: bond not found")

	// ErrSelfBond indicates an attempt to bond an atom to itself.
	ErrSelfBond = errors.New("molecule: atom cannot bond to itself")

	// ErrDuplicateBond indicates a second bond between the same two atoms.
	ErrDuplicateBond = errors.New("molecule: bond already exists")

	// ErrNilMolecule indicates a nil *Molecule argument.
	ErrNilMolecule = errors.New("molecule: molecule is nil")

	// ErrSizeMismatch indicates two molecules with different atom or bond counts.
	ErrSizeMismatch = errors.New("molecule: atom/bond count mismatch")
)

// HydrogensUnset marks an atom whose implicit hydrogen count is unknown.
const HydrogensUnset = -1

// Order is the bond order.
type Order uint8

// Bond orders. OrderUnset is used by readers that leave orders undecided.
const (
	OrderUnset Order = iota
	OrderSingle
	OrderDouble
	OrderTriple
	OrderQuadruple
)

// Int returns the numeric order (0 for OrderUnset).
func (o Order) Int() int { return int(o) }

// String implements fmt.Stringer.
func (o Order) String() string {
	switch o {
	case OrderSingle:
		return "single"
	case OrderDouble:
		return "double"
	case OrderTriple:
		return "triple"
	case OrderQuadruple:
		return "quadruple"
	}
	return "unset"
}

// Hybridization is the perceived orbital hybridisation of an atom.
type Hybridization uint8

// Hybridisation states. Planar3 is an sp3-counted atom whose lone pair is
// conjugated with an adjacent pi system (pyrrole N, furan O).
const (
	HybridUnset Hybridization = iota
	HybridS
	HybridSP1
	HybridSP2
	HybridSP3
	HybridPlanar3
	HybridSP3D1
	HybridSP3D2
)

// String implements fmt.Stringer.
func (h Hybridization) String() string {
	switch h {
	case HybridS:
		return "s"
	case HybridSP1:
		return "sp1"
	case HybridSP2:
		return "sp2"
	case HybridSP3:
		return "sp3"
	case HybridPlanar3:
		return "planar3"
	case HybridSP3D1:
		return "sp3d1"
	case HybridSP3D2:
		return "sp3d2"
	}
	return "unset"
}

// Atom is a vertex of the molecular graph.
//
// Hybridization, LonePairs and Typed are written by atom typing; they are
// meaningful only when Typed is true.
type Atom struct {
	// Element is the atomic number.
	Element Element

	// Charge is the formal charge.
	Charge int

	// Hydrogens is the implicit hydrogen count, HydrogensUnset if unknown.
	Hydrogens int

	// Isotope is the mass number, 0 for natural abundance.
	Isotope int

	// Hybridization is the perceived hybridisation.
	Hybridization Hybridization

	// LonePairs is the number of non-bonding electron pairs.
	LonePairs int

	// Typed reports whether Hybridization/LonePairs were perceived.
	Typed bool

	// Aromatic is the aromaticity flag.
	Aromatic bool
}

// HasHydrogenCount reports whether the implicit hydrogen count is known.
func (a Atom) HasHydrogenCount() bool { return a.Hydrogens >= 0 }

// Bond is an undirected edge of the molecular graph.
type Bond struct {
	// Begin and End are atom indices; Begin < End is not required.
	Begin, End int

	// Order is the bond order.
	Order Order

	// Aromatic is the aromaticity flag.
	Aromatic bool
}

// Other returns the endpoint of b that is not atom, or -1 when atom is not
// an endpoint.
func (b Bond) Other(atom int) int {
	switch atom {
	case b.Begin:
		return b.End
	case b.End:
		return b.Begin
	}
	return -1
}

// Option configures a Molecule at construction.
type Option func(m *Molecule)

// WithTitle sets a free-text title (SMILES title, record name, …).
func WithTitle(title string) Option {
	return func(m *Molecule) { m.title = title }
}

// WithCapacity pre-sizes atom and bond storage.
func WithCapacity(atoms, bonds int) Option {
	return func(m *Molecule) {
		m.atoms = make([]Atom, 0, atoms)
		m.adj = make([][]adjEntry, 0, atoms)
		m.bonds = make([]Bond, 0, bonds)
	}
}

// adjEntry links a neighbour atom to the bond that reaches it.
type adjEntry struct {
	atom int
	bond int
}

// Molecule is the in-memory molecular graph.
//
// mu guards every field; adj[i] lists (neighbour, bond) pairs of atom i in
// bond insertion order.
type Molecule struct {
	mu sync.RWMutex

	title    string
	atoms    []Atom
	bonds    []Bond
	adj      [][]adjEntry
	aromatic bool // molecule-level flag
}

// New creates an empty Molecule.
// Complexity: O(1) plus any capacity requested via WithCapacity.
func New(opts ...Option) *Molecule {
	m := &Molecule{}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Title returns the molecule title.
func (m *Molecule) Title() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.title
}
