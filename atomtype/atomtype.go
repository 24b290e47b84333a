package atomtype

import (
	"errors"

	"github.com/katalvlaran/lvchem/molecule"
)

// ErrNilMolecule is returned when Perceive receives a nil molecule.
var ErrNilMolecule = errors.New("atomtype: molecule is nil")

// Type is the perceived configuration of one atom.
type Type struct {
	Hybridization molecule.Hybridization
	LonePairs     int
	PiBonds       int
	Typed         bool
}

// Perceive types every atom of m in place and returns how many atoms were
// typed. Atoms that cannot be typed get Typed=false and HybridUnset, so that
// re-running Perceive after edits never leaves stale types behind.
//
// Complexity: O(A + B).
func Perceive(m *molecule.Molecule) (int, error) {
	if m == nil {
		return 0, ErrNilMolecule
	}
	v := m.Snapshot()
	types := Compute(v)

	typed := 0
	for i, t := range types {
		if t.Typed {
			typed++
		}
		if err := m.UpdateAtom(i, func(a *molecule.Atom) {
			a.Hybridization = t.Hybridization
			a.LonePairs = t.LonePairs
			a.Typed = t.Typed
		}); err != nil {
			return typed, err
		}
	}

	return typed, nil
}

// Compute derives the Type of every atom of a snapshot without mutating
// anything.
func Compute(v *molecule.View) []Type {
	n := len(v.Atoms)
	orderSum := make([]int, n)
	pi := make([]int, n)
	unset := make([]bool, n)
	for _, b := range v.Bonds {
		if b.Order == molecule.OrderUnset {
			unset[b.Begin], unset[b.End] = true, true
			continue
		}
		o := b.Order.Int()
		orderSum[b.Begin] += o
		orderSum[b.End] += o
		pi[b.Begin] += o - 1
		pi[b.End] += o - 1
	}

	out := make([]Type, n)
	for i, a := range v.Atoms {
		ve, ok := a.Element.ValenceElectrons()
		if !ok || !a.HasHydrogenCount() || unset[i] {
			continue
		}
		free := ve - a.Charge - orderSum[i] - a.Hydrogens
		if free < 0 {
			continue
		}
		t := Type{LonePairs: free / 2, PiBonds: pi[i], Typed: true}
		sigma := len(v.Adj[i]) + a.Hydrogens

		switch {
		case sigma >= 4 && pi[i] > 0:
			t.Hybridization = molecule.HybridSP3
		case sigma == 3 && pi[i] > 0:
			t.Hybridization = molecule.HybridSP2
		case pi[i] >= 2:
			t.Hybridization = molecule.HybridSP1
		case pi[i] == 1:
			t.Hybridization = molecule.HybridSP2
		case t.LonePairs == 0 && sigma == 3 && (a.Charge > 0 || ve == 3):
			t.Hybridization = molecule.HybridSP2
		case t.LonePairs > 0 && sigma <= 3 && conjugated(v, pi, i):
			t.Hybridization = molecule.HybridPlanar3
		case sigma == 1 && ve == 1:
			t.Hybridization = molecule.HybridS
		default:
			t.Hybridization = molecule.HybridSP3
		}
		out[i] = t
	}

	return out
}

// conjugated reports whether any neighbour of atom i carries a pi bond.
func conjugated(v *molecule.View, pi []int, i int) bool {
	for _, w := range v.Adj[i] {
		if pi[w] > 0 {
			return true
		}
	}
	return false
}
