// SPDX-License-Identifier: MIT
// Package: lvchem/builder
//
// helpers.go: shared atom/bond emission and post-processing.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvchem/molecule"
)

// addCarbons appends n carbons with unknown hydrogen count and returns the
// index of the first.
func addCarbons(m *molecule.Molecule, n int) int {
	first := m.AtomCount()
	for i := 0; i < n; i++ {
		m.AddAtom(molecule.Atom{Element: molecule.Carbon, Hydrogens: molecule.HydrogensUnset})
	}
	return first
}

// bond adds u-v with the given order, wrapping failures with the method name.
func bond(m *molecule.Molecule, method string, u, v int, order molecule.Order) error {
	if _, err := m.AddBond(u, v, order); err != nil {
		return fmt.Errorf("%s: AddBond(%d,%d): %w: %w", method, u, v, ErrConstructFailed, err)
	}
	return nil
}

// alternate returns double for even i and single otherwise.
func alternate(i int) molecule.Order {
	if i%2 == 0 {
		return molecule.OrderDouble
	}
	return molecule.OrderSingle
}

func substitute(m *molecule.Molecule, cfg builderConfig) error {
	n := m.AtomCount()
	for idx, h := range cfg.hetero {
		if idx >= n {
			return fmt.Errorf("WithHetero(%d): %w", idx, ErrBadIndex)
		}
		_ = m.UpdateAtom(idx, func(a *molecule.Atom) {
			a.Element = h.element
			a.Hydrogens = h.hydrogens
		})
	}
	for idx, c := range cfg.charge {
		if idx >= n {
			return fmt.Errorf("WithCharge(%d): %w", idx, ErrBadIndex)
		}
		_ = m.UpdateAtom(idx, func(a *molecule.Atom) { a.Charge = c })
	}
	return nil
}

// fillHydrogens completes carbons whose count is still unknown.
func fillHydrogens(m *molecule.Molecule) {
	v := m.Snapshot()
	sum := make([]int, len(v.Atoms))
	for _, b := range v.Bonds {
		sum[b.Begin] += b.Order.Int()
		sum[b.End] += b.Order.Int()
	}
	for i, a := range v.Atoms {
		if a.HasHydrogenCount() || a.Element != molecule.Carbon {
			continue
		}
		valence := 4
		if a.Charge != 0 {
			valence = 3
		}
		_ = m.UpdateAtom(i, func(x *molecule.Atom) { x.Hydrogens = max(0, valence-sum[i]) })
	}
}

// shuffled returns a copy of m with atoms and bonds renumbered by cfg.rng.
// Atom old→new follows perm; bonds are emitted in a second random order.
func shuffled(m *molecule.Molecule, cfg builderConfig) *molecule.Molecule {
	v := m.Snapshot()
	perm := cfg.rng.Perm(len(v.Atoms))
	inv := make([]int, len(perm))
	for old, nu := range perm {
		inv[nu] = old
	}

	out := molecule.New(molecule.WithTitle(m.Title()), molecule.WithCapacity(len(v.Atoms), len(v.Bonds)))
	for nu := range inv {
		out.AddAtom(v.Atoms[inv[nu]])
	}
	for _, k := range cfg.rng.Perm(len(v.Bonds)) {
		b := v.Bonds[k]
		id, err := out.AddBond(perm[b.Begin], perm[b.End], b.Order)
		if err != nil {
			continue
		}
		if b.Aromatic {
			_ = out.UpdateBond(id, func(x *molecule.Bond) { x.Aromatic = true })
		}
	}
	return out
}
