// SPDX-License-Identifier: MIT
// Package: lvchem/builder
//
// impl_acene.go: Acene(k): k linearly fused benzene rings.
//
// Layout (k rings, 4k+2 atoms):
//   • top row T0..T2k at indices 0..2k, bottom row B0..B2k at 2k+1..4k+1;
//   • row bonds Tj–Tj+1 and Bj–Bj+1, rungs T2i–B2i for i = 0..k;
//   • ring i is T2i, T2i+1, T2i+2, B2i+2, B2i+1, B2i.
//
// Kekulé structure: rung T0=B0 and row bonds with odd j double; every atom
// carries exactly one double bond.
//
// Emission order: top row, bottom row, rungs. Complexity: O(k).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvchem/molecule"
)

const (
	methodAcene = "Acene"
	minRings    = 1
)

// Acene returns a Constructor for benzene (k=1), naphthalene (k=2),
// anthracene (k=3) and longer acenes.
func Acene(k int) Constructor {
	return func(m *molecule.Molecule, _ builderConfig) error {
		if k < minRings {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodAcene, k, minRings, ErrTooFewAtoms)
		}
		row := 2*k + 1
		top := addCarbons(m, row)
		bottom := addCarbons(m, row)

		rowOrder := func(j int) molecule.Order {
			if j%2 == 1 {
				return molecule.OrderDouble
			}
			return molecule.OrderSingle
		}
		for _, start := range []int{top, bottom} {
			for j := 0; j+1 < row; j++ {
				if err := bond(m, methodAcene, start+j, start+j+1, rowOrder(j)); err != nil {
					return err
				}
			}
		}
		for i := 0; i <= k; i++ {
			order := molecule.OrderSingle
			if i == 0 {
				order = molecule.OrderDouble
			}
			if err := bond(m, methodAcene, top+2*i, bottom+2*i, order); err != nil {
				return err
			}
		}
		return nil
	}
}
