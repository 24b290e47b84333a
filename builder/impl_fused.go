// SPDX-License-Identifier: MIT
// Package: lvchem/builder
//
// impl_fused.go: FusedPair(a, b): an a-ring and a b-ring sharing one bond.
//
// Layout: perimeter P0..Pn-1 with n = a+b-2, fused bond P0–Pa-1.
//   • ring A is P0..Pa-1, ring B is Pa-1..Pn-1,P0;
//   • perimeter bond i (Pi–Pi+1 mod n) is double for even i, except that the
//     closing bond stays single when n is odd;
//   • the fused bond is single.
//
// FusedPair(5, 7) is azulene, FusedPair(6, 6) naphthalene, FusedPair(5, 6)
// indene-like. Complexity: O(a+b).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvchem/molecule"
)

const methodFusedPair = "FusedPair"

// FusedPair returns a Constructor for two rings fused along one bond.
func FusedPair(a, b int) Constructor {
	return func(m *molecule.Molecule, _ builderConfig) error {
		if a < minRingAtoms || b < minRingAtoms {
			return fmt.Errorf("%s: a=%d b=%d < min=%d: %w", methodFusedPair, a, b, minRingAtoms, ErrTooFewAtoms)
		}
		n := a + b - 2
		first := addCarbons(m, n)
		for i := 0; i < n; i++ {
			order := alternate(i)
			if i == n-1 && n%2 == 1 {
				order = molecule.OrderSingle
			}
			if err := bond(m, methodFusedPair, first+i, first+(i+1)%n, order); err != nil {
				return err
			}
		}
		return bond(m, methodFusedPair, first, first+a-1, molecule.OrderSingle)
	}
}
