// SPDX-License-Identifier: MIT
// Package: lvchem/builder
//
// impl_annulene.go: Annulene(n) and Chain(n).
//
// Contract:
//   • Annulene: n ≥ 3 atoms, bonds i→(i+1)%n, bond i double for even i.
//     For odd n the closing bond stays single so no atom carries two double
//     bonds; its atom ends up sp3 (CH2), as in cyclopentadiene.
//   • Chain: n ≥ 2 atoms, bonds i→i+1 alternating double/single.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvchem/molecule"
)

const (
	methodAnnulene = "Annulene"
	methodChain    = "Chain"
	minRingAtoms   = 3
	minChainAtoms  = 2
)

// Annulene returns a Constructor for a Kekulé [n]annulene.
func Annulene(n int) Constructor {
	return func(m *molecule.Molecule, _ builderConfig) error {
		if n < minRingAtoms {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodAnnulene, n, minRingAtoms, ErrTooFewAtoms)
		}
		first := addCarbons(m, n)
		for i := 0; i < n; i++ {
			order := alternate(i)
			if i == n-1 && n%2 == 1 {
				order = molecule.OrderSingle
			}
			if err := bond(m, methodAnnulene, first+i, first+(i+1)%n, order); err != nil {
				return err
			}
		}
		return nil
	}
}

// Chain returns a Constructor for an open polyene of n atoms.
func Chain(n int) Constructor {
	return func(m *molecule.Molecule, _ builderConfig) error {
		if n < minChainAtoms {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainAtoms, ErrTooFewAtoms)
		}
		first := addCarbons(m, n)
		for i := 0; i+1 < n; i++ {
			if err := bond(m, methodChain, first+i, first+i+1, alternate(i)); err != nil {
				return err
			}
		}
		return nil
	}
}
