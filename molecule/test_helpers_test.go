// SPDX-License-Identifier: MIT
// Package molecule_test contains fixtures shared by the molecule tests.

package molecule_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvchem/molecule"
)

// carbon returns a neutral carbon with h implicit hydrogens.
func carbon(h int) molecule.Atom {
	return molecule.Atom{Element: molecule.Carbon, Hydrogens: h}
}

// newRing builds an n-membered carbon ring with alternating double bonds
// starting at bond 0 (C1=CC=CC=C1 for n=6).
func newRing(t *testing.T, n int) *molecule.Molecule {
	t.Helper()
	m := molecule.New(molecule.WithTitle("ring"))
	for i := 0; i < n; i++ {
		m.AddAtom(carbon(1))
	}
	for i := 0; i < n; i++ {
		order := molecule.OrderSingle
		if i%2 == 0 {
			order = molecule.OrderDouble
		}
		_, err := m.AddBond(i, (i+1)%n, order)
		require.NoError(t, err)
	}

	return m
}
