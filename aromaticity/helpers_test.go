package aromaticity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvchem/aromaticity"
	"github.com/katalvlaran/lvchem/atomtype"
	"github.com/katalvlaran/lvchem/cycles"
	"github.com/katalvlaran/lvchem/molecule"
	"github.com/katalvlaran/lvchem/smiles"
)

// Named inputs shared by the scenario tests.
const (
	Benzene       = "C1=CC=CC=C1"
	Furan         = "C1=CC=CO1"
	Quinone       = "O=C1C=CC(=O)C=C1"
	Azulene       = "C1=CC2=CC=CC=CC2=C1"
	Oxypyridinide = "O=C1C=C[N-]C=C1"
	Pyridinone    = "O=C1NC=CC=C1"
	CopperComplex = "[O-][Cu++]123([O-])CN4C=NC5=C4C(N=CN5)=[O+]1.O=S(=O)([OH+]2)[OH+]3"
)

var (
	strict    = aromaticity.MustNew(aromaticity.Config{Model: aromaticity.Strict(), Cycles: cycles.All()})
	exocyclic = aromaticity.MustNew(aromaticity.Config{Model: aromaticity.ExocyclicPermissive(), Cycles: cycles.All()})
	daylight  = aromaticity.MustNew(aromaticity.Config{Model: aromaticity.Daylight(), Cycles: cycles.All()})
)

// parse reads s without atom typing (enough for the daylight model).
func parse(t testing.TB, s string) *molecule.Molecule {
	t.Helper()
	m, err := smiles.Parse(s)
	require.NoError(t, err)
	return m
}

// typed reads s and perceives atom types for the hybridisation models.
func typed(t testing.TB, s string) *molecule.Molecule {
	t.Helper()
	m := parse(t, s)
	_, err := atomtype.Perceive(m)
	require.NoError(t, err)
	return m
}

// bondCount runs FindBonds and returns the number of aromatic bonds.
func bondCount(t testing.TB, d *aromaticity.Detector, m *molecule.Molecule) int {
	t.Helper()
	bonds, err := d.FindBonds(m)
	require.NoError(t, err)
	return len(bonds)
}
