package atomtype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvchem/atomtype"
	"github.com/katalvlaran/lvchem/molecule"
)

// chain builds a molecule from atoms and (u, v, order) triples.
func chain(t *testing.T, atoms []molecule.Atom, bonds [][3]int) *molecule.Molecule {
	t.Helper()
	m := molecule.New()
	for _, a := range atoms {
		m.AddAtom(a)
	}
	for _, b := range bonds {
		_, err := m.AddBond(b[0], b[1], molecule.Order(b[2]))
		require.NoError(t, err)
	}
	return m
}

func at(e molecule.Element, h, charge int) molecule.Atom {
	return molecule.Atom{Element: e, Hydrogens: h, Charge: charge}
}

func TestPerceive_Nil(t *testing.T) {
	_, err := atomtype.Perceive(nil)
	assert.ErrorIs(t, err, atomtype.ErrNilMolecule)
}

// Furan: O1 C=C C=C, the oxygen lone pair sits next to pi bonds.
func TestPerceive_Furan(t *testing.T) {
	m := chain(t,
		[]molecule.Atom{
			at(molecule.Carbon, 1, 0), at(molecule.Carbon, 1, 0), at(molecule.Carbon, 1, 0),
			at(molecule.Carbon, 1, 0), at(molecule.Oxygen, 0, 0),
		},
		[][3]int{{0, 1, 2}, {1, 2, 1}, {2, 3, 2}, {3, 4, 1}, {4, 0, 1}},
	)
	n, err := atomtype.Perceive(m)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	o, _ := m.Atom(4)
	assert.Equal(t, molecule.HybridPlanar3, o.Hybridization)
	assert.Equal(t, 2, o.LonePairs)
	for i := 0; i < 4; i++ {
		c, _ := m.Atom(i)
		assert.Equal(t, molecule.HybridSP2, c.Hybridization, "atom %d", i)
		assert.Zero(t, c.LonePairs)
	}
}

func TestCompute_Table(t *testing.T) {
	tests := []struct {
		name  string
		atoms []molecule.Atom
		bonds [][3]int
		atom  int
		want  atomtype.Type
	}{
		{
			name:  "methane",
			atoms: []molecule.Atom{at(molecule.Carbon, 4, 0)},
			want:  atomtype.Type{Hybridization: molecule.HybridSP3, Typed: true},
		},
		{
			name:  "carbocation",
			atoms: []molecule.Atom{at(molecule.Carbon, 3, 1)},
			want:  atomtype.Type{Hybridization: molecule.HybridSP2, Typed: true},
		},
		{
			name:  "nitrile carbon",
			atoms: []molecule.Atom{at(molecule.Carbon, 1, 0), at(molecule.Nitrogen, 0, 0)},
			bonds: [][3]int{{0, 1, 3}},
			want:  atomtype.Type{Hybridization: molecule.HybridSP1, PiBonds: 2, Typed: true},
		},
		{
			name:  "nitrile nitrogen",
			atoms: []molecule.Atom{at(molecule.Carbon, 1, 0), at(molecule.Nitrogen, 0, 0)},
			bonds: [][3]int{{0, 1, 3}},
			atom:  1,
			want:  atomtype.Type{Hybridization: molecule.HybridSP1, PiBonds: 2, LonePairs: 1, Typed: true},
		},
		{
			name:  "amine is not conjugated",
			atoms: []molecule.Atom{at(molecule.Nitrogen, 3, 0)},
			want:  atomtype.Type{Hybridization: molecule.HybridSP3, LonePairs: 1, Typed: true},
		},
		{
			name: "sulfone sulphur",
			atoms: []molecule.Atom{
				at(molecule.Sulphur, 0, 0), at(molecule.Oxygen, 0, 0), at(molecule.Oxygen, 0, 0),
				at(molecule.Carbon, 3, 0), at(molecule.Carbon, 3, 0),
			},
			bonds: [][3]int{{0, 1, 2}, {0, 2, 2}, {0, 3, 1}, {0, 4, 1}},
			want:  atomtype.Type{Hybridization: molecule.HybridSP3, PiBonds: 2, Typed: true},
		},
		{
			name:  "hydrogen atom",
			atoms: []molecule.Atom{{Element: molecule.Hydrogen}, at(molecule.Chlorine, 0, 0)},
			bonds: [][3]int{{0, 1, 1}},
			want:  atomtype.Type{Hybridization: molecule.HybridS, Typed: true},
		},
		{
			name:  "unknown hydrogen count",
			atoms: []molecule.Atom{{Element: molecule.Carbon, Hydrogens: molecule.HydrogensUnset}},
			want:  atomtype.Type{},
		},
		{
			name:  "unset bond order",
			atoms: []molecule.Atom{at(molecule.Carbon, 3, 0), at(molecule.Carbon, 3, 0)},
			bonds: [][3]int{{0, 1, 0}},
			want:  atomtype.Type{},
		},
		{
			name:  "overbonded",
			atoms: []molecule.Atom{at(molecule.Carbon, 5, 0)},
			want:  atomtype.Type{},
		},
		{
			name:  "unknown element",
			atoms: []molecule.Atom{{Element: molecule.Copper}},
			want:  atomtype.Type{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := chain(t, tc.atoms, tc.bonds)
			got := atomtype.Compute(m.Snapshot())
			assert.Equal(t, tc.want, got[tc.atom])
		})
	}
}

// Retyping after an edit clears stale configuration.
func TestPerceive_Retype(t *testing.T) {
	m := chain(t, []molecule.Atom{at(molecule.Carbon, 2, 0), at(molecule.Carbon, 2, 0)}, [][3]int{{0, 1, 2}})
	_, err := atomtype.Perceive(m)
	require.NoError(t, err)

	require.NoError(t, m.SetBondOrder(0, molecule.OrderUnset))
	n, err := atomtype.Perceive(m)
	require.NoError(t, err)
	assert.Zero(t, n)
	a, _ := m.Atom(0)
	assert.False(t, a.Typed)
	assert.Equal(t, molecule.HybridUnset, a.Hybridization)
}
