package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvchem/builder"
	"github.com/katalvlaran/lvchem/molecule"
)

// doubles counts double bonds per atom.
func doubles(m *molecule.Molecule) []int {
	out := make([]int, m.AtomCount())
	for _, b := range m.Bonds() {
		if b.Order == molecule.OrderDouble {
			out[b.Begin]++
			out[b.End]++
		}
	}
	return out
}

func hydrogenTotal(m *molecule.Molecule) int {
	h := 0
	for _, a := range m.Atoms() {
		h += a.Hydrogens
	}
	return h
}

func TestBuild_Functional(t *testing.T) {
	tests := []struct {
		name      string
		cons      builder.Constructor
		atoms     int
		bonds     int
		hydrogens int
	}{
		{"benzene", builder.Annulene(6), 6, 6, 6},
		{"cyclopentadiene", builder.Annulene(5), 5, 5, 6},
		{"cyclooctatetraene", builder.Annulene(8), 8, 8, 8},
		{"butadiene", builder.Chain(4), 4, 3, 6},
		{"benzene as acene", builder.Acene(1), 6, 6, 6},
		{"naphthalene", builder.Acene(2), 10, 11, 8},
		{"anthracene", builder.Acene(3), 14, 16, 10},
		{"azulene", builder.FusedPair(5, 7), 10, 11, 8},
		{"naphthalene as fused pair", builder.FusedPair(6, 6), 10, 11, 8},
		{"indene", builder.FusedPair(5, 6), 9, 10, 8},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := builder.Build(nil, tc.cons)
			require.NoError(t, err)
			assert.Equal(t, tc.atoms, m.AtomCount())
			assert.Equal(t, tc.bonds, m.BondCount())
			assert.Equal(t, tc.hydrogens, hydrogenTotal(m))
			for i, d := range doubles(m) {
				assert.LessOrEqual(t, d, 1, "atom %d", i)
			}
		})
	}
}

func TestAcene_PerfectKekule(t *testing.T) {
	for k := 1; k <= 8; k++ {
		m := builder.MustBuild(nil, builder.Acene(k))
		assert.Equal(t, 4*k+2, m.AtomCount())
		for i, d := range doubles(m) {
			assert.Equal(t, 1, d, "k=%d atom %d", k, i)
		}
	}
}

func TestBuild_Errors(t *testing.T) {
	_, err := builder.Build(nil, builder.Annulene(2))
	assert.ErrorIs(t, err, builder.ErrTooFewAtoms)
	_, err = builder.Build(nil, builder.Chain(1))
	assert.ErrorIs(t, err, builder.ErrTooFewAtoms)
	_, err = builder.Build(nil, builder.Acene(0))
	assert.ErrorIs(t, err, builder.ErrTooFewAtoms)
	_, err = builder.Build(nil, builder.FusedPair(2, 6))
	assert.ErrorIs(t, err, builder.ErrTooFewAtoms)

	_, err = builder.Build(nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.Build([]builder.BuilderOption{builder.WithHetero(6, molecule.Oxygen, 0)}, builder.Annulene(6))
	assert.ErrorIs(t, err, builder.ErrBadIndex)
	_, err = builder.Build([]builder.BuilderOption{builder.WithCharge(9, 1)}, builder.Annulene(6))
	assert.ErrorIs(t, err, builder.ErrBadIndex)

	_, err = builder.Build([]builder.BuilderOption{builder.WithShuffle()}, builder.Annulene(6))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestOptions_PanicOnMeaninglessInput(t *testing.T) {
	assert.Panics(t, func() { builder.WithHetero(-1, molecule.Nitrogen, 0) })
	assert.Panics(t, func() { builder.WithHetero(0, molecule.Nitrogen, -1) })
	assert.Panics(t, func() { builder.WithCharge(-1, 1) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.MustBuild(nil, builder.Annulene(1)) })
}

func TestWithHeteroAndCharge(t *testing.T) {
	// Pyrrole from cyclopentadiene: the CH2 becomes NH.
	m, err := builder.Build([]builder.BuilderOption{
		builder.WithTitle("pyrrole"),
		builder.WithHetero(4, molecule.Nitrogen, 1),
	}, builder.Annulene(5))
	require.NoError(t, err)
	assert.Equal(t, "pyrrole", m.Title())
	n, _ := m.Atom(4)
	assert.Equal(t, molecule.Nitrogen, n.Element)
	assert.Equal(t, 1, n.Hydrogens)

	// Tropylium: the CH2 of cycloheptatriene becomes CH+.
	m, err = builder.Build([]builder.BuilderOption{builder.WithCharge(6, 1)}, builder.Annulene(7))
	require.NoError(t, err)
	c, _ := m.Atom(6)
	assert.Equal(t, 1, c.Charge)
	assert.Equal(t, 1, c.Hydrogens)
}

func TestBuild_Composes(t *testing.T) {
	m, err := builder.Build(nil, builder.Annulene(6), builder.Annulene(5))
	require.NoError(t, err)
	assert.Equal(t, 11, m.AtomCount())
	assert.Len(t, m.Fragments(), 2)
}

func TestShuffle_DeterministicAndIsomorphic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(7), builder.WithShuffle()}
	a := builder.MustBuild(opts, builder.FusedPair(5, 7))
	b := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(7), builder.WithShuffle()}, builder.FusedPair(5, 7))
	plain := builder.MustBuild(nil, builder.FusedPair(5, 7))

	assert.Equal(t, a.Bonds(), b.Bonds())
	assert.Equal(t, plain.AtomCount(), a.AtomCount())
	assert.Equal(t, plain.BondCount(), a.BondCount())
	assert.Equal(t, hydrogenTotal(plain), hydrogenTotal(a))
	for i, d := range doubles(a) {
		assert.Equal(t, 1, d, "atom %d", i)
	}
}
