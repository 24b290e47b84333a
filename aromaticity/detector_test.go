package aromaticity_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvchem/aromaticity"
	"github.com/katalvlaran/lvchem/cycles"
	"github.com/katalvlaran/lvchem/molecule"
)

func TestNew_RequiresBothPolicies(t *testing.T) {
	_, err := aromaticity.New(aromaticity.Config{Cycles: cycles.All()})
	assert.ErrorIs(t, err, aromaticity.ErrNoModel)

	_, err = aromaticity.New(aromaticity.Config{Model: aromaticity.Daylight()})
	assert.ErrorIs(t, err, aromaticity.ErrNoCycleFinder)

	_, err = aromaticity.New(aromaticity.Config{})
	assert.Error(t, err)

	assert.Panics(t, func() { aromaticity.MustNew(aromaticity.Config{}) })

	d, err := aromaticity.New(aromaticity.Config{Model: aromaticity.Strict(), Cycles: cycles.ShortestPerBond()},
		aromaticity.WithLogger(nil))
	require.NoError(t, err)
	assert.Equal(t, aromaticity.NameStrict, d.Model().Name())
	assert.Equal(t, "shortest", d.Finder().Name())
}

func TestNilMolecule(t *testing.T) {
	_, err := daylight.Perceive(nil)
	assert.ErrorIs(t, err, aromaticity.ErrNilMolecule)
	_, err = daylight.FindBonds(nil)
	assert.ErrorIs(t, err, aromaticity.ErrNilMolecule)
	_, err = daylight.Apply(nil)
	assert.ErrorIs(t, err, aromaticity.ErrNilMolecule)
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name  string
		input string
		d     *aromaticity.Detector
		want  int
	}{
		{"benzene/strict", Benzene, strict, 6},
		{"benzene/daylight", Benzene, daylight, 6},
		{"furan/strict", Furan, strict, 5},
		{"furan/daylight", Furan, daylight, 5},
		{"quinone/strict", Quinone, strict, 0},
		{"quinone/exocyclic", Quinone, exocyclic, 6},
		{"quinone/daylight", Quinone, daylight, 0},
		{"azulene/strict", Azulene, strict, 10},
		{"azulene/daylight", Azulene, daylight, 10},
		{"oxypyridinide/strict", Oxypyridinide, strict, 0},
		{"oxypyridinide/exocyclic", Oxypyridinide, exocyclic, 0},
		{"oxypyridinide/daylight", Oxypyridinide, daylight, 6},
		{"pyridinone/strict", Pyridinone, strict, 0},
		{"pyridinone/exocyclic", Pyridinone, exocyclic, 0},
		{"pyridinone/daylight", Pyridinone, daylight, 6},
		{"copper complex/daylight", CopperComplex, daylight, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, bondCount(t, tc.d, typed(t, tc.input)))
		})
	}
}

func TestMoreRings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		strict   int
		daylight int
	}{
		{"pyrrole", "C1=CNC=C1", 5, 5},
		{"thiophene", "C1=CSC=C1", 5, 5},
		{"pyridine", "C1=CC=NC=C1", 6, 6},
		{"tropylium", "[CH+]1C=CC=CC=C1", 7, 7},
		{"cyclopentadienide", "[CH-]1C=CC=C1", 5, 5},
		{"cyclopentadiene", "C1=CCC=C1", 0, 0},
		{"cyclobutadiene", "C1=CC=C1", 0, 0},
		{"cyclooctatetraene", "C1=CC=CC=CC=C1", 0, 0},
		{"pyridine N-oxide, charge separated", "[O-][N+]1=CC=CC=C1", 6, 6},
		{"pyridine N-oxide, five-valent", "O=N1=CC=CC=C1", 6, 6},
		{"naphthalene", "C1=CC=C2C=CC=CC2=C1", 11, 11},
		{"biphenyl", "C1=CC=C(C=C1)C1=CC=CC=C1", 12, 12},
		{"tropone", "O=C1C=CC=CC=C1", 0, 7},
		{"cyclohexane", "C1CCCCC1", 0, 0},
		{"acyclic", "C=CC=CC=C", 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.strict, bondCount(t, strict, typed(t, tc.input)), "strict")
			assert.Equal(t, tc.daylight, bondCount(t, daylight, parse(t, tc.input)), "daylight")
		})
	}
}

func TestDaylight_FiveValentNitrogenOnly(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"O=N1=CC=CC=C1", 6},
		{"C1=CC=PC=C1", 6},
		{"O=P1=CC=CC=C1", 0},
		{"O=[As]1=CC=CC=C1", 0},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, bondCount(t, daylight, parse(t, tc.input)))
		})
	}
}

// Untyped atoms are excluded by the hybridisation models.
func TestStrict_RequiresTyping(t *testing.T) {
	assert.Zero(t, bondCount(t, strict, parse(t, Benzene)))
}

func TestApply_SetsExactlyThePerceivedFlags(t *testing.T) {
	m := typed(t, "C1=CC=CC=C1CC1=CC=CO1")
	n, err := strict.Apply(m)
	require.NoError(t, err)
	assert.Equal(t, 11, n)
	assert.True(t, m.IsAromatic())
	assert.Len(t, m.AromaticBonds(), 11)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 7, 8, 9, 10, 11}, m.AromaticAtoms())

	b, ok := m.BondBetween(5, 6)
	require.True(t, ok)
	bond, _ := m.Bond(b)
	assert.False(t, bond.Aromatic, "linker bond")
}

func TestApply_ClearsStaleFlags(t *testing.T) {
	for _, s := range []string{"c1ccc1", "O=c1ccc(=O)cc1"} {
		t.Run(s, func(t *testing.T) {
			m := parse(t, s)
			require.NotEmpty(t, m.AromaticAtoms(), "input flags")

			n, err := daylight.Apply(m)
			require.NoError(t, err)
			assert.Zero(t, n)
			assert.Nil(t, m.AromaticAtoms())
			assert.Nil(t, m.AromaticBonds())
			assert.False(t, m.IsAromatic())
		})
	}
}

func TestApply_RepresentationInvariant(t *testing.T) {
	kekule := parse(t, "C1=CC2=CC3=CC4=C(C=CC=C4)C=C3C=C2C=C1")
	aromatic := parse(t, "c1cc2cc3cc4c(cccc4)cc3cc2cc1")

	_, err := daylight.Apply(kekule)
	require.NoError(t, err)
	_, err = daylight.Apply(aromatic)
	require.NoError(t, err)

	diff, err := molecule.FlagDiff(kekule, aromatic)
	require.NoError(t, err)
	assert.Empty(t, diff)
	assert.Len(t, kekule.AromaticAtoms(), 18)
}

func TestApply_ErrorLeavesMoleculeUntouched(t *testing.T) {
	limited, err := cycles.AllWithLimit(1)
	require.NoError(t, err)
	d := aromaticity.MustNew(aromaticity.Config{Model: aromaticity.Daylight(), Cycles: limited})

	m := parse(t, "c1ccc2ccccc2c1")
	before := m.Clone()

	_, err = d.Apply(m)
	require.Error(t, err)
	assert.True(t, errors.Is(err, cycles.ErrCycleLimitExceeded))
	assert.EqualError(t, err, "Perceive: all: more than 1 cycles: cycles: cycle limit exceeded")

	diff, derr := molecule.FlagDiff(before, m)
	require.NoError(t, derr)
	assert.Empty(t, diff)
	assert.Len(t, m.AromaticAtoms(), 10)
}

func TestFinderChoice(t *testing.T) {
	shortest := aromaticity.MustNew(aromaticity.Config{Model: aromaticity.Daylight(), Cycles: cycles.ShortestPerBond()})
	limited, err := cycles.AllWithLimit(1)
	require.NoError(t, err)
	fallback := aromaticity.MustNew(aromaticity.Config{
		Model:  aromaticity.Daylight(),
		Cycles: cycles.Or(limited, cycles.ShortestPerBond()),
	})

	// Azulene is aromatic only through its ten-membered perimeter.
	assert.Equal(t, 10, bondCount(t, daylight, parse(t, Azulene)))
	assert.Zero(t, bondCount(t, shortest, parse(t, Azulene)))

	// Naphthalene's six-rings pass on their own.
	assert.Equal(t, 11, bondCount(t, shortest, parse(t, "C1=CC=C2C=CC=CC2=C1")))
	assert.Equal(t, 11, bondCount(t, fallback, parse(t, "C1=CC=C2C=CC=CC2=C1")))

	explicit := aromaticity.MustNew(aromaticity.Config{
		Model:  aromaticity.Daylight(),
		Cycles: cycles.Explicit([]int{0, 1, 2, 3, 4, 5}, []int{0, 1, 2}),
	})
	assert.Equal(t, 6, bondCount(t, explicit, parse(t, Benzene)))
}

func TestPerceive_Report(t *testing.T) {
	p, err := daylight.Perceive(parse(t, Azulene))
	require.NoError(t, err)

	assert.Equal(t, aromaticity.NameDaylight, p.Model)
	assert.Equal(t, "all", p.Finder)
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, p.Contributions)
	require.Len(t, p.Systems, 1)
	assert.Equal(t, 3, p.RingCount())
	assert.True(t, p.Systems[0].Aromatic())
	assert.Len(t, p.Systems[0].Atoms(), 10)

	sums := map[int]int{}
	for _, r := range p.Systems[0].Rings {
		sums[r.Atoms.Len()] = r.Electrons
		assert.Equal(t, r.Atoms.Len() == 10, r.Aromatic)
		assert.Len(t, r.Bonds, r.Atoms.Len())
	}
	assert.Equal(t, map[int]int{5: 5, 7: 7, 10: 10}, sums)
	assert.Len(t, p.AromaticAtoms, 10)
}

func TestPerceive_DoesNotMutate(t *testing.T) {
	m := parse(t, Benzene)
	_, err := daylight.Perceive(m)
	require.NoError(t, err)
	assert.False(t, m.IsAromatic())
	assert.Nil(t, m.AromaticBonds())
}

func TestPerceive_SeparateSystems(t *testing.T) {
	p, err := daylight.Perceive(parse(t, "C1=CC=CC=C1.C1CCCC1.C1=CC=CO1"))
	require.NoError(t, err)
	// The cyclopentane is masked out entirely; benzene and furan remain.
	require.Len(t, p.Systems, 2)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, p.Systems[0].Atoms())
	assert.Equal(t, []int{11, 12, 13, 14, 15}, p.Systems[1].Atoms())
}
