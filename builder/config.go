// SPDX-License-Identifier: MIT
// Package: lvchem/builder
//
// config.go: builder configuration and functional options.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs;
//     constructors themselves never panic.
//   • Determinism is explicit: randomness only through WithSeed/WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvchem/molecule"
)

// hetero is a requested element substitution.
type hetero struct {
	element   molecule.Element
	hydrogens int
}

// builderConfig aggregates all knobs used by Build. Constructors receive it
// by value.
type builderConfig struct {
	title   string
	hetero  map[int]hetero
	charge  map[int]int
	rng     *rand.Rand
	shuffle bool
}

// BuilderOption customises Build.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		hetero: make(map[int]hetero),
		charge: make(map[int]int),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithTitle names the built molecule.
func WithTitle(title string) BuilderOption {
	return func(c *builderConfig) { c.title = title }
}

// WithHetero replaces the atom at index with element e carrying the given
// number of implicit hydrogens. Panics on a negative index or hydrogen count.
func WithHetero(index int, e molecule.Element, hydrogens int) BuilderOption {
	if index < 0 {
		panic("builder: WithHetero(index < 0)")
	}
	if hydrogens < 0 {
		panic("builder: WithHetero(hydrogens < 0)")
	}
	return func(c *builderConfig) {
		c.hetero[index] = hetero{element: e, hydrogens: hydrogens}
	}
}

// WithCharge sets the formal charge of the atom at index. Panics on a
// negative index.
func WithCharge(index, charge int) BuilderOption {
	if index < 0 {
		panic("builder: WithCharge(index < 0)")
	}
	return func(c *builderConfig) { c.charge[index] = charge }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed seeds a new RNG; the same seed gives the same renumbering.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithShuffle renumbers atoms and bonds randomly after construction. It
// needs WithSeed or WithRand.
func WithShuffle() BuilderOption {
	return func(c *builderConfig) { c.shuffle = true }
}
