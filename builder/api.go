// SPDX-License-Identifier: MIT
// Package: lvchem/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(opts, cons...). Creates m, resolves cfg, runs
//     cons in order, then applies substitutions, hydrogens and shuffling.
//   - Constructors append atoms after the ones already present, so several
//     constructors compose into one disconnected molecule.
//   - Determinism: same options, seed and constructor order give identical
//     molecules.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvchem/molecule"
)

// Constructor appends a fixture to m using the resolved configuration.
// Constructors validate parameters first and return sentinel errors.
type Constructor func(m *molecule.Molecule, cfg builderConfig) error

// Build creates a molecule and applies all constructors in order.
//
// Steps:
//  1. Resolve options.
//  2. Run constructors; any error is wrapped "Build: %w".
//  3. Apply WithHetero / WithCharge (ErrBadIndex for unknown atoms).
//  4. Fill missing hydrogen counts from the bond-order sum.
//  5. Renumber when WithShuffle is set (ErrNeedRandSource without an RNG).
func Build(opts []BuilderOption, cons ...Constructor) (*molecule.Molecule, error) {
	cfg := newBuilderConfig(opts...)
	m := molecule.New(molecule.WithTitle(cfg.title))

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	if err := substitute(m, cfg); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	fillHydrogens(m)

	if !cfg.shuffle {
		return m, nil
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("Build: WithShuffle: %w", ErrNeedRandSource)
	}
	return shuffled(m, cfg), nil
}

// MustBuild is Build for tests and benchmarks; it panics on error.
func MustBuild(opts []BuilderOption, cons ...Constructor) *molecule.Molecule {
	m, err := Build(opts, cons...)
	if err != nil {
		panic(err)
	}
	return m
}
