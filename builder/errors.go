// SPDX-License-Identifier: MIT
// Package: lvchem/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w: "Acene: k=0 < min=1: <sentinel>".

package builder

import "errors"

// ErrTooFewAtoms indicates a size parameter below the constructor's minimum.
var ErrTooFewAtoms = errors.New("builder: parameter too small")

// ErrBadIndex indicates an option that refers to an atom the constructors did
// not create.
var ErrBadIndex = errors.New("builder: atom index out of range")

// ErrNeedRandSource indicates WithShuffle without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a failed graph mutation.
var ErrConstructFailed = errors.New("builder: construction failed")
