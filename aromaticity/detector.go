// SPDX-License-Identifier: MIT
//
// File: detector.go
// Role: Detector construction and the perceive / find / apply operations.
// Determinism:
//   - Results depend only on the molecule, the model and the finder; output
//     index sets are sorted ascending.
// Concurrency:
//   - A Detector holds no mutable state. Perceive and FindBonds only read the
//     molecule (one snapshot under its read lock); Apply writes flags under
//     the molecule's write lock. Callers serialise Apply on a shared molecule.

package aromaticity

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/katalvlaran/lvchem/cycles"
	"github.com/katalvlaran/lvchem/internal/logging"
	"github.com/katalvlaran/lvchem/molecule"
)

// Config selects the two policies of a Detector. Both are required; there
// are no implicit defaults.
type Config struct {
	Model  Model
	Cycles cycles.Finder
}

// Option customises a Detector.
type Option func(*Detector)

// WithLogger sets the logger for debug records; nil keeps the no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Detector) {
		if l != nil {
			d.log = l
		}
	}
}

// Detector perceives aromaticity with a fixed model and cycle finder.
type Detector struct {
	model  Model
	finder cycles.Finder
	log    *slog.Logger
}

// New validates cfg and returns a Detector.
//
// Errors: ErrNoModel, ErrNoCycleFinder.
func New(cfg Config, opts ...Option) (*Detector, error) {
	if cfg.Model == nil {
		return nil, ErrNoModel
	}
	if cfg.Cycles == nil {
		return nil, ErrNoCycleFinder
	}
	d := &Detector{model: cfg.Model, finder: cfg.Cycles, log: logging.NewNop()}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// MustNew is New for static configurations; it panics on error.
func MustNew(cfg Config, opts ...Option) *Detector {
	d, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// Model returns the configured donation model.
func (d *Detector) Model() Model { return d.model }

// Finder returns the configured cycle finder.
func (d *Detector) Finder() cycles.Finder { return d.finder }

// Perceive computes the aromatic atoms and bonds of m without modifying it.
//
// Steps:
//  1. Snapshot m and derive the Context on the full graph.
//  2. Contribution per atom; excluded atoms are masked out.
//  3. Cycles of the masked graph from the finder, deduplicated.
//  4. Ring systems by shared atoms; per-ring electron sum and verdict.
//  5. Union of the bonds of aromatic rings; atoms are their endpoints.
//
// Errors: ErrNilMolecule; finder errors (e.g. cycles.ErrCycleLimitExceeded)
// wrapped with the finder name.
// Complexity: dominated by the finder; O(A + B + Σ|ring|) otherwise.
func (d *Detector) Perceive(m *molecule.Molecule) (*Perception, error) {
	if m == nil {
		return nil, ErrNilMolecule
	}

	// 1. One consistent view of the molecule.
	view := m.Snapshot()
	ctx := NewContext(view)

	// 2. Contributions and the candidate mask.
	electrons := Contributions(d.model, ctx)
	keep := make([]bool, len(electrons))
	for i, e := range electrons {
		keep[i] = e != Excluded
	}

	// 3. Candidate rings, each made only of contributing atoms.
	rings, err := d.finder.Find(cycles.Masked(view, keep))
	if err != nil {
		d.log.Debug("cycle finder failed", "finder", d.finder.Name(), "error", err)
		return nil, fmt.Errorf("Perceive: %s: %w", d.finder.Name(), err)
	}
	rings = uniqueRings(rings)

	// 4. Systems and per-ring verdicts.
	p := &Perception{
		Model:         d.model.Name(),
		Finder:        d.finder.Name(),
		Contributions: electrons,
	}
	bondSet := make(map[int]bool)
	for _, members := range groupSystems(rings) {
		sys := System{Rings: make([]RingVerdict, 0, len(members))}
		for _, ri := range members {
			v := verdict(view, rings[ri], electrons)
			if v.Aromatic {
				for _, b := range v.Bonds {
					bondSet[b] = true
				}
			}
			sys.Rings = append(sys.Rings, v)
		}
		p.Systems = append(p.Systems, sys)
	}

	// 5. Union of aromatic ring bonds and their endpoints.
	p.AromaticBonds, p.AromaticAtoms = collect(view, bondSet)

	d.log.Debug("aromaticity perceived",
		"model", p.Model,
		"finder", p.Finder,
		"atoms", len(view.Atoms),
		"rings", p.RingCount(),
		"aromatic_bonds", len(p.AromaticBonds),
	)

	return p, nil
}

// FindBonds returns the indices of the bonds that would be flagged aromatic.
// m is not modified.
func (d *Detector) FindBonds(m *molecule.Molecule) ([]int, error) {
	p, err := d.Perceive(m)
	if err != nil {
		return nil, err
	}
	return p.AromaticBonds, nil
}

// Apply perceives aromaticity and replaces every aromatic flag of m with the
// result: all atom, bond and molecule flags are cleared, then the perceived
// atoms and bonds are set, and the molecule flag is set iff at least one bond
// is aromatic. It returns the number of aromatic bonds.
//
// The result is computed before anything is written, so on error the
// molecule is untouched.
func (d *Detector) Apply(m *molecule.Molecule) (int, error) {
	p, err := d.Perceive(m)
	if err != nil {
		return 0, err
	}
	if err := m.ApplyAromaticity(p.AromaticAtoms, p.AromaticBonds); err != nil {
		return 0, fmt.Errorf("Apply: %w", err)
	}
	return len(p.AromaticBonds), nil
}

// uniqueRings drops repeated rings, keeping first occurrences.
func uniqueRings(rings []cycles.Ring) []cycles.Ring {
	seen := make(map[string]bool, len(rings))
	out := rings[:0:0]
	for _, r := range rings {
		if r.Len() < 3 {
			continue
		}
		k := r.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, r)
	}
	return out
}

// verdict sums the ring's contributions and resolves its bonds.
func verdict(view *molecule.View, r cycles.Ring, electrons []int) RingVerdict {
	v := RingVerdict{
		Atoms:     r,
		Electrons: ElectronSum(r.Closed(), electrons, nil),
	}

	complete := true
	for _, a := range r {
		if a < 0 || a >= len(electrons) || electrons[a] == Excluded {
			complete = false
		}
	}
	for _, e := range r.Edges() {
		b := view.BondBetween(e[0], e[1])
		if b < 0 {
			complete = false
			continue
		}
		v.Bonds = append(v.Bonds, b)
	}
	v.Aromatic = complete && ValidSum(v.Electrons)

	return v
}

// collect turns the bond set into sorted bond and atom index lists.
func collect(view *molecule.View, bondSet map[int]bool) ([]int, []int) {
	if len(bondSet) == 0 {
		return nil, nil
	}
	bonds := make([]int, 0, len(bondSet))
	atomSet := make(map[int]bool)
	for b := range bondSet {
		bonds = append(bonds, b)
		atomSet[view.Bonds[b].Begin] = true
		atomSet[view.Bonds[b].End] = true
	}
	atoms := make([]int, 0, len(atomSet))
	for a := range atomSet {
		atoms = append(atoms, a)
	}
	sort.Ints(bonds)
	sort.Ints(atoms)

	return bonds, atoms
}
