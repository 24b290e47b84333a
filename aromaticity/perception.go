package aromaticity

import (
	"sort"

	"github.com/katalvlaran/lvchem/cycles"
)

// RingVerdict is the outcome for one candidate ring.
type RingVerdict struct {
	// Atoms is the ring in canonical order.
	Atoms cycles.Ring
	// Bonds are the ring's bond indices in ring order.
	Bonds []int
	// Electrons is the summed pi-electron contribution.
	Electrons int
	// Aromatic is ValidSum(Electrons) for a ring of contributing atoms.
	Aromatic bool
}

// System is a maximal set of candidate rings sharing atoms.
type System struct {
	Rings []RingVerdict
}

// Aromatic reports whether any ring of the system is aromatic.
func (s System) Aromatic() bool {
	for _, r := range s.Rings {
		if r.Aromatic {
			return true
		}
	}
	return false
}

// Atoms returns every atom of the system in ascending order.
func (s System) Atoms() []int {
	seen := make(map[int]bool)
	var out []int
	for _, r := range s.Rings {
		for _, a := range r.Atoms {
			if !seen[a] {
				seen[a] = true
				out = append(out, a)
			}
		}
	}
	sort.Ints(out)
	return out
}

// Perception is the full, non-mutating result of one perception run.
type Perception struct {
	// Model and Finder name the policies used.
	Model  string
	Finder string
	// Contributions holds, per atom, 0, 1, 2 or Excluded.
	Contributions []int
	// Systems are the candidate ring systems ordered by smallest atom.
	Systems []System
	// AromaticAtoms and AromaticBonds are ascending index sets.
	AromaticAtoms []int
	AromaticBonds []int
}

// RingCount returns the number of candidate rings examined.
func (p *Perception) RingCount() int {
	n := 0
	for _, s := range p.Systems {
		n += len(s.Rings)
	}
	return n
}
