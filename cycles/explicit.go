package cycles

import "slices"

type explicitFinder struct {
	rings []Ring
}

// Explicit returns a Finder serving exactly the given rings (vertex
// sequences in ring order, open form). Find drops rings that are not cycles
// of the graph it is given: fewer than three vertices, repeated or
// out-of-range vertices, or a missing ring edge. A missing edge is how masked
// (excluded) atoms veto a caller-supplied ring.
func Explicit(rings ...[]int) Finder {
	f := explicitFinder{rings: make([]Ring, 0, len(rings))}
	for _, r := range rings {
		f.rings = append(f.rings, Ring(slices.Clone(r)))
	}
	return f
}

func (explicitFinder) Name() string { return "explicit" }

// Find implements Finder.
// Complexity: O(Σ|r|·d).
func (f explicitFinder) Find(g Graph) ([]Ring, error) {
	out := make([]Ring, 0, len(f.rings))
	for _, r := range f.rings {
		if isCycleOf(g, r) {
			out = append(out, Canonical(r))
		}
	}
	sortRings(out)

	return dedupe(out), nil
}

// isCycleOf reports whether r is a simple cycle of g.
func isCycleOf(g Graph, r Ring) bool {
	if len(r) < 3 {
		return false
	}
	seen := make(map[int]struct{}, len(r))
	for i, v := range r {
		if v < 0 || v >= g.Order() {
			return false
		}
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
		if !adjacent(g, v, r[(i+1)%len(r)]) {
			return false
		}
	}
	return true
}
