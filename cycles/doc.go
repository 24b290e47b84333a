// Package cycles is the cycle source of lvchem: given an undirected graph of
// atoms it returns the rings an aromaticity model should examine.
//
// What:
//
//   - Finder is the capability consumed by perception: Find(g) → []Ring.
//   - All enumerates every elementary (simple) cycle, including the perimeters
//     of fused systems, and fails with ErrCycleLimitExceeded rather than
//     truncating when a graph has more cycles than the configured limit.
//   - ShortestPerBond returns, for every ring bond, one shortest cycle through
//     it. It is polynomial and therefore a safe fallback.
//   - Explicit serves a caller-supplied ring set.
//   - Or(primary, fallback) switches to fallback only on ErrCycleLimitExceeded.
//   - Membership classifies atoms and bonds as ring / non-ring (bridges).
//
// Graph model:
//
//	Vertices are dense integers 0..Order()-1 (atom indices). Masked hides
//	vertices without renumbering, so rings found on a masked graph are
//	expressed directly in the indices of the full molecule.
//
// Rings:
//
//	A Ring is an open vertex sequence (the closing edge last→first is
//	implicit) in canonical form: smallest vertex first, then the direction
//	whose second vertex is smaller. Two rings over the same cycle are equal
//	slices, which makes deduplication and golden tests straightforward.
//
// Complexity:
//
//   - Membership:       O(V + E).
//   - ShortestPerBond:  O(E·(V + E)).
//   - All:              O((V + E)·(C + 1)) for C cycles, bounded by the limit.
//
// Errors:
//
//   - ErrCycleLimitExceeded: All found more cycles than its limit.
//   - ErrUnknownFinder:      ParseFinder got an unknown selector.
//   - ErrExplicitNeedsRings: the "explicit" selector has no rings to serve.
package cycles
