package cycles

// Finder is a cycle source: it returns the rings of g worth examining.
//
// Contract:
//   - Rings are canonical (see Canonical) and pairwise distinct.
//   - Output order is deterministic: by size, then lexicographic.
//   - A finder that cannot complete within its own bounds returns an error
//     wrapping ErrCycleLimitExceeded and no rings.
//   - Finders hold no state between calls and may be shared by goroutines.
type Finder interface {
	// Name is a short, stable identifier used in logs and metrics.
	Name() string

	// Find returns the rings of g.
	Find(g Graph) ([]Ring, error)
}
