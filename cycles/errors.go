package cycles

import "errors"

var (
	// ErrCycleLimitExceeded indicates the graph has more elementary cycles
	// than the finder is allowed to enumerate.
	ErrCycleLimitExceeded = errors.New("cycles: cycle limit exceeded")

	// ErrUnknownFinder indicates an unrecognised finder selector.
	ErrUnknownFinder = errors.New("cycles: unknown finder")

	// ErrExplicitNeedsRings indicates the explicit selector was requested
	// without a ring set.
	ErrExplicitNeedsRings = errors.New("cycles: explicit finder requires rings")

	// ErrBadLimit indicates a non-positive cycle limit.
	ErrBadLimit = errors.New("cycles: limit must be positive")
)
