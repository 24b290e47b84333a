package cycles

import (
	"errors"
	"fmt"
)

type orFinder struct {
	primary, fallback Finder
}

// Or returns a Finder that runs primary and, only if it reports
// ErrCycleLimitExceeded, runs fallback instead. Any other error from primary
// is returned as is.
func Or(primary, fallback Finder) Finder {
	return orFinder{primary: primary, fallback: fallback}
}

func (f orFinder) Name() string {
	return fmt.Sprintf("%s-or-%s", f.primary.Name(), f.fallback.Name())
}

// Find implements Finder.
func (f orFinder) Find(g Graph) ([]Ring, error) {
	rings, err := f.primary.Find(g)
	if errors.Is(err, ErrCycleLimitExceeded) {
		return f.fallback.Find(g)
	}
	return rings, err
}
