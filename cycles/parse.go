package cycles

import "fmt"

// Finder selectors accepted by ParseFinder.
const (
	SelectAll           = "all"
	SelectShortest      = "shortest"
	SelectAllOrShortest = "all-or-shortest"
	SelectExplicit      = "explicit"
)

// ParseFinder maps a configuration selector to a Finder.
//
// limit bounds SelectAll / SelectAllOrShortest (≤ 0 means DefaultLimit).
// rings feeds SelectExplicit and must be non-empty for it.
//
// Errors: ErrUnknownFinder, ErrExplicitNeedsRings.
func ParseFinder(name string, limit int, rings [][]int) (Finder, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	switch name {
	case SelectAll:
		return allFinder{limit: limit}, nil
	case SelectShortest:
		return ShortestPerBond(), nil
	case SelectAllOrShortest:
		return Or(allFinder{limit: limit}, ShortestPerBond()), nil
	case SelectExplicit:
		if len(rings) == 0 {
			return nil, ErrExplicitNeedsRings
		}
		return Explicit(rings...), nil
	}

	return nil, fmt.Errorf("ParseFinder(%q): %w", name, ErrUnknownFinder)
}
