package aromaticity

import (
	"fmt"
	"strings"
)

// Excluded marks an atom that cannot be part of an aromatic ring.
const Excluded = -1

// Model is an electron-donation rule. The set of models is closed: only this
// package can implement it.
type Model interface {
	// Name is the configuration name of the model.
	Name() string

	// IsCandidate is a cheap pre-filter; false implies Contribution would
	// return Excluded.
	IsCandidate(atom int, ctx *Context) bool

	// Contribution returns 0, 1 or 2 pi electrons, or Excluded.
	Contribution(atom int, ctx *Context) int

	sealed()
}

// Model names accepted by ParseModel.
const (
	NameStrict    = "strict"
	NameExocyclic = "exocyclic"
	NameDaylight  = "daylight"
)

// ParseModel resolves a configuration name. "cdk" and "cdk-exo" are accepted
// as aliases of strict and exocyclic.
func ParseModel(name string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameStrict, "cdk":
		return Strict(), nil
	case NameExocyclic, "cdk-exo", "cdk-allow-exocyclic":
		return ExocyclicPermissive(), nil
	case NameDaylight:
		return Daylight(), nil
	}
	return nil, fmt.Errorf("ParseModel(%q): %w", name, ErrUnknownModel)
}

// Contributions evaluates m for every atom of ctx.
//
// Complexity: O(A) model calls.
func Contributions(m Model, ctx *Context) []int {
	out := make([]int, ctx.Len())
	for i := range out {
		out[i] = Excluded
		if m.IsCandidate(i, ctx) {
			out[i] = m.Contribution(i, ctx)
		}
	}
	return out
}
