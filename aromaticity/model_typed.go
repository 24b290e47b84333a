// File: model_typed.go
// Role: Hybridisation-based donation models (strict and exocyclic-permissive).

package aromaticity

import "github.com/katalvlaran/lvchem/molecule"

// typedModel reads the atom types assigned by atomtype.Perceive.
type typedModel struct {
	allowExocyclic bool
}

// Strict returns the hybridisation model that excludes both atoms of any
// exocyclic double or triple bond. An N=O bond leaving the ring is exempt,
// so N-oxides written with five-valent nitrogen stay candidates.
//
// Exclusion vetoes every ring through the atom. Tropone and the
// 4-oxypyridinide anion are therefore not aromatic under Strict, although
// a zero contribution would give both rings six electrons.
func Strict() Model { return typedModel{} }

// ExocyclicPermissive returns the hybridisation model without the exocyclic
// exclusion: a ring carbon double-bonded to an exocyclic oxygen donates one
// electron like any other sp2 atom.
func ExocyclicPermissive() Model { return typedModel{allowExocyclic: true} }

func (m typedModel) Name() string {
	if m.allowExocyclic {
		return NameExocyclic
	}
	return NameStrict
}

func (typedModel) sealed() {}

func (typedModel) IsCandidate(atom int, ctx *Context) bool {
	a := ctx.Atom(atom)
	if !a.Typed || !ctx.InRing(atom) {
		return false
	}
	switch a.Hybridization {
	case molecule.HybridSP2, molecule.HybridPlanar3, molecule.HybridSP3:
		return true
	}
	return false
}

func (m typedModel) Contribution(atom int, ctx *Context) int {
	if !m.IsCandidate(atom, ctx) {
		return Excluded
	}
	if !m.allowExocyclic && ctx.ExocyclicPiBonds(atom) > 0 && !nOxide(atom, ctx) {
		return Excluded
	}

	a := ctx.Atom(atom)
	switch a.Hybridization {
	case molecule.HybridSP2, molecule.HybridPlanar3:
		if ctx.HasPiBond(atom) {
			return 1
		}
		if a.LonePairs > 0 {
			return 2
		}
		return 0
	case molecule.HybridSP3:
		if a.LonePairs > 0 {
			return 2
		}
	}
	return Excluded
}

// nOxide reports a single exocyclic pi bond of the form N=O.
func nOxide(atom int, ctx *Context) bool {
	if ctx.ExocyclicPiBonds(atom) != 1 || ctx.Atom(atom).Element != molecule.Nitrogen {
		return false
	}
	return ctx.Atom(ctx.ExocyclicPartner(atom)).Element == molecule.Oxygen
}
