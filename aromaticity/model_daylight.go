// File: model_daylight.go
// Role: Valence and charge based donation model; no atom typing required.

package aromaticity

import "github.com/katalvlaran/lvchem/molecule"

type daylightModel struct{}

// Daylight returns the valence-based model. It needs hydrogen counts and bond
// orders but no hybridisation, and it lets exocyclic pi bonds to
// electronegative atoms "steal" the ring atom's electron, which makes
// 2-pyridone and 4-oxypyridinide aromatic.
func Daylight() Model { return daylightModel{} }

func (daylightModel) Name() string { return NameDaylight }

func (daylightModel) sealed() {}

func (daylightModel) IsCandidate(atom int, ctx *Context) bool {
	return ctx.InRing(atom) && aromaticElement(ctx.Atom(atom).Element)
}

// Contribution applies, in order: abnormal valence, element, ring, degree,
// cyclic pi count, exocyclic pi bond, single cyclic pi bond, lone pair,
// carbocation.
func (daylightModel) Contribution(atom int, ctx *Context) int {
	a := ctx.Atom(atom)
	v := ctx.Valence(atom)
	if v < 0 || !normal(a.Element, a.Charge, v) {
		return Excluded
	}
	if !aromaticElement(a.Element) || !ctx.InRing(atom) || ctx.Degree(atom) > 3 {
		return Excluded
	}

	nCyclic := ctx.CyclicPiBonds(atom)
	if nCyclic > 1 {
		return Excluded
	}
	if ctx.ExocyclicPiBonds(atom) > 0 {
		other := ctx.Atom(ctx.ExocyclicPartner(atom)).Element
		return exocyclicContribution(a.Element, other, a.Charge, nCyclic)
	}
	if nCyclic == 1 {
		return 1
	}
	if a.Charge <= 0 && a.Charge > -3 {
		return 2
	}
	if a.Element == molecule.Carbon && a.Charge == 1 {
		return 0
	}
	return Excluded
}

// exocyclicContribution handles a ring atom with a pi bond leaving the ring.
func exocyclicContribution(e, other molecule.Element, charge, nCyclic int) int {
	switch e {
	case molecule.Carbon:
		if other != molecule.Carbon {
			return 0
		}
		return 1
	case molecule.Nitrogen, molecule.Phosphorus:
		if charge == 1 {
			return 1
		}
		if charge == 0 && other == molecule.Oxygen && nCyclic == 1 {
			return 1
		}
		return Excluded
	case molecule.Sulphur:
		if charge == 0 && other == molecule.Oxygen && nCyclic == 0 {
			return 0
		}
		return Excluded
	}
	return Excluded
}

func aromaticElement(e molecule.Element) bool {
	switch e {
	case molecule.Carbon, molecule.Nitrogen, molecule.Oxygen, molecule.Phosphorus,
		molecule.Sulphur, molecule.Arsenic, molecule.Selenium, molecule.Tellurium:
		return true
	}
	return false
}

// normal reports whether valence v is a usual one for e at the given charge.
func normal(e molecule.Element, charge, v int) bool {
	switch e {
	case molecule.Carbon:
		switch charge {
		case -1, 1:
			return v == 3
		case 0:
			return v == 4
		}
	case molecule.Nitrogen, molecule.Phosphorus, molecule.Arsenic:
		switch charge {
		case -1:
			return v == 2
		case 1:
			return v == 4
		case 0:
			// Five-valent only for nitrogen (N-oxides written N=O).
			return v == 3 || (v == 5 && e == molecule.Nitrogen)
		}
	case molecule.Oxygen:
		switch charge {
		case 1:
			return v == 3
		case 0:
			return v == 2
		}
	case molecule.Sulphur, molecule.Selenium, molecule.Tellurium:
		switch charge {
		case 1:
			return v == 3
		case 0:
			return v == 2 || v == 4 || v == 6
		}
	}
	return false
}
