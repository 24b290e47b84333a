// SPDX-License-Identifier: MIT
//
// File: elements.go
// Role: Element identities (atomic numbers) and symbol lookup.
// Determinism:
//   - Symbol table is a fixed array; lookups are O(1) by number, O(1) by map for symbols.

package molecule

// Element is an atomic number. The zero value is the unknown/wildcard element.
type Element uint8

// Commonly referenced elements.
const (
	Unknown    Element = 0
	Hydrogen   Element = 1
	Helium     Element = 2
	Lithium    Element = 3
	Beryllium  Element = 4
	Boron      Element = 5
	Carbon     Element = 6
	Nitrogen   Element = 7
	Oxygen     Element = 8
	Fluorine   Element = 9
	Sodium     Element = 11
	Magnesium  Element = 12
	Aluminium  Element = 13
	Silicon    Element = 14
	Phosphorus Element = 15
	Sulphur    Element = 16
	Chlorine   Element = 17
	Potassium  Element = 19
	Iron       Element = 26
	Copper     Element = 29
	Zinc       Element = 30
	Germanium  Element = 32
	Arsenic    Element = 33
	Selenium   Element = 34
	Bromine    Element = 35
	Tellurium  Element = 52
	Iodine     Element = 53
)

// symbols indexed by atomic number; "*" for the unknown element.
var symbols = [...]string{
	"*",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba", "La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy",
	"Ho", "Er", "Tm", "Yb", "Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt",
	"Au", "Hg", "Tl", "Pb", "Bi", "Po", "At", "Rn",
}

var bySymbol = func() map[string]Element {
	m := make(map[string]Element, len(symbols))
	for i, s := range symbols {
		m[s] = Element(i)
	}
	return m
}()

// Symbol returns the element symbol, or "?" for numbers outside the table.
func (e Element) Symbol() string {
	if int(e) < len(symbols) {
		return symbols[e]
	}
	return "?"
}

// String implements fmt.Stringer.
func (e Element) String() string { return e.Symbol() }

// ElementBySymbol resolves a case-sensitive element symbol ("C", "Cl", "*").
func ElementBySymbol(symbol string) (Element, bool) {
	e, ok := bySymbol[symbol]
	return e, ok
}

// ValenceElectrons returns the number of outer-shell electrons for main-group
// elements, and false for elements where the notion is not used by lvchem
// (transition metals, noble gases, the unknown element).
func (e Element) ValenceElectrons() (int, bool) {
	switch e {
	case Hydrogen, Lithium, Sodium, Potassium:
		return 1, true
	case Beryllium, Magnesium:
		return 2, true
	case Boron, Aluminium:
		return 3, true
	case Carbon, Silicon, Germanium:
		return 4, true
	case Nitrogen, Phosphorus, Arsenic:
		return 5, true
	case Oxygen, Sulphur, Selenium, Tellurium:
		return 6, true
	case Fluorine, Chlorine, Bromine, Iodine:
		return 7, true
	}
	return 0, false
}
