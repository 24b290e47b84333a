package smiles

import "github.com/katalvlaran/lvchem/molecule"

// valences lists the allowed valences of e at the given formal charge, in
// increasing order. Nil means no rule applies (no implicit hydrogens and no
// pi-bond requirement).
func valences(e molecule.Element, charge int) []int {
	switch e {
	case molecule.Boron:
		switch charge {
		case 0:
			return []int{3}
		case -1:
			return []int{4}
		case 1:
			return []int{2}
		}
	case molecule.Carbon:
		switch charge {
		case 0:
			return []int{4}
		case -1, 1:
			return []int{3}
		}
	case molecule.Nitrogen, molecule.Phosphorus, molecule.Arsenic:
		switch charge {
		case 0:
			return []int{3, 5}
		case 1:
			return []int{4}
		case -1:
			return []int{2}
		}
	case molecule.Oxygen:
		switch charge {
		case 0:
			return []int{2}
		case 1:
			return []int{3}
		case -1:
			return []int{1}
		}
	case molecule.Sulphur, molecule.Selenium, molecule.Tellurium:
		switch charge {
		case 0:
			return []int{2, 4, 6}
		case 1:
			return []int{3, 5}
		case -1:
			return []int{1, 3, 5}
		}
	case molecule.Fluorine, molecule.Chlorine, molecule.Bromine, molecule.Iodine:
		if charge == 0 {
			return []int{1}
		}
	}
	return nil
}

// target returns the smallest allowed valence >= used, or -1.
func target(e molecule.Element, charge, used int) int {
	for _, v := range valences(e, charge) {
		if v >= used {
			return v
		}
	}
	return -1
}
