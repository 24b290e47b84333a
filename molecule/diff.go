// SPDX-License-Identifier: MIT
//
// File: diff.go
// Role: Flag-level comparison of two molecules with identical indexing.

package molecule

import "fmt"

// FlagDiff compares two molecules atom-by-atom and bond-by-bond and returns a
// description of every difference in element, charge or aromatic flag, and
// in the molecule-level flag. An empty result means the aromaticity
// assignments are indistinguishable.
//
// Both molecules must have the same atom and bond counts and the same atom
// indexing (for example, two readings of equivalent SMILES written in the
// same atom order). Bonds are matched by endpoints, not by index, so the two
// inputs may list bonds in different orders.
//
// Errors:
//   - ErrNilMolecule if either argument is nil.
//   - ErrSizeMismatch if counts differ.
//
// Complexity: O(A + B·d).
func FlagDiff(a, b *Molecule) ([]string, error) {
	if a == nil || b == nil {
		return nil, ErrNilMolecule
	}
	va, vb := a.Snapshot(), b.Snapshot()
	if len(va.Atoms) != len(vb.Atoms) || len(va.Bonds) != len(vb.Bonds) {
		return nil, fmt.Errorf("FlagDiff: %d/%d atoms, %d/%d bonds: %w",
			len(va.Atoms), len(vb.Atoms), len(va.Bonds), len(vb.Bonds), ErrSizeMismatch)
	}

	var out []string
	if va.Aromatic != vb.Aromatic {
		out = append(out, fmt.Sprintf("molecule: aromatic %t != %t", va.Aromatic, vb.Aromatic))
	}
	for i := range va.Atoms {
		x, y := va.Atoms[i], vb.Atoms[i]
		if x.Element != y.Element {
			out = append(out, fmt.Sprintf("atom %d: element %s != %s", i, x.Element, y.Element))
		}
		if x.Charge != y.Charge {
			out = append(out, fmt.Sprintf("atom %d: charge %d != %d", i, x.Charge, y.Charge))
		}
		if x.Aromatic != y.Aromatic {
			out = append(out, fmt.Sprintf("atom %d: aromatic %t != %t", i, x.Aromatic, y.Aromatic))
		}
	}
	for i, bond := range va.Bonds {
		j := vb.BondBetween(bond.Begin, bond.End)
		if j < 0 {
			out = append(out, fmt.Sprintf("bond %d-%d: missing", bond.Begin, bond.End))
			continue
		}
		if bond.Aromatic != vb.Bonds[j].Aromatic {
			out = append(out, fmt.Sprintf("bond %d (%d-%d): aromatic %t != %t",
				i, bond.Begin, bond.End, bond.Aromatic, vb.Bonds[j].Aromatic))
		}
	}

	return out, nil
}
