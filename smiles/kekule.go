// File: kekule.go
// Role: Implicit hydrogens and Kekulé assignment for parsed SMILES.
// Determinism:
//   - The matching search visits atoms most-constrained first, ties broken by
//     index, and neighbours in bond order; equal input gives equal output.
// Complexity:
//   - The need-graph is split into connected components, each matched on its
//     own; a component with an odd number of atoms fails without search.
//   - Exponential worst case per component, linear on ordinary fused aromatic
//     systems where the most-constrained choice is forced almost everywhere.

package smiles

import (
	"sort"

	"github.com/katalvlaran/lvchem/molecule"
)

// build computes hydrogens, assigns a Kekulé structure to aromatic bonds and
// materialises the molecule.
func (p *parser) build() (*molecule.Molecule, error) {
	n := len(p.atoms)

	// 1. Bond-order sum per atom, aromatic bonds counted as single.
	used := make([]int, n)
	for _, b := range p.bonds {
		o := b.order.Int()
		if b.aromatic {
			o = 1
		}
		used[b.u] += o
		used[b.v] += o
	}

	// 2. Hydrogens and pi-bond demand.
	hyd := make([]int, n)
	need := make([]bool, n)
	for i, a := range p.atoms {
		switch {
		case a.bracket:
			hyd[i] = a.h
			if a.aromatic {
				if t := target(a.elem, a.charge, used[i]+a.h); t >= 0 {
					need[i] = t-used[i]-a.h > 0
				}
			}
		case a.aromatic:
			t := target(a.elem, 0, used[i])
			if t >= 0 {
				hyd[i] = max(0, t-used[i]-1)
				need[i] = t-used[i]-hyd[i] > 0
			}
		default:
			hyd[i] = a.h
			if a.h == molecule.HydrogensUnset {
				hyd[i] = 0
				if t := target(a.elem, 0, used[i]); t >= 0 {
					hyd[i] = t - used[i]
				}
			}
		}
	}

	// 3. Perfect matching over the atoms that need a pi bond.
	double, failed := kekulize(n, need, p.bonds)
	if failed >= 0 {
		return nil, errAt(p.atoms[failed].pos, ErrKekulize)
	}

	// 4. Materialise.
	m := molecule.New(molecule.WithCapacity(n, len(p.bonds)))
	for i, a := range p.atoms {
		m.AddAtom(molecule.Atom{
			Element:   a.elem,
			Charge:    a.charge,
			Hydrogens: hyd[i],
			Isotope:   a.isotope,
			Aromatic:  a.aromatic,
		})
	}
	for k, b := range p.bonds {
		order := b.order
		if b.aromatic {
			order = molecule.OrderSingle
			if double[k] {
				order = molecule.OrderDouble
			}
		}
		id, err := m.AddBond(b.u, b.v, order)
		if err != nil {
			return nil, errAt(p.atoms[b.v].pos, err)
		}
		if b.aromatic {
			if err := m.UpdateBond(id, func(x *molecule.Bond) { x.Aromatic = true }); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// kekulize picks, for every atom with need[i], exactly one aromatic bond to
// another needing atom such that no atom is covered twice. It returns, per
// bond, whether the bond becomes double, and -1; or the smallest atom of the
// first component that has no perfect matching.
//
// Steps:
//  1. Adjacency restricted to aromatic bonds between needing atoms.
//  2. Connected components in order of their smallest atom.
//  3. Odd components fail immediately; even ones are matched independently,
//     so a failure never revisits the structures chosen for other components.
func kekulize(n int, need []bool, bonds []pbond) ([]bool, int) {
	type arc struct{ to, bond int }
	adj := make([][]arc, n)
	for k, b := range bonds {
		if b.aromatic && need[b.u] && need[b.v] {
			adj[b.u] = append(adj[b.u], arc{b.v, k})
			adj[b.v] = append(adj[b.v], arc{b.u, k})
		}
	}

	mate := make([]int, n)
	for i := range mate {
		mate[i] = -1
	}
	double := make([]bool, len(bonds))

	free := func(v int) int {
		c := 0
		for _, a := range adj[v] {
			if mate[a.to] < 0 {
				c++
			}
		}
		return c
	}

	var solve func(comp []int) bool
	solve = func(comp []int) bool {
		// Most-constrained unmatched atom; zero options is an immediate dead end.
		pick, best := -1, 0
		for _, v := range comp {
			if mate[v] >= 0 {
				continue
			}
			c := free(v)
			if c == 0 {
				return false
			}
			if pick < 0 || c < best {
				pick, best = v, c
			}
		}
		if pick < 0 {
			return true
		}

		for _, a := range adj[pick] {
			if mate[a.to] >= 0 {
				continue
			}
			mate[pick], mate[a.to] = a.to, pick
			double[a.bond] = true
			if solve(comp) {
				return true
			}
			mate[pick], mate[a.to] = -1, -1
			double[a.bond] = false
		}
		return false
	}

	seen := make([]bool, n)
	for start := 0; start < n; start++ {
		if !need[start] || seen[start] {
			continue
		}
		comp := []int{start}
		seen[start] = true
		for q := 0; q < len(comp); q++ {
			for _, a := range adj[comp[q]] {
				if !seen[a.to] {
					seen[a.to] = true
					comp = append(comp, a.to)
				}
			}
		}
		sort.Ints(comp)
		if len(comp)%2 == 1 || !solve(comp) {
			return nil, start
		}
	}

	return double, -1
}
