// File: context.go
// Role: Per-call derived tables shared by the donation models.
// Determinism:
//   - All tables are computed from one molecule.View; nothing is cached
//     across calls.
// Concurrency:
//   - A Context is read-only after NewContext and private to one perception.

package aromaticity

import (
	"github.com/katalvlaran/lvchem/cycles"
	"github.com/katalvlaran/lvchem/molecule"
)

// Context describes one molecule as the donation models see it.
//
// Ring membership is computed on the full graph, before any candidate
// masking, so a bond that closes a ring only through a non-candidate atom
// (a metal, say) still counts as cyclic.
type Context struct {
	view       *molecule.View
	ring       *cycles.Membership
	orderSum   []int
	cyclicPi   []int
	exoPartner []int // other end of the first exocyclic pi bond, -1 if none
	exoPi      []int
	unsetOrder []bool
}

// NewContext derives the tables for v.
//
// Complexity: O(A + B).
func NewContext(v *molecule.View) *Context {
	n := len(v.Atoms)
	c := &Context{
		view:       v,
		ring:       cycles.NewMembership(v),
		orderSum:   make([]int, n),
		cyclicPi:   make([]int, n),
		exoPartner: make([]int, n),
		exoPi:      make([]int, n),
		unsetOrder: make([]bool, n),
	}
	for i := range c.exoPartner {
		c.exoPartner[i] = -1
	}

	for _, b := range v.Bonds {
		u, w := b.Begin, b.End
		if b.Order == molecule.OrderUnset {
			c.unsetOrder[u], c.unsetOrder[w] = true, true
			continue
		}
		c.orderSum[u] += b.Order.Int()
		c.orderSum[w] += b.Order.Int()
		if b.Order.Int() < 2 {
			continue
		}
		if c.ring.BondInRing(u, w) {
			c.cyclicPi[u]++
			c.cyclicPi[w]++
			continue
		}
		c.exoPi[u]++
		c.exoPi[w]++
		if c.exoPartner[u] < 0 {
			c.exoPartner[u] = w
		}
		if c.exoPartner[w] < 0 {
			c.exoPartner[w] = u
		}
	}

	return c
}

// Len returns the number of atoms.
func (c *Context) Len() int { return len(c.view.Atoms) }

// Atom returns atom i.
func (c *Context) Atom(i int) molecule.Atom { return c.view.Atoms[i] }

// InRing reports whether atom i lies on any cycle of the full graph.
func (c *Context) InRing(i int) bool { return c.ring.AtomInRing(i) }

// BondInRing reports whether the bond u-w lies on any cycle.
func (c *Context) BondInRing(u, w int) bool { return c.ring.BondInRing(u, w) }

// Degree returns explicit neighbours plus implicit hydrogens, or -1 when the
// hydrogen count is unknown.
func (c *Context) Degree(i int) int {
	a := c.view.Atoms[i]
	if !a.HasHydrogenCount() {
		return -1
	}
	return len(c.view.Adj[i]) + a.Hydrogens
}

// Valence returns the bond-order sum plus implicit hydrogens, or -1 when
// either is unknown.
func (c *Context) Valence(i int) int {
	a := c.view.Atoms[i]
	if !a.HasHydrogenCount() || c.unsetOrder[i] {
		return -1
	}
	return c.orderSum[i] + a.Hydrogens
}

// CyclicPiBonds counts double/triple bonds of atom i that lie on a ring.
func (c *Context) CyclicPiBonds(i int) int { return c.cyclicPi[i] }

// ExocyclicPiBonds counts double/triple bonds of atom i that lie on no ring.
func (c *Context) ExocyclicPiBonds(i int) int { return c.exoPi[i] }

// ExocyclicPartner returns the far atom of i's first exocyclic pi bond, or -1.
func (c *Context) ExocyclicPartner(i int) int { return c.exoPartner[i] }

// HasPiBond reports whether atom i has any double or triple bond.
func (c *Context) HasPiBond(i int) bool { return c.cyclicPi[i]+c.exoPi[i] > 0 }

// UnsetOrder reports whether any bond of atom i has no order.
func (c *Context) UnsetOrder(i int) bool { return c.unsetOrder[i] }
