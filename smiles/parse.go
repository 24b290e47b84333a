// File: parse.go
// Role: Single-pass SMILES tokenizer/parser producing an intermediate atom and
//       bond list, then a molecule.Molecule.
// Determinism:
//   - Atoms are numbered in the order they appear; bonds in the order they
//     are closed (chain bonds immediately, ring bonds at the closing digit).
// Concurrency:
//   - Parse is a pure function; each call owns its parser state.

package smiles

import (
	"fmt"

	"github.com/katalvlaran/lvchem/molecule"
)

// patom is an atom as written.
type patom struct {
	elem     molecule.Element
	aromatic bool
	bracket  bool
	h        int // explicit count for bracket atoms
	charge   int
	isotope  int
	pos      int
}

// pbond is a bond as written; aromatic bonds get their order later.
type pbond struct {
	u, v     int
	order    molecule.Order
	aromatic bool
}

// bondSpec is an explicit bond symbol waiting for its second atom.
type bondSpec struct {
	order    molecule.Order
	aromatic bool
	set      bool
	pos      int
}

type ringOpen struct {
	atom int
	bond bondSpec
	pos  int
}

type parser struct {
	src   string
	pos   int
	atoms []patom
	bonds []pbond
	seen  map[[2]int]bool
	prev  int
	bond  bondSpec
	stack []int // branch openings: atom index
	open  []int // branch openings: byte offset
	rings map[int]ringOpen
}

// Parse reads a SMILES string. The empty string yields an empty molecule.
//
// Errors: *Error wrapping ErrSyntax, ErrUnclosedRing, ErrUnclosedBranch,
// ErrUnknownElement or ErrKekulize.
func Parse(s string) (*molecule.Molecule, error) {
	p := &parser{
		src:   s,
		prev:  -1,
		seen:  make(map[[2]int]bool),
		rings: make(map[int]ringOpen),
	}
	if err := p.run(); err != nil {
		return nil, fmt.Errorf("Parse(%q): %w", s, err)
	}
	m, err := p.build()
	if err != nil {
		return nil, fmt.Errorf("Parse(%q): %w", s, err)
	}

	return m, nil
}

// MustParse is Parse for tests and examples; it panics on error.
func MustParse(s string) *molecule.Molecule {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (p *parser) run() error {
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == '(':
			if p.prev < 0 || p.bond.set {
				return errAt(p.pos, ErrSyntax)
			}
			p.stack = append(p.stack, p.prev)
			p.open = append(p.open, p.pos)
			p.pos++
		case c == ')':
			if len(p.stack) == 0 || p.bond.set {
				return errAt(p.pos, ErrSyntax)
			}
			p.prev = p.stack[len(p.stack)-1]
			p.stack = p.stack[:len(p.stack)-1]
			p.open = p.open[:len(p.open)-1]
			p.pos++
		case c == '.':
			if p.prev < 0 || p.bond.set {
				return errAt(p.pos, ErrSyntax)
			}
			p.prev = -1
			p.pos++
		case isBondSymbol(c):
			if p.prev < 0 || p.bond.set {
				return errAt(p.pos, ErrSyntax)
			}
			p.bond = bondFor(c, p.pos)
			p.pos++
		case c == '%' || isDigit(c):
			if err := p.ringClosure(); err != nil {
				return err
			}
		case c == '[':
			if err := p.bracketAtom(); err != nil {
				return err
			}
		default:
			if err := p.organicAtom(); err != nil {
				return err
			}
		}
	}

	if len(p.stack) > 0 {
		return errAt(p.open[len(p.open)-1], ErrUnclosedBranch)
	}
	if len(p.rings) > 0 {
		first := -1
		for _, r := range p.rings {
			if first < 0 || r.pos < first {
				first = r.pos
			}
		}
		return errAt(first, ErrUnclosedRing)
	}
	if p.bond.set {
		return errAt(p.bond.pos, ErrSyntax)
	}

	return nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isBondSymbol(c byte) bool {
	switch c {
	case '-', '=', '#', '$', ':', '/', '\\':
		return true
	}
	return false
}

func bondFor(c byte, pos int) bondSpec {
	b := bondSpec{order: molecule.OrderSingle, set: true, pos: pos}
	switch c {
	case '=':
		b.order = molecule.OrderDouble
	case '#':
		b.order = molecule.OrderTriple
	case '$':
		b.order = molecule.OrderQuadruple
	case ':':
		b.aromatic = true
	}
	return b
}

// addAtom appends a and bonds it to the previous atom.
func (p *parser) addAtom(a patom) error {
	idx := len(p.atoms)
	p.atoms = append(p.atoms, a)
	if p.prev >= 0 {
		if err := p.link(p.prev, idx, p.bond, a.pos); err != nil {
			return err
		}
	}
	p.bond = bondSpec{}
	p.prev = idx

	return nil
}

// link records a bond. An unwritten bond between two aromatic atoms is aromatic.
func (p *parser) link(u, v int, bs bondSpec, pos int) error {
	if u == v {
		return errAt(pos, fmt.Errorf("%w: %w", ErrSyntax, molecule.ErrSelfBond))
	}
	key := [2]int{min(u, v), max(u, v)}
	if p.seen[key] {
		return errAt(pos, fmt.Errorf("%w: %w", ErrSyntax, molecule.ErrDuplicateBond))
	}
	p.seen[key] = true

	b := pbond{u: u, v: v, order: molecule.OrderSingle}
	switch {
	case bs.set:
		b.order, b.aromatic = bs.order, bs.aromatic
	case p.atoms[u].aromatic && p.atoms[v].aromatic:
		b.aromatic = true
	}
	p.bonds = append(p.bonds, b)

	return nil
}

func (p *parser) ringClosure() error {
	start := p.pos
	if p.prev < 0 {
		return errAt(start, ErrSyntax)
	}

	var num int
	if p.src[p.pos] == '%' {
		if p.pos+2 >= len(p.src) || !isDigit(p.src[p.pos+1]) || !isDigit(p.src[p.pos+2]) {
			return errAt(start, ErrSyntax)
		}
		num = int(p.src[p.pos+1]-'0')*10 + int(p.src[p.pos+2]-'0')
		p.pos += 3
	} else {
		num = int(p.src[p.pos] - '0')
		p.pos++
	}

	r, ok := p.rings[num]
	if !ok {
		p.rings[num] = ringOpen{atom: p.prev, bond: p.bond, pos: start}
		p.bond = bondSpec{}
		return nil
	}
	delete(p.rings, num)

	bs := r.bond
	if p.bond.set {
		if bs.set && (bs.order != p.bond.order || bs.aromatic != p.bond.aromatic) {
			return errAt(start, ErrSyntax)
		}
		bs = p.bond
	}
	p.bond = bondSpec{}

	return p.link(r.atom, p.prev, bs, start)
}

// organicAtom reads an organic-subset atom or the '*' wildcard.
func (p *parser) organicAtom() error {
	start := p.pos
	c := p.src[p.pos]
	a := patom{pos: start, h: molecule.HydrogensUnset}

	switch c {
	case '*':
		a.elem = molecule.Unknown
		a.h = 0
		p.pos++
	case 'C':
		if p.peek(1) == 'l' {
			a.elem = molecule.Chlorine
			p.pos += 2
		} else {
			a.elem = molecule.Carbon
			p.pos++
		}
	case 'B':
		if p.peek(1) == 'r' {
			a.elem = molecule.Bromine
			p.pos += 2
		} else {
			a.elem = molecule.Boron
			p.pos++
		}
	case 'N', 'O', 'P', 'S', 'F', 'I':
		a.elem, _ = molecule.ElementBySymbol(string(c))
		p.pos++
	case 'b', 'c', 'n', 'o', 'p', 's':
		a.elem, _ = molecule.ElementBySymbol(string(c - 'a' + 'A'))
		a.aromatic = true
		p.pos++
	default:
		if c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' {
			return errAt(start, ErrUnknownElement)
		}
		return errAt(start, ErrSyntax)
	}

	return p.addAtom(a)
}

func (p *parser) peek(off int) byte {
	if p.pos+off < len(p.src) {
		return p.src[p.pos+off]
	}
	return 0
}

// aromaticBracket lists the lowercase symbols accepted inside brackets,
// two-letter symbols first.
var aromaticBracket = []string{"se", "as", "te", "b", "c", "n", "o", "p", "s"}

// bracketAtom reads [isotope? symbol chirality? hcount? charge? class?].
func (p *parser) bracketAtom() error {
	start := p.pos
	p.pos++ // '['
	a := patom{pos: start, bracket: true}

	// 1. Isotope.
	a.isotope = p.number()

	// 2. Symbol.
	switch c := p.peek(0); {
	case c == '*':
		a.elem = molecule.Unknown
		p.pos++
	case c >= 'a' && c <= 'z':
		found := false
		for _, sym := range aromaticBracket {
			if len(p.src) >= p.pos+len(sym) && p.src[p.pos:p.pos+len(sym)] == sym {
				a.elem, _ = molecule.ElementBySymbol(string(sym[0]-'a'+'A') + sym[1:])
				a.aromatic = true
				p.pos += len(sym)
				found = true
				break
			}
		}
		if !found {
			return errAt(p.pos, ErrUnknownElement)
		}
	case c >= 'A' && c <= 'Z':
		if n := p.peek(1); n >= 'a' && n <= 'z' {
			if e, ok := molecule.ElementBySymbol(p.src[p.pos : p.pos+2]); ok {
				a.elem = e
				p.pos += 2
				break
			}
		}
		e, ok := molecule.ElementBySymbol(string(c))
		if !ok {
			return errAt(p.pos, ErrUnknownElement)
		}
		a.elem = e
		p.pos++
	default:
		return errAt(p.pos, ErrSyntax)
	}

	// 3. Chirality (ignored).
	for p.peek(0) == '@' {
		p.pos++
	}
	if p.pos > start && p.src[p.pos-1] == '@' {
		switch p.peek(0) {
		case 'T', 'A', 'S', 'O':
			if n := p.peek(1); n >= 'A' && n <= 'Z' {
				p.pos += 2
				p.number()
			}
		}
	}

	// 4. Hydrogen count.
	if p.peek(0) == 'H' {
		p.pos++
		a.h = 1
		if isDigit(p.peek(0)) {
			a.h = p.number()
		}
	}

	// 5. Charge: '+', '++', '+2' and the negative forms.
	if c := p.peek(0); c == '+' || c == '-' {
		sign := 1
		if c == '-' {
			sign = -1
		}
		p.pos++
		mag := 1
		switch {
		case isDigit(p.peek(0)):
			mag = p.number()
		default:
			for p.peek(0) == c {
				mag++
				p.pos++
			}
		}
		a.charge = sign * mag
	}

	// 6. Atom class (ignored).
	if p.peek(0) == ':' {
		p.pos++
		if !isDigit(p.peek(0)) {
			return errAt(p.pos, ErrSyntax)
		}
		p.number()
	}

	if p.peek(0) != ']' {
		return errAt(p.pos, ErrSyntax)
	}
	p.pos++

	return p.addAtom(a)
}

// number consumes a run of decimal digits; 0 when there are none.
func (p *parser) number() int {
	n := 0
	for isDigit(p.peek(0)) {
		n = n*10 + int(p.src[p.pos]-'0')
		p.pos++
	}
	return n
}
