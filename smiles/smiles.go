// Package smiles implements a minimal parser for the SMILES line notation.
// It builds a small molecular graph (atoms and bonds) from a single SMILES
// string, covering the organic subset, bracket atoms, branches, ring
// closures and explicit bonds. It is deliberately strict: anything that is
// not well-formed SMILES is a parse error, which makes the parser usable as
// a trial-parse test for format detection.
package smiles

import "fmt"

// Atom is one node of the molecular graph.
type Atom struct {
	Symbol   string
	Aromatic bool
	Isotope  int
	Charge   int
	// HCount is the explicit hydrogen count of a bracket atom, or -1 when
	// unspecified.
	HCount int
}

// Bond connects two atoms by their indices in Molecule.Atoms.
type Bond struct {
	From     int
	To       int
	Order    int
	Aromatic bool
}

// Molecule is the parsed structural graph. A degenerate molecule with a
// single atom and no bonds is valid.
type Molecule struct {
	Atoms []Atom
	Bonds []Bond
}

// ParseError describes why a string is not valid SMILES.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("smiles: position %d: %s", e.Pos, e.Msg)
}

// organicSubset lists the element symbols that may appear outside brackets.
var organicSubset = map[string]bool{
	"B": true, "C": true, "N": true, "O": true, "P": true,
	"S": true, "F": true, "Cl": true, "Br": true, "I": true,
}

// aromaticSubset lists the lowercase aromatic symbols allowed outside
// brackets.
var aromaticSubset = map[byte]string{
	'b': "B", 'c': "C", 'n': "N", 'o': "O", 'p': "P", 's': "S",
}

// elements lists the symbols accepted inside bracket atoms.
var elements = map[string]bool{
	"H": true, "He": true, "Li": true, "Be": true, "B": true, "C": true,
	"N": true, "O": true, "F": true, "Ne": true, "Na": true, "Mg": true,
	"Al": true, "Si": true, "P": true, "S": true, "Cl": true, "Ar": true,
	"K": true, "Ca": true, "Ti": true, "V": true, "Cr": true, "Mn": true,
	"Fe": true, "Co": true, "Ni": true, "Cu": true, "Zn": true, "Ga": true,
	"Ge": true, "As": true, "Se": true, "Br": true, "Kr": true, "Mo": true,
	"Ru": true, "Rh": true, "Pd": true, "Ag": true, "Cd": true, "Sn": true,
	"Sb": true, "Te": true, "I": true, "Xe": true, "Cs": true, "Ba": true,
	"W": true, "Re": true, "Os": true, "Ir": true, "Pt": true, "Au": true,
	"Hg": true, "Tl": true, "Pb": true, "Bi": true,
}

// bracketAromatic lists symbols that may be written lowercase (aromatic)
// inside brackets.
var bracketAromatic = map[string]string{
	"b": "B", "c": "C", "n": "N", "o": "O", "p": "P", "s": "S",
	"as": "As", "se": "Se",
}

type ringRef struct {
	atom     int
	bond     byte // explicit bond char at the opening, 0 if none
}

type parser struct {
	in    string
	pos   int
	mol   Molecule
	prev  int   // index of the previous atom, -1 when none
	bond  byte  // pending explicit bond char, 0 when none
	stack []int // branch stack of saved prev indices
	rings map[int]ringRef
}

// Parse parses a single SMILES string into a Molecule. It returns a
// *ParseError for any malformed input; it never panics and never treats a
// malformed string as anything but an error value.
func Parse(input string) (*Molecule, error) {
	if input == "" {
		return nil, &ParseError{Pos: 0, Msg: "empty input"}
	}
	p := &parser{in: input, prev: -1, rings: make(map[int]ringRef)}
	if err := p.run(); err != nil {
		return nil, err
	}
	return &p.mol, nil
}

func (p *parser) errf(format string, args ...any) *ParseError {
	return &ParseError{Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) run() error {
	for p.pos < len(p.in) {
		c := p.in[p.pos]
		switch {
		case c >= 'A' && c <= 'Z':
			if err := p.organicAtom(); err != nil {
				return err
			}
		case c >= 'a' && c <= 'z':
			symbol, ok := aromaticSubset[c]
			if !ok {
				return p.errf("unknown aromatic symbol %q", string(c))
			}
			p.addAtom(Atom{Symbol: symbol, Aromatic: true, HCount: -1})
			p.pos++
		case c == '*':
			p.addAtom(Atom{Symbol: "*", HCount: -1})
			p.pos++
		case c == '[':
			if err := p.bracketAtom(); err != nil {
				return err
			}
		case c >= '0' && c <= '9':
			if err := p.ringClosure(int(c - '0')); err != nil {
				return err
			}
			p.pos++
		case c == '%':
			if err := p.percentClosure(); err != nil {
				return err
			}
		case c == '-' || c == '=' || c == '#' || c == ':' || c == '/' || c == '\\':
			if p.prev < 0 {
				return p.errf("bond %q with no preceding atom", string(c))
			}
			if p.bond != 0 {
				return p.errf("two consecutive bond symbols")
			}
			p.bond = c
			p.pos++
		case c == '(':
			if p.prev < 0 {
				return p.errf("branch with no preceding atom")
			}
			if p.bond != 0 {
				return p.errf("branch after dangling bond")
			}
			p.stack = append(p.stack, p.prev)
			p.pos++
		case c == ')':
			if len(p.stack) == 0 {
				return p.errf("unmatched branch close")
			}
			if p.bond != 0 {
				return p.errf("dangling bond before branch close")
			}
			p.prev = p.stack[len(p.stack)-1]
			p.stack = p.stack[:len(p.stack)-1]
			p.pos++
		case c == '.':
			if p.prev < 0 {
				return p.errf("component separator with no preceding atom")
			}
			if p.bond != 0 {
				return p.errf("dangling bond before component separator")
			}
			p.prev = -1
			p.pos++
		default:
			return p.errf("unexpected character %q", string(c))
		}
	}
	if p.bond != 0 {
		return p.errf("dangling bond at end of input")
	}
	if len(p.stack) != 0 {
		return p.errf("unclosed branch")
	}
	if len(p.rings) != 0 {
		return p.errf("unclosed ring bond")
	}
	if len(p.mol.Atoms) == 0 {
		return p.errf("no atoms")
	}
	return nil
}

// organicAtom consumes an organic-subset atom, preferring the two-letter
// symbols Cl and Br.
func (p *parser) organicAtom() error {
	symbol := string(p.in[p.pos])
	if p.pos+1 < len(p.in) {
		two := p.in[p.pos : p.pos+2]
		if two == "Cl" || two == "Br" {
			symbol = two
		}
	}
	if !organicSubset[symbol] {
		return p.errf("symbol %q is not in the organic subset", symbol)
	}
	p.addAtom(Atom{Symbol: symbol, HCount: -1})
	p.pos += len(symbol)
	return nil
}

// bracketAtom consumes "[isotope? symbol chirality? H-count? charge? class?]".
func (p *parser) bracketAtom() error {
	p.pos++ // consume '['
	atom := Atom{HCount: 0}
	atom.Isotope = p.digits()

	symbol, aromatic, err := p.bracketSymbol()
	if err != nil {
		return err
	}
	atom.Symbol = symbol
	atom.Aromatic = aromatic

	// chirality markers are accepted and discarded
	for p.pos < len(p.in) && p.in[p.pos] == '@' {
		p.pos++
	}

	if p.pos < len(p.in) && p.in[p.pos] == 'H' && atom.Symbol != "H" {
		p.pos++
		atom.HCount = 1
		if n := p.digits(); n > 0 {
			atom.HCount = n
		}
	}

	if p.pos < len(p.in) && (p.in[p.pos] == '+' || p.in[p.pos] == '-') {
		sign := 1
		if p.in[p.pos] == '-' {
			sign = -1
		}
		mark := p.in[p.pos]
		count := 0
		for p.pos < len(p.in) && p.in[p.pos] == mark {
			count++
			p.pos++
		}
		if n := p.digits(); n > 0 {
			if count != 1 {
				return p.errf("charge digits after repeated charge symbol")
			}
			count = n
		}
		atom.Charge = sign * count
	}

	if p.pos < len(p.in) && p.in[p.pos] == ':' {
		p.pos++
		if p.digits() == 0 {
			return p.errf("atom class without digits")
		}
	}

	if p.pos >= len(p.in) || p.in[p.pos] != ']' {
		return p.errf("unterminated bracket atom")
	}
	p.pos++
	p.addAtom(atom)
	return nil
}

func (p *parser) bracketSymbol() (string, bool, error) {
	if p.pos >= len(p.in) {
		return "", false, p.errf("unterminated bracket atom")
	}
	c := p.in[p.pos]
	if c == '*' {
		p.pos++
		return "*", false, nil
	}
	if c >= 'a' && c <= 'z' {
		// aromatic symbol, possibly two letters (as, se)
		if p.pos+1 < len(p.in) {
			if symbol, ok := bracketAromatic[p.in[p.pos:p.pos+2]]; ok {
				p.pos += 2
				return symbol, true, nil
			}
		}
		if symbol, ok := bracketAromatic[string(c)]; ok {
			p.pos++
			return symbol, true, nil
		}
		return "", false, p.errf("unknown aromatic symbol %q", string(c))
	}
	if c < 'A' || c > 'Z' {
		return "", false, p.errf("expected element symbol")
	}
	symbol := string(c)
	if p.pos+1 < len(p.in) {
		next := p.in[p.pos+1]
		if next >= 'a' && next <= 'z' && elements[p.in[p.pos:p.pos+2]] {
			symbol = p.in[p.pos : p.pos+2]
		}
	}
	if !elements[symbol] {
		return "", false, p.errf("unknown element %q", symbol)
	}
	p.pos += len(symbol)
	return symbol, false, nil
}

// digits consumes a run of decimal digits and returns their value, or 0 if
// none were present.
func (p *parser) digits() int {
	n := 0
	for p.pos < len(p.in) && p.in[p.pos] >= '0' && p.in[p.pos] <= '9' {
		n = n*10 + int(p.in[p.pos]-'0')
		p.pos++
	}
	return n
}

// percentClosure consumes a two-digit "%nn" ring closure.
func (p *parser) percentClosure() error {
	if p.pos+2 >= len(p.in) ||
		p.in[p.pos+1] < '0' || p.in[p.pos+1] > '9' ||
		p.in[p.pos+2] < '0' || p.in[p.pos+2] > '9' {
		return p.errf("ring closure %% needs two digits")
	}
	n := int(p.in[p.pos+1]-'0')*10 + int(p.in[p.pos+2]-'0')
	if err := p.ringClosure(n); err != nil {
		return err
	}
	p.pos += 3
	return nil
}

// ringClosure opens or closes ring bond n on the previous atom.
func (p *parser) ringClosure(n int) error {
	if p.prev < 0 {
		return p.errf("ring closure with no preceding atom")
	}
	ref, open := p.rings[n]
	if !open {
		p.rings[n] = ringRef{atom: p.prev, bond: p.bond}
		p.bond = 0
		return nil
	}
	delete(p.rings, n)
	if ref.atom == p.prev {
		return p.errf("ring bond %d closes on its own atom", n)
	}
	bond := ref.bond
	if p.bond != 0 {
		if bond != 0 && bond != p.bond {
			return p.errf("conflicting ring bond orders for closure %d", n)
		}
		bond = p.bond
		p.bond = 0
	}
	p.addBond(ref.atom, p.prev, bond)
	return nil
}

// addAtom appends the atom and bonds it to the previous atom when one is
// pending in the current chain.
func (p *parser) addAtom(a Atom) {
	p.mol.Atoms = append(p.mol.Atoms, a)
	idx := len(p.mol.Atoms) - 1
	if p.prev >= 0 {
		p.addBond(p.prev, idx, p.bond)
		p.bond = 0
	}
	p.prev = idx
}

func (p *parser) addBond(from, to int, bond byte) {
	b := Bond{From: from, To: to, Order: 1}
	switch bond {
	case '=':
		b.Order = 2
	case '#':
		b.Order = 3
	case ':':
		b.Aromatic = true
	case 0:
		if p.mol.Atoms[from].Aromatic && p.mol.Atoms[to].Aromatic {
			b.Aromatic = true
		}
	}
	p.mol.Bonds = append(p.mol.Bonds, b)
}
