package species

import (
	"fmt"
	"strings"
)

// BondType classifies a bond. It is carried for completeness; the matching
// engine stores required bond types but does not test them.
type BondType int

const (
	BondUnknown BondType = iota
	Single
	Double
	Triple
	Quadruple
	Aromatic
)

var bondTypeNames = [...]string{"unknown", "single", "double", "triple", "quadruple", "aromatic"}

// String implements fmt.Stringer.
func (t BondType) String() string {
	if t < BondUnknown || int(t) >= len(bondTypeNames) {
		return fmt.Sprintf("BondType(%d)", int(t))
	}
	return bondTypeNames[t]
}

// ParseBondType resolves a bond type keyword (case-insensitive).
func ParseBondType(s string) (BondType, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range bondTypeNames {
		if name == key {
			return BondType(i), nil
		}
	}
	return BondUnknown, fmt.Errorf("ParseBondType(%q): %w", s, ErrUnknownBondType)
}

// Bond connects two distinct atoms of the same Species.
type Bond struct {
	index    int
	i, j     *Atom
	bondType BondType
}

// Index returns the position of the bond in its Species.
func (b *Bond) Index() int { return b.index }

// I returns the first atom of the bond.
func (b *Bond) I() *Atom { return b.i }

// J returns the second atom of the bond.
func (b *Bond) J() *Atom { return b.j }

// Type returns the bond type.
func (b *Bond) Type() BondType { return b.bondType }

// Involves reports whether a is one of the two bonded atoms.
func (b *Bond) Involves(a *Atom) bool { return b.i == a || b.j == a }

// Partner returns the atom bonded to origin through b.
// Crossing a bond from an atom it does not contain is a programming error and panics.
func (b *Bond) Partner(origin *Atom) *Atom {
	switch origin {
	case b.i:
		return b.j
	case b.j:
		return b.i
	}
	panic(fmt.Sprintf("species: atom %v is not part of bond %d", origin, b.index))
}

// String renders the bond as "i-j".
func (b *Bond) String() string {
	return fmt.Sprintf("%d-%d", b.i.index, b.j.index)
}
