package species

import "fmt"

// Atom is a vertex of a Species graph.
//
// Accessors are lock-free; see the package documentation for the
// no-mutation-during-matching contract.
type Atom struct {
	index    int
	element  Element
	bonds    []*Bond
	geometry Geometry
}

// Index returns the position of the atom in its Species.
func (a *Atom) Index() int { return a.index }

// Element returns the atom's element.
func (a *Atom) Element() Element { return a.element }

// Bonds returns the atom's bonds in insertion order.
// The returned slice is shared with the atom and must be treated as read-only.
func (a *Atom) Bonds() []*Bond { return a.bonds }

// NBonds returns the number of bonds the atom takes part in.
func (a *Atom) NBonds() int { return len(a.bonds) }

// Geometry returns the atom's geometry classification.
//
// An explicitly set value always wins. Otherwise the classification falls back to what
// connectivity alone decides: Unbound for zero bonds, Terminal for one, GeometryUnknown beyond.
func (a *Atom) Geometry() Geometry {
	if a.geometry != GeometryUnknown {
		return a.geometry
	}
	switch len(a.bonds) {
	case 0:
		return Unbound
	case 1:
		return Terminal
	}
	return GeometryUnknown
}

// BondTo returns the bond between a and other, or nil if they are not bonded.
func (a *Atom) BondTo(other *Atom) *Bond {
	for _, b := range a.bonds {
		if b.Involves(other) {
			return b
		}
	}
	return nil
}

// IsBondedTo reports whether a and other share a bond.
func (a *Atom) IsBondedTo(other *Atom) bool { return a.BondTo(other) != nil }

// String renders the atom as "<symbol><index>", e.g. "C0".
func (a *Atom) String() string {
	if a == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s%d", a.element.Symbol(), a.index)
}
