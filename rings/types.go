package rings

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/neta/species"
)

// Ring size bounds.
const (
	// MinRingSize is the smallest ring ever searched for.
	MinRingSize = 3

	// DefaultMaxRingSize is the upper bound used when no size constraint is given.
	DefaultMaxRingSize = 6

	// UnboundedRingSize caps searches that have no natural upper bound (">", ">=", "!=").
	UnboundedRingSize = 99
)

// Window bounds the ring sizes recorded by Find.
type Window struct {
	// Min is the smallest ring size recorded.
	Min int

	// Max is the largest ring size searched; paths never grow beyond it.
	Max int

	// Exclude, if positive, is a ring size that is never recorded even though it
	// lies inside [Min, Max].
	Exclude int
}

// DefaultWindow returns the [3,6] window used when no ring size is constrained.
func DefaultWindow() Window {
	return Window{Min: MinRingSize, Max: DefaultMaxRingSize}
}

// Ring is an ordered cyclic sequence of atoms.
// Two rings are equal if one is a rotation or reflection of the other.
type Ring struct {
	atoms []*species.Atom
}

// NewRing creates a ring from atoms in walk order. The slice is copied.
func NewRing(atoms ...*species.Atom) Ring {
	return Ring{atoms: append([]*species.Atom(nil), atoms...)}
}

// Size returns the number of atoms in the ring.
func (r Ring) Size() int { return len(r.atoms) }

// Atoms returns the ring atoms in walk order (shared, read-only).
func (r Ring) Atoms() []*species.Atom { return r.atoms }

// Atom returns the atom at position i, wrapping around the cycle in both directions.
func (r Ring) Atom(i int) *species.Atom {
	n := len(r.atoms)
	return r.atoms[((i%n)+n)%n]
}

// Contains reports whether a is a member of the ring.
func (r Ring) Contains(a *species.Atom) bool {
	for _, x := range r.atoms {
		if x == a {
			return true
		}
	}
	return false
}

// Equal reports whether r and other describe the same cycle, comparing atoms by
// identity under every rotation and both traversal directions.
func (r Ring) Equal(other Ring) bool {
	n := len(r.atoms)
	if n != len(other.atoms) {
		return false
	}
	if n == 0 {
		return true
	}
	for shift := 0; shift < n; shift++ {
		if other.atoms[shift] != r.atoms[0] {
			continue
		}
		forward, backward := true, true
		for i := 0; i < n && (forward || backward); i++ {
			if other.Atom(shift+i) != r.atoms[i] {
				forward = false
			}
			if other.Atom(shift-i) != r.atoms[i] {
				backward = false
			}
		}
		if forward || backward {
			return true
		}
	}
	return false
}

// Signature returns the canonical, rotation- and reflection-invariant signature
// of the ring built from atom indices.
func (r Ring) Signature() string {
	idx := make([]int, len(r.atoms))
	for i, a := range r.atoms {
		idx[i] = a.Index()
	}
	return joinSig(canonical(idx))
}

// String renders the ring in walk order, e.g. "C0-C1-N2-C3".
func (r Ring) String() string {
	parts := make([]string, len(r.atoms))
	for i, a := range r.atoms {
		parts[i] = a.String()
	}
	return strings.Join(parts, "-")
}

// GoString implements fmt.GoStringer for readable test failures.
func (r Ring) GoString() string { return fmt.Sprintf("rings.Ring{%s}", r) }
