package neta

import (
	"strings"

	"github.com/katalvlaran/neta/species"
)

// AtomType is a named pattern bound to an element. Atom types are owned by an
// external registry and referenced, never owned, by pattern nodes.
type AtomType interface {
	Name() string
	Element() species.Element
	Definition() *Definition
}

// Targeted is implemented by the kinds that test an atom's identity
// (Character, Connection and RingPosition).
type Targeted interface {
	Node
	AddElementTarget(el species.Element)
	AddAtomTypeTarget(t AtomType)
}

// targets is the allowed identity set of a node: elements or atom types.
type targets struct {
	elements []species.Element
	types    []AtomType
}

// AddElementTarget allows element el.
func (t *targets) AddElementTarget(el species.Element) {
	t.elements = append(t.elements, el)
}

// AddAtomTypeTarget allows any atom that scores against type at.
func (t *targets) AddAtomTypeTarget(at AtomType) {
	t.types = append(t.types, at)
}

// ElementTargets returns the allowed elements.
func (t *targets) ElementTargets() []species.Element {
	return append([]species.Element(nil), t.elements...)
}

// AtomTypeTargets returns the allowed atom types.
func (t *targets) AtomTypeTargets() []AtomType {
	return append([]AtomType(nil), t.types...)
}

// score tests a against the element set first, then the atom types in order.
// An element hit scores 1; a type hit scores 1 plus the type's own score. The
// first type whose element matches and whose pattern scores wins.
func (t *targets) score(a *species.Atom) int {
	for _, el := range t.elements {
		if a.Element() == el {
			return 1
		}
	}
	for _, at := range t.types {
		if at.Element() != a.Element() {
			continue
		}
		if s := at.Definition().Score(a); s != NoMatch {
			return 1 + s
		}
	}
	return NoMatch
}

// String renders the set: "C", "[C,O]", "&CA", "[C,&CA]".
func (t *targets) String() string {
	parts := make([]string, 0, len(t.elements)+len(t.types))
	for _, el := range t.elements {
		parts = append(parts, el.Symbol())
	}
	for _, at := range t.types {
		parts = append(parts, "&"+at.Name())
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return "[" + strings.Join(parts, ",") + "]"
}
