package neta

import (
	"github.com/katalvlaran/neta/species"
)

// Definition is a complete NETA pattern: a root Base and everything below it.
// A Definition is safe for concurrent scoring as long as neither the tree nor
// the species is modified meanwhile.
type Definition struct {
	root *Base
}

// NewDefinition returns a Definition whose root owns nodes.
func NewDefinition(nodes ...Node) (*Definition, error) {
	root, err := NewBase(nodes...)
	if err != nil {
		return nil, err
	}
	return &Definition{root: root}, nil
}

// MustDefinition is NewDefinition for fixtures: it panics on error.
func MustDefinition(nodes ...Node) *Definition {
	d, err := NewDefinition(nodes...)
	if err != nil {
		panic(err)
	}
	return d
}

// Root returns the root node; identifiers added to it bind to the atom under test.
func (d *Definition) Root() *Base { return d.root }

// Score scores a from a fresh MatchedGroup.
func (d *Definition) Score(a *species.Atom) int {
	return Score(d.root, a, NewMatchedGroup())
}

// MatchedPath scores a and returns the committed group: the atoms consumed by
// the match and the identifier bindings. It is empty when a does not match.
func (d *Definition) MatchedPath(a *species.Atom) *MatchedGroup {
	g := NewMatchedGroup()
	if Score(d.root, a, g) == NoMatch {
		return NewMatchedGroup()
	}
	return g
}

// String renders the definition as NETA text, e.g. "nbonds=1,-C(nbonds=4,nh=4)".
func (d *Definition) String() string {
	s := d.root.body()
	if d.root.reverseLogic {
		return "!(" + s + ")"
	}
	return s
}
