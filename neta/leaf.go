// File: leaf.go
// Role: leaf constraint kinds that inspect a single scalar of the atom under
// test: bond count, hydrogen count and geometry.
// Negation: these kinds record SetReverseLogic but never consult it.

package neta

import (
	"github.com/katalvlaran/neta/species"
)

// countTarget is an optional "op value" constraint.
type countTarget struct {
	set   bool
	op    ComparisonOperator
	value int
}

func (c *countTarget) score(actual int) int {
	if !c.set {
		return NoMatch
	}
	if Compare(actual, c.op, c.value) {
		return 1
	}
	return NoMatch
}

func (c *countTarget) render(keyword string) string {
	if !c.set {
		return keyword
	}
	return modifierPart(keyword, c.op, c.value)
}

// BondCount tests the number of bonds of the atom. Without a target it never matches.
type BondCount struct {
	node
	target countTarget
}

// NewBondCount returns a BondCount without a target.
func NewBondCount() *BondCount {
	return &BondCount{node: node{kind: NodeBondCount}}
}

// NewBondCountOf returns a BondCount requiring "nbonds op value".
func NewBondCountOf(op ComparisonOperator, value int) *BondCount {
	b := NewBondCount()
	b.SetTarget(op, value)
	return b
}

// SetTarget sets the required bond count.
func (b *BondCount) SetTarget(op ComparisonOperator, value int) {
	b.target = countTarget{set: true, op: op, value: value}
}

func (b *BondCount) score(a *species.Atom) int {
	return b.target.score(a.NBonds())
}

func (b *BondCount) String() string {
	return reversePrefix(b.reverseLogic) + b.target.render("nbonds")
}

// HydrogenCount tests the number of hydrogen atoms bonded to the atom.
// Without a target it never matches.
type HydrogenCount struct {
	node
	target countTarget
}

// NewHydrogenCount returns a HydrogenCount without a target.
func NewHydrogenCount() *HydrogenCount {
	return &HydrogenCount{node: node{kind: NodeHydrogenCount}}
}

// NewHydrogenCountOf returns a HydrogenCount requiring "nh op value".
func NewHydrogenCountOf(op ComparisonOperator, value int) *HydrogenCount {
	h := NewHydrogenCount()
	h.SetTarget(op, value)
	return h
}

// SetTarget sets the required hydrogen count.
func (h *HydrogenCount) SetTarget(op ComparisonOperator, value int) {
	h.target = countTarget{set: true, op: op, value: value}
}

func (h *HydrogenCount) score(a *species.Atom) int {
	return h.target.score(countHydrogens(a))
}

func (h *HydrogenCount) String() string {
	return reversePrefix(h.reverseLogic) + h.target.render("nh")
}

func countHydrogens(a *species.Atom) int {
	n := 0
	for _, b := range a.Bonds() {
		if b.Partner(a).Element() == species.H {
			n++
		}
	}
	return n
}

// Geometry tests the precomputed geometry of the atom. Only "=" and "!=" are
// meaningful; any other operator behaves as "=".
type Geometry struct {
	node
	op       ComparisonOperator
	geometry species.Geometry
}

// NewGeometry returns a Geometry requiring "geometry op g".
func NewGeometry(op ComparisonOperator, g species.Geometry) *Geometry {
	return &Geometry{node: node{kind: NodeGeometry}, op: op, geometry: g}
}

func (g *Geometry) score(a *species.Atom) int {
	same := a.Geometry() == g.geometry
	if g.op == NotEqualTo {
		same = !same
	}
	if same {
		return 1
	}
	return NoMatch
}

func (g *Geometry) String() string {
	op := EqualTo
	if g.op == NotEqualTo {
		op = NotEqualTo
	}
	return reversePrefix(g.reverseLogic) + "geometry" + op.String() + g.geometry.String()
}
