// File: connection.go
// Role: the Connection kind ("-C(...)"): matches directly bonded neighbours.
//
// Algorithm:
//  1. Candidates are the bond partners of the atom in bond order, skipping atoms
//     already in the group unless the partner is the path root and "root" is set.
//  2. Each candidate must pass the identity test and then the branch, evaluated
//     on its own fork of the group that also holds the candidate.
//  3. Counting stops early once ">"/">=" is satisfied.
//  4. "n" decides the outcome; negation inverts it and never merges anything.
//  5. On success every matched fork is merged and identifiers are bound to every
//     matched neighbour.

package neta

import (
	"github.com/katalvlaran/neta/species"
)

// Connection matches neighbours of the atom under test.
type Connection struct {
	node
	targets

	bondType  species.BondType
	repeatOp  ComparisonOperator
	repeat    int
	allowRoot bool
}

// NewConnection returns a Connection allowing elements, requiring n>=1.
func NewConnection(elements ...species.Element) *Connection {
	c := &Connection{
		node:     node{kind: NodeConnection},
		repeatOp: GreaterThanEqualTo,
		repeat:   1,
	}
	for _, el := range elements {
		c.AddElementTarget(el)
	}
	return c
}

// SetModifier accepts "n".
func (c *Connection) SetModifier(name string, op ComparisonOperator, value int) bool {
	if name != "n" {
		return c.node.SetModifier(name, op, value)
	}
	c.repeatOp, c.repeat = op, value
	return true
}

// SetFlag accepts "root": the path root may be matched again as a neighbour.
func (c *Connection) SetFlag(name string, state bool) bool {
	if name != "root" {
		return c.node.SetFlag(name, state)
	}
	c.allowRoot = state
	return true
}

// SetBondType records the required bond type. It is not consulted while matching.
func (c *Connection) SetBondType(t species.BondType) { c.bondType = t }

// BondType returns the recorded bond type.
func (c *Connection) BondType() species.BondType { return c.bondType }

func (c *Connection) candidates(a *species.Atom, g *MatchedGroup) []*species.Atom {
	out := make([]*species.Atom, 0, a.NBonds())
	for _, b := range a.Bonds() {
		nbr := b.Partner(a)
		if g.Contains(nbr) && !(c.allowRoot && g.IsRoot(nbr)) {
			continue
		}
		out = append(out, nbr)
	}
	return out
}

func (c *Connection) score(a *species.Atom, g *MatchedGroup) int {
	var (
		total   int
		matched []*species.Atom
		forks   []*MatchedGroup
	)
	for _, nbr := range c.candidates(a, g) {
		ts := c.targets.score(nbr)
		if ts == NoMatch {
			continue
		}

		fork := g.Fork()
		fork.Add(nbr)
		bs := scoreSequence(c.branch, nbr, fork)
		if bs == NoMatch {
			continue
		}

		total += ts + bs
		matched = append(matched, nbr)
		forks = append(forks, fork)
		if satisfiedEarly(len(matched), c.repeatOp, c.repeat) {
			break
		}
	}
	logger.Debug3f("%s on %s: %d neighbour(s) matched", c, a, len(matched))

	ok := Compare(len(matched), c.repeatOp, c.repeat)
	if c.reverseLogic {
		return negate(ok)
	}
	if !ok {
		return NoMatch
	}

	for _, f := range forks {
		g.Merge(f)
	}
	for _, nbr := range matched {
		c.bind(g, nbr)
	}
	return total
}

func (c *Connection) String() string {
	var inner []string
	if c.repeatOp != GreaterThanEqualTo || c.repeat != 1 {
		inner = append(inner, modifierPart("n", c.repeatOp, c.repeat))
	}
	if c.allowRoot {
		inner = append(inner, "root")
	}
	inner = append(inner, identifierParts(c.identifiers)...)
	inner = append(inner, renderSequence(c.branch)...)

	return bracket(reversePrefix(c.reverseLogic)+"-"+c.targets.String(), inner)
}
