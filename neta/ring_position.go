package neta

import "github.com/katalvlaran/neta/species"

// RingPosition describes one or more consecutive ring atoms inside a Ring.
// It is only ever evaluated by ring alignment through Matches; Score panics on it.
type RingPosition struct {
	node
	targets

	repeatOp ComparisonOperator
	repeat   int
}

// NewRingPosition returns a RingPosition allowing elements, requiring n=1.
func NewRingPosition(elements ...species.Element) *RingPosition {
	p := &RingPosition{
		node:     node{kind: NodeRingPosition},
		repeatOp: EqualTo,
		repeat:   1,
	}
	for _, el := range elements {
		p.AddElementTarget(el)
	}
	return p
}

// SetModifier accepts "n", the number of consecutive ring atoms described.
func (p *RingPosition) SetModifier(name string, op ComparisonOperator, value int) bool {
	if name != "n" {
		return p.node.SetModifier(name, op, value)
	}
	p.repeatOp, p.repeat = op, value
	return true
}

// ValidRepeatCount reports whether count consecutive matches satisfy "n".
func (p *RingPosition) ValidRepeatCount(count int) bool {
	return Compare(count, p.repeatOp, p.repeat)
}

// Matches tests a against the position. The branch is scored on a fresh group
// holding only a, so it cannot see atoms consumed elsewhere in the ring. On
// success that group, with the identifiers bound to a, is merged into g.
func (p *RingPosition) Matches(a *species.Atom, g *MatchedGroup) int {
	ts := p.targets.score(a)
	if ts == NoMatch {
		return NoMatch
	}

	isolated := NewMatchedGroup()
	isolated.Add(a)
	bs := scoreSequence(p.branch, a, isolated)
	if bs == NoMatch {
		return NoMatch
	}

	p.bind(isolated, a)
	g.Merge(isolated)
	return ts + bs
}

func (p *RingPosition) String() string {
	var inner []string
	if p.repeatOp != EqualTo || p.repeat != 1 {
		inner = append(inner, modifierPart("n", p.repeatOp, p.repeat))
	}
	inner = append(inner, identifierParts(p.identifiers)...)
	inner = append(inner, renderSequence(p.branch)...)

	return bracket(p.targets.String(), inner)
}
