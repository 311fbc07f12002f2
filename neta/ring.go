// File: ring.go
// Role: the Ring kind ("ring(size=6,C(n=3),N)"): ring membership of the atom
// under test and alignment of ring positions around each ring.
//
// Algorithm:
//  1. Translate "size" into a search window (see window).
//  2. Enumerate the distinct rings through the atom (rings.Find).
//  3. Align the positions around each ring, trying every start atom and both
//     directions; the first accepted alignment scores the ring.
//  4. "n" decides the outcome on the number of matched rings, with early exit
//     for ">"/">=". Negation inverts it and never merges anything.
//  5. On success every matched ring's aggregated group is merged.
//
// Complexity: enumeration is exponential in the worst case, bounded by the
// window maximum. Alignment is O(R · L² · P) for R rings of length L.

package neta

import (
	"fmt"

	"github.com/katalvlaran/neta/rings"
	"github.com/katalvlaran/neta/species"
)

// Ring matches rings passing through the atom under test.
type Ring struct {
	node

	sizeSet  bool
	sizeOp   ComparisonOperator
	size     int
	repeatOp ComparisonOperator
	repeat   int
}

// NewRing returns a Ring with the default [3,6] window requiring n>=1.
func NewRing(positions ...*RingPosition) (*Ring, error) {
	r := &Ring{
		node:     node{kind: NodeRing},
		repeatOp: GreaterThanEqualTo,
		repeat:   1,
	}
	nodes := make([]Node, len(positions))
	for i, p := range positions {
		if p == nil {
			return nil, fmt.Errorf("NewRing: nil position at %d: %w", i, ErrInvalidBranch)
		}
		nodes[i] = p
	}
	if err := r.SetBranch(nodes...); err != nil {
		return nil, err
	}
	return r, nil
}

// SetModifier accepts "size" (ring size) and "n" (number of matching rings).
func (r *Ring) SetModifier(name string, op ComparisonOperator, value int) bool {
	switch name {
	case "size":
		r.sizeSet, r.sizeOp, r.size = true, op, value
	case "n":
		r.repeatOp, r.repeat = op, value
	default:
		return r.node.SetModifier(name, op, value)
	}
	return true
}

// window translates the size constraint into the enumeration window.
// "!=" searches [3, unbounded] and excludes the one forbidden size.
func (r *Ring) window() rings.Window {
	if !r.sizeSet {
		return rings.DefaultWindow()
	}
	switch r.sizeOp {
	case EqualTo:
		return rings.Window{Min: r.size, Max: r.size}
	case LessThan:
		return rings.Window{Min: rings.MinRingSize, Max: r.size - 1}
	case LessThanEqualTo:
		return rings.Window{Min: rings.MinRingSize, Max: r.size}
	case GreaterThan:
		return rings.Window{Min: r.size + 1, Max: rings.UnboundedRingSize}
	case GreaterThanEqualTo:
		return rings.Window{Min: r.size, Max: rings.UnboundedRingSize}
	case NotEqualTo:
		return rings.Window{Min: rings.MinRingSize, Max: rings.UnboundedRingSize, Exclude: r.size}
	}

	logger.Errorf("Ring: unknown size operator %d", int(r.sizeOp))
	return rings.DefaultWindow()
}

func (r *Ring) score(a *species.Atom, g *MatchedGroup) int {
	found := rings.Find(a, r.window())

	var (
		total  int
		nRings int
		groups []*MatchedGroup
	)
	for _, ring := range found {
		s, grp := r.align(ring)
		if s == NoMatch {
			continue
		}
		total += s
		nRings++
		groups = append(groups, grp)
		if satisfiedEarly(nRings, r.repeatOp, r.repeat) {
			break
		}
	}
	logger.Debug3f("%s on %s: %d of %d ring(s) matched", r, a, nRings, len(found))

	ok := Compare(nRings, r.repeatOp, r.repeat)
	if r.reverseLogic {
		return negate(ok)
	}
	if !ok {
		return NoMatch
	}

	for _, grp := range groups {
		g.Merge(grp)
	}
	return total
}

// align tries every start and both directions; the first accepted alignment
// returns the summed position scores and the aggregated group.
func (r *Ring) align(ring rings.Ring) (int, *MatchedGroup) {
	for start := 0; start < ring.Size(); start++ {
		for _, dir := range [...]int{1, -1} {
			if s, grp := r.alignFrom(ring, start, dir); s != NoMatch {
				return s, grp
			}
		}
	}
	return NoMatch, nil
}

// alignFrom walks the positions in order from ring atom start in direction dir.
// A position consumes consecutive atoms until its count is satisfied after at
// least one match, or until an atom fails. A position already satisfied by zero
// atoms makes one optional attempt, unless a single match would break it ("n=0").
// A failure is tolerated only if the count is already valid, in which case the
// atom is left for the next position. The walk never wraps past the ring length.
func (r *Ring) alignFrom(ring rings.Ring, start, dir int) (int, *MatchedGroup) {
	agg := NewMatchedGroup()
	total, consumed := 0, 0
	attempted, succeeded := 0, 0

	for _, n := range r.branch {
		p := n.(*RingPosition)
		count := 0
		for consumed < ring.Size() {
			if p.ValidRepeatCount(count) && (count > 0 || !p.ValidRepeatCount(1)) {
				break
			}

			attempted++
			s := p.Matches(ring.Atom(start+dir*consumed), agg)
			if s == NoMatch {
				if p.ValidRepeatCount(count) {
					attempted--
					break
				}
				return NoMatch, nil
			}

			succeeded++
			count++
			consumed++
			total += s
		}
		if !p.ValidRepeatCount(count) {
			return NoMatch, nil
		}
	}

	if attempted != succeeded {
		return NoMatch, nil
	}
	return total, agg
}

func (r *Ring) String() string {
	var inner []string
	if r.sizeSet {
		inner = append(inner, modifierPart("size", r.sizeOp, r.size))
	}
	if r.repeatOp != GreaterThanEqualTo || r.repeat != 1 {
		inner = append(inner, modifierPart("n", r.repeatOp, r.repeat))
	}
	inner = append(inner, renderSequence(r.branch)...)

	return reversePrefix(r.reverseLogic) + "ring(" + joinParts(inner) + ")"
}
