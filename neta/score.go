// File: score.go
// Role: the single scoring entry point and the AND-sequence evaluator.

package neta

import (
	"fmt"

	"github.com/katalvlaran/neta/species"
)

// Score evaluates n against atom a. On success the atoms consumed by n are
// merged into g and the score is returned; on NoMatch g is left untouched.
//
// Scoring a *RingPosition here is a construction bug: it is logged and then
// panics with ErrRingPositionDispatch.
func Score(n Node, a *species.Atom, g *MatchedGroup) int {
	switch t := n.(type) {
	case *Base:
		return t.score(a, g)
	case *BondCount:
		return t.score(a)
	case *HydrogenCount:
		return t.score(a)
	case *Geometry:
		return t.score(a)
	case *Character:
		return t.score(a)
	case *Connection:
		return t.score(a, g)
	case *Ring:
		return t.score(a, g)
	case *Or:
		return t.score(a, g)
	case *RingPosition:
		logger.Errorf("Score: ring position %s reached through generic dispatch", t)
		panic(ErrRingPositionDispatch)
	}

	panic(fmt.Sprintf("neta: Score: unhandled node type %T", n))
}

// scoreSequence evaluates nodes as an AND-chain against a, accumulating into g.
// The first NoMatch aborts the chain; callers pass a fork and discard it then.
// An empty chain scores 0.
func scoreSequence(nodes []Node, a *species.Atom, g *MatchedGroup) int {
	total := 0
	for _, n := range nodes {
		s := Score(n, a, g)
		if s == NoMatch {
			return NoMatch
		}
		total += s
	}
	return total
}
