package neta

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/neta/species"
)

// Or holds alternative sequences ("a,b|c"). Every alternative is scored on its
// own fork; the highest score wins, the earliest alternative on ties, and only
// the winner's fork is committed.
type Or struct {
	node
	alternatives [][]Node
}

// NewOr returns an Or over the given alternative sequences.
func NewOr(alternatives ...[]Node) (*Or, error) {
	o := &Or{node: node{kind: NodeOr}}
	for _, alt := range alternatives {
		if err := o.AddAlternative(alt...); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// AddAlternative appends one alternative sequence.
func (o *Or) AddAlternative(nodes ...Node) error {
	for i, n := range nodes {
		if n == nil || n.Type() == NodeRingPosition {
			return fmt.Errorf("Or.AddAlternative: invalid node at %d: %w", i, ErrInvalidBranch)
		}
	}
	o.alternatives = append(o.alternatives, append([]Node(nil), nodes...))
	return nil
}

// Alternatives returns the alternative sequences.
func (o *Or) Alternatives() [][]Node {
	out := make([][]Node, len(o.alternatives))
	for i, alt := range o.alternatives {
		out[i] = append([]Node(nil), alt...)
	}
	return out
}

func (o *Or) score(a *species.Atom, g *MatchedGroup) int {
	best := NoMatch
	var winner *MatchedGroup
	for _, alt := range o.alternatives {
		fork := g.Fork()
		if s := scoreSequence(alt, a, fork); s > best {
			best, winner = s, fork
		}
	}

	if o.reverseLogic {
		return negate(best != NoMatch)
	}
	if best == NoMatch {
		return NoMatch
	}
	g.Commit(winner)
	return best
}

func (o *Or) String() string {
	alts := make([]string, len(o.alternatives))
	for i, alt := range o.alternatives {
		alts[i] = joinParts(renderSequence(alt))
	}
	body := strings.Join(alts, "|")
	if o.reverseLogic {
		return "!(" + body + ")"
	}
	return body
}
