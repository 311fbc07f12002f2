package neta

import (
	"strings"

	"github.com/katalvlaran/neta/species"
)

// Base is the root of a definition and the bracketed group "( ... )": its
// branch is evaluated as an AND-chain against the atom under test.
type Base struct {
	node
}

// NewBase returns a Base owning nodes.
func NewBase(nodes ...Node) (*Base, error) {
	b := &Base{node{kind: NodeBase}}
	if err := b.SetBranch(nodes...); err != nil {
		return nil, err
	}
	return b, nil
}

// score forks g, adds a, and runs the branch. Only a successful, non-negated
// chain is committed and binds the identifiers to a.
func (b *Base) score(a *species.Atom, g *MatchedGroup) int {
	fork := g.Fork()
	fork.Add(a)

	s := scoreSequence(b.branch, a, fork)
	if b.reverseLogic {
		return negate(s != NoMatch)
	}
	if s == NoMatch {
		return NoMatch
	}

	b.bind(fork, a)
	g.Commit(fork)
	return s
}

// body renders the branch and identifiers without brackets.
func (b *Base) body() string {
	parts := renderSequence(b.branch)
	for _, id := range b.identifiers {
		parts = append(parts, "#"+id)
	}
	return strings.Join(parts, ",")
}

// String renders a nested group as "(...)", negated as "!(...)".
func (b *Base) String() string {
	return reversePrefix(b.reverseLogic) + "(" + b.body() + ")"
}
