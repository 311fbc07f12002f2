// File: node.go
// Role: the closed set of pattern node kinds and the state they share.
// Contract:
//   - Node is sealed: only this package implements it.
//   - Trees are built once through the construction API and are read-only
//     while being scored; scoring never mutates a node.

package neta

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/katalvlaran/neta/species"
)

// NoMatch is the score of a node that did not match. Every other score is >= 0.
const NoMatch = -1

// NodeType identifies the kind of a pattern node.
type NodeType int

const (
	NodeBase NodeType = iota
	NodeBondCount
	NodeCharacter
	NodeConnection
	NodeGeometry
	NodeHydrogenCount
	NodeOr
	NodeRing
	NodeRingPosition
)

var nodeTypeNames = [...]string{
	"Base", "BondCount", "Character", "Connection", "Geometry",
	"HydrogenCount", "Or", "Ring", "RingPosition",
}

func (t NodeType) String() string {
	if t < NodeBase || int(t) >= len(nodeTypeNames) {
		return fmt.Sprintf("NodeType(%d)", int(t))
	}
	return nodeTypeNames[t]
}

// ParseNodeType accepts any casing of a kind name: "ring_position",
// "RingPosition" and "ring-position" all yield NodeRingPosition.
func ParseNodeType(s string) (NodeType, error) {
	camel := strcase.ToCamel(strings.TrimSpace(s))
	for i, name := range nodeTypeNames {
		if name == camel {
			return NodeType(i), nil
		}
	}
	return NodeBase, fmt.Errorf("ParseNodeType(%q): %w", s, ErrUnknownNodeType)
}

// traits is the per-kind capability table consulted by the construction API.
type traits struct {
	modifiers   []string
	flags       []string
	ownsBranch  bool
	identifiers bool
}

var kindTraits = map[NodeType]traits{
	NodeBase:         {ownsBranch: true, identifiers: true},
	NodeConnection:   {modifiers: []string{"n"}, flags: []string{"root"}, ownsBranch: true, identifiers: true},
	NodeRing:         {modifiers: []string{"size", "n"}, ownsBranch: true},
	NodeRingPosition: {modifiers: []string{"n"}, ownsBranch: true, identifiers: true},
}

// Node is a pattern tree node.
type Node interface {
	// Type returns the node kind.
	Type() NodeType

	// IsValidModifier reports whether name is a modifier of this kind.
	IsValidModifier(name string) bool
	// IsValidFlag reports whether name is a flag of this kind.
	IsValidFlag(name string) bool
	// SetModifier sets modifier name to "op value". Unknown names are logged and rejected.
	SetModifier(name string, op ComparisonOperator, value int) bool
	// SetFlag sets flag name. Unknown names are logged and rejected.
	SetFlag(name string, state bool) bool
	// AddIdentifier registers name to be bound to the atom(s) this node consumes.
	// It reports false for a duplicate name or a kind that consumes no atom.
	AddIdentifier(name string) bool
	// Identifiers returns the registered identifier names.
	Identifiers() []string
	// SetReverseLogic marks the node as negated.
	SetReverseLogic()
	// ReverseLogic reports whether the node is negated.
	ReverseLogic() bool
	// SetBranch replaces the child sequence.
	SetBranch(nodes ...Node) error
	// Branch returns the child sequence.
	Branch() []Node

	// String renders the node as NETA text.
	String() string

	core() *node
}

// node carries the state shared by every kind.
type node struct {
	kind         NodeType
	reverseLogic bool
	identifiers  []string
	branch       []Node
}

func (n *node) core() *node { return n }

func (n *node) Type() NodeType { return n.kind }

func (n *node) IsValidModifier(name string) bool {
	for _, m := range kindTraits[n.kind].modifiers {
		if m == name {
			return true
		}
	}
	return false
}

func (n *node) IsValidFlag(name string) bool {
	for _, f := range kindTraits[n.kind].flags {
		if f == name {
			return true
		}
	}
	return false
}

// SetModifier is the fallback for kinds without modifiers.
func (n *node) SetModifier(name string, _ ComparisonOperator, _ int) bool {
	logger.Errorf("%s: unknown modifier '%s'", n.kind, name)
	return false
}

// SetFlag is the fallback for kinds without flags.
func (n *node) SetFlag(name string, _ bool) bool {
	logger.Errorf("%s: unknown flag '%s'", n.kind, name)
	return false
}

func (n *node) AddIdentifier(name string) bool {
	if !kindTraits[n.kind].identifiers {
		logger.Errorf("%s: identifiers are not supported ('%s')", n.kind, name)
		return false
	}
	for _, id := range n.identifiers {
		if id == name {
			return false
		}
	}
	n.identifiers = append(n.identifiers, name)
	return true
}

func (n *node) Identifiers() []string { return append([]string(nil), n.identifiers...) }

func (n *node) SetReverseLogic() { n.reverseLogic = true }

func (n *node) ReverseLogic() bool { return n.reverseLogic }

// SetBranch validates and installs a child sequence for kinds that own one.
// Ring positions are only accepted by rings, and rings accept nothing else.
func (n *node) SetBranch(nodes ...Node) error {
	if !kindTraits[n.kind].ownsBranch {
		return fmt.Errorf("%s.SetBranch: kind has no branch: %w", n.kind, ErrInvalidBranch)
	}
	for i, child := range nodes {
		if child == nil {
			return fmt.Errorf("%s.SetBranch: nil node at %d: %w", n.kind, i, ErrInvalidBranch)
		}
		isPosition := child.Type() == NodeRingPosition
		if isPosition != (n.kind == NodeRing) {
			return fmt.Errorf("%s.SetBranch: %s not allowed at %d: %w", n.kind, child.Type(), i, ErrInvalidBranch)
		}
	}
	n.branch = append([]Node(nil), nodes...)
	return nil
}

func (n *node) Branch() []Node { return append([]Node(nil), n.branch...) }

// bind binds every identifier of n to a in g.
func (n *node) bind(g *MatchedGroup, a *species.Atom) {
	for _, id := range n.identifiers {
		g.Bind(id, a)
	}
}

// negate applies true logical negation to the outcome of a sub-match.
func negate(ok bool) int {
	if ok {
		return NoMatch
	}
	return 1
}
