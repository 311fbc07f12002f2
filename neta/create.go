// File: create.go
// Role: derive a Definition describing the environment of an existing atom.
//
// For each described atom: "nbonds=N", then "nh=K" when K > 0, then one
// Connection per non-hydrogen neighbour not already on the creation path.
// Connections carry the neighbour's own description while depth < max depth.

package neta

import (
	"fmt"

	"github.com/katalvlaran/neta/species"
)

// CreateOption customises Create.
type CreateOption func(*createConfig)

type createConfig struct {
	maxDepth           int
	includeRootElement bool
}

// WithMaxDepth sets how many neighbour shells are described inside connections.
// Depth 0 emits bare connections. Panics on a negative depth.
func WithMaxDepth(depth int) CreateOption {
	if depth < 0 {
		panic(fmt.Sprintf("neta: WithMaxDepth(%d): negative depth", depth))
	}
	return func(c *createConfig) { c.maxDepth = depth }
}

// WithIncludeRootElement prepends a Character node for the atom's own element.
func WithIncludeRootElement() CreateOption {
	return func(c *createConfig) { c.includeRootElement = true }
}

// Create returns a Definition describing a's environment.
func Create(a *species.Atom, opts ...CreateOption) *Definition {
	var cfg createConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var nodes []Node
	if cfg.includeRootElement {
		nodes = append(nodes, NewCharacter(a.Element()))
	}
	nodes = append(nodes, describe(a, []*species.Atom{a}, 0, cfg.maxDepth)...)

	return MustDefinition(nodes...)
}

func describe(a *species.Atom, path []*species.Atom, depth, maxDepth int) []Node {
	nodes := []Node{NewBondCountOf(EqualTo, a.NBonds())}
	if nh := countHydrogens(a); nh > 0 {
		nodes = append(nodes, NewHydrogenCountOf(EqualTo, nh))
	}

	for _, b := range a.Bonds() {
		nbr := b.Partner(a)
		if nbr.Element() == species.H || onPath(path, nbr) {
			continue
		}
		conn := NewConnection(nbr.Element())
		if depth < maxDepth {
			// describe returns no ring positions, so SetBranch cannot fail.
			_ = conn.SetBranch(describe(nbr, append(path, nbr), depth+1, maxDepth)...)
		}
		nodes = append(nodes, conn)
	}
	return nodes
}

func onPath(path []*species.Atom, a *species.Atom) bool {
	for _, x := range path {
		if x == a {
			return true
		}
	}
	return false
}
