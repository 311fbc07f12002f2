// File: matched_group.go
// Role: the transactional record of atoms consumed by a match attempt.
// Discipline:
//   - Speculative work happens on a Fork; the caller's group is only touched by
//     Commit or Merge after the sub-match has succeeded.
//   - Atoms are compared by identity. The first atom added is the path root.

package neta

import (
	"sort"

	"github.com/katalvlaran/neta/species"
)

// MatchedGroup holds the atoms consumed along a match path, in insertion order,
// and the identifier bindings collected on the way.
type MatchedGroup struct {
	atoms []*species.Atom
	set   map[*species.Atom]struct{}
	ids   map[string][]*species.Atom
}

// NewMatchedGroup returns an empty group.
func NewMatchedGroup() *MatchedGroup {
	return &MatchedGroup{
		set: make(map[*species.Atom]struct{}),
		ids: make(map[string][]*species.Atom),
	}
}

// Fork returns an independent deep copy of g.
func (g *MatchedGroup) Fork() *MatchedGroup {
	f := &MatchedGroup{
		atoms: append([]*species.Atom(nil), g.atoms...),
		set:   make(map[*species.Atom]struct{}, len(g.set)),
		ids:   make(map[string][]*species.Atom, len(g.ids)),
	}
	for a := range g.set {
		f.set[a] = struct{}{}
	}
	for name, atoms := range g.ids {
		f.ids[name] = append([]*species.Atom(nil), atoms...)
	}
	return f
}

// Commit replaces the contents of g with those of fork, which must descend from g.
func (g *MatchedGroup) Commit(fork *MatchedGroup) {
	g.atoms, g.set, g.ids = fork.atoms, fork.set, fork.ids
}

// Add inserts a into the group. It reports false if a was already present.
func (g *MatchedGroup) Add(a *species.Atom) bool {
	if _, ok := g.set[a]; ok {
		return false
	}
	g.set[a] = struct{}{}
	g.atoms = append(g.atoms, a)
	return true
}

// Contains reports whether a has been consumed.
func (g *MatchedGroup) Contains(a *species.Atom) bool {
	_, ok := g.set[a]
	return ok
}

// Root returns the first atom of the path, or nil for an empty group.
func (g *MatchedGroup) Root() *species.Atom {
	if len(g.atoms) == 0 {
		return nil
	}
	return g.atoms[0]
}

// IsRoot reports whether a is the root atom of the path.
func (g *MatchedGroup) IsRoot(a *species.Atom) bool {
	return a != nil && g.Root() == a
}

// Merge adds every atom and identifier binding of other to g.
func (g *MatchedGroup) Merge(other *MatchedGroup) {
	for _, a := range other.atoms {
		g.Add(a)
	}
	for name, atoms := range other.ids {
		for _, a := range atoms {
			g.Bind(name, a)
		}
	}
}

// Bind associates identifier name with a. Binding the same pair twice is a no-op.
func (g *MatchedGroup) Bind(name string, a *species.Atom) {
	for _, x := range g.ids[name] {
		if x == a {
			return
		}
	}
	g.ids[name] = append(g.ids[name], a)
}

// Atoms returns the consumed atoms in insertion order.
func (g *MatchedGroup) Atoms() []*species.Atom {
	return append([]*species.Atom(nil), g.atoms...)
}

// Len returns the number of consumed atoms.
func (g *MatchedGroup) Len() int { return len(g.atoms) }

// Identified returns the atoms bound to name, in binding order.
func (g *MatchedGroup) Identified(name string) []*species.Atom {
	return append([]*species.Atom(nil), g.ids[name]...)
}

// IdentifierNames returns the bound identifier names in lexical order.
func (g *MatchedGroup) IdentifierNames() []string {
	names := make([]string, 0, len(g.ids))
	for name := range g.ids {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Identifiers returns a copy of the name to atoms bindings.
func (g *MatchedGroup) Identifiers() map[string][]*species.Atom {
	out := make(map[string][]*species.Atom, len(g.ids))
	for name, atoms := range g.ids {
		out[name] = append([]*species.Atom(nil), atoms...)
	}
	return out
}

// Equal reports whether g and other hold the same atoms in the same order and
// the same identifier bindings.
func (g *MatchedGroup) Equal(other *MatchedGroup) bool {
	if len(g.atoms) != len(other.atoms) || len(g.ids) != len(other.ids) {
		return false
	}
	for i, a := range g.atoms {
		if other.atoms[i] != a {
			return false
		}
	}
	for name, atoms := range g.ids {
		theirs, ok := other.ids[name]
		if !ok || len(theirs) != len(atoms) {
			return false
		}
		for i, a := range atoms {
			if theirs[i] != a {
				return false
			}
		}
	}
	return true
}
