package rings

import "github.com/katalvlaran/neta/species"

// Find enumerates the distinct simple rings through origin whose size lies in w.
// Returns nil for a nil origin or an empty window.
func Find(origin *species.Atom, w Window) []Ring {
	return Unique(Enumerate(origin, w))
}

// Enumerate returns every closed walk found from origin, without de-duplication:
// each ring appears once per traversal direction.
//
// Steps:
//  1. Seed the path with origin.
//  2. For every bond of the path's tail, in bond order:
//     a) the partner is the origin and the path holds >= w.Min atoms: record the path
//     (unless its length equals w.Exclude);
//     b) the partner is already on the path: skip it;
//     c) otherwise, if the path is shorter than w.Max: push the partner, recurse, pop.
func Enumerate(origin *species.Atom, w Window) [][]*species.Atom {
	if w.Min < MinRingSize {
		w.Min = MinRingSize
	}
	if origin == nil || w.Max < w.Min {
		return nil
	}

	wk := &walker{window: w, path: make([]*species.Atom, 0, w.Max)}
	wk.path = append(wk.path, origin)
	wk.visit()

	return wk.found
}

// walker carries the DFS state of one enumeration.
type walker struct {
	window Window
	path   []*species.Atom   // current path stack, path[0] is the origin
	found  [][]*species.Atom // closed paths in discovery order
}

func (wk *walker) visit() {
	tail := wk.path[len(wk.path)-1]
	for _, b := range tail.Bonds() {
		nbr := b.Partner(tail)

		switch {
		case len(wk.path) >= wk.window.Min && nbr == wk.path[0]:
			if wk.window.Exclude > 0 && len(wk.path) == wk.window.Exclude {
				continue
			}
			wk.found = append(wk.found, append([]*species.Atom(nil), wk.path...))
		case indexOf(wk.path, nbr) != -1:
			continue
		case len(wk.path) < wk.window.Max:
			wk.path = append(wk.path, nbr)
			wk.visit()
			wk.path = wk.path[:len(wk.path)-1]
		}
	}
}

// Unique converts closed paths into rings, keeping the first occurrence of every
// canonical signature.
func Unique(paths [][]*species.Atom) []Ring {
	if len(paths) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(paths))
	out := make([]Ring, 0, len(paths)/2+1)
	for _, p := range paths {
		r := NewRing(p...)
		sig := r.Signature()
		if _, dup := seen[sig]; dup {
			continue
		}
		seen[sig] = struct{}{}
		out = append(out, r)
	}

	return out
}
