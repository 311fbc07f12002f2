// Package builder provides deterministic, composable constructors for
// species.Species fixtures: rings, chains, star-shaped centres, capping atoms
// and explicit bonds.
//
// The package offers:
//
//   - BuildSpecies(name, bopts, cons...): one orchestrator that creates the species,
//     resolves the builder configuration and applies constructors in order.
//   - Constructors (Constructor closures):
//     – Atom(el):            a single atom.
//     – Ring(n, el):         n atoms of el closed into a simple cycle.
//     – Chain(n, el):        n atoms of el bonded in a line.
//     – Star(centre, leaf, n): a centre atom with n terminal leaves.
//     – Cap(i, el, n):       n terminal atoms of el bonded to existing atom i.
//     – Bond(i, j):          an explicit bond between existing atoms.
//   - Options (BuilderOption): WithBondType for every bond emitted by constructors,
//     WithGeometry for every atom they create.
//
// Indexing:
//
//	Constructors append atoms after those already present, so composing
//	Ring(6, C) then Chain(2, C) yields ring atoms 0..5 and chain atoms 6..7.
//
// Guarantees:
//
//   - Determinism: same constructors and options ⇒ identical atom and bond order.
//   - Constructors validate parameters first and return sentinel errors wrapped
//     with method context (ErrTooFewAtoms, ErrAtomNotFound via species).
//   - Option constructors panic on meaningless input (programmer error).
package builder
