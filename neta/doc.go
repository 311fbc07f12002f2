// Package neta implements NETA, a pattern language that classifies an atom of
// a species.Species by its local environment: bond and hydrogen counts,
// geometry, element or atom-type identity, bonded neighbours and ring
// membership.
//
// A pattern is a tree of nodes owned by a Definition. Scoring an atom walks
// the tree depth-first; every node either fails with NoMatch or returns a
// non-negative specificity score. Higher scores mean more specific matches,
// which is how forcefield atom types are ranked.
//
// Node kinds:
//
//	Base           root of a definition and bracketed groups "( ... )"
//	BondCount      nbonds=4
//	HydrogenCount  nh=3
//	Geometry       geometry=tet
//	Character      ?C, ?[C,N], ?&CT
//	Connection     -C(n>=2,root,#x, ...)
//	Ring           ring(size=6,n>=1, ...)
//	RingPosition   C(n=3,#cog, ...) inside a ring only
//	Or             a,b|c
//
// Matched atoms are tracked in a MatchedGroup. Every speculative sub-match
// works on a Fork; a failed sub-match never changes the caller's group, and a
// successful one is committed or merged back.
//
// Parsing NETA text is out of scope: trees are built through the constructors
// and setters, or decoded from structured documents by package forcefield.
// Every node renders back to NETA text through String.
package neta
