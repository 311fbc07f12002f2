// Package neta is a toolkit for describing and recognising the chemical
// environment of atoms in a molecule, built around NETA pattern trees
// (Nested English Typing of Atoms).
//
// What is in the box?
//
//	species/    - atoms, bonds, elements and geometries of a molecule (thread-safe catalog)
//	builder/    - deterministic constructors for test and example species (rings, chains, caps)
//	rings/      - enumeration of the distinct simple rings through an atom
//	neta/       - pattern nodes, matched groups, scoring and description generation
//	forcefield/ - atom-type registry: best-score type assignment and YAML loading
//	log/        - leveled, per-module logging
//	config/     - configuration for the netatype command
//	cmd/netatype - command line front-end
//
// Quick example:
//
//	s, _ := builder.BuildSpecies("methane", nil,
//		builder.Atom(species.C),
//		builder.Cap(0, species.H, 4),
//	)
//	d := neta.Create(s.MustAtom(1))   // "nbonds=1,-C"
//	score := d.Score(s.MustAtom(2))   // 2: every hydrogen of methane matches
//
// Scoring never fails: an atom that does not match scores neta.NoMatch (-1),
// every other score is non-negative and grows with the specificity of the
// pattern.
package neta
