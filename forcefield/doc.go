// Package forcefield is the atom-type registry consumed by the NETA engine.
//
// A Forcefield owns its AtomTypes; each type pairs an element with a NETA
// definition. DetermineAtomType scores an atom against every type of its
// element and returns the most specific one:
//
//   - types whose definition returns NoMatch are ignored;
//   - the highest score wins and the earliest registered type wins ties.
//
// Atom types may reference other atom types of the same forcefield inside
// their definitions ("-&CT"); the forcefield is the arena that owns them all.
//
// Forcefields are built programmatically (NewForcefield, AddAtomType) or
// decoded from YAML with LoadYAML, where patterns are given as structured node
// trees rather than NETA text.
package forcefield
