// Package species provides the molecular connectivity graph consumed by the
// NETA matching engine: elements, atoms, bonds and the Species that owns them.
//
// A Species G = (A,B) is an undirected simple graph whose vertices are atoms
// and whose edges are bonds:
//
//   - Atoms are created in order and addressed by a dense index (0..N-1).
//   - Bonds keep insertion order on both endpoints; Atom.Bonds() is NOT sorted,
//     and matching code iterates it as-is (order-sensitive by design of the engine).
//   - Self-bonds and parallel bonds are rejected.
//   - Atoms are compared by identity (pointer equality), never by value.
//   - Geometry is a precomputed classification set by the caller; atoms without an
//     explicit value read as Unbound (no bonds), Terminal (one bond) or GeometryUnknown.
//
// Concurrency:
//
//	Species catalog mutations (AddAtom, AddBond, SetGeometry) are guarded by a
//	sync.RWMutex. Read accessors on *Atom and *Bond take no locks: a species must
//	not be mutated while it is being matched, after which any number of goroutines
//	may read it concurrently.
//
// Errors:
//
//	ErrUnknownElement   - element is outside the supported table.
//	ErrAtomNotFound     - atom index out of range.
//	ErrSelfBond         - bond from an atom to itself.
//	ErrDuplicateBond    - second bond between the same pair of atoms.
//	ErrUnknownGeometry  - geometry keyword not recognised.
//	ErrUnknownBondType  - bond type keyword not recognised.
package species
