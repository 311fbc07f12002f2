// File: types.go
// Role: sentinel errors and functional options for species construction.
package species

import "errors"

// Sentinel errors for species operations.
var (
	// ErrUnknownElement indicates an element outside the supported table.
	ErrUnknownElement = errors.New("species: unknown element")

	// ErrAtomNotFound indicates an atom index outside [0, NAtoms).
	ErrAtomNotFound = errors.New("species: atom not found")

	// ErrSelfBond indicates an attempt to bond an atom to itself.
	ErrSelfBond = errors.New("species: self-bond not allowed")

	// ErrDuplicateBond indicates a second bond between the same two atoms.
	ErrDuplicateBond = errors.New("species: duplicate bond")

	// ErrUnknownGeometry indicates an unrecognised geometry keyword.
	ErrUnknownGeometry = errors.New("species: unknown geometry")

	// ErrUnknownBondType indicates an unrecognised bond type keyword.
	ErrUnknownBondType = errors.New("species: unknown bond type")
)

// AtomOption configures an atom when it is added to a Species.
type AtomOption func(a *Atom)

// WithGeometry sets the precomputed geometry classification of the new atom.
func WithGeometry(g Geometry) AtomOption {
	return func(a *Atom) { a.geometry = g }
}

// BondOption configures a bond when it is added to a Species.
type BondOption func(b *Bond)

// WithBondType sets the bond type of the new bond (default Single).
func WithBondType(t BondType) BondOption {
	return func(b *Bond) { b.bondType = t }
}

// ErrInvalidDocument indicates a species document that failed decoding or validation.
var ErrInvalidDocument = errors.New("species: invalid document")
