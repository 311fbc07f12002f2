// File: types.go
// Role: sentinel errors for the forcefield package.

package forcefield

import "errors"

var (
	// ErrInvalidAtomType indicates an atom type failing validation
	// (empty name, negative id, unknown element or nil definition).
	ErrInvalidAtomType = errors.New("forcefield: invalid atom type")

	// ErrDuplicateAtomType indicates a second atom type with an existing name or id.
	ErrDuplicateAtomType = errors.New("forcefield: duplicate atom type")

	// ErrAtomTypeNotFound indicates a lookup by name or id with no result.
	ErrAtomTypeNotFound = errors.New("forcefield: atom type not found")

	// ErrInvalidDocument indicates a YAML forcefield document that cannot be decoded or built.
	ErrInvalidDocument = errors.New("forcefield: invalid document")
)
