// File: errors.go
// Role: sentinel errors for the neta package.
// Policy:
//   - Mismatches are never errors; they are reported as NoMatch.
//   - Configuration mistakes on node setters are logged and reported as false.
//   - Errors below are for API misuse and are wrapped with method context.

package neta

import "errors"

var (
	// ErrRingPositionDispatch is the panic value raised when a ring-position node
	// is scored through Score instead of through ring alignment.
	ErrRingPositionDispatch = errors.New("neta: ring position scored outside ring alignment")

	// ErrInvalidBranch indicates a branch the node kind cannot own: a nil node,
	// a branch on a leaf kind, a ring position outside a ring, or a non-position
	// node inside a ring.
	ErrInvalidBranch = errors.New("neta: invalid branch")

	// ErrUnknownOperator indicates an unrecognised comparison operator symbol.
	ErrUnknownOperator = errors.New("neta: unknown comparison operator")

	// ErrUnknownNodeType indicates an unrecognised node kind name.
	ErrUnknownNodeType = errors.New("neta: unknown node type")
)
