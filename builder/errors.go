// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach method context with %w.

package builder

import "errors"

// ErrTooFewAtoms indicates that a size parameter is below the constructor's minimum.
var ErrTooFewAtoms = errors.New("builder: parameter too small")

// ErrConstructFailed indicates a construction that could not be completed
// (e.g. a nil constructor passed to BuildSpecies).
var ErrConstructFailed = errors.New("builder: construction failed")
