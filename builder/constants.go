// SPDX-License-Identifier: MIT
// Package: builder
//
// constants.go - method names and minimal sizes used in error contexts.

package builder

// Method names (used in error contexts).
const (
	methodAtom  = "Atom"
	methodRing  = "Ring"
	methodChain = "Chain"
	methodStar  = "Star"
	methodCap   = "Cap"
	methodBond  = "Bond"
)

// Minimal sizes.
const (
	minRingAtoms  = 3 // smallest simple cycle
	minChainAtoms = 1
	minStarLeaves = 1
	minCapAtoms   = 1
)
