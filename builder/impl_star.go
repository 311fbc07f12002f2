// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_star.go - implementation of Star(centre, leaf, n).
//
// Canonical model:
//   • Atoms:  centre atom first, then n leaf atoms.
//   • Bonds:  centre → leaf_k for k=0..n-1 (append order).
//
// Contract:
//   • n ≥ 1 (ErrTooFewAtoms otherwise).
//
// Complexity:
//   • Time O(n), Space O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/neta/species"
)

// Star returns a Constructor that appends a centre atom bonded to n terminal leaves.
// Star(C, H, 4) is methane.
func Star(centre, leaf species.Element, n int) Constructor {
	return func(s *species.Species, cfg builderConfig) error {
		if n < minStarLeaves {
			return fmt.Errorf("%s: leaves=%d < min=%d: %w", methodStar, n, minStarLeaves, ErrTooFewAtoms)
		}

		hub, err := addAtoms(s, cfg, methodStar, centre, 1)
		if err != nil {
			return err
		}
		first, err := addAtoms(s, cfg, methodStar, leaf, n)
		if err != nil {
			return err
		}
		for k := 0; k < n; k++ {
			if err = addBond(s, cfg, methodStar, hub, first+k); err != nil {
				return err
			}
		}

		return nil
	}
}
