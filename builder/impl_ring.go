// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_ring.go - implementation of Ring(n, el).
//
// Canonical model:
//   • Atoms:  n new atoms of element el, indices first..first+n-1 (append order).
//   • Bonds:  (k → k+1) for k=0..n-2, then the closing bond (n-1 → 0).
//
// Contract:
//   • n ≥ 3 (ErrTooFewAtoms otherwise).
//
// Complexity:
//   • Time O(n), Space O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/neta/species"
)

// Ring returns a Constructor that appends an n-membered ring of element el.
func Ring(n int, el species.Element) Constructor {
	return func(s *species.Species, cfg builderConfig) error {
		// 1) Validate parameters.
		if n < minRingAtoms {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingAtoms, ErrTooFewAtoms)
		}

		// 2) Add ring atoms.
		first, err := addAtoms(s, cfg, methodRing, el, n)
		if err != nil {
			return err
		}

		// 3) Chain bonds, then the closing bond.
		for k := 0; k < n-1; k++ {
			if err = addBond(s, cfg, methodRing, first+k, first+k+1); err != nil {
				return err
			}
		}

		return addBond(s, cfg, methodRing, first+n-1, first)
	}
}
