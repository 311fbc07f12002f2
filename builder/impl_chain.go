// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_chain.go - implementation of Chain(n, el).
//
// Canonical model:
//   • Atoms:  n new atoms of element el (append order).
//   • Bonds:  (k → k+1) for k=0..n-2. No closing bond.
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

// Chain returns a Constructor that appends a linear chain of n atoms of element el.
func Chain(n int, el species.Element) Constructor {
	return func(s *species.Species, cfg builderConfig) error {
		if n < minChainAtoms {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainAtoms, ErrTooFewAtoms)
		}

		first, err := addAtoms(s, cfg, methodChain, el, n)
		if err != nil {
			return err
		}
		for k := 0; k < n-1; k++ {
			if err = addBond(s, cfg, methodChain, first+k, first+k+1); err != nil {
				return err
			}
		}

		return nil
	}
}
