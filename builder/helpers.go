// SPDX-License-Identifier: MIT
// Package: builder
//
// helpers.go - shared internals for constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/neta/species"
)

// addAtoms appends n atoms of element el and returns the index of the first one.
func addAtoms(s *species.Species, cfg builderConfig, method string, el species.Element, n int) (int, error) {
	first := s.NAtoms()
	opts := cfg.atomOptions()
	for k := 0; k < n; k++ {
		if _, err := s.AddAtom(el, opts...); err != nil {
			return 0, fmt.Errorf("%s: atom %d: %w", method, first+k, err)
		}
	}
	return first, nil
}

// addBond bonds i and j using the configured bond type.
func addBond(s *species.Species, cfg builderConfig, method string, i, j int) error {
	if _, err := s.AddBond(i, j, species.WithBondType(cfg.bondType)); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}
