// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_atom.go - single-atom, capping and explicit-bond constructors.
//
// These are the glue between the shape constructors: Atom appends a lone atom,
// Cap saturates an existing atom with terminal partners, Bond links atoms that
// already exist (e.g. to fuse a ring onto another).

package builder

import (
	"fmt"

	"github.com/katalvlaran/neta/species"
)

// Atom returns a Constructor that appends one atom of element el.
func Atom(el species.Element) Constructor {
	return func(s *species.Species, cfg builderConfig) error {
		_, err := addAtoms(s, cfg, methodAtom, el, 1)
		return err
	}
}

// Cap returns a Constructor that appends n atoms of element el, each bonded to
// the existing atom at index i.
func Cap(i int, el species.Element, n int) Constructor {
	return func(s *species.Species, cfg builderConfig) error {
		if n < minCapAtoms {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCap, n, minCapAtoms, ErrTooFewAtoms)
		}
		if _, err := s.Atom(i); err != nil {
			return fmt.Errorf("%s(%d): %w", methodCap, i, err)
		}

		first, err := addAtoms(s, cfg, methodCap, el, n)
		if err != nil {
			return err
		}
		for k := 0; k < n; k++ {
			if err = addBond(s, cfg, methodCap, i, first+k); err != nil {
				return err
			}
		}

		return nil
	}
}

// Bond returns a Constructor that bonds the existing atoms i and j.
func Bond(i, j int) Constructor {
	return func(s *species.Species, cfg builderConfig) error {
		return addBond(s, cfg, methodBond, i, j)
	}
}
