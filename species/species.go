// SPDX-License-Identifier: MIT
// File: species.go
// Role: Species catalog - atom and bond lifecycle plus read queries.
// Determinism:
//   - Atoms() and Bonds() return creation order.
//   - Atom.Bonds() keeps insertion order on both endpoints.
// Concurrency:
//   - Mutations under mu write lock; catalog reads under mu read lock.

package species

import (
	"fmt"
	"sync"
)

// Species is a named molecular graph.
type Species struct {
	mu sync.RWMutex // guards atoms, bonds and per-atom bond lists

	name  string
	atoms []*Atom
	bonds []*Bond
}

// NewSpecies creates an empty Species.
// Complexity: O(1).
func NewSpecies(name string) *Species {
	return &Species{name: name}
}

// Name returns the species name.
func (s *Species) Name() string { return s.name }

// AddAtom appends a new atom of element el and returns it.
//
// Steps:
//  1. Validate the element (ErrUnknownElement).
//  2. Under the write lock, allocate the atom with the next index.
//  3. Apply options (geometry).
//
// Complexity: O(1) amortized.
func (s *Species) AddAtom(el Element, opts ...AtomOption) (*Atom, error) {
	if !el.Valid() {
		return nil, fmt.Errorf("AddAtom(Z=%d): %w", int(el), ErrUnknownElement)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a := &Atom{index: len(s.atoms), element: el}
	for _, opt := range opts {
		opt(a)
	}
	s.atoms = append(s.atoms, a)

	return a, nil
}

// AddBond bonds atoms i and j (by index) and returns the new bond.
//
// Steps:
//  1. Reject i == j (ErrSelfBond).
//  2. Under the write lock, resolve both indices (ErrAtomNotFound).
//  3. Reject an existing bond between the pair (ErrDuplicateBond).
//  4. Build the bond (default Single), apply options, and append it to the
//     catalog and to both atoms' bond lists.
//
// Complexity: O(deg(i)) for the duplicate check.
func (s *Species) AddBond(i, j int, opts ...BondOption) (*Bond, error) {
	if i == j {
		return nil, fmt.Errorf("AddBond(%d,%d): %w", i, j, ErrSelfBond)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ai, err := s.atomLocked(i)
	if err != nil {
		return nil, fmt.Errorf("AddBond(%d,%d): %w", i, j, err)
	}
	aj, err := s.atomLocked(j)
	if err != nil {
		return nil, fmt.Errorf("AddBond(%d,%d): %w", i, j, err)
	}
	if ai.IsBondedTo(aj) {
		return nil, fmt.Errorf("AddBond(%d,%d): %w", i, j, ErrDuplicateBond)
	}

	b := &Bond{index: len(s.bonds), i: ai, j: aj, bondType: Single}
	for _, opt := range opts {
		opt(b)
	}
	s.bonds = append(s.bonds, b)
	ai.bonds = append(ai.bonds, b)
	aj.bonds = append(aj.bonds, b)

	return b, nil
}

// SetGeometry sets the precomputed geometry of atom i.
func (s *Species) SetGeometry(i int, g Geometry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.atomLocked(i)
	if err != nil {
		return fmt.Errorf("SetGeometry(%d): %w", i, err)
	}
	a.geometry = g

	return nil
}

// Atom returns the atom with index i.
func (s *Species) Atom(i int) (*Atom, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.atomLocked(i)
}

// MustAtom returns the atom with index i and panics if it does not exist.
// Intended for fixtures and examples.
func (s *Species) MustAtom(i int) *Atom {
	a, err := s.Atom(i)
	if err != nil {
		panic(err)
	}
	return a
}

// Atoms returns a copy of the atom list in creation order.
func (s *Species) Atoms() []*Atom {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Atom, len(s.atoms))
	copy(out, s.atoms)
	return out
}

// Bonds returns a copy of the bond list in creation order.
func (s *Species) Bonds() []*Bond {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Bond, len(s.bonds))
	copy(out, s.bonds)
	return out
}

// NAtoms returns the number of atoms.
func (s *Species) NAtoms() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.atoms)
}

// NBonds returns the number of bonds.
func (s *Species) NBonds() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.bonds)
}

// atomLocked resolves index i; caller holds mu.
func (s *Species) atomLocked(i int) (*Atom, error) {
	if i < 0 || i >= len(s.atoms) {
		return nil, fmt.Errorf("index %d: %w", i, ErrAtomNotFound)
	}
	return s.atoms[i], nil
}
