// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildSpecies(name, bopts, cons...).
//   - Factories are implemented in impl_*.go.
//   - Determinism: same inputs/options and constructor order ⇒ identical species.

package builder

import (
	"fmt"

	"github.com/katalvlaran/neta/species"
)

// Constructor applies a deterministic mutation to a species using the resolved
// builderConfig. Constructors validate parameters early and return sentinel errors.
type Constructor func(s *species.Species, cfg builderConfig) error

// BuildSpecies creates a new species named name, resolves the builder configuration
// from bopts, and applies all constructors in order. Any constructor error is wrapped
// with "BuildSpecies: %w" and returned immediately.
func BuildSpecies(name string, bopts []BuilderOption, cons ...Constructor) (*species.Species, error) {
	s := species.NewSpecies(name)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildSpecies: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildSpecies: %w", err)
		}
	}

	return s, nil
}

// MustBuildSpecies is BuildSpecies for fixtures: it panics on error.
func MustBuildSpecies(name string, bopts []BuilderOption, cons ...Constructor) *species.Species {
	s, err := BuildSpecies(name, bopts, cons...)
	if err != nil {
		panic(err)
	}
	return s
}
