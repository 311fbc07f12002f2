// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options and the resolved builder configuration.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors PANIC on meaningless inputs; constructors never panic.
//   • newBuilderConfig applies options in order (later overrides earlier).

package builder

import "github.com/katalvlaran/neta/species"

// BuilderOption customizes constructors by mutating the builderConfig before use.
type BuilderOption func(*builderConfig)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	bondType species.BondType // type of every emitted bond
	geometry species.Geometry // geometry of every created atom (unknown = derive)
}

// newBuilderConfig constructs a config with deterministic defaults and applies opts.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		bondType: species.Single,
		geometry: species.GeometryUnknown,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithBondType sets the type of every bond emitted by constructors.
// Panics on BondUnknown.
func WithBondType(t species.BondType) BuilderOption {
	if t == species.BondUnknown {
		panic("builder: WithBondType(BondUnknown)")
	}
	return func(c *builderConfig) { c.bondType = t }
}

// WithGeometry sets the geometry of every atom created by constructors.
func WithGeometry(g species.Geometry) BuilderOption {
	return func(c *builderConfig) { c.geometry = g }
}

// atomOptions translates the config into species.AtomOption values.
func (c builderConfig) atomOptions() []species.AtomOption {
	if c.geometry == species.GeometryUnknown {
		return nil
	}
	return []species.AtomOption{species.WithGeometry(c.geometry)}
}
