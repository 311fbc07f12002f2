package neta_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/neta/builder"
	"github.com/katalvlaran/neta/neta"
	"github.com/katalvlaran/neta/species"
)

// Fixture species. Atom indices follow the construction order noted per fixture.

// methane: C0, H1-H4.
func methane(t *testing.T) *species.Species {
	t.Helper()
	return build(t, "methane", builder.Star(species.C, species.H, 4))
}

// ethane: C0-C1, H2-H4 on C0, H5-H7 on C1.
func ethane(t *testing.T) *species.Species {
	t.Helper()
	return build(t, "ethane",
		builder.Chain(2, species.C),
		builder.Cap(0, species.H, 3),
		builder.Cap(1, species.H, 3),
	)
}

// methanol: C0, H1-H3 on C0, O4, H5 on O4.
func methanol(t *testing.T) *species.Species {
	t.Helper()
	return build(t, "methanol",
		builder.Star(species.C, species.H, 3),
		builder.Atom(species.O),
		builder.Bond(0, 4),
		builder.Cap(4, species.H, 1),
	)
}

// water: O0, H1, H2.
func water(t *testing.T) *species.Species {
	t.Helper()
	return build(t, "water", builder.Star(species.O, species.H, 2))
}

// ringsSpecies: six-membered C0-C5 ring with H6-H9 on C2-C5, fused along C0-C1
// to the four-membered C0-C1-N10-C11 ring; methyl C12 (H13-H15) on N10 and
// H16, H17 on C11.
func ringsSpecies(t *testing.T) *species.Species {
	t.Helper()
	return build(t, "rings",
		builder.Ring(6, species.C),
		builder.Cap(2, species.H, 1),
		builder.Cap(3, species.H, 1),
		builder.Cap(4, species.H, 1),
		builder.Cap(5, species.H, 1),
		builder.Atom(species.N),
		builder.Atom(species.C),
		builder.Bond(1, 10),
		builder.Bond(10, 11),
		builder.Bond(11, 0),
		builder.Cap(10, species.C, 1),
		builder.Cap(12, species.H, 3),
		builder.Cap(11, species.H, 2),
	)
}

// difluorobenzene: ring C0-C5, F6 on C2, H7 on C3, H8 on C4, F9 on C5,
// H10 on C0, H11 on C1.
func difluorobenzene(t *testing.T) *species.Species {
	t.Helper()
	return build(t, "difluorobenzene",
		builder.Ring(6, species.C),
		builder.Cap(2, species.F, 1),
		builder.Cap(3, species.H, 1),
		builder.Cap(4, species.H, 1),
		builder.Cap(5, species.F, 1),
		builder.Cap(0, species.H, 1),
		builder.Cap(1, species.H, 1),
	)
}

func build(t *testing.T, name string, cons ...builder.Constructor) *species.Species {
	t.Helper()
	s, err := builder.BuildSpecies(name, nil, cons...)
	require.NoError(t, err)
	return s
}

// matching returns the indices of the atoms of s that d scores.
func matching(s *species.Species, d *neta.Definition) []int {
	out := []int{}
	for _, a := range s.Atoms() {
		if d.Score(a) != neta.NoMatch {
			out = append(out, a.Index())
		}
	}
	return out
}

func indices(atoms []*species.Atom) []int {
	out := make([]int, len(atoms))
	for i, a := range atoms {
		out[i] = a.Index()
	}
	return out
}

func def(t *testing.T, nodes ...neta.Node) *neta.Definition {
	t.Helper()
	d, err := neta.NewDefinition(nodes...)
	require.NoError(t, err)
	return d
}

// conn builds "-El(branch...)".
func conn(t *testing.T, el species.Element, branch ...neta.Node) *neta.Connection {
	t.Helper()
	c := neta.NewConnection(el)
	require.NoError(t, c.SetBranch(branch...))
	return c
}

// ring builds "ring(size=size, positions...)"; size 0 leaves the size unset.
func ring(t *testing.T, size int, positions ...*neta.RingPosition) *neta.Ring {
	t.Helper()
	r, err := neta.NewRing(positions...)
	require.NoError(t, err)
	if size > 0 {
		require.True(t, r.SetModifier("size", neta.EqualTo, size))
	}
	return r
}

// pos builds a ring position for el with n=repeat.
func pos(t *testing.T, el species.Element, repeat int, branch ...neta.Node) *neta.RingPosition {
	t.Helper()
	return posOp(t, el, neta.EqualTo, repeat, branch...)
}

// posOp builds a ring position for el with "n op repeat".
func posOp(t *testing.T, el species.Element, op neta.ComparisonOperator, repeat int, branch ...neta.Node) *neta.RingPosition {
	t.Helper()
	p := neta.NewRingPosition(el)
	require.True(t, p.SetModifier("n", op, repeat))
	require.NoError(t, p.SetBranch(branch...))
	return p
}

// atomType is a minimal neta.AtomType.
type atomType struct {
	name string
	el   species.Element
	def  *neta.Definition
}

func (a atomType) Name() string                 { return a.name }
func (a atomType) Element() species.Element     { return a.el }
func (a atomType) Definition() *neta.Definition { return a.def }
