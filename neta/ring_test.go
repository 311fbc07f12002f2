package neta_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/neta/builder"
	"github.com/katalvlaran/neta/neta"
	"github.com/katalvlaran/neta/species"
)

func TestRing_PositionAlignment(t *testing.T) {
	t.Parallel()

	rs := ringsSpecies(t)
	C, N := species.C, species.N
	fourRing := []int{0, 1, 10, 11}

	cases := []struct {
		name string
		r    *neta.Ring
		want []int
	}{
		{"explicit", ring(t, 4, pos(t, C, 1), pos(t, C, 1), pos(t, C, 1), pos(t, N, 1)), fourRing},
		{"shortest", ring(t, 4, pos(t, C, 3), pos(t, N, 1)), fourRing},
		{"unnecessary", ring(t, 4, pos(t, C, 1), pos(t, C, 2), pos(t, N, 1)), fourRing},
		{"only nitrogen", ring(t, 4, pos(t, N, 1)), fourRing},
		{"two carbons", ring(t, 4, pos(t, C, 2)), fourRing},
		{"split eight", ring(t, 8, pos(t, C, 4), pos(t, N, 1), pos(t, C, 3)), []int{0, 1, 2, 3, 4, 5, 10, 11}},
		{"too many nitrogens", ring(t, 4, pos(t, N, 2), pos(t, C, 2)), []int{}},
		{"nine versus eight", ring(t, 8, pos(t, C, 4), pos(t, N, 1), pos(t, C, 4)), []int{}},
		{"eight versus six", ring(t, 6, pos(t, C, 8)), []int{}},
		{"at least one carbon", ring(t, 4, posOp(t, C, neta.GreaterThanEqualTo, 1), pos(t, C, 1)), fourRing},
		{"at least two carbons", ring(t, 4, posOp(t, C, neta.GreaterThanEqualTo, 2), pos(t, N, 1)), fourRing},
		{"more than one carbon", ring(t, 4, posOp(t, C, neta.GreaterThan, 1), pos(t, N, 1), pos(t, C, 1)), fourRing},
		{"optional nitrogen", ring(t, 4, posOp(t, N, neta.GreaterThanEqualTo, 0), pos(t, C, 3)), fourRing},
		{"fewer than two nitrogens", ring(t, 4, posOp(t, N, neta.LessThan, 2), pos(t, C, 3)), fourRing},
		{"no nitrogen position", ring(t, 4, pos(t, N, 0), pos(t, N, 1)), fourRing},
		{"at least three nitrogens", ring(t, 4, posOp(t, N, neta.GreaterThanEqualTo, 3)), []int{}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, matching(rs, def(t, tc.r)), "definition %s", tc.r)
		})
	}
}

func TestRing_OpenEndedPositionStopsWhenSatisfied(t *testing.T) {
	t.Parallel()

	s := build(t, "cyclohexane", builder.Ring(6, species.C))
	d := def(t, ring(t, 6, posOp(t, species.C, neta.GreaterThanEqualTo, 1), pos(t, species.C, 1)))
	assert.Equal(t, "ring(size=6,C(n>=1),C)", d.String())

	for _, a := range s.Atoms() {
		assert.Equal(t, 2, d.Score(a), "atom %d", a.Index())
	}
	assert.Equal(t, []int{0, 1}, indices(d.MatchedPath(s.MustAtom(0)).Atoms()))
}

func TestRing_SizeWindow(t *testing.T) {
	t.Parallel()

	rs := ringsSpecies(t)
	c0 := rs.MustAtom(0)

	withSize := func(op neta.ComparisonOperator, size int) *neta.Definition {
		r := ring(t, 0)
		require.True(t, r.SetModifier("size", op, size))
		require.True(t, r.SetModifier("n", neta.EqualTo, 1))
		return def(t, r)
	}

	// c0 lies on the 4-, 6- and 8-membered rings
	assert.NotEqual(t, neta.NoMatch, withSize(neta.LessThan, 5).Score(c0))
	assert.Equal(t, neta.NoMatch, withSize(neta.LessThanEqualTo, 6).Score(c0), "two rings in [3,6]")
	assert.NotEqual(t, neta.NoMatch, withSize(neta.GreaterThan, 6).Score(c0))
	assert.Equal(t, neta.NoMatch, withSize(neta.GreaterThanEqualTo, 4).Score(c0), "three rings in [4,99]")
	assert.Equal(t, neta.NoMatch, withSize(neta.NotEqualTo, 6).Score(c0), "4 and 8 remain")
	assert.NotEqual(t, neta.NoMatch, withSize(neta.NotEqualTo, 6).Score(rs.MustAtom(2)), "only the 8 ring")
}

func TestRing_ScenarioB(t *testing.T) {
	t.Parallel()

	s := build(t, "cyclohexane", builder.Ring(6, species.C))
	for _, a := range s.Atoms() {
		assert.GreaterOrEqual(t, def(t, ring(t, 6)).Score(a), 0)
		assert.Equal(t, neta.NoMatch, def(t, ring(t, 5)).Score(a))
	}
}

func TestRing_ScoreSumsPositions(t *testing.T) {
	t.Parallel()

	s := difluorobenzene(t)
	h := neta.NewConnection(species.H)
	// every position: element (1) + "-H" connection (1) where present
	r := ring(t, 6, pos(t, species.C, 1, h), pos(t, species.C, 1))
	assert.Equal(t, 3, def(t, r).Score(s.MustAtom(0)))
}

func TestRing_Negated(t *testing.T) {
	t.Parallel()

	s := build(t, "cyclohexane", builder.Ring(6, species.C), builder.Cap(0, species.H, 1))
	r := ring(t, 6)
	r.SetReverseLogic()

	g := neta.NewMatchedGroup()
	assert.Equal(t, neta.NoMatch, neta.Score(r, s.MustAtom(0), g))
	assert.Equal(t, 1, neta.Score(r, s.MustAtom(6), g))
	assert.Zero(t, g.Len())
}
