package rings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/neta/builder"
	"github.com/katalvlaran/neta/rings"
	"github.com/katalvlaran/neta/species"
)

// fusedBicycle builds a six-membered carbon ring fused along C0-C1 to a
// four-membered C0-C1-N10-C11 ring, capped with hydrogens and an N-methyl.
func fusedBicycle(t *testing.T) *species.Species {
	t.Helper()

	s, err := builder.BuildSpecies("rings", nil,
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
	require.NoError(t, err)
	require.Equal(t, 18, s.NAtoms())

	return s
}

func sizes(rs []rings.Ring) []int {
	out := make([]int, len(rs))
	for i, r := range rs {
		out[i] = r.Size()
	}
	return out
}

func TestFind_SingleCycleYieldsOneRing(t *testing.T) {
	t.Parallel()

	for n := 3; n <= 8; n++ {
		s := builder.MustBuildSpecies("cycle", nil, builder.Ring(n, species.C))
		got := rings.Find(s.MustAtom(0), rings.Window{Min: 3, Max: n})
		require.Len(t, got, 1, "n=%d", n)
		assert.Equal(t, n, got[0].Size())
		assert.Len(t, rings.Enumerate(s.MustAtom(0), rings.Window{Min: 3, Max: n}), 2, "both directions walked")
	}
}

func TestFind_Window(t *testing.T) {
	t.Parallel()

	s := fusedBicycle(t)
	c0 := s.MustAtom(0)

	assert.ElementsMatch(t, []int{6, 4}, sizes(rings.Find(c0, rings.DefaultWindow())))
	assert.ElementsMatch(t, []int{6, 4, 8}, sizes(rings.Find(c0, rings.Window{Min: 3, Max: 8})))
	assert.ElementsMatch(t, []int{4}, sizes(rings.Find(c0, rings.Window{Min: 4, Max: 4})))
	assert.Empty(t, rings.Find(c0, rings.Window{Min: 5, Max: 5}))

	// atoms outside both rings
	assert.Empty(t, rings.Find(s.MustAtom(12), rings.Window{Min: 3, Max: 99}))
	assert.Empty(t, rings.Find(s.MustAtom(6), rings.DefaultWindow()))
}

func TestFind_Exclude(t *testing.T) {
	t.Parallel()

	s := fusedBicycle(t)
	got := rings.Find(s.MustAtom(0), rings.Window{Min: 3, Max: 99, Exclude: 6})
	assert.ElementsMatch(t, []int{4, 8}, sizes(got))
}

func TestFind_Degenerate(t *testing.T) {
	t.Parallel()

	assert.Nil(t, rings.Find(nil, rings.DefaultWindow()))

	s := builder.MustBuildSpecies("tri", nil, builder.Ring(3, species.C))
	assert.Nil(t, rings.Find(s.MustAtom(0), rings.Window{Min: 6, Max: 4}))
	// Min below three is clamped: no two-atom "rings" from a bond walked back.
	got := rings.Find(s.MustAtom(0), rings.Window{Min: 0, Max: 3})
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].Size())
}

func TestRing_EqualAndSignature(t *testing.T) {
	t.Parallel()

	s := builder.MustBuildSpecies("cycle", nil, builder.Ring(5, species.C))
	a := s.Atoms()

	r := rings.NewRing(a[0], a[1], a[2], a[3], a[4])
	rotated := rings.NewRing(a[2], a[3], a[4], a[0], a[1])
	reflected := rings.NewRing(a[0], a[4], a[3], a[2], a[1])
	other := rings.NewRing(a[0], a[2], a[1], a[3], a[4])

	assert.True(t, r.Equal(rotated))
	assert.True(t, r.Equal(reflected))
	assert.False(t, r.Equal(other))
	assert.False(t, r.Equal(rings.NewRing(a[0], a[1], a[2])))

	assert.Equal(t, r.Signature(), rotated.Signature())
	assert.Equal(t, r.Signature(), reflected.Signature())
	assert.NotEqual(t, r.Signature(), other.Signature())
}

func TestRing_AtomWrapsAndContains(t *testing.T) {
	t.Parallel()

	s := builder.MustBuildSpecies("cycle", nil, builder.Ring(4, species.C), builder.Atom(species.O))
	a := s.Atoms()
	r := rings.NewRing(a[0], a[1], a[2], a[3])

	assert.Same(t, a[0], r.Atom(4))
	assert.Same(t, a[3], r.Atom(-1))
	assert.True(t, r.Contains(a[2]))
	assert.False(t, r.Contains(a[4]))
	assert.Equal(t, "C0-C1-C2-C3", r.String())
}
