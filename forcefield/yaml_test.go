package forcefield_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/neta/forcefield"
	"github.com/katalvlaran/neta/neta"
	"github.com/katalvlaran/neta/species"
)

const ringsYAML = `
name: rings
types:
  - name: C6
    id: 1
    element: C
    description: six-ring carbon
    pattern:
      - kind: ring
        modifiers: {size: {op: "=", value: 6}}
  - name: C4
    id: 2
    element: C
    pattern:
      - kind: ring
        modifiers: {size: {op: "=", value: 4}}
      - {kind: hydrogen_count, op: "=", value: 2}
  - name: N4
    id: 3
    element: N
    pattern:
      - kind: ring
        modifiers: {size: {op: "==", value: 4}}
  - name: HC6
    id: 4
    element: H
    pattern:
      - {kind: connection, types: [C6]}
      - {kind: bond_count, op: "=", value: 1}
`

func TestLoadYAML_Rings(t *testing.T) {
	ff, err := forcefield.LoadYAML(strings.NewReader(ringsYAML))
	require.NoError(t, err)
	assert.Equal(t, "rings", ff.Name())
	require.Len(t, ff.AtomTypes(), 4)

	hc6, err := ff.AtomTypeByName("HC6")
	require.NoError(t, err)
	assert.Equal(t, "-&C6,nbonds=1", hc6.Definition().String())

	c4, err := ff.AtomTypeByID(2)
	require.NoError(t, err)
	assert.Equal(t, "ring(size=4),nh=2", c4.Definition().String())

	s := ringsSpecies(t)
	var hydrogens []int
	for _, as := range ff.DetermineAtomTypes(s) {
		if as.Type == hc6 {
			hydrogens = append(hydrogens, as.Atom.Index())
		}
	}
	assert.Equal(t, []int{6, 7, 8, 9}, hydrogens)
}

const methanolTypesYAML = `
name: methanol
types:
  - name: OH
    id: 1
    element: O
    pattern:
      - kind: connection
        elements: [C]
        identifiers: [x]
      - kind: connection
        elements: [H]
        identifiers: [y]
        branch:
          - {kind: connection, elements: [O], flags: [root]}
  - name: HO
    id: 2
    element: H
    pattern:
      - kind: or
        alternatives:
          - [{kind: connection, types: [OH]}]
          - [{kind: connection, elements: [N]}]
  - name: CT
    id: 3
    element: C
    pattern:
      - {kind: geometry, op: "!=", geometry: tp}
      - kind: connection
        elements: [H]
        modifiers: {n: {op: ">=", value: 3}}
      - {kind: connection, elements: [N], reverse: true}
`

func TestLoadYAML_Methanol(t *testing.T) {
	ff, err := forcefield.LoadYAML(strings.NewReader(methanolTypesYAML))
	require.NoError(t, err)

	oh, err := ff.AtomTypeByName("OH")
	require.NoError(t, err)
	assert.Equal(t, "-C(#x),-H(#y,-O(root))", oh.Definition().String())

	ho, err := ff.AtomTypeByName("HO")
	require.NoError(t, err)
	assert.Equal(t, "-&OH|-N", ho.Definition().String())

	ct, err := ff.AtomTypeByName("CT")
	require.NoError(t, err)
	assert.Equal(t, "geometry!=tp,-H(n>=3),!-N", ct.Definition().String())

	// methanol: C0, H1-H3, O4, H5.
	s, err := species.LoadYAML(strings.NewReader(`
name: methanol
atoms:
  - {element: C}
  - {element: H}
  - {element: H}
  - {element: H}
  - {element: O}
  - {element: H}
bonds:
  - {i: 0, j: 1}
  - {i: 0, j: 2}
  - {i: 0, j: 3}
  - {i: 0, j: 4}
  - {i: 4, j: 5}
`))
	require.NoError(t, err)

	assignments := ff.DetermineAtomTypes(s)
	require.Len(t, assignments, 6)
	assert.Same(t, ct, assignments[0].Type)
	assert.Same(t, oh, assignments[4].Type)
	assert.Same(t, ho, assignments[5].Type)
	for _, i := range []int{1, 2, 3} {
		assert.Nil(t, assignments[i].Type, "atom %d", i)
	}

	path := oh.Definition().MatchedPath(s.MustAtom(4))
	assert.Equal(t, []string{"x", "y"}, path.IdentifierNames())
}

func TestLoadYAML_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad yaml":       "name: [",
		"no name":        "types: [{name: X, id: 1, element: C}]",
		"no types":       "name: empty",
		"no kind":        "name: x\ntypes: [{name: X, id: 1, element: C, pattern: [{op: '='}]}]",
		"modifier op":    "name: x\ntypes: [{name: X, id: 1, element: C, pattern: [{kind: ring, modifiers: {n: {value: 2}}}]}]",
		"bad modifier":   "name: x\ntypes: [{name: X, id: 1, element: C, pattern: [{kind: connection, modifiers: {size: {op: '=', value: 2}}}]}]",
		"bad flag":       "name: x\ntypes: [{name: X, id: 1, element: C, pattern: [{kind: ring, flags: [root]}]}]",
		"bad identifier": "name: x\ntypes: [{name: X, id: 1, element: C, pattern: [{kind: ring, identifiers: [a]}]}]",
		"leaf targets":   "name: x\ntypes: [{name: X, id: 1, element: C, pattern: [{kind: bond_count, elements: [C]}]}]",
	}
	for name, doc := range cases {
		_, err := forcefield.LoadYAML(strings.NewReader(doc))
		assert.ErrorIs(t, err, forcefield.ErrInvalidDocument, name)
	}

	_, err := forcefield.LoadYAML(strings.NewReader(
		"name: x\ntypes: [{name: H1, id: 1, element: H, pattern: [{kind: connection, types: [CT]}]}]"))
	assert.ErrorIs(t, err, forcefield.ErrAtomTypeNotFound)

	_, err = forcefield.LoadYAML(strings.NewReader(
		"name: x\ntypes: [{name: X, id: 1, element: C, pattern: [{kind: benzene}]}]"))
	assert.ErrorIs(t, err, neta.ErrUnknownNodeType)

	_, err = forcefield.LoadYAML(strings.NewReader(
		"name: x\ntypes: [{name: X, id: 1, element: Qq}]"))
	assert.ErrorIs(t, err, species.ErrUnknownElement)

	_, err = forcefield.LoadYAML(strings.NewReader(
		"name: x\ntypes: [{name: X, id: 1, element: C, pattern: [{kind: connection, branch: [{kind: ring_position}]}]}]"))
	assert.ErrorIs(t, err, neta.ErrInvalidBranch)

	_, err = forcefield.LoadYAML(strings.NewReader(
		"name: x\ntypes: [{name: X, id: 1, element: C}, {name: X, id: 2, element: C}]"))
	assert.ErrorIs(t, err, forcefield.ErrDuplicateAtomType)

	_, err = forcefield.LoadYAML(strings.NewReader(
		"name: x\ntypes: [{name: X, id: 1, element: C, pattern: [{kind: bond_count, op: '~', value: 1}]}]"))
	assert.ErrorIs(t, err, neta.ErrUnknownOperator)
}
