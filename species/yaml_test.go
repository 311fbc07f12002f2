package species_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/neta/species"
)

const methanolYAML = `
name: methanol
atoms:
  - {element: C, geometry: tet}
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
  - {i: 4, j: 5, type: single}
`

func TestLoadYAML(t *testing.T) {
	s, err := species.LoadYAML(strings.NewReader(methanolYAML))
	require.NoError(t, err)
	assert.Equal(t, "methanol", s.Name())
	assert.Equal(t, 6, s.NAtoms())
	assert.Equal(t, 5, s.NBonds())
	assert.Equal(t, species.Tetrahedral, s.MustAtom(0).Geometry())
	assert.Equal(t, species.O, s.MustAtom(4).Element())
	assert.Equal(t, 2, s.MustAtom(4).NBonds())
}

func TestLoadYAML_Invalid(t *testing.T) {
	cases := map[string]string{
		"no name":    "atoms: [{element: C}]",
		"no atoms":   "name: empty",
		"no element": "name: x\natoms: [{geometry: tet}]",
		"bad yaml":   "name: [",
		"bad index":  "name: x\natoms: [{element: C}]\nbonds: [{i: 0, j: -1}]",
	}
	for name, doc := range cases {
		_, err := species.LoadYAML(strings.NewReader(doc))
		assert.ErrorIs(t, err, species.ErrInvalidDocument, name)
	}

	_, err := species.LoadYAML(strings.NewReader("name: x\natoms: [{element: Qq}]"))
	assert.ErrorIs(t, err, species.ErrUnknownElement)

	_, err = species.LoadYAML(strings.NewReader("name: x\natoms: [{element: C}, {element: C}]\nbonds: [{i: 0, j: 3}]"))
	assert.ErrorIs(t, err, species.ErrAtomNotFound)
}
