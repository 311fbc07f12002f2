package species

import (
	"fmt"
	"io"

	"gopkg.in/go-playground/validator.v9"
	"gopkg.in/yaml.v3"
)

// Document is the YAML form of a Species.
//
//	name: methanol
//	atoms:
//	  - {element: C}
//	  - {element: O, geometry: terminal}
//	bonds:
//	  - {i: 0, j: 1, type: single}
type Document struct {
	Name  string         `yaml:"name" validate:"required"`
	Atoms []AtomDocument `yaml:"atoms" validate:"required,min=1,dive"`
	Bonds []BondDocument `yaml:"bonds" validate:"dive"`
}

// AtomDocument describes one atom.
type AtomDocument struct {
	Element  string `yaml:"element" validate:"required"`
	Geometry string `yaml:"geometry"`
}

// BondDocument describes one bond by atom indices.
type BondDocument struct {
	I    int    `yaml:"i" validate:"min=0"`
	J    int    `yaml:"j" validate:"min=0"`
	Type string `yaml:"type"`
}

// LoadYAML decodes and validates a species document from r and builds the Species.
func LoadYAML(r io.Reader) (*Species, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("LoadYAML: %w: %w", ErrInvalidDocument, err)
	}

	return doc.Build()
}

// Build validates the document and constructs the Species it describes.
func (doc Document) Build() (*Species, error) {
	if err := validator.New().Struct(doc); err != nil {
		return nil, fmt.Errorf("Build: %w: %w", ErrInvalidDocument, err)
	}

	s := NewSpecies(doc.Name)
	for n, ad := range doc.Atoms {
		el, err := ElementFromSymbol(ad.Element)
		if err != nil {
			return nil, fmt.Errorf("Build: atom %d: %w", n, err)
		}
		var opts []AtomOption
		if ad.Geometry != "" {
			g, err := ParseGeometry(ad.Geometry)
			if err != nil {
				return nil, fmt.Errorf("Build: atom %d: %w", n, err)
			}
			opts = append(opts, WithGeometry(g))
		}
		if _, err = s.AddAtom(el, opts...); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	for n, bd := range doc.Bonds {
		var opts []BondOption
		if bd.Type != "" {
			t, err := ParseBondType(bd.Type)
			if err != nil {
				return nil, fmt.Errorf("Build: bond %d: %w", n, err)
			}
			opts = append(opts, WithBondType(t))
		}
		if _, err := s.AddBond(bd.I, bd.J, opts...); err != nil {
			return nil, fmt.Errorf("Build: bond %d: %w", n, err)
		}
	}

	return s, nil
}
