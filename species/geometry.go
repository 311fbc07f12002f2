package species

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

// Geometry classifies the local coordination geometry of an atom.
// Values are precomputed outside this module and only compared by the engine.
type Geometry int

const (
	GeometryUnknown Geometry = iota
	Unbound
	Terminal
	Linear
	TShape
	TrigonalPlanar
	Tetrahedral
	SquarePlanar
	TrigonalBipyramidal
	Octahedral
)

// geometryKeywords are the short NETA keywords ("geometry=tet").
var geometryKeywords = map[Geometry]string{
	GeometryUnknown:     "unknown",
	Unbound:             "unbound",
	Terminal:            "terminal",
	Linear:              "linear",
	TShape:              "ts",
	TrigonalPlanar:      "tp",
	Tetrahedral:         "tet",
	SquarePlanar:        "sqp",
	TrigonalBipyramidal: "tbp",
	Octahedral:          "oct",
}

// geometryNames are the descriptive snake_case names.
var geometryNames = map[string]Geometry{
	"unknown":              GeometryUnknown,
	"unbound":              Unbound,
	"terminal":             Terminal,
	"linear":               Linear,
	"t_shape":              TShape,
	"trigonal_planar":      TrigonalPlanar,
	"tetrahedral":          Tetrahedral,
	"square_planar":        SquarePlanar,
	"trigonal_bipyramidal": TrigonalBipyramidal,
	"octahedral":           Octahedral,
}

// String returns the short keyword used in NETA text.
func (g Geometry) String() string {
	if s, ok := geometryKeywords[g]; ok {
		return s
	}
	return fmt.Sprintf("Geometry(%d)", int(g))
}

// ParseGeometry accepts either the short keyword ("tp") or a descriptive name in
// any common casing ("trigonal_planar", "TrigonalPlanar", "trigonal-planar").
func ParseGeometry(s string) (Geometry, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for g, kw := range geometryKeywords {
		if kw == key {
			return g, nil
		}
	}
	if g, ok := geometryNames[strcase.ToSnake(strings.TrimSpace(s))]; ok {
		return g, nil
	}
	return GeometryUnknown, fmt.Errorf("ParseGeometry(%q): %w", s, ErrUnknownGeometry)
}
