package builder_test

import (
	"fmt"

	"github.com/katalvlaran/neta/builder"
	"github.com/katalvlaran/neta/species"
)

// ExampleBuildSpecies builds ethane from two methyl-like fragments.
func ExampleBuildSpecies() {
	s, err := builder.BuildSpecies("ethane", nil,
		builder.Chain(2, species.C),
		builder.Cap(0, species.H, 3),
		builder.Cap(1, species.H, 3),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s.NAtoms(), s.NBonds(), s.MustAtom(0).NBonds())
	// Output: 8 7 4
}
