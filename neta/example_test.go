package neta_test

import (
	"fmt"

	"github.com/katalvlaran/neta/builder"
	"github.com/katalvlaran/neta/neta"
	"github.com/katalvlaran/neta/species"
)

// ExampleDefinition_Score finds the hydrogens of a methyl group.
func ExampleDefinition_Score() {
	s := builder.MustBuildSpecies("ethane", nil,
		builder.Chain(2, species.C),
		builder.Cap(0, species.H, 3),
		builder.Cap(1, species.H, 3),
	)

	// -C(nh=3),nbonds=1
	methyl := neta.NewConnection(species.C)
	_ = methyl.SetBranch(neta.NewHydrogenCountOf(neta.EqualTo, 3))
	d := neta.MustDefinition(methyl, neta.NewBondCountOf(neta.EqualTo, 1))

	fmt.Println(d)
	for _, a := range s.Atoms() {
		if score := d.Score(a); score != neta.NoMatch {
			fmt.Printf("%s scores %d\n", a, score)
		}
	}
	// Output:
	// -C(nh=3),nbonds=1
	// H2 scores 3
	// H3 scores 3
	// H4 scores 3
	// H5 scores 3
	// H6 scores 3
	// H7 scores 3
}

// ExampleCreate describes the environment of a methane hydrogen.
func ExampleCreate() {
	s := builder.MustBuildSpecies("methane", nil, builder.Star(species.C, species.H, 4))

	fmt.Println(neta.Create(s.MustAtom(1), neta.WithMaxDepth(1)))
	// Output: nbonds=1,-C(nbonds=4,nh=4)
}
