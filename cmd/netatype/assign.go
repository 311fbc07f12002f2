package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/jinzhu/inflection"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/neta/forcefield"
)

func newAssignCmd() *cobra.Command {
	var speciesPath, forcefieldPath string
	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Print the best scoring atom type of every atom in a species",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readSpecies(speciesPath)
			if err != nil {
				return err
			}
			ff, err := readForcefield(forcefieldPath)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ATOM\tELEMENT\tTYPE\tSCORE")
			assigned := 0
			for _, as := range ff.DetermineAtomTypes(s) {
				name := "-"
				if as.Type != nil {
					name = as.Type.Name()
					assigned++
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", as.Atom.Index(), as.Atom.Element(), name, as.Score)
			}
			if err = w.Flush(); err != nil {
				return err
			}

			noun := "atom"
			if s.NAtoms() != 1 {
				noun = inflection.Plural(noun)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "assigned %d of %d %s\n", assigned, s.NAtoms(), noun)
			return nil
		},
	}
	cmd.Flags().StringVarP(&speciesPath, "species", "s", "", "species YAML document")
	cmd.Flags().StringVarP(&forcefieldPath, "forcefield", "f", "", "forcefield YAML document")
	_ = cmd.MarkFlagRequired("species")
	_ = cmd.MarkFlagRequired("forcefield")
	return cmd
}

func readForcefield(path string) (*forcefield.Forcefield, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ff, err := forcefield.LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ff, nil
}
