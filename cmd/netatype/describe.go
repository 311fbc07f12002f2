package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/neta/neta"
)

func newDescribeCmd(opts *options) *cobra.Command {
	var (
		speciesPath string
		atom        int
		depth       int
	)
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the NETA description generated for one atom",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readSpecies(speciesPath)
			if err != nil {
				return err
			}
			a, err := s.Atom(atom)
			if err != nil {
				return err
			}

			createOpts := opts.cfg.CreateOptions()
			if cmd.Flags().Changed("depth") {
				if depth < 0 {
					return fmt.Errorf("describe: negative depth %d", depth)
				}
				createOpts = append(createOpts, neta.WithMaxDepth(depth))
			}
			fmt.Fprintln(cmd.OutOrStdout(), neta.Create(a, createOpts...))
			return nil
		},
	}
	cmd.Flags().StringVarP(&speciesPath, "species", "s", "", "species YAML document")
	cmd.Flags().IntVarP(&atom, "atom", "a", 0, "index of the atom to describe")
	cmd.Flags().IntVarP(&depth, "depth", "d", 0, "maximum depth of the description (overrides the config)")
	_ = cmd.MarkFlagRequired("species")
	return cmd
}
