package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/neta/config"
	"github.com/katalvlaran/neta/log"
	"github.com/katalvlaran/neta/species"
)

// options shared by every sub command.
type options struct {
	configPath string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "netatype",
		Short:         "Assign atom types and describe atom environments with NETA.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default: built-in values and NETA_* environment)")

	root.AddCommand(newAssignCmd(), newDescribeCmd(opts))
	return root
}

func (o *options) load() error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	log.New(os.Stderr, "", 0)
	if err = cfg.Apply(); err != nil {
		return err
	}
	o.cfg = cfg
	return nil
}

func readSpecies(path string) (*species.Species, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := species.LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
