package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/valves/builder"
	"github.com/katalvlaran/valves/pressure"
	"github.com/katalvlaran/valves/scenario"
)

func newGenerateCmd() *cobra.Command {
	var (
		shape  string
		size   int
		length int
		seed   int64
		prob   float64
		budget int
		agents int
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a generated scenario as YAML to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if agents < 1 {
				return fmt.Errorf("generate: %w: got %d", pressure.ErrNoAgents, agents)
			}
			con, err := constructor(shape, size, length, prob)
			if err != nil {
				return err
			}
			recs, err := builder.Build([]builder.Option{builder.WithSeed(seed)}, con)
			if err != nil {
				return err
			}
			return scenario.Encode(cmd.OutOrStdout(), scenario.FromRecords(recs, budget, agents))
		},
	}
	cmd.Flags().StringVar(&shape, "shape", "random", "topology: star, path, cycle, grid or random")
	cmd.Flags().IntVar(&size, "size", 10, "number of rated valves (arms for star, side for grid)")
	cmd.Flags().IntVar(&length, "length", 2, "arm length for star")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().Float64Var(&prob, "p", 0.1, "extra tunnel probability for random")
	cmd.Flags().IntVar(&budget, "budget", pressure.DefaultBudget, "minutes available")
	cmd.Flags().IntVar(&agents, "agents", 1, "agents leaving the origin together")
	return cmd
}

func constructor(shape string, size, length int, p float64) (builder.Constructor, error) {
	switch shape {
	case "star":
		return builder.Star(size, length, 10), nil
	case "path":
		return builder.Path(size), nil
	case "cycle":
		return builder.Cycle(size), nil
	case "grid":
		return builder.Grid(size, size), nil
	case "random":
		return builder.RandomSparse(size, p), nil
	default:
		return nil, fmt.Errorf("unknown shape %q", shape)
	}
}
