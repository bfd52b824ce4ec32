package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/valves/internal/logging"
	"github.com/katalvlaran/valves/pressure"
	"github.com/katalvlaran/valves/scenario"
)

func newSolveCmd() *cobra.Command {
	var (
		budget   int
		agents   int
		parallel int
		plan     bool
	)
	cmd := &cobra.Command{
		Use:   "solve scenario.yaml...",
		Short: "Print the maximum releasable pressure of each scenario",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.New("solve")

			jobs := make([]pressure.Job, 0, len(args))
			for _, path := range args {
				s, err := scenario.Load(path)
				if err != nil {
					return err
				}
				g, err := s.Graph()
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				if cmd.Flags().Changed("budget") {
					s.Budget = &budget
				}
				if cmd.Flags().Changed("agents") {
					s.Agents = &agents
				}
				opts := append(s.Options(), pressure.WithLogger(logger.With("scenario", path)))
				if !plan {
					opts = append(opts, pressure.WithoutPlan())
				}
				jobs = append(jobs, pressure.Job{Graph: g, Options: opts})
			}

			logger.Info("solving", "scenarios", len(jobs), "parallel", parallel)
			results, err := pressure.SolveAll(cmd.Context(), jobs, parallel)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, res := range results {
				fmt.Fprintf(out, "%s: %d\n", args[i], res.Pressure)
				for _, op := range res.Plan {
					fmt.Fprintf(out, "  minute %2d  agent %d  open %s  +%d\n", op.Minute, op.Agent, op.Valve, op.Released)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&budget, "budget", pressure.DefaultBudget, "minutes available (overrides the scenario)")
	cmd.Flags().IntVar(&agents, "agents", 1, "agents leaving the origin together (overrides the scenario)")
	cmd.Flags().IntVar(&parallel, "parallel", runtime.NumCPU(), "scenarios solved concurrently")
	cmd.Flags().BoolVar(&plan, "plan", false, "print who opens which valve when")
	return cmd
}
