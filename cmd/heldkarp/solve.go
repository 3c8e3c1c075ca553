package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/heldkarp/tsp"
	"github.com/katalvlaran/heldkarp/tspio"
)

type solveFlags struct {
	engine  string
	maxN    int
	workers int
	tour    bool
}

func newSolveCmd(a *app) *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   "solve [files...]",
		Short: "Solve one instance from stdin, or each file given",
		Long: `Reads n followed by n rows of n costs and prints the minimum tour cost.
Without arguments the instance is read from stdin. With files, each is
solved concurrently and one answer per file is printed in argument order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.solverOptions(cmd, f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				res, err := tspio.Read(cmd.InOrStdin(), opts)
				if err != nil {
					return err
				}

				return writeResult(out, res, f.tour)
			}

			workers := a.cfg.Workers
			if cmd.Flags().Changed("workers") {
				workers = f.workers
			}

			results, err := tspio.SolveFiles(cmd.Context(), args, workers, opts)
			if err != nil {
				return err
			}
			for _, r := range results {
				if err := writeResult(out, r.Result, f.tour); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&f.engine, "engine", "", "transition engine: auto, scalar or vector")
	cmd.Flags().IntVar(&f.maxN, "max-n", 0, "reject instances with more vertices (0 = no limit)")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "files solved concurrently (0 = one per file)")
	cmd.Flags().BoolVar(&f.tour, "tour", false, "also print the optimal tour")

	return cmd
}

// solverOptions merges config values with explicitly set flags.
func (a *app) solverOptions(cmd *cobra.Command, f solveFlags) (tsp.Options, error) {
	opts := a.cfg.SolverOptions()
	opts.Logger = a.log

	if cmd.Flags().Changed("engine") {
		e, err := tsp.ParseEngine(f.engine)
		if err != nil {
			return tsp.Options{}, err
		}
		opts.Engine = e
	}
	if cmd.Flags().Changed("max-n") {
		opts.MaxN = f.maxN
	}

	return opts, nil
}

func writeResult(w io.Writer, res tsp.Result, withTour bool) error {
	if err := tspio.WriteCost(w, res.Cost); err != nil {
		return err
	}
	if withTour {
		return tspio.WriteTour(w, res.Tour)
	}

	return nil
}
