package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/heldkarp/internal/simd"
	"github.com/katalvlaran/heldkarp/tsp"
)

// benchMaxCost bounds the random edge costs.
const benchMaxCost = 1000

type benchFlags struct {
	n     int
	count int
	seed  int64
	dump  bool
}

func newBenchCmd(a *app) *cobra.Command {
	var f benchFlags

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time both engines on deterministic random instances",
		Long: `Generates --count random asymmetric instances of --n vertices starting at
--seed, solves each with the scalar and the vector engine, checks that the
answers agree and prints the timings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bc := a.cfg.Bench
			if cmd.Flags().Changed("n") {
				bc.N = f.n
			}
			if cmd.Flags().Changed("count") {
				bc.Count = f.count
			}
			if cmd.Flags().Changed("seed") {
				bc.Seed = f.seed
			}
			if bc.N < 2 || bc.Count <= 0 {
				return fmt.Errorf("bench: need n >= 2 and count > 0, got n=%d count=%d", bc.N, bc.Count)
			}

			opts := a.cfg.SolverOptions()
			opts.Logger = a.log
			if opts.MaxN > 0 && bc.N > opts.MaxN {
				return fmt.Errorf("%w: n=%d exceeds limit %d", tsp.ErrTooLarge, bc.N, opts.MaxN)
			}

			bytes, err := tsp.TableBytes(bc.N)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			tbl := table.NewWriter()
			tbl.SetStyle(table.StyleLight)
			tbl.AppendHeader(table.Row{"seed", "engine", "cost", "elapsed"})

			for k := 0; k < bc.Count; k++ {
				seed := bc.Seed + int64(k)
				m, err := tsp.RandomMatrix(bc.N, benchMaxCost, seed, false)
				if err != nil {
					return err
				}
				if f.dump {
					fmt.Fprintf(out, "%d\n%s", bc.N, m)
				}

				var costs [2]uint32
				for i, e := range []tsp.Engine{tsp.EngineScalar, tsp.EngineVector} {
					opts.Engine = e
					s, err := tsp.New(m, opts)
					if err != nil {
						return err
					}
					start := time.Now()
					costs[i] = s.Compute()
					elapsed := time.Since(start)
					tbl.AppendRow(table.Row{seed, e.String(), costs[i], elapsed.Round(time.Microsecond)})
				}
				if costs[0] != costs[1] {
					return fmt.Errorf("bench: engines disagree on seed %d: scalar=%d vector=%d", seed, costs[0], costs[1])
				}
			}

			fmt.Fprintf(out, "n=%d isa=%s lanes=%d table=%s\n", bc.N, simd.ActiveISA(), simd.Lanes, humanize.IBytes(bytes))
			fmt.Fprintln(out, tbl.Render())

			return nil
		},
	}

	cmd.Flags().IntVar(&f.n, "n", 0, "vertices per instance")
	cmd.Flags().IntVar(&f.count, "count", 0, "number of instances")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "seed of the first instance")
	cmd.Flags().BoolVar(&f.dump, "dump", false, "print each instance in the input format before timing it")

	return cmd
}
