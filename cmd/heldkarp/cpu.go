package main

import (
	"fmt"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/heldkarp/internal/simd"
	"github.com/katalvlaran/heldkarp/tsp"
)

func newCPUCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cpu",
		Short: "Show detected SIMD capabilities and the engine auto selects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			auto := tsp.EngineScalar
			if simd.Accelerated() {
				auto = tsp.EngineVector
			}

			tbl := table.NewWriter()
			tbl.SetStyle(table.StyleLight)
			tbl.AppendRow(table.Row{"arch", runtime.GOARCH})
			tbl.AppendRow(table.Row{"cpus", runtime.NumCPU()})
			tbl.AppendRow(table.Row{"avx2", simd.HasAVX2()})
			tbl.AppendRow(table.Row{"isa", simd.ActiveISA().String()})
			tbl.AppendRow(table.Row{"override", simd.IsOverridden()})
			tbl.AppendRow(table.Row{"lanes", simd.Lanes})
			tbl.AppendRow(table.Row{"auto engine", auto.String()})

			if maxN := a.cfg.MaxN; maxN > 0 {
				if b, err := tsp.TableBytes(maxN); err == nil {
					tbl.AppendRow(table.Row{fmt.Sprintf("table at n=%d", maxN), humanize.IBytes(b)})
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())

			return nil
		},
	}
}
