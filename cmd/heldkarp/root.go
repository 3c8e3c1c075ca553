package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/heldkarp/internal/config"
	"github.com/katalvlaran/heldkarp/internal/logging"
)

// app carries what PersistentPreRunE resolved for the subcommands.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg *config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "heldkarp",
		Short: "Exact TSP solver (Held-Karp bitmask DP with SIMD dispatch)",
		Long: `heldkarp computes the exact minimum Hamiltonian cycle cost of a
directed weighted graph given as an n×n cost matrix.

Commands:
  solve     Solve instances from stdin or files
  bench     Compare the scalar and vector engines on random instances
  cpu       Show detected SIMD capabilities`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default .heldkarp.yaml in CWD or $HOME)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json")

	rootCmd.AddCommand(newSolveCmd(a))
	rootCmd.AddCommand(newBenchCmd(a))
	rootCmd.AddCommand(newCPUCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// setup loads the config and builds the logger. Flags win over config values.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}

	log, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}

	a.cfg = cfg
	a.log = log
	a.log.Debug("config loaded", "engine", cfg.Engine, "max_n", cfg.MaxN, "workers", cfg.Workers)

	return nil
}
