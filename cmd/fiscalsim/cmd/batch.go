package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"FiscalSim/internal/log"
	"FiscalSim/internal/report"
	"FiscalSim/internal/simulator"
)

var (
	batchRuns    int
	batchWorkers int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run a Monte Carlo batch of independently seeded years",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		runs, workers := cfg.Batch.Runs, cfg.Batch.Workers
		if cmd.Flags().Changed("runs") {
			runs = batchRuns
		}
		if cmd.Flags().Changed("workers") {
			workers = batchWorkers
		}

		p := cfg.Params()
		results, err := simulator.RunBatch(cmd.Context(), p, runs, workers)
		if err != nil {
			return fmt.Errorf("batch: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), report.FormatBatch(p, simulator.Totals(results)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().IntVar(&batchRuns, "runs", 0, "Number of runs (overrides config)")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "Concurrent workers (overrides config)")
}
