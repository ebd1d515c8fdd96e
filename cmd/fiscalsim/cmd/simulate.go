package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"FiscalSim/internal/calculator"
	"FiscalSim/internal/log"
	"FiscalSim/internal/report"
	"FiscalSim/internal/simulator"
)

var printSeries bool

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate one fiscal year and print its statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		defer log.Sync()

		p := cfg.Params()
		series, err := simulator.Simulate(p)
		if err != nil {
			return fmt.Errorf("simulate: %w", err)
		}
		log.Infow("year simulated", "seed", p.Seed, "days", len(series))

		sum, err := calculator.Describe(series)
		if err != nil {
			return err
		}
		plan := cfg.CapacityPlan()
		rep, err := calculator.CompareCapacity(series, plan)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprint(out, report.FormatSummary(p, sum, calculator.TotalRevenue(series)))
		if peak, start, err := calculator.PeakWindow(series, 7); err == nil {
			fmt.Fprintf(out, "\nBusiest week: days %d-%d averaging %.2f/day\n", start, start+6, peak)
		}
		fmt.Fprintln(out)
		fmt.Fprint(out, report.FormatCapacity(plan, rep))
		if printSeries {
			fmt.Fprintln(out)
			fmt.Fprint(out, report.FormatSeries(series))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().BoolVar(&printSeries, "series", false, "Also print the daily series")
}
