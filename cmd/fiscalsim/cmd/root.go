package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"FiscalSim/internal/config"
	"FiscalSim/internal/log"
)

var (
	cfgPath  string
	seed     uint64
	rampDays int
	debug    bool
)

var rootCmd = &cobra.Command{
	Use:   "fiscalsim",
	Short: "Seasonal fiscal year revenue simulator",
	Long: `Simulates daily revenue of a seasonal service business over a 365-day
fiscal year and compares it against staffing capacity.`,
	SilenceUsage: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultPath := "configs/fiscalsim.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		defaultPath = v
	}
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultPath, "YAML config file")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Random seed (overrides config)")
	rootCmd.PersistentFlags().IntVar(&rampDays, "ramp-days", 0, "Ramp length in days (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

// loadConfig reads the config file, applies flag overrides, validates and
// initializes logging.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Simulation.Seed = seed
	}
	if flags.Changed("ramp-days") {
		cfg.Simulation.RampDays = rampDays
	}
	if flags.Changed("debug") {
		cfg.Debug = debug
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	if err := log.Init(cfg.Debug); err != nil {
		return nil, err
	}
	return cfg, nil
}
