package config

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"FiscalSim/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Simulation struct {
		TotalRevenue float64 `yaml:"total_revenue"`
		SpringShare  float64 `yaml:"spring_share"`
		FallShare    float64 `yaml:"fall_share"`
		SpringDays   int     `yaml:"spring_days"`
		FallDays     int     `yaml:"fall_days"`
		RampDays     int     `yaml:"ramp_days"`
		Seed         uint64  `yaml:"seed"`
	} `yaml:"simulation"`
	Capacity struct {
		Base     float64 `yaml:"base"`
		Seasonal float64 `yaml:"seasonal"`
	} `yaml:"capacity"`
	Batch struct {
		Runs    int `yaml:"runs"`
		Workers int `yaml:"workers"`
	} `yaml:"batch"`
	Server struct {
		ListenAddr     string   `yaml:"listen_addr"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`
	Debug bool `yaml:"debug"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.SetParams(model.DefaultParams())
	plan := model.DefaultCapacityPlan(model.NewLayout(model.DefaultParams()))
	cfg.Capacity.Base = plan.Base
	cfg.Capacity.Seasonal = plan.Seasonal
	cfg.Batch.Runs = 100
	cfg.Batch.Workers = 4
	cfg.Server.ListenAddr = ":8080"
	cfg.Server.AllowedOrigins = []string{"http://localhost:5173", "http://localhost:8080"}
	return cfg
}

// Load reads config from a YAML file on top of the defaults, then applies
// environment variable overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("FISCALSIM_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse FISCALSIM_SEED: %w", err)
		}
		cfg.Simulation.Seed = seed
	}
	if v := os.Getenv("FISCALSIM_TOTAL_REVENUE"); v != "" {
		total, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("parse FISCALSIM_TOTAL_REVENUE: %w", err)
		}
		cfg.Simulation.TotalRevenue = total
	}
	if v := os.Getenv("FISCALSIM_RAMP_DAYS"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse FISCALSIM_RAMP_DAYS: %w", err)
		}
		cfg.Simulation.RampDays = days
	}
	if v := os.Getenv("FISCALSIM_LISTEN_ADDR"); v != "" {
		cfg.Server.ListenAddr = v
	}
	if os.Getenv("FISCALSIM_DEBUG") == "true" {
		cfg.Debug = true
	}

	return cfg, nil
}

// Params converts the simulation section into a parameter set.
func (c *Config) Params() model.Params {
	s := c.Simulation
	return model.Params{
		TotalRevenue: s.TotalRevenue,
		SpringShare:  s.SpringShare,
		FallShare:    s.FallShare,
		SpringDays:   s.SpringDays,
		FallDays:     s.FallDays,
		RampDays:     s.RampDays,
		Seed:         s.Seed,
	}
}

// SetParams writes p back into the simulation section.
func (c *Config) SetParams(p model.Params) {
	c.Simulation.TotalRevenue = p.TotalRevenue
	c.Simulation.SpringShare = p.SpringShare
	c.Simulation.FallShare = p.FallShare
	c.Simulation.SpringDays = p.SpringDays
	c.Simulation.FallDays = p.FallDays
	c.Simulation.RampDays = p.RampDays
	c.Simulation.Seed = p.Seed
}

// CapacityPlan applies the seasonal capacity to both season windows.
func (c *Config) CapacityPlan() model.CapacityPlan {
	return model.CapacityPlan{
		Base:     c.Capacity.Base,
		Seasonal: c.Capacity.Seasonal,
		Windows:  model.NewLayout(c.Params()).Seasons(),
	}
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	if !(c.Capacity.Base >= 0) || math.IsInf(c.Capacity.Base, 0) {
		return fmt.Errorf("capacity.base must be a finite non-negative amount")
	}
	if !(c.Capacity.Seasonal >= 0) || math.IsInf(c.Capacity.Seasonal, 0) {
		return fmt.Errorf("capacity.seasonal must be a finite non-negative amount")
	}
	if c.Batch.Runs <= 0 {
		return fmt.Errorf("batch.runs must be positive")
	}
	if c.Batch.Workers <= 0 {
		return fmt.Errorf("batch.workers must be positive")
	}
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("server.listen_addr is required")
	}
	return nil
}
