package config

import (
	"fmt"
	"runtime"

	"credence/experiments/metrics"
	"credence/games"
	"credence/searcher"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config represents the full experiment configuration
type Config struct {
	Runs     int          `mapstructure:"runs"`    // Playouts per matchup
	Workers  int          `mapstructure:"workers"` // Goroutines per matchup
	Seed     uint64       `mapstructure:"seed"`
	Output   string       `mapstructure:"output"` // Root directory of run results
	SQLite   string       `mapstructure:"sqlite"` // Optional database path
	LogLevel string       `mapstructure:"log_level"`
	Games    []string     `mapstructure:"games"` // Empty for every game
	Solver   SolverConfig `mapstructure:"solver"`
}

// SolverConfig contains the settings shared by every reasoning agent
type SolverConfig struct {
	Discount int64 `mapstructure:"discount"`
	MaxDepth int   `mapstructure:"max_depth"`
	Caches   *bool `mapstructure:"caches"`
}

// Load loads configuration from the global viper instance
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom loads configuration from v and applies defaults
func LoadFrom(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	applyDefaults(cfg)
	return cfg, nil
}

// applyDefaults sets default values for unset fields
func applyDefaults(cfg *Config) {
	if cfg.Runs == 0 {
		cfg.Runs = 1000
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Output == "" {
		cfg.Output = "results"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Solver.Discount == 0 {
		cfg.Solver.Discount = searcher.DefaultDiscount
	}
	if cfg.Solver.MaxDepth == 0 {
		cfg.Solver.MaxDepth = searcher.DefaultMaxDepth
	}
	if cfg.Solver.Caches == nil {
		caches := true
		cfg.Solver.Caches = &caches
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Runs < 1 {
		return fmt.Errorf("runs must be positive, got %d", c.Runs)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.Solver.Discount < 2 {
		return fmt.Errorf("solver discount must be greater than 1, got %d", c.Solver.Discount)
	}
	if c.Solver.MaxDepth < 1 {
		return fmt.Errorf("solver max_depth must be positive, got %d", c.Solver.MaxDepth)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	for _, name := range c.Games {
		if _, err := games.Lookup(name); err != nil {
			return err
		}
	}
	return nil
}

// Level is the parsed log level. Validate must have succeeded.
func (c *Config) Level() zerolog.Level {
	level, _ := zerolog.ParseLevel(c.LogLevel)
	return level
}

// SolverOptions translates the solver settings for searcher.NewSolver
func (c *Config) SolverOptions() []searcher.Option {
	options := []searcher.Option{
		searcher.WithDiscount(c.Solver.Discount),
		searcher.WithMaxDepth(c.Solver.MaxDepth),
	}
	if c.Solver.Caches != nil && !*c.Solver.Caches {
		options = append(options, searcher.WithoutCaches())
	}
	return options
}

// SolverSetup describes the solver settings in experiment metadata
func (c *Config) SolverSetup() metrics.Solver {
	return metrics.Solver{
		Discount: c.Solver.Discount,
		MaxDepth: c.Solver.MaxDepth,
		Caches:   c.Solver.Caches == nil || *c.Solver.Caches,
	}
}
