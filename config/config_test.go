package config

import (
	"bytes"
	"testing"

	"credence/searcher"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, yaml string) *Config {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewBufferString(yaml)))
	cfg, err := LoadFrom(v)
	require.NoError(t, err)
	return cfg
}

func TestLoad(t *testing.T) {
	t.Run("unset fields get defaults", func(t *testing.T) {
		cfg := load(t, "seed: 3\n")
		require.Equal(t, uint64(3), cfg.Seed)
		require.Equal(t, 1000, cfg.Runs)
		require.Positive(t, cfg.Workers)
		require.Equal(t, "results", cfg.Output)
		require.Equal(t, zerolog.InfoLevel, cfg.Level())
		require.Equal(t, int64(searcher.DefaultDiscount), cfg.Solver.Discount)
		require.True(t, cfg.SolverSetup().Caches)
		require.Len(t, cfg.SolverOptions(), 2)
		require.NoError(t, cfg.Validate())
	})

	t.Run("nested solver settings are read", func(t *testing.T) {
		cfg := load(t, `
runs: 10
workers: 2
games: [cooperative-spies, envelope]
solver:
  discount: 10
  max_depth: 64
  caches: false
`)
		require.Equal(t, 10, cfg.Runs)
		require.Equal(t, []string{"cooperative-spies", "envelope"}, cfg.Games)
		require.Equal(t, int64(10), cfg.Solver.Discount)
		require.False(t, cfg.SolverSetup().Caches)
		require.Len(t, cfg.SolverOptions(), 3)
		require.NoError(t, cfg.Validate())
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)
		return cfg
	}

	t.Run("defaults are valid", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("a discount of one is rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Solver.Discount = 1
		require.Error(t, cfg.Validate())
	})

	t.Run("negative runs are rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Runs = -1
		require.Error(t, cfg.Validate())
	})

	t.Run("unknown log levels are rejected", func(t *testing.T) {
		cfg := valid()
		cfg.LogLevel = "loud"
		require.Error(t, cfg.Validate())
	})

	t.Run("unknown games are rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Games = []string{"chess"}
		require.Error(t, cfg.Validate())
	})
}
