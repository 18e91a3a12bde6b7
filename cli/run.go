package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"credence/experiments"
	"credence/experiments/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play every matchup of the selected games",
	Long: `Play every matchup of the selected games and report mean utilities.

Results are written to <output>/<run-id>/ as setup.yaml and
matchup_records.csv, and optionally appended to a SQLite database.

Examples:
  credence run                                  # Every game
  credence run --games envelope,good-or-evil --runs 100
  credence run --sqlite results/credence.db`,
	Args: cobra.NoArgs,
	RunE: runExperiments,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Int("runs", 0, "Playouts per matchup")
	runCmd.Flags().Int("workers", 0, "Goroutines per matchup (default is the number of CPUs)")
	runCmd.Flags().Uint64("seed", 0, "Seed of every random source")
	runCmd.Flags().StringSlice("games", nil, "Games to play (default is every game)")
	runCmd.Flags().String("output", "", "Root directory of run results")
	runCmd.Flags().String("sqlite", "", "SQLite database to append results to")
	for _, name := range []string{"runs", "workers", "seed", "games", "output", "sqlite"} {
		_ = viper.BindPFlag(name, runCmd.Flags().Lookup(name))
	}
}

func runExperiments(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scenarios := experiments.Select(experiments.DefaultScenarios(), cfg.Games)
	setup := metrics.Setup{
		RunID:     uuid.NewString(),
		StartTime: time.Now(),
		Runs:      cfg.Runs,
		Workers:   cfg.Workers,
		Seed:      cfg.Seed,
		Solver:    cfg.SolverSetup(),
	}
	for _, scenario := range scenarios {
		setup.Scenarios = append(setup.Scenarios, scenario.Name)
	}

	writer, err := metrics.NewWriter(cfg.Output, setup.RunID)
	if err != nil {
		return err
	}
	if err := writer.WriteSetup(setup); err != nil {
		return err
	}
	log.Info().Msgf("starting run %s with %d scenarios, writing to %s", setup.RunID, len(scenarios), writer.Dir())

	runner := &experiments.Runner{
		Runs:    cfg.Runs,
		Workers: cfg.Workers,
		Seed:    cfg.Seed,
		Solver:  cfg.SolverOptions(),
	}
	records, err := runner.Run(ctx, scenarios)
	// Completed matchups are kept even when the run fails
	if werr := writer.WriteMatchupRecords(records); werr != nil {
		log.Error().Err(werr).Msg("failed to write matchup records")
	}
	if err != nil {
		return err
	}

	if cfg.SQLite != "" {
		store, err := metrics.OpenStore(cfg.SQLite)
		if err != nil {
			return fmt.Errorf("failed to open results database: %w", err)
		}
		defer store.Close()
		if err := store.SaveRun(ctx, setup, records); err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
	}

	log.Info().Msgf("completed run %s in %s", setup.RunID, time.Since(setup.StartTime).Round(time.Millisecond))
	return experiments.WriteReport(cmd.OutOrStdout(), records)
}
