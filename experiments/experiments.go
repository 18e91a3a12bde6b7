package experiments

import (
	"context"
	"fmt"
	"time"

	"credence/agent"
	"credence/engine"
	"credence/experiments/metrics"
	"credence/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// Runner plays every matchup of a set of scenarios. Playouts of one matchup
// are split over Workers goroutines, each with its own agents and caches.
type Runner struct {
	Runs    int // Per matchup
	Workers int
	Seed    uint64
	Solver  []searcher.Option
}

func (r *Runner) Run(ctx context.Context, scenarios []Scenario) ([]metrics.MatchupRecord, error) {
	var records []metrics.MatchupRecord
	total := 0
	for _, scenario := range scenarios {
		total += len(scenario.Matchups)
	}

	for _, scenario := range scenarios {
		log.Info().Msgf("starting %s scenario...", scenario.Name)
		for _, seats := range scenario.Matchups {
			id := len(records) + 1
			log.Info().Msgf("starting matchup %d of %d: %v", id, total, seats)

			record, err := r.runMatchup(ctx, id, scenario, seats)
			if err != nil {
				return records, fmt.Errorf("matchup %d %s %v: %w", id, scenario.Name, seats, err)
			}
			records = append(records, record)

			log.Info().Msgf("completed matchup %d of %d with mean utilities %s", id, total, metrics.FormatUtilities(record.MeanUtilities, ", "))
		}
		log.Info().Msgf("completed %s scenario", scenario.Name)
	}
	return records, nil
}

func (r *Runner) runMatchup(ctx context.Context, id int, scenario Scenario, seats []string) (metrics.MatchupRecord, error) {
	workers := r.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > r.Runs {
		workers = max(r.Runs, 1)
	}

	collector := metrics.NewCollector()
	options := append(append([]searcher.Option{}, r.Solver...), searcher.WithMetrics(collector))
	totals := make([][]int64, workers)

	start := time.Now()
	group, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		group.Go(func() error {
			runs := r.Runs*(w+1)/workers - r.Runs*w/workers
			seed := r.Seed + uint64(id)<<32 + uint64(w)<<16

			agents := make([]engine.Agent, len(seats))
			for i, name := range seats {
				a, err := agent.New(name, seed+uint64(i)+1, options...)
				if err != nil {
					return err
				}
				agents[i] = a
			}
			e, err := engine.New(scenario.Game, agents...)
			if err != nil {
				return err
			}

			rng := rand.New(rand.NewSource(seed))
			sums := make([]int64, len(seats))
			for i := 0; i < runs; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				result, err := r.play(e, rng, scenario)
				if err != nil {
					return err
				}
				for seat, u := range result.Utilities {
					sums[seat] += int64(u)
				}
			}
			totals[w] = sums
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return metrics.MatchupRecord{}, err
	}

	means := make([]float64, len(seats))
	for _, sums := range totals {
		for seat, sum := range sums {
			means[seat] += float64(sum)
		}
	}
	for seat := range means {
		if r.Runs > 0 {
			means[seat] /= float64(r.Runs)
		}
	}

	return metrics.MatchupRecord{
		ID:            id,
		Scenario:      scenario.Name,
		Game:          scenario.Game.Name(),
		Seats:         seats,
		Runs:          r.Runs,
		MeanUtilities: means,
		StartTime:     start,
		Duration:      time.Since(start),
		SolverMetric:  collector.Complete(),
	}, nil
}

func (r *Runner) play(e *engine.Engine, rng *rand.Rand, scenario Scenario) (engine.Result, error) {
	if scenario.Filter != nil {
		return e.PlayFiltered(rng, scenario.Filter)
	}
	return e.Play(rng)
}
