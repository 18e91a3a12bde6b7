package metrics

import "time"

// MatchupRecord summarises the playouts of one matchup.
type MatchupRecord struct {
	ID            int
	Scenario      string
	Game          string
	Seats         []string // Archetype per seat
	Runs          int
	MeanUtilities []float64
	StartTime     time.Time
	Duration      time.Duration
	SolverMetric
}

// Setup describes an experiment run and is stored next to its results.
type Setup struct {
	RunID     string    `yaml:"run_id"`
	StartTime time.Time `yaml:"start_time"`
	Runs      int       `yaml:"runs"`
	Workers   int       `yaml:"workers"`
	Seed      uint64    `yaml:"seed"`
	Scenarios []string  `yaml:"scenarios"`
	Solver    Solver    `yaml:"solver"`
}

type Solver struct {
	Discount int64 `yaml:"discount"`
	MaxDepth int   `yaml:"max_depth"`
	Caches   bool  `yaml:"caches"`
}
