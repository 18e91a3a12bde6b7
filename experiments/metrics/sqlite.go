package metrics

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Store keeps matchup records of every run in one SQLite database.
type Store struct {
	db *sql.DB
}

func OpenStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		"PRAGMA journal_mode=WAL;",
		`CREATE TABLE IF NOT EXISTS runs (
			run_id TEXT PRIMARY KEY,
			start_time TEXT NOT NULL,
			runs INTEGER NOT NULL,
			workers INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			discount INTEGER NOT NULL,
			max_depth INTEGER NOT NULL,
			caches INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS matchups (
			run_id TEXT NOT NULL REFERENCES runs(run_id),
			id INTEGER NOT NULL,
			scenario TEXT NOT NULL,
			game TEXT NOT NULL,
			seats TEXT NOT NULL,
			runs INTEGER NOT NULL,
			mean_utilities TEXT NOT NULL,
			duration_ms INTEGER NOT NULL,
			evaluations INTEGER NOT NULL,
			replays INTEGER NOT NULL,
			revisions INTEGER NOT NULL,
			discounts INTEGER NOT NULL,
			cache_hits INTEGER NOT NULL,
			cache_misses INTEGER NOT NULL,
			PRIMARY KEY (run_id, id)
		);`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SaveRun stores setup and its records in one transaction.
func (s *Store) SaveRun(ctx context.Context, setup Setup, records []MatchupRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (run_id, start_time, runs, workers, seed, discount, max_depth, caches) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		setup.RunID, setup.StartTime.UTC().Format(time.RFC3339), setup.Runs, setup.Workers, int64(setup.Seed),
		setup.Solver.Discount, setup.Solver.MaxDepth, setup.Solver.Caches,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	for _, r := range records {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO matchups (run_id, id, scenario, game, seats, runs, mean_utilities, duration_ms,
				evaluations, replays, revisions, discounts, cache_hits, cache_misses)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			setup.RunID, r.ID, r.Scenario, r.Game, strings.Join(r.Seats, ";"), r.Runs,
			FormatUtilities(r.MeanUtilities, ";"), r.Duration.Milliseconds(),
			r.Evaluations, r.Replays, r.Revisions, r.Discounts, r.CacheHits, r.CacheMisses,
		)
		if err != nil {
			return fmt.Errorf("failed to insert matchup %d: %w", r.ID, err)
		}
	}
	return tx.Commit()
}

// CountMatchups returns the number of matchups stored for a run.
func (s *Store) CountMatchups(ctx context.Context, runID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM matchups WHERE run_id = ?`, runID).Scan(&n)
	return n, err
}

func (s *Store) Close() error {
	return s.db.Close()
}
