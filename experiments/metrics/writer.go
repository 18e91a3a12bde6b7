package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<runID> to hold the files of one experiment run.
func NewWriter(root, runID string) (*Writer, error) {
	baseDir := filepath.Join(root, runID)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSetup(setup Setup) error {
	out, err := yaml.Marshal(setup)
	if err != nil {
		return fmt.Errorf("failed to encode setup: %w", err)
	}
	err = os.WriteFile(filepath.Join(w.baseDir, "setup.yaml"), out, 0644)
	if err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}
	return nil
}

func (w *Writer) WriteMatchupRecords(records []MatchupRecord) error {
	// Create a file
	path := filepath.Join(w.baseDir, "matchup_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create matchup records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	header := []string{
		"id", "scenario", "game", "seats", "runs", "mean_utilities", "start_time", "duration",
		"evaluations", "replays", "revisions", "discounts", "cache_hits", "cache_misses",
	}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write matchup records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			record.Scenario,
			record.Game,
			strings.Join(record.Seats, ";"),
			strconv.Itoa(record.Runs),
			FormatUtilities(record.MeanUtilities, ";"),
			record.StartTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.FormatInt(record.Evaluations, 10),
			strconv.FormatInt(record.Replays, 10),
			strconv.FormatInt(record.Revisions, 10),
			strconv.FormatInt(record.Discounts, 10),
			strconv.FormatInt(record.CacheHits, 10),
			strconv.FormatInt(record.CacheMisses, 10),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write matchup record row: %w", err)
		}
	}

	return nil
}

// FormatUtilities prints utilities with two decimals.
func FormatUtilities(utilities []float64, sep string) string {
	parts := make([]string, len(utilities))
	for i, u := range utilities {
		parts[i] = strconv.FormatFloat(u, 'f', 2, 64)
	}
	return strings.Join(parts, sep)
}
