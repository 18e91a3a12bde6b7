package experiments

import (
	"fmt"
	"io"
	"strings"
	"time"

	"credence/experiments/metrics"
	"credence/game"

	"github.com/dustin/go-humanize"
)

// WriteReport prints one line per matchup, grouped by scenario.
func WriteReport(w io.Writer, records []metrics.MatchupRecord) error {
	scenario := ""
	for _, r := range records {
		if r.Scenario != scenario {
			scenario = r.Scenario
			if _, err := fmt.Fprintf(w, "\n%s\n%s\n", scenario, strings.Repeat("-", 59)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "%-34s | %-22s | %s runs in %s, %s evaluations, %.0f%% cache hits\n",
			strings.Join(r.Seats, ", "),
			metrics.FormatUtilities(r.MeanUtilities, ", "),
			humanize.Comma(int64(r.Runs)),
			r.Duration.Round(time.Millisecond),
			humanize.Comma(r.Evaluations),
			100*r.HitRate(),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteResponses prints the detective's best guesses per pair of claims.
func WriteResponses(w io.Writer, g game.Game, responses []Response) error {
	for _, r := range responses {
		best := make([]string, len(r.Best))
		for i, m := range r.Best {
			best[i] = g.MoveName(m)
		}
		_, err := fmt.Fprintf(w, "For claims %s, %s, possible moves are [%s]\n",
			g.MoveName(r.First), g.MoveName(r.Second), strings.Join(best, ", "))
		if err != nil {
			return err
		}
	}
	return nil
}
