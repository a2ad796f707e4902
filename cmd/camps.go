package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Maalch/stats-lycansv2-sub010/internal/camp"
	"github.com/Maalch/stats-lycansv2-sub010/internal/report"
	"github.com/Maalch/stats-lycansv2-sub010/internal/stats"
)

var campsCmd = &cobra.Command{
	Use:   "camps",
	Short: "Camp distribution and win rates",
	Long: `Show how often each camp appears and how often it wins, under the
active grouping options.

Examples:
  lycans camps                   # every camp in its own bucket
  lycans camps --wolf-traitor    # Traître counted with the wolves
  lycans camps --solo-group      # solo camps collapsed into one bucket`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCamps()
	},
}

func init() {
	rootCmd.AddCommand(campsCmd)
}

type campJSON struct {
	Camp      string          `json:"camp"`
	Games     int             `json:"games"`
	Victories int             `json:"victories"`
	WinRate   float64         `json:"winRate"`
	Series    []campPointJSON `json:"series,omitempty"`
}

// campPointJSON is one step of the cumulative win-rate curve, the shape
// the dashboard charts consume.
type campPointJSON struct {
	GameID string  `json:"gameId"`
	Played int     `json:"played"`
	Wins   int     `json:"wins"`
	Rate   float64 `json:"rate"`
}

func runCamps() error {
	log, cfg, err := loadLog()
	if err != nil {
		return err
	}
	agg := stats.Aggregate(log, activeOptions(cfg))

	var entries []campJSON
	trends := make(map[string][]stats.Point)
	for _, c := range camp.Buckets(agg.Options) {
		wins := agg.CampVictories[c]
		rate := 0.0
		if agg.TotalGames > 0 {
			rate = float64(wins) / float64(agg.TotalGames)
		}
		series := stats.CampSeries(log, c, agg.Options)
		trends[string(c)] = series
		points := make([]campPointJSON, 0, len(series))
		for _, p := range series {
			points = append(points, campPointJSON{
				GameID: p.GameID,
				Played: p.Played,
				Wins:   p.Wins,
				Rate:   p.Rate,
			})
		}
		entries = append(entries, campJSON{
			Camp:      string(c),
			Games:     agg.CampGames[c],
			Victories: wins,
			WinRate:   rate,
			Series:    points,
		})
	}

	if jsonOut {
		return writeJSON(entries)
	}

	out := outWriter()
	rows := make([]report.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, report.Row{
			Label: e.Camp,
			Value: e.WinRate,
			Detail: fmt.Sprintf("%s of %d games (%d player slots)",
				report.Percent(e.WinRate), agg.TotalGames, e.Games),
		})
	}
	fmt.Fprint(out, report.BarChart("Camp win rates", rows))

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Cumulative win-rate trend:")
	for _, e := range entries {
		series := trends[e.Camp]
		if len(series) == 0 {
			continue
		}
		fmt.Fprintf(out, "  %-18s %s\n", e.Camp, report.Sparkline(series))
	}
	return nil
}
