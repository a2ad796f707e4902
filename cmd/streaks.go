package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Maalch/stats-lycansv2-sub010/internal/report"
	"github.com/Maalch/stats-lycansv2-sub010/internal/stats"
)

var streaksCmd = &cobra.Command{
	Use:   "streaks [player]",
	Short: "Win/loss streak series",
	Long: `Without an argument, rank players by their longest winning and losing
runs. With a player name, show that player's full series history.

Examples:
  lycans streaks
  lycans streaks Ponce`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return runPlayerStreaks(args[0])
		}
		return runStreakRanking()
	},
}

func init() {
	rootCmd.AddCommand(streaksCmd)
}

type streakRankingJSON struct {
	Player      string `json:"player"`
	Games       int    `json:"games"`
	LongestWin  int    `json:"longestWin"`
	LongestLoss int    `json:"longestLoss"`
	Current     int    `json:"current"`
}

func runStreakRanking() error {
	log, cfg, err := loadLog()
	if err != nil {
		return err
	}
	agg := stats.Aggregate(log, activeOptions(cfg))

	players := agg.Ranking(activeMinGames(cfg))
	entries := make([]streakRankingJSON, 0, len(players))
	for _, p := range players {
		entries = append(entries, streakRankingJSON{
			Player:      p.Name,
			Games:       p.Games,
			LongestWin:  p.Streaks.LongestWin.Length,
			LongestLoss: p.Streaks.LongestLoss.Length,
			Current:     p.Streaks.CurrentStreak,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].LongestWin > entries[j].LongestWin
	})

	if jsonOut {
		return writeJSON(entries)
	}

	rows := make([]report.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, report.Row{
			Label: e.Player,
			Value: float64(e.LongestWin),
			Detail: fmt.Sprintf("best %d wins / worst %d losses, now %s",
				e.LongestWin, e.LongestLoss, stats.FormatCurrentStreak(e.Current)),
		})
	}
	fmt.Fprint(outWriter(), report.BarChart("Longest winning runs", rows))
	return nil
}

type playerStreaksJSON struct {
	Player  string         `json:"player"`
	Current int            `json:"current"`
	Series  []stats.Series `json:"series"`
}

func runPlayerStreaks(name string) error {
	log, cfg, err := loadLog()
	if err != nil {
		return err
	}
	agg := stats.Aggregate(log, activeOptions(cfg))

	p, ok := agg.Players[name]
	if !ok {
		return fmt.Errorf("unknown player %q", name)
	}

	if jsonOut {
		return writeJSON(playerStreaksJSON{
			Player:  p.Name,
			Current: p.Streaks.CurrentStreak,
			Series:  p.Streaks.Series,
		})
	}

	out := outWriter()
	fmt.Fprintf(out, "%s: %d games, %s\n", p.Name, p.Games,
		stats.FormatCurrentStreak(p.Streaks.CurrentStreak))
	fmt.Fprintf(out, "Longest win run:  %s\n", report.FormatSeries(p.Streaks.LongestWin))
	fmt.Fprintf(out, "Longest loss run: %s\n", report.FormatSeries(p.Streaks.LongestLoss))

	fmt.Fprintln(out, "\nSeries history:")
	for _, s := range p.Streaks.Series {
		fmt.Fprintf(out, "  %s\n", report.FormatSeries(s))
	}

	if series := stats.PlayerSeries(log, name); len(series) > 1 {
		fmt.Fprintf(out, "\nWin rate over time: %s (now %s)\n",
			report.Sparkline(series), report.Percent(series[len(series)-1].Rate))
	}
	return nil
}
