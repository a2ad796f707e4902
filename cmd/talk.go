package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Maalch/stats-lycansv2-sub010/internal/report"
	"github.com/Maalch/stats-lycansv2-sub010/internal/stats"
)

var talkCmd = &cobra.Command{
	Use:   "talk",
	Short: "Talking time per hour of game",
	Long: `Rank players by talking time, normalized to 60 minutes of game time.
Games without a talk recording are ignored entirely, so partial recordings
never skew the average.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTalk()
	},
}

func init() {
	rootCmd.AddCommand(talkCmd)
}

type talkJSON struct {
	Player         string  `json:"player"`
	RecordedGames  int     `json:"recordedGames"`
	TalkSeconds    float64 `json:"talkSeconds"`
	SecondsPerHour float64 `json:"secondsPerHour"`
}

func runTalk() error {
	log, cfg, err := loadLog()
	if err != nil {
		return err
	}

	ranking := stats.ComputeTalk(log, activeMinGames(cfg))

	if jsonOut {
		entries := make([]talkJSON, 0, len(ranking))
		for _, ts := range ranking {
			entries = append(entries, talkJSON{
				Player:         ts.Name,
				RecordedGames:  ts.RecordedGames,
				TalkSeconds:    ts.TalkSeconds,
				SecondsPerHour: ts.SecondsPerHour,
			})
		}
		return writeJSON(entries)
	}

	rows := make([]report.Row, 0, len(ranking))
	for _, ts := range ranking {
		rows = append(rows, report.Row{
			Label: ts.Name,
			Value: ts.SecondsPerHour,
			Detail: fmt.Sprintf("%.0f s/h over %d recorded games",
				ts.SecondsPerHour, ts.RecordedGames),
		})
	}
	fmt.Fprint(outWriter(), report.BarChart("Talking time per hour of game", rows))
	return nil
}
