package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Maalch/stats-lycansv2-sub010/internal/achievements"
	"github.com/Maalch/stats-lycansv2-sub010/internal/stats"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements [player]",
	Short: "Grant achievements from the season statistics",
	Long: `Evaluate the achievement thresholds against the aggregated season
statistics. Thresholds can be overridden with a YAML file set through
the achievements_file configuration key.

Examples:
  lycans achievements
  lycans achievements Ponce`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		player := ""
		if len(args) == 1 {
			player = args[0]
		}
		return runAchievements(player)
	},
}

func init() {
	rootCmd.AddCommand(achievementsCmd)
}

type achievementJSON struct {
	Player      string  `json:"player"`
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Value       float64 `json:"value"`
}

func runAchievements(player string) error {
	log, cfg, err := loadLog()
	if err != nil {
		return err
	}

	set := achievements.DefaultSet()
	if cfg.AchievementsFile != "" {
		set, err = achievements.LoadSet(cfg.AchievementsFile)
		if err != nil {
			return err
		}
	}

	agg := stats.Aggregate(log, activeOptions(cfg))
	earned := achievements.Evaluate(agg, log, set)

	var entries []achievementJSON
	for _, e := range earned {
		if player != "" && e.Player != player {
			continue
		}
		entries = append(entries, achievementJSON{
			Player:      e.Player,
			ID:          string(e.Definition.ID),
			Name:        e.Definition.Name,
			Description: e.Definition.Description,
			Value:       e.Value,
		})
	}

	if jsonOut {
		return writeJSON(entries)
	}

	out := outWriter()
	if len(entries) == 0 {
		if player != "" {
			fmt.Fprintf(out, "No achievements for %s yet.\n", player)
		} else {
			fmt.Fprintln(out, "No achievements earned yet.")
		}
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(out, "%-12s %s: %s (%.1f)\n", e.Player, e.Name, e.Description, e.Value)
	}
	return nil
}
