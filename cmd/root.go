package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Maalch/stats-lycansv2-sub010/internal/camp"
	"github.com/Maalch/stats-lycansv2-sub010/internal/config"
	"github.com/Maalch/stats-lycansv2-sub010/internal/gamelog"
	"github.com/Maalch/stats-lycansv2-sub010/internal/report"
	"github.com/Maalch/stats-lycansv2-sub010/internal/stats"
)

var (
	cfgFile     string
	dataPath    string
	wolfTraitor bool
	soloGroup   bool
	minGames    int
	jsonOut     bool
	configErr   error

	rootCtx = context.Background()

	rootCmd = &cobra.Command{
		Use:   "lycans",
		Short: "lycans - Werewolf community game statistics",
		Long: `lycans computes statistics over the community game log: camp win ` +
			`rates, win/loss streak series, normalized talking time, achievements, ` +
			`and log consistency checks.`,
		Version:      fmt.Sprintf("%s (built at %s)", Version, BuildTime),
		SilenceUsage: true,
	}
)

// SetContext installs the signal-aware context commands load data under.
func SetContext(ctx context.Context) {
	rootCtx = ctx
}

// RootCmd exposes the root command for documentation generation.
func RootCmd() *cobra.Command {
	return rootCmd
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// runOverview reads rootCmd back through the flag helpers, so RunE
	// cannot live in the var initializer.
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runOverview()
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Configuration file path (default is ~/.config/lycans/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "",
		"Game log JSON path (overrides configuration)")
	rootCmd.PersistentFlags().BoolVar(&wolfTraitor, "wolf-traitor", false,
		"Bucket the Traître with the wolves")
	rootCmd.PersistentFlags().BoolVar(&soloGroup, "solo-group", false,
		"Collapse solo camps into a single Solo bucket")
	rootCmd.PersistentFlags().IntVar(&minGames, "min-games", 0,
		"Minimum games played for ranking inclusion (overrides configuration)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false,
		"Emit JSON instead of formatted text")
}

func initConfig() {
	configErr = config.InitConfig(cfgFile)
}

// activeConfig returns the loaded configuration, surfacing any error from
// initialization.
func activeConfig() (*config.Config, error) {
	if configErr != nil {
		return nil, fmt.Errorf("configuration error: %w", configErr)
	}
	return config.GetConfig()
}

// activeOptions merges config defaults with explicitly set flags.
func activeOptions(cfg *config.Config) camp.Options {
	opts := camp.Options{
		TraitorJoinsWolves: cfg.TraitorJoinsWolves,
		GroupSolos:         cfg.GroupSolos,
	}
	flags := rootCmd.PersistentFlags()
	if flags.Changed("wolf-traitor") {
		opts.TraitorJoinsWolves = wolfTraitor
	}
	if flags.Changed("solo-group") {
		opts.GroupSolos = soloGroup
	}
	return opts
}

func activeMinGames(cfg *config.Config) int {
	if rootCmd.PersistentFlags().Changed("min-games") {
		return minGames
	}
	return cfg.MinGames
}

func activeDataPath(cfg *config.Config) string {
	if dataPath != "" {
		return dataPath
	}
	return cfg.DataPath
}

// loadLog loads the configured game log.
func loadLog() (*gamelog.Log, *config.Config, error) {
	cfg, err := activeConfig()
	if err != nil {
		return nil, nil, err
	}
	log, err := gamelog.Load(rootCtx, activeDataPath(cfg))
	if err != nil {
		return nil, nil, err
	}
	return log, cfg, nil
}

func runOverview() error {
	log, cfg, err := loadLog()
	if err != nil {
		return err
	}
	opts := activeOptions(cfg)
	agg := stats.Aggregate(log, opts)

	if jsonOut {
		return writeJSON(overviewJSON{
			TotalGames:    agg.TotalGames,
			Players:       len(agg.Players),
			CampVictories: victoriesByBucket(agg),
		})
	}

	out := outWriter()
	fmt.Fprintf(out, "Season overview: %d games, %d players\n", agg.TotalGames, len(agg.Players))
	if first, last, ok := log.DateRange(); ok {
		fmt.Fprintf(out, "From %s to %s\n",
			first.Format(gamelog.DateLayout), last.Format(gamelog.DateLayout))
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, report.BarChart("Camp victories", victoryRows(agg)))
	return nil
}

type overviewJSON struct {
	TotalGames    int            `json:"totalGames"`
	Players       int            `json:"players"`
	CampVictories map[string]int `json:"campVictories"`
}

func victoriesByBucket(agg *stats.Aggregates) map[string]int {
	victories := make(map[string]int)
	for _, c := range camp.Buckets(agg.Options) {
		victories[string(c)] = agg.CampVictories[c]
	}
	return victories
}

func victoryRows(agg *stats.Aggregates) []report.Row {
	var rows []report.Row
	for _, c := range camp.Buckets(agg.Options) {
		wins := agg.CampVictories[c]
		rows = append(rows, report.Row{
			Label:  string(c),
			Value:  float64(wins),
			Detail: fmt.Sprintf("%d", wins),
		})
	}
	return rows
}
