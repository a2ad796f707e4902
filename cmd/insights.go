package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Maalch/stats-lycansv2-sub010/internal/insights"
	"github.com/Maalch/stats-lycansv2-sub010/internal/llm"
	"github.com/Maalch/stats-lycansv2-sub010/internal/stats"
	"github.com/Maalch/stats-lycansv2-sub010/internal/ui"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Narrative season summary",
	Long: `Generate a short narrative summary of the season. With an API key
configured (lycans config set api_key ...) the commentary comes from an
LLM; without one, deterministic highlights are printed instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInsights()
	},
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}

type insightsJSON struct {
	FromLLM    bool     `json:"fromLlm"`
	Highlights []string `json:"highlights"`
}

func runInsights() error {
	log, cfg, err := loadLog()
	if err != nil {
		return err
	}
	agg := stats.Aggregate(log, activeOptions(cfg))

	gen := insights.NewGenerator(llm.NewClient(llm.Options{}))

	progress := ui.NewProgress("Generating season insights...")
	progress.Start()
	summary, genErr := gen.Generate(rootCtx, agg, activeMinGames(cfg))
	progress.Stop()

	if genErr != nil && !llm.ErrMissingAPIKey(genErr) {
		fmt.Fprintf(errWriter(), "Warning: LLM commentary unavailable: %v\n", genErr)
	}

	if jsonOut {
		return writeJSON(insightsJSON{FromLLM: summary.FromLLM, Highlights: summary.Highlights})
	}

	out := outWriter()
	if summary.FromLLM {
		fmt.Fprintln(out, "Season insights:")
	} else {
		fmt.Fprintln(out, "Season highlights (no LLM configured):")
	}
	for i, h := range summary.Highlights {
		fmt.Fprintf(out, "%d. %s\n", i+1, h)
	}
	return nil
}
