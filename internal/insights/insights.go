// Package insights turns aggregated statistics into a narrative season
// summary. With an API key configured it asks the LLM for commentary;
// otherwise it falls back to deterministic highlights.
package insights

import (
	"context"
	"fmt"
	"strings"

	"github.com/Maalch/stats-lycansv2-sub010/internal/camp"
	"github.com/Maalch/stats-lycansv2-sub010/internal/stats"
	"github.com/Maalch/stats-lycansv2-sub010/internal/stringsutil"
)

const systemPrompt = "You are the commentator of a French werewolf-style " +
	"community game night. Write short, factual, playful commentary about " +
	"the season statistics you are given. Answer with one numbered insight " +
	"per line."

// Summary is the result of an insights run.
type Summary struct {
	Highlights []string
	// FromLLM is false when the deterministic fallback produced the
	// highlights.
	FromLLM bool
}

// Completer is the LLM surface the generator needs.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt, model string) (string, error)
}

// Generator builds season summaries.
type Generator struct {
	client Completer
}

func NewGenerator(client Completer) *Generator {
	return &Generator{client: client}
}

// Generate asks the LLM for commentary, degrading to built-in highlights
// when no key is configured or the call fails. It never returns an error
// for a degraded run; err is only the reason the LLM path was skipped.
func (g *Generator) Generate(ctx context.Context, agg *stats.Aggregates, minGames int) (Summary, error) {
	prompt := buildPrompt(agg, minGames)

	response, err := g.client.Complete(ctx, systemPrompt, prompt, "")
	if err != nil {
		return Summary{Highlights: basicHighlights(agg, minGames)}, err
	}

	highlights := parseHighlights(response)
	if len(highlights) == 0 {
		return Summary{Highlights: basicHighlights(agg, minGames)}, nil
	}
	return Summary{Highlights: highlights, FromLLM: true}, nil
}

// buildPrompt flattens the aggregates into prompt text.
func buildPrompt(agg *stats.Aggregates, minGames int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Season of %d games, %d players.\n\n", agg.TotalGames, len(agg.Players))

	b.WriteString("Camp victories:\n")
	for _, c := range camp.Buckets(agg.Options) {
		if agg.CampVictories[c] == 0 {
			continue
		}
		fmt.Fprintf(&b, "- %s: %d\n", c, agg.CampVictories[c])
	}
	b.WriteString("\n")

	ranking := agg.Ranking(minGames)
	if len(ranking) > 0 {
		b.WriteString("Top players (win rate):\n")
		for i, p := range ranking {
			if i >= 5 {
				break
			}
			fmt.Fprintf(&b, "- %s: %.0f%% over %d games, %s\n",
				p.Name, p.WinRate()*100, p.Games, stats.FormatCurrentStreak(p.Streaks.CurrentStreak))
		}
	}

	return b.String()
}

// parseHighlights splits an LLM response into one highlight per line,
// stripping list markers.
func parseHighlights(response string) []string {
	var highlights []string
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "0123456789.-) ")
		if line == "" {
			continue
		}
		highlights = append(highlights, line)
	}
	return stringsutil.UniqueStrings(highlights)
}

// basicHighlights is the deterministic fallback.
func basicHighlights(agg *stats.Aggregates, minGames int) []string {
	var highlights []string

	if agg.TotalGames == 0 {
		return []string{"No games recorded yet."}
	}

	highlights = append(highlights,
		fmt.Sprintf("%d games recorded across %d players.", agg.TotalGames, len(agg.Players)))

	if c, wins, ok := dominantCamp(agg); ok {
		highlights = append(highlights,
			fmt.Sprintf("%s is the most victorious camp with %d wins.", c, wins))
	}

	ranking := agg.Ranking(minGames)
	if len(ranking) > 0 {
		top := ranking[0]
		highlights = append(highlights,
			fmt.Sprintf("%s leads the table at %.0f%% over %d games.",
				top.Name, top.WinRate()*100, top.Games))

		if hot := hottestStreak(ranking); hot != nil && hot.Streaks.CurrentStreak >= 3 {
			highlights = append(highlights,
				fmt.Sprintf("%s is on a %s.", hot.Name,
					stats.FormatCurrentStreak(hot.Streaks.CurrentStreak)))
		}
	}

	return highlights
}

func dominantCamp(agg *stats.Aggregates) (camp.Camp, int, bool) {
	best, bestWins, found := camp.Camp(""), 0, false
	for _, c := range camp.Buckets(agg.Options) {
		if agg.CampVictories[c] > bestWins {
			best, bestWins, found = c, agg.CampVictories[c], true
		}
	}
	return best, bestWins, found
}

func hottestStreak(ranking []*stats.PlayerAggregate) *stats.PlayerAggregate {
	var hot *stats.PlayerAggregate
	for _, p := range ranking {
		if hot == nil || p.Streaks.CurrentStreak > hot.Streaks.CurrentStreak {
			hot = p
		}
	}
	return hot
}
