package insights

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maalch/stats-lycansv2-sub010/internal/camp"
	"github.com/Maalch/stats-lycansv2-sub010/internal/gamelog"
	"github.com/Maalch/stats-lycansv2-sub010/internal/stats"
)

type fakeCompleter struct {
	response string
	err      error
	prompt   string
}

func (f *fakeCompleter) Complete(_ context.Context, _, userPrompt, _ string) (string, error) {
	f.prompt = userPrompt
	return f.response, f.err
}

func demoAggregates() *stats.Aggregates {
	var games []gamelog.Game
	for i := 0; i < 4; i++ {
		winner := "Loup"
		if i == 3 {
			winner = "Villageois"
		}
		games = append(games, gamelog.Game{
			ID:              "G" + string(rune('1'+i)),
			Date:            time.Date(2024, 3, i+1, 0, 0, 0, 0, time.UTC),
			DurationMinutes: 40,
			WinnerCamp:      winner,
			Players: []gamelog.PlayerRecord{
				{Name: "Alice", Role: "Loup", Victorious: winner == "Loup"},
				{Name: "Bob", Role: "Villageois", Victorious: winner == "Villageois"},
			},
		})
	}
	return stats.Aggregate(&gamelog.Log{Games: games}, camp.Options{})
}

func TestGenerateFromLLM(t *testing.T) {
	fake := &fakeCompleter{response: "1. The wolves ruled March.\n2. Bob finally won a game.\n"}
	gen := NewGenerator(fake)

	summary, err := gen.Generate(context.Background(), demoAggregates(), 1)
	require.NoError(t, err)
	assert.True(t, summary.FromLLM)
	assert.Equal(t, []string{"The wolves ruled March.", "Bob finally won a game."}, summary.Highlights)

	// The prompt carries the numbers the commentary is about.
	assert.Contains(t, fake.prompt, "Season of 4 games, 2 players.")
	assert.Contains(t, fake.prompt, "Loup: 3")
}

func TestGenerateFallbackOnError(t *testing.T) {
	fake := &fakeCompleter{err: errors.New("no key")}
	gen := NewGenerator(fake)

	summary, err := gen.Generate(context.Background(), demoAggregates(), 1)
	require.Error(t, err)
	assert.False(t, summary.FromLLM)
	require.NotEmpty(t, summary.Highlights)
	assert.Contains(t, summary.Highlights[0], "4 games recorded")
}

func TestGenerateFallbackOnEmptyResponse(t *testing.T) {
	fake := &fakeCompleter{response: "\n\n"}
	gen := NewGenerator(fake)

	summary, err := gen.Generate(context.Background(), demoAggregates(), 1)
	require.NoError(t, err)
	assert.False(t, summary.FromLLM)
	assert.NotEmpty(t, summary.Highlights)
}

func TestBasicHighlights(t *testing.T) {
	highlights := basicHighlights(demoAggregates(), 1)
	require.GreaterOrEqual(t, len(highlights), 3)
	assert.Contains(t, highlights[1], "Loup is the most victorious camp with 3 wins.")
	assert.Contains(t, highlights[2], "Alice leads the table at 75%")

	// Alice rides a 3-game streak? No: W W W L -> current is -1, so no
	// streak highlight for her; Bob sits at +1. Neither reaches 3.
	for _, h := range highlights[3:] {
		assert.NotContains(t, h, "streak")
	}
}

func TestBasicHighlightsEmptyLog(t *testing.T) {
	agg := stats.Aggregate(&gamelog.Log{}, camp.Options{})
	assert.Equal(t, []string{"No games recorded yet."}, basicHighlights(agg, 1))
}

func TestParseHighlights(t *testing.T) {
	got := parseHighlights("1. first\n\n2) second\n- third\n2. second\n")
	assert.Equal(t, []string{"first", "second", "third"}, got)
}
