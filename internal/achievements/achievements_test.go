package achievements

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maalch/stats-lycansv2-sub010/internal/camp"
	"github.com/Maalch/stats-lycansv2-sub010/internal/gamelog"
	"github.com/Maalch/stats-lycansv2-sub010/internal/stats"
)

func talkPtr(v float64) *float64 { return &v }

// streakLog gives Alice five straight wolf wins and Bob five straight
// losses, with Alice talking a lot.
func streakLog() *gamelog.Log {
	var games []gamelog.Game
	for i := 0; i < 5; i++ {
		games = append(games, gamelog.Game{
			ID:              "G" + string(rune('1'+i)),
			Date:            time.Date(2024, 3, i+1, 0, 0, 0, 0, time.UTC),
			DurationMinutes: 60,
			WinnerCamp:      "Loup",
			Players: []gamelog.PlayerRecord{
				{Name: "Alice", Role: "Loup", TalkSeconds: talkPtr(1200), Victorious: true},
				{Name: "Bob", Role: "Villageois", TalkSeconds: talkPtr(100)},
			},
		})
	}
	return &gamelog.Log{Games: games}
}

func TestEvaluateStreakAchievements(t *testing.T) {
	log := streakLog()
	agg := stats.Aggregate(log, camp.Options{})

	set := DefaultSet()
	// Lower thresholds so the 5-game log can trip them.
	for i := range set {
		switch set[i].ID {
		case Unstoppable:
			set[i].Threshold = 5
		case Cursed:
			set[i].Threshold = 5
		case AlphaWolf:
			set[i].MinGames = 5
		case Chatterbox, Whisperer:
			set[i].MinGames = 5
		}
	}

	earned := Evaluate(agg, log, set)

	byPlayer := make(map[string][]ID)
	for _, e := range earned {
		byPlayer[e.Player] = append(byPlayer[e.Player], e.Definition.ID)
	}

	assert.Contains(t, byPlayer["Alice"], Unstoppable)
	assert.Contains(t, byPlayer["Alice"], AlphaWolf)
	assert.Contains(t, byPlayer["Alice"], Chatterbox)
	assert.Contains(t, byPlayer["Bob"], Cursed)
	assert.Contains(t, byPlayer["Bob"], Whisperer)

	assert.NotContains(t, byPlayer["Bob"], Unstoppable)
	assert.NotContains(t, byPlayer["Alice"], Cursed)
}

func TestEvaluateMinGamesGate(t *testing.T) {
	log := streakLog()
	agg := stats.Aggregate(log, camp.Options{})

	// Default thresholds demand 10 recorded games; the log has 5.
	earned := Evaluate(agg, log, DefaultSet())
	for _, e := range earned {
		assert.NotEqual(t, Chatterbox, e.Definition.ID)
		assert.NotEqual(t, AlphaWolf, e.Definition.ID)
	}
}

func TestEvaluateOrderingDeterministic(t *testing.T) {
	log := streakLog()
	agg := stats.Aggregate(log, camp.Options{})

	set := DefaultSet()
	for i := range set {
		set[i].Threshold = 1
		set[i].MinGames = 1
	}

	first := Evaluate(agg, log, set)
	second := Evaluate(agg, log, set)
	require.Equal(t, first, second)

	// Definition order outranks player order.
	var lastIdx int
	idxOf := make(map[ID]int)
	for i, def := range set {
		idxOf[def.ID] = i
	}
	for _, e := range first {
		i := idxOf[e.Definition.ID]
		require.GreaterOrEqual(t, i, lastIdx)
		lastIdx = i
	}
}

func TestLoadSetOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "achievements.yaml")
	content := `
- id: unstoppable
  threshold: 3
- id: chatterbox
  name: Bavard
  minGames: 2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	set, err := LoadSet(path)
	require.NoError(t, err)
	require.Len(t, set, len(DefaultSet()))

	byID := make(map[ID]Definition)
	for _, def := range set {
		byID[def.ID] = def
	}

	assert.InDelta(t, 3, byID[Unstoppable].Threshold, 1e-9)
	assert.Equal(t, "Invincible", byID[Unstoppable].Name, "untouched fields keep defaults")
	assert.Equal(t, "Bavard", byID[Chatterbox].Name)
	assert.Equal(t, 2, byID[Chatterbox].MinGames)
	assert.InDelta(t, 900, byID[Chatterbox].Threshold, 1e-9)
}

func TestLoadSetZeroOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "achievements.yaml")
	content := `
- id: whisperer
  threshold: 0
  minGames: 0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	set, err := LoadSet(path)
	require.NoError(t, err)

	for _, def := range set {
		if def.ID == Whisperer {
			assert.Zero(t, def.Threshold, "an explicit zero override must stick")
			assert.Zero(t, def.MinGames)
		}
	}
}

func TestLoadSetUnknownID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "achievements.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- id: nonsense\n  threshold: 1\n"), 0o644))

	_, err := LoadSet(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown achievement id "nonsense"`)
}

func TestLoadSetMissingFile(t *testing.T) {
	_, err := LoadSet(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read achievements file")
}
