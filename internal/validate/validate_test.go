package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maalch/stats-lycansv2-sub010/internal/gamelog"
)

func talkPtr(v float64) *float64 { return &v }

func cleanGame(id string, day int) gamelog.Game {
	return gamelog.Game{
		ID:              id,
		Date:            time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC),
		DurationMinutes: 40,
		WinnerCamp:      "Loup",
		Players: []gamelog.PlayerRecord{
			{Name: "Alice", Role: "Loup", TalkSeconds: talkPtr(300), Victorious: true, Votes: []string{"Bob"}},
			{Name: "Bob", Role: "Villageois", Votes: []string{"Alice"}},
		},
	}
}

func TestValidateCleanLog(t *testing.T) {
	log := &gamelog.Log{Games: []gamelog.Game{cleanGame("G1", 1), cleanGame("G2", 2)}}

	report := Validate(log)
	assert.False(t, report.HasErrors())
	require.Len(t, report.Events, 1)
	assert.Equal(t, EventInfo, report.Events[0].Level)
}

func TestValidateEmptyLog(t *testing.T) {
	report := Validate(&gamelog.Log{})
	assert.False(t, report.HasErrors())
}

func TestValidateVictoriousMismatch(t *testing.T) {
	g := cleanGame("G1", 1)
	g.Players[1].Victorious = true // villager flagged victorious in a wolf win

	report := Validate(&gamelog.Log{Games: []gamelog.Game{g}})
	require.True(t, report.HasErrors())
	assert.Contains(t, report.Events[0].Message, `"Bob"`)
	assert.Contains(t, report.Events[0].Message, "victorious=true")
}

func TestValidateTraitorWinsWithWolves(t *testing.T) {
	g := cleanGame("G1", 1)
	g.Players = append(g.Players, gamelog.PlayerRecord{Name: "Carole", Role: "Traître", Victorious: true})

	report := Validate(&gamelog.Log{Games: []gamelog.Game{g}})
	assert.False(t, report.HasErrors(), "traitor is victorious in a wolf win")
}

func TestValidateUnknownRole(t *testing.T) {
	g := cleanGame("G1", 1)
	g.Players[1].Role = "Boulanger"

	report := Validate(&gamelog.Log{Games: []gamelog.Game{g}})
	assert.False(t, report.HasErrors(), "unknown role is a warning, not an error")
	assert.Equal(t, 1, report.Count(EventWarn))
	assert.Contains(t, report.Events[0].Message, `"Boulanger"`)
}

func TestValidateUnknownWinnerCamp(t *testing.T) {
	g := cleanGame("G1", 1)
	g.WinnerCamp = "Boulangers"

	report := Validate(&gamelog.Log{Games: []gamelog.Game{g}})
	assert.True(t, report.HasErrors())
}

func TestValidateTalkExceedsDuration(t *testing.T) {
	g := cleanGame("G1", 1)
	g.Players[0].TalkSeconds = talkPtr(40*60 + 1)

	report := Validate(&gamelog.Log{Games: []gamelog.Game{g}})
	require.True(t, report.HasErrors())
	assert.Contains(t, report.Events[0].Message, "talked")
}

func TestValidateTalkSentinel(t *testing.T) {
	g := cleanGame("G1", 1)
	g.Players[0].TalkSeconds = talkPtr(-1)

	report := Validate(&gamelog.Log{Games: []gamelog.Game{g}})
	assert.False(t, report.HasErrors(), "-1 means no recording, not corrupt data")
}

func TestValidateNegativeTalk(t *testing.T) {
	g := cleanGame("G1", 1)
	g.Players[0].TalkSeconds = talkPtr(-30)

	report := Validate(&gamelog.Log{Games: []gamelog.Game{g}})
	require.True(t, report.HasErrors())
	assert.Contains(t, report.Events[0].Message, "invalid talk time")
}

func TestValidateVotes(t *testing.T) {
	g := cleanGame("G1", 1)
	g.Players[0].Votes = []string{"Personne", "", "Alice"}

	report := Validate(&gamelog.Log{Games: []gamelog.Game{g}})
	assert.True(t, report.HasErrors(), "vote against absent player")
	assert.Equal(t, 1, report.Count(EventWarn), "self-vote warns")
	assert.Equal(t, 1, report.Count(EventError))
}

func TestValidateStructuralErrors(t *testing.T) {
	dup := cleanGame("G1", 1)
	dup.Players = append(dup.Players, gamelog.PlayerRecord{Name: "Alice", Role: "Villageois"})

	zero := cleanGame("G2", 2)
	zero.DurationMinutes = 0

	empty := cleanGame("G3", 3)
	empty.Players = nil

	backwards := cleanGame("G4", 1) // dated before G3

	report := Validate(&gamelog.Log{Games: []gamelog.Game{dup, zero, empty, backwards}})
	assert.True(t, report.HasErrors())

	var messages []string
	for _, e := range report.Events {
		messages = append(messages, e.Message)
	}
	assert.Contains(t, messages, `player "Alice" appears twice`)
	assert.Contains(t, messages, "non-positive duration 0.0 minutes")
	assert.Contains(t, messages, "game has no players")
	assert.Contains(t, messages, "dated 2024-03-01, before preceding game G3 (2024-03-03)")
}

func TestReportMergeAndCount(t *testing.T) {
	var a, b Report
	a.Info("G1", "fine")
	b.Error("G2", "broken")
	b.Warn("G2", "odd")

	a.Merge(b)
	a.Merge(Report{})

	assert.Len(t, a.Events, 3)
	assert.Equal(t, 1, a.Count(EventError))
	assert.True(t, a.HasErrors())
}
