package stats

import "fmt"

// Outcome is the result of a single game from one player's perspective.
type Outcome struct {
	GameID string
	Won    bool
}

// Series is one uninterrupted run of identical outcomes.
type Series struct {
	Won         bool
	StartGameID string
	EndGameID   string
	Length      int
}

// StreakStats summarizes a player's win/loss runs. Outcomes must be in
// chronological order for CurrentStreak to be meaningful.
type StreakStats struct {
	// CurrentStreak is positive during a win run, negative during a loss
	// run, zero when no games were played.
	CurrentStreak int
	LongestWin    Series
	LongestLoss   Series
	Series        []Series
}

// ComputeStreaks builds the full run series from a chronological list of
// outcomes.
func ComputeStreaks(outcomes []Outcome) StreakStats {
	var stats StreakStats
	if len(outcomes) == 0 {
		return stats
	}

	current := Series{
		Won:         outcomes[0].Won,
		StartGameID: outcomes[0].GameID,
		EndGameID:   outcomes[0].GameID,
		Length:      1,
	}

	for _, o := range outcomes[1:] {
		if o.Won == current.Won {
			current.EndGameID = o.GameID
			current.Length++
			continue
		}
		stats.Series = append(stats.Series, current)
		current = Series{
			Won:         o.Won,
			StartGameID: o.GameID,
			EndGameID:   o.GameID,
			Length:      1,
		}
	}
	stats.Series = append(stats.Series, current)

	for _, s := range stats.Series {
		if s.Won && s.Length > stats.LongestWin.Length {
			stats.LongestWin = s
		}
		if !s.Won && s.Length > stats.LongestLoss.Length {
			stats.LongestLoss = s
		}
	}

	last := stats.Series[len(stats.Series)-1]
	if last.Won {
		stats.CurrentStreak = last.Length
	} else {
		stats.CurrentStreak = -last.Length
	}

	return stats
}

// FormatCurrentStreak renders a signed current streak for reports.
func FormatCurrentStreak(streak int) string {
	switch {
	case streak == 0:
		return "no active streak"
	case streak == 1:
		return "1 win streak"
	case streak > 1:
		return fmt.Sprintf("%d win streak", streak)
	case streak == -1:
		return "1 loss streak"
	default:
		return fmt.Sprintf("%d loss streak", -streak)
	}
}
