package stats

import (
	"sort"

	"github.com/Maalch/stats-lycansv2-sub010/internal/gamelog"
)

// TalkStats is one player's talk-time summary. Only games with recorded
// talk time contribute, to both the totals and the normalization base.
type TalkStats struct {
	Name string
	// RecordedGames counts games with talk data, not total games played.
	RecordedGames int
	TalkSeconds   float64
	GameMinutes   float64
	// SecondsPerHour is talk time normalized to 60 minutes of game time.
	SecondsPerHour float64
}

// ComputeTalk builds the talk-time ranking, most talkative first, ties
// broken alphabetically. Players with fewer than minGames recorded games
// are excluded.
func ComputeTalk(log *gamelog.Log, minGames int) []TalkStats {
	byName := make(map[string]*TalkStats)

	for _, g := range log.Games {
		if g.DurationMinutes <= 0 {
			continue
		}
		for _, p := range g.Players {
			if !p.HasTalk() {
				continue
			}
			ts, ok := byName[p.Name]
			if !ok {
				ts = &TalkStats{Name: p.Name}
				byName[p.Name] = ts
			}
			ts.RecordedGames++
			ts.TalkSeconds += *p.TalkSeconds
			ts.GameMinutes += g.DurationMinutes
		}
	}

	ranking := make([]TalkStats, 0, len(byName))
	for _, ts := range byName {
		if ts.RecordedGames < minGames {
			continue
		}
		if ts.GameMinutes > 0 {
			ts.SecondsPerHour = ts.TalkSeconds / ts.GameMinutes * 60
		}
		ranking = append(ranking, *ts)
	}

	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].SecondsPerHour != ranking[j].SecondsPerHour {
			return ranking[i].SecondsPerHour > ranking[j].SecondsPerHour
		}
		return ranking[i].Name < ranking[j].Name
	})

	return ranking
}
