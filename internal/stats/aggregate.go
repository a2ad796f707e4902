// Package stats implements the aggregation passes behind every report:
// per-player and per-camp win rates, talk-time normalization, win/loss
// streak series, and longitudinal win-rate curves.
package stats

import (
	"sort"

	"github.com/Maalch/stats-lycansv2-sub010/internal/camp"
	"github.com/Maalch/stats-lycansv2-sub010/internal/gamelog"
)

// PlayerAggregate is everything the reports need about one player.
type PlayerAggregate struct {
	Name  string
	Games int
	Wins  int
	// CampGames and CampWins are keyed by the bucket the player's role
	// resolved to under the active options.
	CampGames map[camp.Camp]int
	CampWins  map[camp.Camp]int
	Streaks   StreakStats
}

// WinRate returns the player's overall win rate in [0, 1].
func (p *PlayerAggregate) WinRate() float64 {
	if p.Games == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.Games)
}

// CampWinRate returns the player's win rate for one bucket.
func (p *PlayerAggregate) CampWinRate(c camp.Camp) float64 {
	if p.CampGames[c] == 0 {
		return 0
	}
	return float64(p.CampWins[c]) / float64(p.CampGames[c])
}

// Aggregates is the full aggregation result for a log under one set of
// grouping options.
type Aggregates struct {
	Options    camp.Options
	TotalGames int
	// CampGames counts player slots per bucket, CampVictories counts games
	// won by each bucket.
	CampGames     map[camp.Camp]int
	CampVictories map[camp.Camp]int
	Players       map[string]*PlayerAggregate
}

// Aggregate runs the single linear pass over the log. Wins are attributed
// from the raw role and the recorded winner camp, so grouping options only
// affect bucketing, never who won.
func Aggregate(log *gamelog.Log, opts camp.Options) *Aggregates {
	agg := &Aggregates{
		Options:       opts,
		TotalGames:    len(log.Games),
		CampGames:     make(map[camp.Camp]int),
		CampVictories: make(map[camp.Camp]int),
		Players:       make(map[string]*PlayerAggregate),
	}

	outcomes := make(map[string][]Outcome)

	for _, g := range log.Games {
		winner, _ := camp.WinnerCamp(g.WinnerCamp)
		winnerBucket, _ := camp.Resolve(g.WinnerCamp, opts)
		agg.CampVictories[winnerBucket]++

		for _, p := range g.Players {
			bucket, _ := camp.Resolve(p.Role, opts)
			agg.CampGames[bucket]++

			pa, ok := agg.Players[p.Name]
			if !ok {
				pa = &PlayerAggregate{
					Name:      p.Name,
					CampGames: make(map[camp.Camp]int),
					CampWins:  make(map[camp.Camp]int),
				}
				agg.Players[p.Name] = pa
			}

			won := camp.PlayerWon(p.Role, winner)
			pa.Games++
			pa.CampGames[bucket]++
			if won {
				pa.Wins++
				pa.CampWins[bucket]++
			}
			outcomes[p.Name] = append(outcomes[p.Name], Outcome{GameID: g.ID, Won: won})
		}
	}

	for name, o := range outcomes {
		agg.Players[name].Streaks = ComputeStreaks(o)
	}

	return agg
}

// Ranking returns players ordered by win rate, then games played, then
// name. Players below minGames are excluded.
func (a *Aggregates) Ranking(minGames int) []*PlayerAggregate {
	var players []*PlayerAggregate
	for _, p := range a.Players {
		if p.Games >= minGames {
			players = append(players, p)
		}
	}
	sort.Slice(players, func(i, j int) bool {
		ri, rj := players[i].WinRate(), players[j].WinRate()
		if ri != rj {
			return ri > rj
		}
		if players[i].Games != players[j].Games {
			return players[i].Games > players[j].Games
		}
		return players[i].Name < players[j].Name
	})
	return players
}

// CampOutcomes extracts the chronological outcomes one player had while
// their role resolved to the given bucket.
func CampOutcomes(log *gamelog.Log, name string, bucket camp.Camp, opts camp.Options) []Outcome {
	var outcomes []Outcome
	for _, g := range log.Games {
		p, ok := g.Player(name)
		if !ok {
			continue
		}
		b, _ := camp.Resolve(p.Role, opts)
		if b != bucket {
			continue
		}
		winner, _ := camp.WinnerCamp(g.WinnerCamp)
		outcomes = append(outcomes, Outcome{GameID: g.ID, Won: camp.PlayerWon(p.Role, winner)})
	}
	return outcomes
}
