package stats

import (
	"time"

	"github.com/Maalch/stats-lycansv2-sub010/internal/camp"
	"github.com/Maalch/stats-lycansv2-sub010/internal/gamelog"
)

// Point is one step of a cumulative win-rate curve.
type Point struct {
	GameID string
	Date   time.Time
	Played int
	Wins   int
	Rate   float64
}

// CampSeries builds the cumulative win-rate curve for one bucket over the
// chronological game sequence. A game counts as played by the bucket when
// at least one player's role resolves into it; it counts as won when the
// winner camp resolves into it.
func CampSeries(log *gamelog.Log, bucket camp.Camp, opts camp.Options) []Point {
	var series []Point
	played, wins := 0, 0

	for _, g := range log.Games {
		present := false
		for _, p := range g.Players {
			if b, _ := camp.Resolve(p.Role, opts); b == bucket {
				present = true
				break
			}
		}
		if !present {
			continue
		}

		played++
		if b, _ := camp.Resolve(g.WinnerCamp, opts); b == bucket {
			wins++
		}
		series = append(series, Point{
			GameID: g.ID,
			Date:   g.Date,
			Played: played,
			Wins:   wins,
			Rate:   float64(wins) / float64(played),
		})
	}

	return series
}

// PlayerSeries builds the cumulative win-rate curve for one player.
func PlayerSeries(log *gamelog.Log, name string) []Point {
	var series []Point
	played, wins := 0, 0

	for _, g := range log.Games {
		p, ok := g.Player(name)
		if !ok {
			continue
		}
		winner, _ := camp.WinnerCamp(g.WinnerCamp)

		played++
		if camp.PlayerWon(p.Role, winner) {
			wins++
		}
		series = append(series, Point{
			GameID: g.ID,
			Date:   g.Date,
			Played: played,
			Wins:   wins,
			Rate:   float64(wins) / float64(played),
		})
	}

	return series
}
