// Package achievements derives community achievements from aggregated
// statistics. The built-in set mirrors the badges the dashboard shows;
// thresholds can be overridden from a YAML file.
package achievements

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/Maalch/stats-lycansv2-sub010/internal/camp"
	"github.com/Maalch/stats-lycansv2-sub010/internal/gamelog"
	"github.com/Maalch/stats-lycansv2-sub010/internal/stats"
)

// ID identifies one achievement.
type ID string

const (
	Chatterbox  ID = "chatterbox"
	Whisperer   ID = "whisperer"
	Unstoppable ID = "unstoppable"
	Cursed      ID = "cursed"
	AlphaWolf   ID = "alpha_wolf"
	LoneWinner  ID = "lone_winner"
	Pillar      ID = "pillar"
	Turncoat    ID = "turncoat"
)

// Definition is one achievement with its thresholds.
type Definition struct {
	ID          ID      `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Threshold   float64 `yaml:"threshold"`
	MinGames    int     `yaml:"minGames"`
}

// DefaultSet returns the built-in achievement definitions, in report order.
func DefaultSet() []Definition {
	return []Definition{
		{
			ID:          Chatterbox,
			Name:        "Moulin à paroles",
			Description: "Talks the most per hour of game time",
			Threshold:   900, // seconds per hour
			MinGames:    10,
		},
		{
			ID:          Whisperer,
			Name:        "Grand Taiseux",
			Description: "Talks the least per hour of game time",
			Threshold:   300,
			MinGames:    10,
		},
		{
			ID:          Unstoppable,
			Name:        "Invincible",
			Description: "Longest winning streak",
			Threshold:   5, // consecutive wins
		},
		{
			ID:          Cursed,
			Name:        "Série noire",
			Description: "Longest losing streak",
			Threshold:   7, // consecutive losses
		},
		{
			ID:          AlphaWolf,
			Name:        "Loup Alpha",
			Description: "Dominant win rate as a wolf",
			Threshold:   0.6,
			MinGames:    10, // games in the wolf bucket
		},
		{
			ID:          LoneWinner,
			Name:        "Électron libre",
			Description: "Wins as a solo role",
			Threshold:   3, // solo wins
		},
		{
			ID:          Pillar,
			Name:        "Pilier du village",
			Description: "Sheer number of games played",
			Threshold:   100,
		},
		{
			ID:          Turncoat,
			Name:        "Retourneur de veste",
			Description: "Wins as the traitor",
			Threshold:   3,
		},
	}
}

// LoadSet reads threshold overrides from a YAML file and merges them over
// the defaults by ID. Unknown IDs are rejected so a typo never silently
// defines a dead achievement.
func LoadSet(path string) ([]Definition, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read achievements file: %w", err)
	}

	// Pointer fields distinguish "set to zero" from "not overridden".
	var overrides []struct {
		ID          ID       `yaml:"id"`
		Name        string   `yaml:"name"`
		Description string   `yaml:"description"`
		Threshold   *float64 `yaml:"threshold"`
		MinGames    *int     `yaml:"minGames"`
	}
	if err := yaml.Unmarshal(content, &overrides); err != nil {
		return nil, fmt.Errorf("invalid achievements file %s: %w", path, err)
	}

	set := DefaultSet()
	byID := make(map[ID]int, len(set))
	for i, def := range set {
		byID[def.ID] = i
	}

	for _, o := range overrides {
		i, ok := byID[o.ID]
		if !ok {
			return nil, fmt.Errorf("unknown achievement id %q in %s", o.ID, path)
		}
		if o.Name != "" {
			set[i].Name = o.Name
		}
		if o.Description != "" {
			set[i].Description = o.Description
		}
		if o.Threshold != nil {
			set[i].Threshold = *o.Threshold
		}
		if o.MinGames != nil {
			set[i].MinGames = *o.MinGames
		}
	}

	return set, nil
}

// Earned is one achievement granted to one player, with the value that
// crossed the threshold.
type Earned struct {
	Player     string
	Definition Definition
	Value      float64
}

// Evaluate grants achievements from the aggregates and the talk ranking.
// Results are ordered by definition order, then player name.
func Evaluate(agg *stats.Aggregates, log *gamelog.Log, set []Definition) []Earned {
	talk := stats.ComputeTalk(log, 0)
	talkByName := make(map[string]stats.TalkStats, len(talk))
	for _, ts := range talk {
		talkByName[ts.Name] = ts
	}

	names := make([]string, 0, len(agg.Players))
	for name := range agg.Players {
		names = append(names, name)
	}
	sort.Strings(names)

	var earned []Earned
	for _, def := range set {
		for _, name := range names {
			value, ok := evaluateOne(def, agg.Players[name], talkByName[name])
			if !ok {
				continue
			}
			earned = append(earned, Earned{Player: name, Definition: def, Value: value})
		}
	}
	return earned
}

func evaluateOne(def Definition, p *stats.PlayerAggregate, talk stats.TalkStats) (float64, bool) {
	switch def.ID {
	case Chatterbox:
		if talk.RecordedGames < def.MinGames {
			return 0, false
		}
		return talk.SecondsPerHour, talk.SecondsPerHour >= def.Threshold
	case Whisperer:
		if talk.RecordedGames < def.MinGames {
			return 0, false
		}
		return talk.SecondsPerHour, talk.SecondsPerHour > 0 && talk.SecondsPerHour <= def.Threshold
	case Unstoppable:
		v := float64(p.Streaks.LongestWin.Length)
		return v, v >= def.Threshold
	case Cursed:
		v := float64(p.Streaks.LongestLoss.Length)
		return v, v >= def.Threshold
	case AlphaWolf:
		if p.CampGames[camp.Loup] < def.MinGames {
			return 0, false
		}
		rate := p.CampWinRate(camp.Loup)
		return rate, rate >= def.Threshold
	case LoneWinner:
		v := float64(soloWins(p))
		return v, v >= def.Threshold
	case Pillar:
		v := float64(p.Games)
		return v, v >= def.Threshold
	case Turncoat:
		// Only visible on aggregates where the traitor keeps its own
		// bucket; grouped runs fold these wins into the wolf bucket.
		v := float64(p.CampWins[camp.Traitre])
		return v, v >= def.Threshold
	default:
		return 0, false
	}
}

// soloWins sums wins across every solo bucket, including the grouped Solo
// bucket when the aggregation ran with GroupSolos.
func soloWins(p *stats.PlayerAggregate) int {
	total := 0
	for c, wins := range p.CampWins {
		if camp.IsSolo(c) {
			total += wins
		}
	}
	return total
}
